package hub

// defaultGames is the built-in online multiplayer game database.
func defaultGames() []Game {
	return []Game{
		{
			ID: 1, Name: "Blood Strike", Emoji: "🩸", Category: "action",
			Description: "Intense multiplayer tactical shooter. Fast-paced combat with various game modes. Free-to-play FPS action!",
			PlayersNow:  456789, AvgScore: 18500, AvgTimeMin: 12, Rating: 4.8,
			Badge: "HOT", GameURL: "https://play.bloodstrike.com", Type: "shooter",
		},
		{
			ID: 2, Name: "Call of Duty Mobile", Emoji: "🔫", Category: "action",
			Description: "COD Mobile - Legendary FPS on mobile! Multiplayer battles, Zombies, Campaign. True COD experience.",
			PlayersNow:  2345678, AvgScore: 24500, AvgTimeMin: 15, Rating: 4.9,
			Badge: "TOP", GameURL: "https://www.callofduty.com/mobile", Type: "shooter",
		},
		{
			ID: 3, Name: "PUBG Mobile", Emoji: "🎯", Category: "action",
			Description: "PUBG Mobile - Battle royale legend! 100 players drop, loot, and fight. Survive to win!",
			PlayersNow:  3456789, AvgScore: 45000, AvgTimeMin: 20, Rating: 4.8,
			Badge: "TRENDING", GameURL: "https://www.pubgmobile.com", Type: "battle-royale",
		},
		{
			ID: 4, Name: "FireLite", Emoji: "🔥", Category: "action",
			Description: "Fast-paced online shooter! Competitive matches with squad-based gameplay. Download and dominate!",
			PlayersNow:  234567, AvgScore: 16200, AvgTimeMin: 10, Rating: 4.7,
			GameURL: "https://firelite.com", Type: "shooter",
		},
		{
			ID: 5, Name: "Fortnite", Emoji: "⚡", Category: "action",
			Description: "Epic battle royale! 100 players compete with building mechanics. Free-to-play with seasons & events.",
			PlayersNow:  5678901, AvgScore: 55000, AvgTimeMin: 18, Rating: 4.9,
			Badge: "TOP", GameURL: "https://www.fortnite.com", Type: "battle-royale",
		},
		{
			ID: 6, Name: "Valorant", Emoji: "🎪", Category: "action",
			Description: "Tactical 5v5 competitive shooter! Agent-based abilities with round-based economy system.",
			PlayersNow:  1234567, AvgScore: 28000, AvgTimeMin: 35, Rating: 4.9,
			Badge: "HOT", GameURL: "https://playvalorant.com", Type: "shooter",
		},
		{
			ID: 7, Name: "Counter-Strike 2", Emoji: "💥", Category: "action",
			Description: "CS2 - The legendary competitive FPS! Terrorist vs Counter-Terrorist. Pure tactical gameplay.",
			PlayersNow:  2789012, AvgScore: 32000, AvgTimeMin: 40, Rating: 4.8,
			GameURL: "https://www.counter-strike.net/cs2", Type: "shooter",
		},
		{
			ID: 8, Name: "Apex Legends", Emoji: "🎮", Category: "action",
			Description: "Hero-based battle royale! 3v3 teams with unique legends. Ping system for teamwork.",
			PlayersNow:  1890234, AvgScore: 38000, AvgTimeMin: 20, Rating: 4.8,
			Badge: "TRENDING", GameURL: "https://www.ea.com/games/apex", Type: "battle-royale",
		},
		{
			ID: 9, Name: "Warzone 2.0", Emoji: "⚔️", Category: "action",
			Description: "Call of Duty Warzone - Massive 150-player battle royale. Squads, Solos, Duos modes.",
			PlayersNow:  3567890, AvgScore: 52000, AvgTimeMin: 25, Rating: 4.7,
			Badge: "HOT", GameURL: "https://www.callofduty.com/warzone", Type: "battle-royale",
		},
		{
			ID: 10, Name: "Rainbow Six Siege", Emoji: "🛡️", Category: "strategy",
			Description: "Tactical team-based shooter! 5v5 with destructible environments. Attack & defend objectives.",
			PlayersNow:  987654, AvgScore: 25000, AvgTimeMin: 40, Rating: 4.7,
			GameURL: "https://www.ubisoft.com/en-us/game/rainbow-six/siege", Type: "shooter",
		},
		{
			ID: 11, Name: "Overwatch 2", Emoji: "🎯", Category: "multiplayer",
			Description: "Hero shooter 5v5! Team-based gameplay with diverse character abilities. Free-to-play.",
			PlayersNow:  2345678, AvgScore: 35000, AvgTimeMin: 25, Rating: 4.8,
			Badge: "TOP", GameURL: "https://overwatch.blizzard.com", Type: "hero-shooter",
		},
		{
			ID: 12, Name: "Lost Ark", Emoji: "⚔️", Category: "multiplayer",
			Description: "MMO action RPG! Hardcore PvE raids and PvP combat. Rich story with dungeons and guilds.",
			PlayersNow:  456789, AvgScore: 45000, AvgTimeMin: 120, Rating: 4.6,
			GameURL: "https://www.lostarkmmo.com", Type: "mmo",
		},
		{
			ID: 13, Name: "New World", Emoji: "🗡️", Category: "multiplayer",
			Description: "MMO with large-scale PvP! Territory wars between factions. Crafting, dungeons, raids.",
			PlayersNow:  234567, AvgScore: 40000, AvgTimeMin: 90, Rating: 4.5,
			GameURL: "https://www.newworld.com", Type: "mmo",
		},
		{
			ID: 14, Name: "Destiny 2", Emoji: "🌙", Category: "action",
			Description: "Sci-fi shooter MMO! PvE strikes & raids. Competitive PvP Crucible matches.",
			PlayersNow:  1234567, AvgScore: 48000, AvgTimeMin: 60, Rating: 4.8,
			Badge: "TRENDING", GameURL: "https://www.bungie.net/7/en/Destiny/NewLight", Type: "shooter-mmo",
		},
		{
			ID: 15, Name: "PLAYERUNKNOWN'S BATTLEGROUNDS", Emoji: "🏆", Category: "action",
			Description: "Original battle royale! 100 players, massive map, intense combat. The game that started it all!",
			PlayersNow:  2567890, AvgScore: 50000, AvgTimeMin: 25, Rating: 4.7,
			Badge: "HOT", GameURL: "https://www.pubg.com", Type: "battle-royale",
		},
	}
}
