// Package hub provides the gaming-hub catalog: a fixed in-memory game
// list with category and free-text filtering, detail lookup, and
// display helpers. Pure array work, no storage.
package hub

import (
	"fmt"
	"sort"
	"strings"
)

// Game is one catalog record.
type Game struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Emoji       string  `json:"emoji"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	PlayersNow  int     `json:"playersNow"`
	AvgScore    int     `json:"avgScore"`
	AvgTimeMin  int     `json:"avgTime"`
	Rating      float64 `json:"rating"`
	Badge       string  `json:"badges,omitempty"`
	GameURL     string  `json:"gameUrl"`
	Type        string  `json:"type"`
}

// Catalog holds the game list.
type Catalog struct {
	games []Game
}

// NewCatalog creates a catalog over the given games. A nil slice
// means the built-in database.
func NewCatalog(games []Game) *Catalog {
	if games == nil {
		games = defaultGames()
	}
	return &Catalog{games: games}
}

// All returns every game in catalog order.
func (c *Catalog) All() []Game {
	out := make([]Game, len(c.games))
	copy(out, c.games)
	return out
}

// Filter returns games matching the category AND the search query.
// Category "all" or "" matches everything; the query is a
// case-insensitive substring test over name and description.
func (c *Catalog) Filter(category, query string) []Game {
	query = strings.ToLower(query)

	var out []Game
	for _, g := range c.games {
		if category != "" && category != "all" && g.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(g.Name), query) &&
			!strings.Contains(strings.ToLower(g.Description), query) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Get returns the game with the given id.
func (c *Catalog) Get(id int) (Game, bool) {
	for _, g := range c.games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// Top returns the n games with the most current players.
func (c *Catalog) Top(n int) []Game {
	return TopN(c.All(), n)
}

// TopN returns the n games with the most current players from the
// given slice, which is left unmodified.
func TopN(games []Game, n int) []Game {
	out := make([]Game, len(games))
	copy(out, games)
	sort.Slice(out, func(i, j int) bool {
		return out[i].PlayersNow > out[j].PlayersNow
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Categories returns the distinct categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range c.games {
		if !seen[g.Category] {
			seen[g.Category] = true
			out = append(out, g.Category)
		}
	}
	return out
}

// FormatCount renders a player count the way the hub page does:
// 1500 → "1.5K", 2300000 → "2.3M".
func FormatCount(n int) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// Stars renders a whole-star rating bar, rounding to nearest.
func Stars(rating float64) string {
	n := int(rating + 0.5)
	return strings.Repeat("⭐", n)
}

// ShareText composes the share blurb for a game.
func ShareText(g Game) string {
	return fmt.Sprintf("🎮 Check out %s! %s\n\n%s\n\nRate: %.1f⭐",
		g.Name, g.Emoji, g.Description, g.Rating)
}
