package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexchat-app/chronex/internal/hub"
)

func newGamesCmd() *cobra.Command {
	var category, search string
	var top int

	cmd := &cobra.Command{
		Use:   "games",
		Short: "List the gaming hub catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := hub.NewCatalog(nil)

			var games []hub.Game
			if top > 0 {
				games = catalog.Top(top)
			} else {
				games = catalog.Filter(category, search)
			}

			if len(games) == 0 {
				fmt.Println("No games match.")
				return nil
			}

			for _, g := range games {
				badge := ""
				if g.Badge != "" {
					badge = " [" + g.Badge + "]"
				}
				fmt.Printf("%s %s%s (%s) | 👥 %s | %s\n",
					g.Emoji, g.Name, badge, g.Category,
					hub.FormatCount(g.PlayersNow), hub.Stars(g.Rating))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "all", "filter by category")
	cmd.Flags().StringVar(&search, "search", "", "substring search over name and description")
	cmd.Flags().IntVar(&top, "top", 0, "show only the N most played games")
	return cmd
}
