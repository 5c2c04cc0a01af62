// Command chronex runs the Chronex assistant: an HTTP/WebSocket
// service, a one-shot terminal chat, and a gaming-hub catalog lister.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Optional .env bootstrap; absence is not an error.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:     "chronex",
		Short:   "Chronex, a rule-based chat assistant with remote fallback",
		Version: version,
	}

	root.PersistentFlags().String("config", defaultConfigPath(), "path to config file")
	root.PersistentFlags().Bool("debug", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(),
		newChatCmd(),
		newGamesCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
