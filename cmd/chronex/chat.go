package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nexchat-app/chronex/internal/store"
)

func newChatCmd() *cobra.Command {
	var userID, conversationID string

	cmd := &cobra.Command{
		Use:   "chat [message...]",
		Short: "Chat with the local assistant (one-shot or interactive)",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var st store.ConversationStore
			if sqlStore, err := store.Open(cfg.Storage.DBPath); err == nil {
				defer sqlStore.Close()
				st = sqlStore
			} else {
				log.Warn("running without persistence", zap.Error(err))
			}

			assistant := newAssistantFactory(cfg, st, nil, log)(userID)

			if len(args) > 0 {
				fmt.Println(assistant.Chat(context.Background(), conversationID, strings.Join(args, " ")))
				return nil
			}

			// Interactive loop: one line in, one response out.
			scanner := bufio.NewScanner(os.Stdin)
			fmt.Println("🧠 Chronex AI ready. Empty line quits.")
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					return nil
				}
				fmt.Println(assistant.Chat(context.Background(), conversationID, line))
			}
		},
	}

	cmd.Flags().StringVar(&userID, "user", "local-user", "session user id")
	cmd.Flags().StringVar(&conversationID, "conversation", "default", "conversation id")
	return cmd
}
