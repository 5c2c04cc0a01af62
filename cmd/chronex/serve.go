package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nexchat-app/chronex/internal/backend"
	"github.com/nexchat-app/chronex/internal/cache"
	"github.com/nexchat-app/chronex/internal/chat"
	"github.com/nexchat-app/chronex/internal/classifier"
	"github.com/nexchat-app/chronex/internal/config"
	"github.com/nexchat-app/chronex/internal/hub"
	"github.com/nexchat-app/chronex/internal/responder"
	"github.com/nexchat-app/chronex/internal/server"
	"github.com/nexchat-app/chronex/internal/stats"
	"github.com/nexchat-app/chronex/internal/store"
)

func defaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".chronex", "config.toml")
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// newAssistantFactory wires a session-scoped assistant. Cache,
// responder repeat-tracking and in-memory history are per user.
func newAssistantFactory(cfg *config.Config, st store.ConversationStore, collector *stats.Collector, log *zap.Logger) server.AssistantFactory {
	return func(userID string) *chat.Assistant {
		local := backend.NewLocal(
			classifier.New(&classifier.Config{KnowledgeBase: cfg.Capabilities.KnowledgeBase}),
			responder.New(&responder.Config{
				Languages:           cfg.Capabilities.Languages,
				ContextAwareGeneral: cfg.Capabilities.ContextAwareGeneral,
				NoRepeat:            cfg.Capabilities.NoRepeat,
			}),
		)

		var remote backend.Backend
		if cfg.RemoteEnabled() {
			remote = backend.NewRemote(backend.RemoteConfig{
				Endpoint:    cfg.Backends.Remote.Endpoint,
				Model:       cfg.Model.Name,
				Temperature: cfg.Model.Temperature,
				Timeout:     cfg.Backends.Remote.Timeout(),
			})
		}

		assistant := chat.New(chat.Options{
			Config: cfg,
			Cache:  cache.New(cfg.Cache.Enabled, cfg.Cache.TTL(), cfg.Cache.MaxEntries),
			Local:  local,
			Remote: remote,
			Store:  st,
			Stats:  collector,
			Logger: log.With(zap.String("user", userID)),
		})
		assistant.SetUserID(userID)
		return assistant
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Chronex HTTP and WebSocket service",
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

			st, err := store.Open(cfg.Storage.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			resp := responder.New(&responder.Config{
				Languages:           cfg.Capabilities.Languages,
				ContextAwareGeneral: cfg.Capabilities.ContextAwareGeneral,
				NoRepeat:            cfg.Capabilities.NoRepeat,
			})

			collector := stats.NewCollector()
			srv := server.New(cfg, hub.NewCatalog(nil), resp,
				newAssistantFactory(cfg, st, collector, log), collector, log)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx)
		},
	}
}
