// Package server exposes the assistant and the gaming-hub catalog
// over HTTP, plus a realtime chat channel over WebSocket.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nexchat-app/chronex/internal/chat"
	"github.com/nexchat-app/chronex/internal/config"
	"github.com/nexchat-app/chronex/internal/hub"
	"github.com/nexchat-app/chronex/internal/responder"
	"github.com/nexchat-app/chronex/internal/stats"
)

// userIDHeader carries the authenticated session identity. In the
// full application this comes from the auth collaborator; here it is
// trusted as-is.
const userIDHeader = "X-User-ID"

// AssistantFactory builds a session-scoped assistant bound to a user.
type AssistantFactory func(userID string) *chat.Assistant

// Server is the Chronex HTTP service.
type Server struct {
	cfg       *config.Config
	catalog   *hub.Catalog
	responder *responder.Responder
	newSess   AssistantFactory
	stats     *stats.Collector
	log       *zap.Logger

	mu       sync.Mutex
	sessions map[string]*chat.Assistant

	httpSrv *http.Server
}

// New creates a server. The collector is shared with the session
// assistants so the status endpoint reflects conversation activity.
func New(cfg *config.Config, catalog *hub.Catalog, resp *responder.Responder, factory AssistantFactory, collector *stats.Collector, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		cfg:       cfg,
		catalog:   catalog,
		responder: resp,
		newSess:   factory,
		stats:     collector,
		log:       log,
		sessions:  make(map[string]*chat.Assistant),
	}
	s.httpSrv = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// routes builds the request mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /ai/chat", s.handleChat)
	mux.HandleFunc("POST /ai/analyze-code", s.handleAnalyzeCode)
	mux.HandleFunc("POST /ai/solve-math", s.handleSolveMath)
	mux.HandleFunc("GET /ai/config", s.handleConfig)
	mux.HandleFunc("GET /ai/status", s.handleStatus)
	mux.HandleFunc("GET /ai/creator", s.handleCreator)
	mux.HandleFunc("POST /ai/reset", s.handleReset)
	mux.HandleFunc("GET /ai/history", s.handleHistory)

	mux.HandleFunc("GET /games", s.handleGames)
	mux.HandleFunc("GET /games/{id}", s.handleGameDetail)

	mux.HandleFunc("GET /ws/chat", s.handleWS)

	return s.withLogging(mux)
}

// Handler returns the full HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// ListenAndServe runs the server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("chronex server listening", zap.String("addr", s.httpSrv.Addr))
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// session returns the assistant bound to userID, creating it on first
// use. One assistant per user keeps cache and history session-scoped.
func (s *Server) session(userID string) *chat.Assistant {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.sessions[userID]; ok {
		return a
	}
	a := s.newSess(userID)
	s.sessions[userID] = a
	return a
}

// withLogging tags every request with an ID and logs the outcome.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.New().String()
		w.Header().Set("X-Request-ID", reqID)

		next.ServeHTTP(w, r)

		s.log.Debug("request",
			zap.String("id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}
