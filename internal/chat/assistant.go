// Package chat contains the conversation orchestrator.
//
// The Assistant sequences cache lookup → remote-or-local response →
// cache write → persistence → history update for every incoming
// message. Every collaborator is injected, so test instances share no
// state.
package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nexchat-app/chronex/internal/backend"
	"github.com/nexchat-app/chronex/internal/cache"
	"github.com/nexchat-app/chronex/internal/classifier"
	"github.com/nexchat-app/chronex/internal/config"
	apperrors "github.com/nexchat-app/chronex/internal/errors"
	"github.com/nexchat-app/chronex/internal/stats"
	"github.com/nexchat-app/chronex/internal/store"
)

// Assistant orchestrates one user session's conversations.
//
// A single Assistant owns its cache and in-memory history for the
// session lifetime. Concurrent Chat calls are memory-safe but not
// serialized per key: two rapid identical messages can both miss the
// cache and both compute.
type Assistant struct {
	cfg    *config.Config
	cache  *cache.Cache
	local  *backend.Local
	remote backend.Backend
	store  store.ConversationStore
	stats  *stats.Collector
	log    *zap.Logger

	mu      sync.Mutex
	userID  string
	history []backend.Turn
}

// Options for constructing an Assistant.
type Options struct {
	Config *config.Config
	Cache  *cache.Cache
	Local  *backend.Local
	Remote backend.Backend // nil disables the remote path
	Store  store.ConversationStore
	Stats  *stats.Collector // nil disables usage tracking
	Logger *zap.Logger
}

// New creates an Assistant from injected collaborators.
func New(opts Options) *Assistant {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Assistant{
		cfg:    opts.Config,
		cache:  opts.Cache,
		local:  opts.Local,
		remote: opts.Remote,
		store:  opts.Store,
		stats:  opts.Stats,
		log:    log,
	}
}

// SetUserID binds the authenticated session identity.
func (a *Assistant) SetUserID(uid string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userID = uid
}

// Chat processes one user message and returns the response text.
//
// The result is always a complete response string: internal faults
// are rendered through the uniform error template, remote failures
// fall back to the local pipeline, and persistence failures are
// logged without affecting the reply.
func (a *Assistant) Chat(ctx context.Context, conversationID, message string) (reply string) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("chat panicked", zap.Any("panic", r))
			a.stats.RecordError()
			reply = apperrors.UserMessage(apperrors.Internal(fmt.Errorf("%v", r)))
		}
		a.stats.RecordMessage(time.Since(start))
	}()

	a.mu.Lock()
	uid := a.userID
	a.mu.Unlock()

	if uid == "" {
		return apperrors.UserMessage(apperrors.Unauthenticated())
	}

	// Cache hit short-circuits before the history append, so repeated
	// identical messages neither grow history nor re-persist.
	if cached, ok := a.cache.Get(message); ok {
		a.log.Debug("cache hit", zap.String("conversation", conversationID))
		a.stats.RecordCacheHit()
		return cached
	}

	a.appendTurn("user", message)

	response := a.respond(ctx, message)

	a.cache.Put(message, response)

	a.persist(ctx, uid, conversationID, message, response)

	a.appendTurn("assistant", response)

	return response
}

// respond computes the response text. The remote backend is the
// primary when configured; any remote failure, including "disabled",
// lands on the local pipeline with no user-visible distinction.
func (a *Assistant) respond(ctx context.Context, message string) string {
	if a.remote != nil && a.cfg.RemoteEnabled() {
		text, err := a.remote.Respond(ctx, message, a.History())
		if err == nil {
			a.stats.RecordRemote()
			return text
		}
		a.log.Warn("remote backend failed, using local fallback",
			zap.String("backend", a.remote.Name()),
			zap.Error(err))
	}

	text, err := a.local.Respond(ctx, message, nil)
	if err != nil {
		// The local pipeline is total; this branch is unreachable
		// unless a future backend breaks that contract.
		a.stats.RecordError()
		return apperrors.UserMessage(apperrors.Internal(err))
	}
	a.stats.RecordLocal()
	return text
}

// persist writes the turn pair. Failures are logged, never propagated:
// the chat turn is successful even if durable storage is not.
func (a *Assistant) persist(ctx context.Context, uid, conversationID, message, response string) {
	if a.store == nil {
		return
	}

	err := a.store.SaveExchange(ctx, store.Exchange{
		UserID:         uid,
		ConversationID: conversationID,
		UserMessage:    message,
		AIResponse:     response,
		Model:          a.cfg.Model.Name,
	})
	if err != nil {
		a.log.Error("saving conversation failed",
			zap.String("conversation", conversationID),
			zap.Error(apperrors.Persistence(err)))
	}
}

func (a *Assistant) appendTurn(role, content string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = append(a.history, backend.Turn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// History returns a copy of the in-memory conversation turns.
func (a *Assistant) History() []backend.Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]backend.Turn, len(a.history))
	copy(out, a.history)
	return out
}

// Reset clears the in-memory history.
func (a *Assistant) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = nil
}

// ClearCache drops all cached responses.
func (a *Assistant) ClearCache() {
	a.cache.Clear()
}

// Classify reports the local pipeline's category for a message.
func (a *Assistant) Classify(message string) classifier.Category {
	return a.local.Classify(message)
}

// Config returns the assistant's configuration.
func (a *Assistant) Config() *config.Config {
	return a.cfg
}

// StoredHistory reads the persisted exchanges for the bound user's
// conversation, in insertion order.
func (a *Assistant) StoredHistory(ctx context.Context, conversationID string) ([]store.Exchange, error) {
	a.mu.Lock()
	uid := a.userID
	a.mu.Unlock()

	if uid == "" {
		return nil, apperrors.Unauthenticated()
	}
	if a.store == nil {
		return nil, nil
	}
	return a.store.History(ctx, uid, conversationID)
}
