// Package store handles conversation persistence using SQLite.
//
// The store is append-only from the assistant's point of view: one
// row per chat exchange (user message + assistant reply), keyed by
// user and conversation, read back in insertion order.
package store

import (
	"context"
	"time"
)

// Exchange is one persisted turn pair.
type Exchange struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	ConversationID string    `json:"conversation_id"`
	UserMessage    string    `json:"user"`
	AIResponse     string    `json:"ai"`
	Model          string    `json:"model"`
	CreatedAt      time.Time `json:"timestamp"`
}

// ConversationStore is the persistence collaborator consumed by the
// orchestrator. The SQLite implementation lives in this package;
// tests inject recorders.
type ConversationStore interface {
	// SaveExchange appends one turn pair. The stored timestamp is
	// store-assigned when ex.CreatedAt is zero.
	SaveExchange(ctx context.Context, ex Exchange) error

	// History returns all exchanges for a user's conversation in
	// insertion order.
	History(ctx context.Context, userID, conversationID string) ([]Exchange, error)
}
