// Package backend provides the response backends and their shared types.
package backend

import (
	"context"
	"time"
)

// Turn is one message in a conversation, tagged by role.
type Turn struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Backend computes a response for a message given recent history.
//
// The remote implementation fails with a CategoryRemote error on any
// transport, status, timeout, or malformed-body condition; the caller
// treats that as a normal branch and falls back to the local backend.
// The local implementation is total and never fails.
type Backend interface {
	Respond(ctx context.Context, message string, history []Turn) (string, error)

	// Name returns the backend identifier for logging.
	Name() string
}
