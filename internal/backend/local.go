package backend

import (
	"context"

	"github.com/nexchat-app/chronex/internal/classifier"
	"github.com/nexchat-app/chronex/internal/responder"
)

// Local is the keyword classify-and-respond pipeline. It is the
// unconditional fallback: it never returns an error.
type Local struct {
	classifier *classifier.Classifier
	responder  *responder.Responder
}

// NewLocal creates the local backend.
func NewLocal(c *classifier.Classifier, r *responder.Responder) *Local {
	return &Local{classifier: c, responder: r}
}

// Respond classifies the message and selects a response. History is
// ignored: the local pipeline is stateless beyond repeat avoidance
// inside the responder.
func (l *Local) Respond(_ context.Context, message string, _ []Turn) (string, error) {
	cat := l.classifier.Classify(message)
	return l.responder.Respond(cat, message), nil
}

// Classify exposes the classifier verdict, used by the HTTP surface
// to report a message type alongside the response.
func (l *Local) Classify(message string) classifier.Category {
	return l.classifier.Classify(message)
}

// Name returns the backend identifier.
func (l *Local) Name() string { return "local" }
