package backend

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexchat-app/chronex/internal/classifier"
	"github.com/nexchat-app/chronex/internal/responder"
)

func newTestLocal() *Local {
	return NewLocal(
		classifier.New(nil),
		responder.New(&responder.Config{
			Languages: []string{"JavaScript", "Python", "Go"},
			Rand:      rand.New(rand.NewSource(7)),
		}),
	)
}

func TestLocalClassifiesAndResponds(t *testing.T) {
	local := newTestLocal()

	got, err := local.Respond(context.Background(), "review this go code", nil)
	require.NoError(t, err)
	assert.Contains(t, got, "Code Analysis")

	assert.Equal(t, classifier.CategoryCode, local.Classify("review this go code"))
}

func TestLocalName(t *testing.T) {
	assert.Equal(t, "local", newTestLocal().Name())
}
