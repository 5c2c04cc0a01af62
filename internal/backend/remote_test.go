package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/nexchat-app/chronex/internal/errors"
)

func newTestRemote(url string, timeout time.Duration) *Remote {
	return NewRemote(RemoteConfig{
		Endpoint:    url,
		Model:       "Chronex AI v1.0",
		Temperature: 0.7,
		Timeout:     timeout,
	})
}

func TestRemoteSuccess(t *testing.T) {
	var gotReq remoteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]string{"response": "remote says hi"})
	}))
	defer srv.Close()

	remote := newTestRemote(srv.URL, time.Second)
	got, err := remote.Respond(context.Background(), "hello", nil)

	require.NoError(t, err)
	assert.Equal(t, "remote says hi", got)
	assert.Equal(t, "hello", gotReq.Message)
	assert.Equal(t, "Chronex AI v1.0", gotReq.Model)
	assert.InDelta(t, 0.7, gotReq.Temperature, 1e-9)
}

func TestRemoteTextFieldFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"text": "from text field"})
	}))
	defer srv.Close()

	remote := newTestRemote(srv.URL, time.Second)
	got, err := remote.Respond(context.Background(), "hello", nil)

	require.NoError(t, err)
	assert.Equal(t, "from text field", got)
}

func TestRemotePrefersResponseOverText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": "primary", "text": "secondary"})
	}))
	defer srv.Close()

	remote := newTestRemote(srv.URL, time.Second)
	got, err := remote.Respond(context.Background(), "hello", nil)

	require.NoError(t, err)
	assert.Equal(t, "primary", got)
}

func TestRemoteNon2xxIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	remote := newTestRemote(srv.URL, time.Second)
	_, err := remote.Respond(context.Background(), "hello", nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsRemote(err))
}

func TestRemoteUndecodableBodyIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	remote := newTestRemote(srv.URL, time.Second)
	_, err := remote.Respond(context.Background(), "hello", nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsRemote(err))
}

func TestRemoteMissingFieldsIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Valid JSON, but neither "response" nor "text". Must never
		// be treated as a usable (empty) answer.
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	remote := newTestRemote(srv.URL, time.Second)
	got, err := remote.Respond(context.Background(), "hello", nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsRemote(err))
	assert.Empty(t, got)
}

func TestRemoteTimeoutIsRemoteError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	remote := newTestRemote(srv.URL, 20*time.Millisecond)
	start := time.Now()
	_, err := remote.Respond(context.Background(), "hello", nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsRemote(err))
	// Fail-fast: the timeout bounds the call, no retries follow.
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestRemoteSendsHistoryTail(t *testing.T) {
	var gotReq remoteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	}))
	defer srv.Close()

	history := make([]Turn, 8)
	for i := range history {
		history[i] = Turn{Role: "user", Content: string(rune('a' + i))}
	}

	remote := newTestRemote(srv.URL, time.Second)
	_, err := remote.Respond(context.Background(), "hello", history)

	require.NoError(t, err)
	require.Len(t, gotReq.History, 5)
	assert.Equal(t, "d", gotReq.History[0].Content)
	assert.Equal(t, "h", gotReq.History[4].Content)
}

func TestLocalNeverFails(t *testing.T) {
	local := newTestLocal()

	for _, msg := range []string{"hello", "calculate 2+2", "", "???", "just words"} {
		got, err := local.Respond(context.Background(), msg, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, got)
	}
}
