package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/nexchat-app/chronex/internal/errors"
)

// historyTail is how many trailing turns are forwarded to the remote
// backend as context.
const historyTail = 5

// RemoteConfig configures the remote backend adapter.
type RemoteConfig struct {
	Endpoint    string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// Remote delegates the whole classify-and-respond step to an external
// HTTP service. Every failure mode comes back as a CategoryRemote
// error so the orchestrator can fall back to the local pipeline.
type Remote struct {
	cfg    RemoteConfig
	client *http.Client
}

// NewRemote creates the remote backend adapter.
func NewRemote(cfg RemoteConfig) *Remote {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Remote{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type remoteRequest struct {
	Message     string  `json:"message"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	History     []Turn  `json:"history"`
}

type remoteResponse struct {
	Response string `json:"response"`
	Text     string `json:"text"`
}

// Respond POSTs the message and the last turns of history to the
// configured endpoint. The request is bound to the configured timeout;
// on expiry the in-flight request is cancelled and reported as a
// remote failure. No retries: fail fast, then fall back.
func (r *Remote) Respond(ctx context.Context, message string, history []Turn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	if n := len(history); n > historyTail {
		history = history[n-historyTail:]
	}

	body, err := json.Marshal(remoteRequest{
		Message:     message,
		Model:       r.cfg.Model,
		Temperature: r.cfg.Temperature,
		History:     history,
	})
	if err != nil {
		return "", apperrors.RemoteUnavailable(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.RemoteUnavailable(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", apperrors.RemoteUnavailable(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.RemoteUnavailable(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperrors.RemoteUnavailable(fmt.Errorf("remote status %d", resp.StatusCode))
	}

	var parsed remoteResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", apperrors.RemoteMalformed("undecodable body")
	}

	// "response" is preferred, "text" is the fallback field. A body
	// carrying neither must not be cached or shown as a valid answer.
	text := parsed.Response
	if text == "" {
		text = parsed.Text
	}
	if text == "" {
		return "", apperrors.RemoteMalformed("no response or text field")
	}

	return text, nil
}

// Name returns the backend identifier.
func (r *Remote) Name() string { return "remote" }
