// Package appscript talks to hosted script web apps that accept a JSON
// {action, payload} POST and answer with a {status, data, message} envelope.
package appscript

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"foampro/internal/usecase/interfaces"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrRemote is returned when the script answers with status "error".
var ErrRemote = errors.New("script returned an error")

type request struct {
	Action  string `json:"action"`
	Payload any    `json:"payload"`
}

// Envelope is the response shape shared by every script action.
type Envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

type Client struct {
	url  string
	http *http.Client
	log  *slog.Logger
}

// NewClient returns a client for url. An empty url yields a client whose
// calls fail with interfaces.ErrCollaboratorNotConfigured.
func NewClient(url string, httpClient *http.Client, component string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		url:  strings.TrimSpace(url),
		http: httpClient,
		log:  slog.Default().With("component", component),
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.url != ""
}

// Call posts action with payload and decodes the envelope data into out
// (which may be nil).
func (c *Client) Call(ctx context.Context, action string, payload any, out any) error {
	if !c.Configured() {
		return interfaces.ErrCollaboratorNotConfigured
	}

	body, err := json.Marshal(request{Action: action, Payload: payload})
	if err != nil {
		return fmt.Errorf("encode %s: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	// Script web apps reject CORS preflights, so clients send text/plain.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", "action", action, "err", err)
		return fmt.Errorf("%s: %w", action, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", action, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("unexpected http status", "action", action, "status", resp.StatusCode)
		return fmt.Errorf("%s: http status %d", action, resp.StatusCode)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%s: decode envelope: %w", action, err)
	}
	if env.Status != StatusSuccess {
		msg := env.Message
		if msg == "" {
			msg = "unknown error"
		}
		c.log.Warn("script error", "action", action, "message", msg)
		return fmt.Errorf("%w: %s: %s", ErrRemote, action, msg)
	}

	c.log.Debug("call ok", "action", action, "elapsed", time.Since(start))
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s: decode data: %w", action, err)
	}
	return nil
}
