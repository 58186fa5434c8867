package appscript

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foampro/internal/usecase/interfaces"
)

func TestClient_Call(t *testing.T) {
	var got request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "text/plain;charset=utf-8" {
			t.Errorf("content type = %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		switch got.Action {
		case "OK":
			_, _ = w.Write([]byte(`{"status":"success","data":{"url":"https://files/1"}}`))
		case "EMPTY":
			_, _ = w.Write([]byte(`{"status":"success"}`))
		case "FAIL":
			_, _ = w.Write([]byte(`{"status":"error","message":"Sheet not found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), "test")

	t.Run("decodes data", func(t *testing.T) {
		var out struct {
			URL string `json:"url"`
		}
		if err := c.Call(context.Background(), "OK", map[string]string{"a": "b"}, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.URL != "https://files/1" {
			t.Fatalf("url = %q", out.URL)
		}
		if got.Action != "OK" {
			t.Fatalf("action = %q", got.Action)
		}
	})

	t.Run("no data", func(t *testing.T) {
		var out map[string]any
		if err := c.Call(context.Background(), "EMPTY", nil, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("script error", func(t *testing.T) {
		err := c.Call(context.Background(), "FAIL", nil, nil)
		if !errors.Is(err, ErrRemote) {
			t.Fatalf("expected ErrRemote, got %v", err)
		}
	})

	t.Run("http error", func(t *testing.T) {
		err := c.Call(context.Background(), "BOOM", nil, nil)
		if err == nil || errors.Is(err, ErrRemote) {
			t.Fatalf("expected transport error, got %v", err)
		}
	})
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient("  ", nil, "test")
	if c.Configured() {
		t.Fatalf("blank url should not be configured")
	}
	if err := c.Call(context.Background(), "X", nil, nil); !errors.Is(err, interfaces.ErrCollaboratorNotConfigured) {
		t.Fatalf("expected ErrCollaboratorNotConfigured, got %v", err)
	}
}
