package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Generate(t *testing.T) {
	t.Run("returns first generation text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer test-key" {
				t.Errorf("missing auth header, got %q", r.Header.Get("Authorization"))
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if body["model"] != "command" {
				t.Errorf("expected model command, got %v", body["model"])
			}
			w.Write([]byte(`{"generations":[{"text":"{\"action\":\"check\",\"text\":\"\",\"description\":\"viewing\"}"}]}`))
		}))
		defer srv.Close()

		client := NewClient("test-key", "command", srv.URL)
		text, err := client.Generate(context.Background(), GenerateRequest{Prompt: "hello", MaxTokens: 300, Temperature: 0.2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text == "" {
			t.Error("expected non-empty generation text")
		}
	})

	t.Run("surfaces api errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"invalid api token"}`))
		}))
		defer srv.Close()

		client := NewClient("bad-key", "command", srv.URL)
		if _, err := client.Generate(context.Background(), GenerateRequest{Prompt: "hello"}); err == nil {
			t.Error("expected an error for 401 response")
		}
	})

	t.Run("rejects empty generations", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"generations":[]}`))
		}))
		defer srv.Close()

		client := NewClient("test-key", "command", srv.URL)
		if _, err := client.Generate(context.Background(), GenerateRequest{Prompt: "hello"}); err == nil {
			t.Error("expected an error for empty generations")
		}
	})
}
