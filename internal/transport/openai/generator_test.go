package openai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/keepstack/keepstack/internal/domain"
)

func newTestGenerator(baseURL string) *Generator {
	return NewGenerator(&GeneratorConfig{
		APIKey:   "test-key",
		BaseURL:  baseURL,
		Model:    "test-model",
		Provider: "test",
		Logger:   zap.NewNop(),
	})
}

func TestGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"model": "test-model",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Try jogging this weekend."}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	gen := newTestGenerator(server.URL)

	text, err := gen.Generate(context.Background(), "what should I do?")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "Try jogging this weekend." {
		t.Errorf("unexpected completion: %q", text)
	}
}

func TestGenerator_ProviderErrorIsTerminal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"provider outage","type":"server_error"}}`))
	}))
	defer server.Close()

	gen := newTestGenerator(server.URL)

	_, err := gen.Generate(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error on provider outage")
	}
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got: %v", err)
	}
}

func TestGenerator_EmptyChoicesIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","model":"test-model","choices":[]}`))
	}))
	defer server.Close()

	gen := newTestGenerator(server.URL)

	_, err := gen.Generate(context.Background(), "hello")
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got: %v", err)
	}
}
