package domain

import "context"

// Embedder is the shared text vectorization contract between layers.
//
// A provider-side quota signal is not an error: the result comes back with
// Degraded set and an empty vector, and callers must treat it as a routine
// "no embedding available" condition. Any other provider failure is a hard
// error and propagates.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// HealthChecker verifies embedding provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// EmbeddingResult carries the embedding vector and token usage through the
// decorator chain.
type EmbeddingResult struct {
	Embedding    []float32
	Degraded     bool // quota exhausted; Embedding is empty
	PromptTokens int
	TotalTokens  int
}
