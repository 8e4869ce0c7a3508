package domain

import "errors"

var (
	// ErrInvalidRequest signals missing or malformed request fields.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrEmbeddingProviderError signals an embedding provider failure
	// other than quota exhaustion.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrGenerationFailed signals a text generation provider failure.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrRecordDecode signals a stored embedding record that failed to decode.
	ErrRecordDecode = errors.New("record decode failed")
)
