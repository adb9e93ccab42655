// Package voicemodel defines the speaker embedding extractor capability.
//
// Embedding extraction is delegated to an external pretrained speaker
// verification model (e.g., ECAPA-TDNN): given a waveform, return a
// fixed-size vector. The model is an explicitly constructed dependency
// handed to the service layer at startup, never a lazily-initialized
// process global, so tests can substitute [Static] without touching
// process state.
//
// # Implementations
//
//   - [Remote] — HTTP client for an embedding inference endpoint
//   - [Static] — fixed-vector extractor for tests and offline tooling
//
// # Thread Safety
//
// Implementations must be safe for concurrent use.
package voicemodel

import (
	"context"
	"errors"
)

// Extractor computes speaker embeddings from raw waveforms.
type Extractor interface {
	// Extract computes the embedding of a mono waveform sampled at
	// sampleRate Hz. The returned vector has length Dimension().
	Extract(ctx context.Context, samples []float64, sampleRate int) ([]float64, error)

	// Dimension returns the dimensionality of extracted embeddings
	// (e.g., 192 for ECAPA-TDNN).
	Dimension() int

	// Close releases any resources held by the extractor.
	Close() error
}

// ReadinessProber is implemented by extractors that can report whether
// their backing model is loaded and serving. The service layer checks this
// before exposing the scorer, turning "model not ready" into an explicit
// state instead of a failure mid-pipeline.
type ReadinessProber interface {
	// Ready returns nil when the model can serve extraction requests.
	Ready(ctx context.Context) error
}

// Common errors.
var (
	// ErrUnavailable means the model is not ready to serve. Callers should
	// report a typed unavailable state rather than invoking the scorer.
	ErrUnavailable = errors.New("voicemodel: model unavailable")

	// ErrEmptyAudio is returned when the waveform contains no samples.
	ErrEmptyAudio = errors.New("voicemodel: empty audio")
)
