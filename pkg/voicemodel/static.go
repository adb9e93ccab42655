package voicemodel

import "context"

// Static is an [Extractor] that returns a fixed embedding regardless of the
// input audio. It exists for tests and offline tooling where no inference
// backend is available.
type Static struct {
	embedding []float64
}

var _ Extractor = (*Static)(nil)

// NewStatic creates a Static extractor that always returns a copy of the
// given embedding.
func NewStatic(embedding []float64) *Static {
	return &Static{embedding: embedding}
}

// Extract returns a copy of the fixed embedding. Empty audio still fails
// with [ErrEmptyAudio] so callers exercise the same contract as [Remote].
func (s *Static) Extract(_ context.Context, samples []float64, _ int) ([]float64, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyAudio
	}
	out := make([]float64, len(s.embedding))
	copy(out, s.embedding)
	return out, nil
}

// Dimension returns the length of the fixed embedding.
func (s *Static) Dimension() int { return len(s.embedding) }

// Close is a no-op.
func (s *Static) Close() error { return nil }
