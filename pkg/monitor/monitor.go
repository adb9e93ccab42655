// Package monitor is the service facade of the voice anomaly core.
//
// A [Service] owns the three collaborators a request-handling layer needs:
// an injected [voicemodel.Extractor] (the external speaker model), an
// [snr.Estimator], and an [anomaly.Scorer]. The extractor is a constructor
// argument, so a fake can stand in during tests and the scorer never learns
// about model lifecycle.
//
// The facade mirrors the three operations exposed upstream:
//
//   - [Service.Embed]   — waveform → embedding + SNR estimate
//   - [Service.Compare] — baseline × current embedding → anomaly score
//   - [Service.Baseline] — enrollment embeddings → averaged baseline
//
// [Service.Health] reports model readiness as a typed status, checked
// before extraction is attempted.
package monitor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/RavjeetChahal/RetroCare/pkg/anomaly"
	"github.com/RavjeetChahal/RetroCare/pkg/snr"
	"github.com/RavjeetChahal/RetroCare/pkg/voicemodel"
)

// Service wires the extractor, SNR estimator, and scorer together.
// Construct with [New]; safe for concurrent use.
type Service struct {
	model     voicemodel.Extractor
	estimator *snr.Estimator
	scorer    *anomaly.Scorer
}

// Option configures a Service.
type Option func(*Service)

// WithScorerConfig overrides the scoring constants.
func WithScorerConfig(cfg anomaly.Config) Option {
	return func(s *Service) { s.scorer = anomaly.NewScorer(cfg) }
}

// WithSNRConfig overrides the SNR estimation parameters.
func WithSNRConfig(cfg snr.Config) Option {
	return func(s *Service) { s.estimator = snr.New(cfg) }
}

// New creates a Service around the given extractor. A nil extractor is
// allowed; extraction then reports unavailable while comparison (which needs
// no model) keeps working.
func New(model voicemodel.Extractor, opts ...Option) *Service {
	s := &Service{
		model:     model,
		estimator: snr.New(snr.DefaultConfig()),
		scorer:    anomaly.NewScorer(anomaly.DefaultConfig()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EmbedResult is the outcome of one embedding extraction.
type EmbedResult struct {
	ID         string    `json:"id"`
	Embedding  []float64 `json:"embedding"`
	SNR        float64   `json:"snr"`
	SampleRate int       `json:"sample_rate"`
}

// CompareRequest carries one comparison's inputs. Hour is optional; leave
// it nil to skip time-of-day compensation.
type CompareRequest struct {
	Baseline []float64 `json:"baseline"`
	Current  []float64 `json:"current"`
	SNR      float64   `json:"snr"`
	Hour     *int      `json:"hour,omitempty"`
}

// CompareResult is the outcome of one comparison, shaped for direct
// serialization.
type CompareResult struct {
	ID            string  `json:"id"`
	Score         float64 `json:"score"`
	RawSimilarity float64 `json:"raw_similarity"`
	Normalized    float64 `json:"normalized"`
	SNR           float64 `json:"snr"`
}

// Status reports model readiness for health checks.
type Status struct {
	ModelReady bool   `json:"model_ready"`
	ModelError string `json:"model_error,omitempty"`
	Dimension  int    `json:"dimension,omitempty"`
}

// Health returns the current model state. When the extractor implements
// [voicemodel.ReadinessProber] the backing model is probed; otherwise a
// non-nil extractor is assumed ready.
func (s *Service) Health(ctx context.Context) Status {
	if s.model == nil {
		return Status{ModelReady: false, ModelError: "extractor not configured"}
	}
	st := Status{ModelReady: true, Dimension: s.model.Dimension()}
	if prober, ok := s.model.(voicemodel.ReadinessProber); ok {
		if err := prober.Ready(ctx); err != nil {
			st.ModelReady = false
			st.ModelError = err.Error()
		}
	}
	return st
}

// Embed extracts the speaker embedding of a waveform and estimates its SNR.
// Fails with [voicemodel.ErrUnavailable] when no extractor is configured.
func (s *Service) Embed(ctx context.Context, samples []float64, sampleRate int) (*EmbedResult, error) {
	if s.model == nil {
		extractionsTotal.WithLabelValues("unavailable").Inc()
		return nil, voicemodel.ErrUnavailable
	}

	embedding, err := s.model.Extract(ctx, samples, sampleRate)
	if err != nil {
		extractionsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("monitor: extract embedding: %w", err)
	}

	quality := s.estimator.Estimate(samples, sampleRate)
	extractionsTotal.WithLabelValues("ok").Inc()
	estimatedSNR.Observe(quality)

	res := &EmbedResult{
		ID:         uuid.NewString(),
		Embedding:  embedding,
		SNR:        quality,
		SampleRate: sampleRate,
	}
	slog.Info("embedding extracted",
		"id", res.ID,
		"dimension", len(embedding),
		"snr_db", quality,
		"samples", len(samples),
	)
	return res, nil
}

// Compare scores the current embedding against the baseline through the full
// pipeline. Requires no model; precomputed embeddings are compared as-is.
func (s *Service) Compare(req CompareRequest) (*CompareResult, error) {
	hour := anomaly.HourUnknown
	if req.Hour != nil {
		hour = *req.Hour
	}

	res, err := s.scorer.Compare(req.Baseline, req.Current, req.SNR, hour)
	if err != nil {
		comparisonsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	comparisonsTotal.WithLabelValues("ok").Inc()
	anomalyScores.Observe(res.Score)

	out := &CompareResult{
		ID:            uuid.NewString(),
		Score:         res.Score,
		RawSimilarity: res.RawSimilarity,
		Normalized:    res.Normalized,
		SNR:           res.SNR,
	}
	slog.Info("comparison complete",
		"id", out.ID,
		"similarity", out.RawSimilarity,
		"score", out.Score,
		"snr_db", out.SNR,
	)
	return out, nil
}

// Baseline averages enrollment embeddings into a unit-normalized baseline.
func (s *Service) Baseline(embeddings [][]float64) ([]float64, error) {
	return anomaly.AverageEmbeddings(embeddings)
}

// Close releases the extractor, if any.
func (s *Service) Close() error {
	if s.model == nil {
		return nil
	}
	return s.model.Close()
}
