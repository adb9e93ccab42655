package voicemodel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	remoteDefaultModel = "spkrec-ecapa-voxceleb"
	remoteDefaultDim   = 192
)

// Remote implements [Extractor] against an HTTP embedding inference
// endpoint. The endpoint receives the raw waveform as JSON and returns the
// embedding vector:
//
//	POST {base}/embeddings
//	{"model": "...", "sample_rate": 16000, "samples": [...]}
//	→ {"embedding": [...]}
type Remote struct {
	baseURL string
	model   string
	dim     int
	client  *http.Client
}

var _ Extractor = (*Remote)(nil)

// NewRemote creates a Remote extractor for the given inference base URL.
func NewRemote(baseURL string, opts ...Option) *Remote {
	cfg := config{
		model:      remoteDefaultModel,
		dim:        remoteDefaultDim,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return &Remote{
		baseURL: baseURL,
		model:   cfg.model,
		dim:     cfg.dim,
		client:  cfg.httpClient,
	}
}

type extractRequest struct {
	Model      string    `json:"model,omitempty"`
	SampleRate int       `json:"sample_rate"`
	Samples    []float64 `json:"samples"`
}

type extractResponse struct {
	Embedding []float64 `json:"embedding"`
}

// Extract sends the waveform to the inference endpoint and returns the
// embedding vector.
func (r *Remote) Extract(ctx context.Context, samples []float64, sampleRate int) ([]float64, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyAudio
	}

	body, err := json.Marshal(extractRequest{
		Model:      r.model,
		SampleRate: sampleRate,
		Samples:    samples,
	})
	if err != nil {
		return nil, fmt.Errorf("voicemodel: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("voicemodel: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		return nil, ErrUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("voicemodel: inference returned %d: %s", resp.StatusCode, msg)
	}

	var out extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("voicemodel: decode response: %w", err)
	}
	if r.dim > 0 && len(out.Embedding) != r.dim {
		return nil, fmt.Errorf("voicemodel: got %d-dim embedding, want %d", len(out.Embedding), r.dim)
	}
	return out.Embedding, nil
}

// Ready probes the inference endpoint's health route. A non-200 response or
// transport failure is reported as [ErrUnavailable].
func (r *Remote) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("voicemodel: build health request: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health returned %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// Dimension returns the configured embedding dimensionality.
func (r *Remote) Dimension() int { return r.dim }

// Model returns the remote model identifier.
func (r *Remote) Model() string { return r.model }

// Close is a no-op; the HTTP client is owned by the caller.
func (r *Remote) Close() error { return nil }
