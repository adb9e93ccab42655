package anomaly

import "log/slog"

// Result is the output of one comparison, shaped so a request-handling
// layer can serialize it directly into a response.
type Result struct {
	// Score is the final anomaly score in [0, 1] after all adjustments.
	Score float64 `json:"score"`

	// RawSimilarity is the cosine similarity in [-1, 1] before any
	// transform.
	RawSimilarity float64 `json:"raw_similarity"`

	// Normalized is the score after noise and time adjustments. It always
	// equals Score; both fields are kept so callers can surface the pair.
	Normalized float64 `json:"normalized"`

	// SNR is the signal-to-noise ratio used for noise compensation, in dB,
	// clamped into the configured domain.
	SNR float64 `json:"snr"`
}

// Scorer runs the full comparison pipeline with a fixed configuration.
// The zero value is not usable; construct with [NewScorer].
type Scorer struct {
	cfg Config
}

// NewScorer creates a Scorer. Use [DefaultConfig] for the calibrated
// production constants.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Config returns the scorer's configuration.
func (s *Scorer) Config() Config { return s.cfg }

// Compare scores the current embedding against the baseline.
//
// snrDB is the estimated signal quality of the current recording; it is
// clamped into the configured SNR domain before use. hour is the local
// hour-of-day context, or [HourUnknown] to skip time compensation.
//
// Compare fails only on dimension mismatch; every other input pathology
// degrades to a valid in-range score.
func (s *Scorer) Compare(baseline, current []float64, snrDB float64, hour int) (*Result, error) {
	similarity, err := CosineSimilarity(baseline, current)
	if err != nil {
		return nil, err
	}

	snrDB = clamp(snrDB, s.cfg.MinSNRDB, s.cfg.MaxSNRDB)

	raw := SimilarityToAnomaly(similarity)
	score := ApplyNoiseNormalization(raw, snrDB, s.cfg)
	score = ApplyTimeCompensation(score, hour, s.cfg)

	slog.Debug("anomaly comparison",
		"similarity", similarity,
		"raw_anomaly", raw,
		"score", score,
		"snr_db", snrDB,
		"hour", hour,
	)

	return &Result{
		Score:         score,
		RawSimilarity: similarity,
		Normalized:    score,
		SNR:           snrDB,
	}, nil
}
