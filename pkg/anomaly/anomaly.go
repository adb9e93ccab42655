// Package anomaly converts pairs of speaker embeddings into bounded voice
// anomaly scores for wellness monitoring.
//
// # Pipeline
//
// Scoring is a fixed sequence of pure transforms:
//
//  1. [CosineSimilarity]: baseline × current embedding → similarity in [-1, 1]
//  2. [SimilarityToAnomaly]: similarity → raw anomaly in [0, 1]
//  3. [ApplyNoiseNormalization]: discount for low-SNR recordings
//  4. [ApplyTimeCompensation]: discount for morning/evening voice drift
//
// Noise compensation always runs before time compensation. Both are
// multiplicative discounts on the running score, so when both apply the
// combined effect is raw × (1 - noiseFactor) × (1 - timeFactor).
//
// [Scorer] composes the full pipeline and returns a [Result] ready for
// serialization.
//
// # Failure Policy
//
// Dimension mismatches and empty inputs indicate caller misuse and surface
// as [ErrDimensionMismatch] and [ErrEmptyInput]. Everything else degrades
// quietly: a zero-norm embedding scores as orthogonal (similarity 0), and
// floating-point overshoot is clamped so every returned value stays inside
// its documented range.
//
// # Thread Safety
//
// All operations are pure functions over in-memory data. They may be called
// concurrently without coordination.
package anomaly

import "errors"

// Sentinel errors for caller misuse. These are never returned for input
// pathologies the pipeline can absorb (zero norms, out-of-range scalars).
var (
	// ErrDimensionMismatch is returned when two embeddings (or the members
	// of a list being averaged) do not share the same dimensionality.
	ErrDimensionMismatch = errors.New("anomaly: embedding dimension mismatch")

	// ErrEmptyInput is returned when an operation receives no embeddings.
	ErrEmptyInput = errors.New("anomaly: empty input")
)

// HourUnknown marks an absent hour-of-day context. Time compensation is an
// identity transform when the hour is unknown.
const HourUnknown = -1

// Config holds the tunable constants of the scoring pipeline.
type Config struct {
	// MinSNRDB and MaxSNRDB bound the SNR domain. Incoming SNR values are
	// clamped into [MinSNRDB, MaxSNRDB] before noise compensation.
	MinSNRDB float64
	MaxSNRDB float64

	// NoiseThresholdDB is the SNR below which anomaly scores are discounted.
	// At or above the threshold noise compensation is a no-op.
	NoiseThresholdDB float64

	// MaxNoiseDiscount is the discount fraction applied at SNR = MinSNRDB.
	// The discount scales linearly from 0 at NoiseThresholdDB down to
	// MaxNoiseDiscount at zero SNR.
	MaxNoiseDiscount float64

	// MorningStartHour..MorningEndHour (inclusive) is the morning window.
	// Voices tend to sit lower after waking, so scores are discounted by
	// MorningDiscount inside the window.
	MorningStartHour int
	MorningEndHour   int
	MorningDiscount  float64

	// EveningStartHour..EveningEndHour (inclusive) is the evening window,
	// discounted by EveningDiscount. The two windows never overlap, so at
	// most one time adjustment applies per comparison.
	EveningStartHour int
	EveningEndHour   int
	EveningDiscount  float64
}

// DefaultConfig returns the calibrated production constants.
func DefaultConfig() Config {
	return Config{
		MinSNRDB:         0.0,
		MaxSNRDB:         30.0,
		NoiseThresholdDB: 15.0,
		MaxNoiseDiscount: 0.25,
		MorningStartHour: 6,
		MorningEndHour:   9,
		MorningDiscount:  0.08,
		EveningStartHour: 18,
		EveningEndHour:   21,
		EveningDiscount:  0.06,
	}
}

// clamp bounds v into the closed interval [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
