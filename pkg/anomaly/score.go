package anomaly

import (
	"fmt"
	"math"
)

// CosineSimilarity computes the cosine of the angle between two embeddings:
// dot(a, b) / (‖a‖ · ‖b‖), clamped to [-1, 1] to absorb floating-point
// overshoot.
//
// The two vectors must have identical length; otherwise the call fails with
// [ErrDimensionMismatch]. Embeddings are usually stored unit-normalized by
// the producer, but the norms are always computed here rather than assumed.
//
// If either norm is exactly zero the vectors carry no direction, and the
// result is 0 (treated as orthogonal) rather than an error.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return clamp(sim, -1.0, 1.0), nil
}

// SimilarityToAnomaly maps a cosine similarity to a raw anomaly score:
// clamp(1 - similarity, 0, 1).
//
// Embeddings from the speaker model are near-positive-correlated for
// same-speaker recordings, so similarity near 1 maps to near-zero anomaly.
// The transform is monotonic and order-preserving; there is no learned
// calibration.
func SimilarityToAnomaly(similarity float64) float64 {
	return clamp(1.0-similarity, 0.0, 1.0)
}

// ApplyNoiseNormalization discounts an anomaly score recorded under noisy
// conditions. Low-SNR audio inflates apparent dissimilarity, so the score is
// reduced proportionally to how far the SNR falls below
// cfg.NoiseThresholdDB, up to cfg.MaxNoiseDiscount at 0 dB.
//
// At or above the threshold the score passes through unchanged. The result
// never exceeds the input and never drops below zero.
func ApplyNoiseNormalization(score, snrDB float64, cfg Config) float64 {
	if snrDB >= cfg.NoiseThresholdDB {
		return score
	}
	factor := cfg.MaxNoiseDiscount * (cfg.NoiseThresholdDB - snrDB) / cfg.NoiseThresholdDB
	return math.Max(0.0, score-score*factor)
}

// ApplyTimeCompensation discounts an anomaly score for natural voice drift
// by time of day. Morning voices run lower and evening voices run tired, so
// scores inside the configured windows are reduced by the window's discount.
//
// Passing [HourUnknown] (or any hour outside both windows) returns the score
// unchanged. The windows are disjoint, so at most one discount applies.
func ApplyTimeCompensation(score float64, hour int, cfg Config) float64 {
	switch {
	case hour >= cfg.MorningStartHour && hour <= cfg.MorningEndHour:
		return math.Max(0.0, score-score*cfg.MorningDiscount)
	case hour >= cfg.EveningStartHour && hour <= cfg.EveningEndHour:
		return math.Max(0.0, score-score*cfg.EveningDiscount)
	default:
		return score
	}
}
