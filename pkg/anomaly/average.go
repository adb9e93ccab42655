package anomaly

import (
	"fmt"
	"math"
)

// AverageEmbeddings builds a baseline embedding as the element-wise mean of
// the inputs, normalized to unit Euclidean length. Averaging several
// enrollment recordings produces a more stable baseline than any single one.
//
// The list must be non-empty ([ErrEmptyInput]) and every member must share
// the same dimensionality ([ErrDimensionMismatch]). If the mean has exactly
// zero norm the unnormalized all-zero vector is returned as-is.
func AverageEmbeddings(embeddings [][]float64) ([]float64, error) {
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("%w: no embeddings to average", ErrEmptyInput)
	}

	dim := len(embeddings[0])
	mean := make([]float64, dim)
	for i, emb := range embeddings {
		if len(emb) != dim {
			return nil, fmt.Errorf("%w: embedding %d has %d dims, want %d",
				ErrDimensionMismatch, i, len(emb), dim)
		}
		for j, v := range emb {
			mean[j] += v
		}
	}

	n := float64(len(embeddings))
	var norm float64
	for j := range mean {
		mean[j] /= n
		norm += mean[j] * mean[j]
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for j := range mean {
			mean[j] /= norm
		}
	}
	return mean, nil
}
