package anomaly

import (
	"errors"
	"testing"
)

func TestScorerCompareNoAdjustments(t *testing.T) {
	s := NewScorer(DefaultConfig())

	// Clean recording, no time context: raw anomaly passes through.
	res, err := s.Compare([]float64{1, 0}, []float64{0.6, 0.8}, 20.0, HourUnknown)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(res.RawSimilarity, 0.6, 1e-12) {
		t.Errorf("RawSimilarity = %v, want 0.6", res.RawSimilarity)
	}
	if !almostEqual(res.Score, 0.4, 1e-12) {
		t.Errorf("Score = %v, want 0.4", res.Score)
	}
	if res.Normalized != res.Score {
		t.Errorf("Normalized %v != Score %v", res.Normalized, res.Score)
	}
	if res.SNR != 20.0 {
		t.Errorf("SNR = %v, want 20.0", res.SNR)
	}
}

func TestScorerCompareCombinedAdjustments(t *testing.T) {
	s := NewScorer(DefaultConfig())

	// snr=5 → noise factor 0.25·(10/15) = 0.1667 → 0.4·0.8333 = 0.3333
	// hour=7 → morning 8% → 0.3333·0.92 = 0.3067
	res, err := s.Compare([]float64{1, 0}, []float64{0.6, 0.8}, 5.0, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(res.Score, 0.3067, 1e-3) {
		t.Errorf("Score = %v, want ≈0.3067", res.Score)
	}
}

func TestScorerCompareClampsSNR(t *testing.T) {
	s := NewScorer(DefaultConfig())

	// SNR outside the domain is clamped before compensation: -100 behaves
	// like 0, +1000 like 30.
	low, err := s.Compare([]float64{1, 0}, []float64{0.6, 0.8}, -100.0, HourUnknown)
	if err != nil {
		t.Fatal(err)
	}
	if low.SNR != 0.0 {
		t.Errorf("SNR = %v, want clamped to 0.0", low.SNR)
	}
	if !almostEqual(low.Score, 0.3, 1e-12) { // 0.4 × 0.75
		t.Errorf("Score = %v, want 0.3", low.Score)
	}

	high, err := s.Compare([]float64{1, 0}, []float64{0.6, 0.8}, 1000.0, HourUnknown)
	if err != nil {
		t.Fatal(err)
	}
	if high.SNR != 30.0 {
		t.Errorf("SNR = %v, want clamped to 30.0", high.SNR)
	}
	if !almostEqual(high.Score, 0.4, 1e-12) {
		t.Errorf("Score = %v, want 0.4", high.Score)
	}
}

func TestScorerCompareDimensionMismatch(t *testing.T) {
	s := NewScorer(DefaultConfig())
	_, err := s.Compare([]float64{1, 0}, []float64{1, 0, 0}, 20.0, HourUnknown)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestScorerCompareIdenticalSpeaker(t *testing.T) {
	s := NewScorer(DefaultConfig())
	v := []float64{0.1, 0.2, 0.3, 0.4}
	res, err := s.Compare(v, v, 25.0, 12)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(res.Score, 0.0, 1e-12) {
		t.Errorf("identical embeddings scored %v, want 0", res.Score)
	}
}
