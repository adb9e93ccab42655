package snr

import (
	"math"
	"math/rand"
	"testing"
)

const testRate = 16000

func sine(n int, cycles float64, amp float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = amp * math.Sin(2*math.Pi*cycles*float64(i)/2048.0)
	}
	return s
}

func whiteNoise(n int, amp float64, seed uint64) []float64 {
	rng := rand.New(rand.NewSource(int64(seed)))
	s := make([]float64, n)
	for i := range s {
		s[i] = amp * rng.NormFloat64()
	}
	return s
}

func TestEstimateEmptyInputFallsBack(t *testing.T) {
	e := New(DefaultConfig())
	got := e.Estimate(nil, testRate)
	if got != DefaultConfig().DefaultSNR {
		t.Errorf("Estimate(nil) = %v, want default %v", got, DefaultConfig().DefaultSNR)
	}
}

func TestEstimatePureToneClampsHigh(t *testing.T) {
	e := New(DefaultConfig())

	// A bin-centered tone has essentially no spectral floor, so the raw
	// ratio is enormous and the result clamps to the upper bound.
	got := e.Estimate(sine(8192, 64, 0.5), testRate)
	if got != 30.0 {
		t.Errorf("pure tone SNR = %v, want 30.0", got)
	}
}

func TestEstimateSilenceClampsLow(t *testing.T) {
	e := New(DefaultConfig())
	got := e.Estimate(make([]float64, 8192), testRate)
	if got != 0.0 {
		t.Errorf("silence SNR = %v, want 0.0", got)
	}
}

func TestEstimateOrdering(t *testing.T) {
	e := New(DefaultConfig())

	tone := sine(16384, 64, 0.5)
	noise := whiteNoise(16384, 0.1, 7)
	mixed := make([]float64, len(tone))
	for i := range mixed {
		mixed[i] = tone[i] + noise[i]
	}

	snrTone := e.Estimate(tone, testRate)
	snrMixed := e.Estimate(mixed, testRate)
	snrNoise := e.Estimate(noise, testRate)

	t.Logf("tone=%.2f mixed=%.2f noise=%.2f", snrTone, snrMixed, snrNoise)

	if !(snrTone >= snrMixed && snrMixed >= snrNoise) {
		t.Errorf("expected tone ≥ mixed ≥ noise, got %v / %v / %v", snrTone, snrMixed, snrNoise)
	}
	if snrNoise >= 15.0 {
		t.Errorf("white noise SNR = %v, expected well below 15", snrNoise)
	}
}

func TestEstimateRangeInvariant(t *testing.T) {
	e := New(DefaultConfig())
	inputs := [][]float64{
		sine(2048, 10, 1.0),
		sine(100, 3, 0.01), // shorter than one window
		whiteNoise(4096, 1.0, 1),
		whiteNoise(300, 1e-8, 2),
		{0.5},
		{math.MaxFloat64 / 4, -math.MaxFloat64 / 4},
	}
	for i, in := range inputs {
		got := e.Estimate(in, testRate)
		if got < 0.0 || got > 30.0 {
			t.Errorf("input %d: SNR %v outside [0, 30]", i, got)
		}
	}
}

func TestEstimateShortInput(t *testing.T) {
	e := New(DefaultConfig())

	// Fewer samples than one window still produces an estimate from a
	// single zero-padded frame, not the fallback.
	got := e.Estimate(sine(500, 64, 0.5), testRate)
	if got < 0.0 || got > 30.0 {
		t.Errorf("short input SNR %v outside [0, 30]", got)
	}
}

func TestEstimateDeterministic(t *testing.T) {
	e := New(DefaultConfig())
	in := whiteNoise(8192, 0.2, 42)
	a := e.Estimate(in, testRate)
	b := e.Estimate(in, testRate)
	if a != b {
		t.Errorf("same input produced different estimates: %v vs %v", a, b)
	}
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
	}{
		{"median_odd", []float64{3, 1, 2}, 50, 2},
		{"median_even_interpolated", []float64{1, 2, 3, 4}, 50, 2.5},
		{"p0_is_min", []float64{5, 1, 9}, 0, 1},
		{"p100_is_max", []float64{5, 1, 9}, 100, 9},
		{"p20_interpolated", []float64{0, 1, 2, 3, 4, 5}, 20, 1},
		{"single_value", []float64{7}, 20, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentile(tt.values, tt.p)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("percentile(%v, %v) = %v, want %v", tt.values, tt.p, got, tt.want)
			}
		})
	}
}
