package snr

import (
	"math"
	"testing"
)

func TestFFTImpulse(t *testing.T) {
	// The spectrum of a unit impulse is flat with magnitude 1.
	n := 64
	re := make([]float64, n)
	im := make([]float64, n)
	re[0] = 1

	fft(re, im)

	for k := 0; k < n; k++ {
		mag := math.Hypot(re[k], im[k])
		if math.Abs(mag-1.0) > 1e-12 {
			t.Fatalf("bin %d magnitude = %v, want 1.0", k, mag)
		}
	}
}

func TestFFTSinePeak(t *testing.T) {
	// A bin-centered sine concentrates its energy in bins ±5.
	n := 256
	re := make([]float64, n)
	im := make([]float64, n)
	for i := range re {
		re[i] = math.Sin(2 * math.Pi * 5 * float64(i) / float64(n))
	}

	fft(re, im)

	peak := math.Hypot(re[5], im[5])
	if math.Abs(peak-float64(n)/2) > 1e-9 {
		t.Errorf("bin 5 magnitude = %v, want %v", peak, float64(n)/2)
	}
	for k := 0; k <= n/2; k++ {
		if k == 5 {
			continue
		}
		if mag := math.Hypot(re[k], im[k]); mag > 1e-9 {
			t.Errorf("bin %d magnitude = %v, want ≈0", k, mag)
		}
	}
}

func TestSTFTFrameCount(t *testing.T) {
	e := New(DefaultConfig())
	halfFFT := e.fftSize/2 + 1

	tests := []struct {
		samples    int
		wantFrames int
	}{
		{2048, 1},
		{2048 + 512, 2},
		{2048 + 512*3, 4},
		{100, 1}, // shorter than the window: one zero-padded frame
	}
	for _, tt := range tests {
		mags := e.stft(make([]float64, tt.samples))
		if got := len(mags) / halfFFT; got != tt.wantFrames {
			t.Errorf("%d samples: %d frames, want %d", tt.samples, got, tt.wantFrames)
		}
	}
}

func TestSamplesFromPCM16(t *testing.T) {
	pcm := []byte{
		0x00, 0x00, // 0
		0x00, 0x40, // 16384 → 0.5
		0x00, 0x80, // -32768 → -1.0
		0xFF, 0x7F, // 32767 → ~0.99997
		0x42, // trailing odd byte ignored
	}
	samples := SamplesFromPCM16(pcm)
	if len(samples) != 4 {
		t.Fatalf("got %d samples, want 4", len(samples))
	}
	want := []float64{0, 0.5, -1.0, 32767.0 / 32768.0}
	for i := range want {
		if math.Abs(samples[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d = %v, want %v", i, samples[i], want[i])
		}
	}
}

func TestHannWindow(t *testing.T) {
	w := hannWindow(2048)
	if w[0] != 0 {
		t.Errorf("w[0] = %v, want 0", w[0])
	}
	// Periodic Hann peaks at n/2.
	if math.Abs(w[1024]-1.0) > 1e-12 {
		t.Errorf("w[n/2] = %v, want 1", w[1024])
	}
	// Symmetric about n/2 for the periodic form: w[i] == w[n-i].
	for _, i := range []int{1, 100, 512, 1000} {
		if math.Abs(w[i]-w[2048-i]) > 1e-12 {
			t.Errorf("window asymmetry at %d: %v vs %v", i, w[i], w[2048-i])
		}
	}
}
