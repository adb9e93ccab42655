// Package snr estimates the signal-to-noise ratio of a mono waveform.
//
// The estimate is spectral: the waveform is transformed into a short-time
// magnitude grid, the quietest bins (bottom percentile) stand in for the
// noise floor, and the full grid stands in for the signal. The ratio of the
// two mean powers, in decibels, is clamped to [0, 30].
//
// This is a calibration heuristic, not a true SNR. The signal power
// deliberately includes the noise-floor bins; the downstream noise
// compensation curve is tuned against exactly this definition, so the
// overlap must be preserved.
//
// The estimator never fails. Degenerate input (empty waveform, too few
// samples for a spectral frame, non-finite arithmetic) degrades to
// Config.DefaultSNR so one bad recording cannot block the scoring pipeline.
package snr

import (
	"math"
	"sort"
)

// Config controls spectral analysis and the output domain.
type Config struct {
	WindowSize      int     // STFT window length in samples (default 2048)
	HopSize         int     // STFT hop length in samples (default 512)
	NoisePercentile float64 // magnitude percentile treated as noise floor (default 20)
	MinNoisePower   float64 // floor for the noise power estimate (default 1e-10)
	DefaultSNR      float64 // fallback when estimation degrades (default 15, "moderate, unknown")
	MinSNR          float64 // lower clamp bound in dB (default 0)
	MaxSNR          float64 // upper clamp bound in dB (default 30)
}

// DefaultConfig returns the production parameters: a 2048-sample window with
// 512-sample hop balances frequency against time resolution for speech-band
// noise estimation.
func DefaultConfig() Config {
	return Config{
		WindowSize:      2048,
		HopSize:         512,
		NoisePercentile: 20,
		MinNoisePower:   1e-10,
		DefaultSNR:      15.0,
		MinSNR:          0.0,
		MaxSNR:          30.0,
	}
}

// Estimator computes SNR estimates from raw waveforms.
// Safe for concurrent use; Estimate allocates its own working buffers.
type Estimator struct {
	cfg     Config
	window  []float64 // Hann window, precomputed
	fftSize int
}

// New creates an Estimator with the given config.
func New(cfg Config) *Estimator {
	return &Estimator{
		cfg:     cfg,
		window:  hannWindow(cfg.WindowSize),
		fftSize: nextPow2(cfg.WindowSize),
	}
}

// Estimate returns the estimated SNR of the waveform in dB, clamped to
// [Config.MinSNR, Config.MaxSNR].
//
// samples is a mono waveform; sampleRate is the sampling frequency in Hz.
// The spectral parameters are expressed in samples, so the rate does not
// change the estimate; it is part of the contract for callers that carry
// waveform and rate together.
func (e *Estimator) Estimate(samples []float64, sampleRate int) float64 {
	cfg := e.cfg
	if len(samples) == 0 {
		return cfg.DefaultSNR
	}

	mags := e.stft(samples)
	if len(mags) == 0 {
		return cfg.DefaultSNR
	}

	// Noise floor: mean squared magnitude of the bins at or below the
	// bottom-percentile threshold.
	threshold := percentile(mags, cfg.NoisePercentile)
	var noisePower float64
	var noiseBins int
	var signalPower float64
	for _, m := range mags {
		p := m * m
		signalPower += p
		if m <= threshold {
			noisePower += p
			noiseBins++
		}
	}
	signalPower /= float64(len(mags))
	if noiseBins == 0 {
		return cfg.DefaultSNR
	}
	noisePower /= float64(noiseBins)
	if noisePower < cfg.MinNoisePower {
		noisePower = cfg.MinNoisePower
	}

	db := 10.0 * math.Log10(signalPower/noisePower)
	if math.IsNaN(db) {
		return cfg.DefaultSNR
	}
	return clamp(db, cfg.MinSNR, cfg.MaxSNR)
}

// percentile returns the p-th percentile (0–100) of the values, with linear
// interpolation between adjacent order statistics.
func percentile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	rank := p / 100.0 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	frac := rank - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
