package snr

import "math"

// stft computes the short-time spectral magnitudes of the waveform and
// returns them as one flat slice (frames × (fftSize/2 + 1) bins).
//
// Frames are windowed with Hann and zero-padded to the FFT size. A waveform
// shorter than one window still yields a single zero-padded frame.
func (e *Estimator) stft(samples []float64) []float64 {
	win := e.cfg.WindowSize
	hop := e.cfg.HopSize
	if win <= 0 || hop <= 0 {
		return nil
	}

	numFrames := 1
	if len(samples) > win {
		numFrames = (len(samples)-win)/hop + 1
	}
	halfFFT := e.fftSize/2 + 1

	mags := make([]float64, 0, numFrames*halfFFT)
	re := make([]float64, e.fftSize)
	im := make([]float64, e.fftSize)

	for f := 0; f < numFrames; f++ {
		offset := f * hop
		for i := 0; i < e.fftSize; i++ {
			re[i] = 0
			im[i] = 0
		}
		for i := 0; i < win && offset+i < len(samples); i++ {
			re[i] = samples[offset+i] * e.window[i]
		}

		fft(re, im)

		for k := 0; k < halfFFT; k++ {
			mags = append(mags, math.Hypot(re[k], im[k]))
		}
	}
	return mags
}

// SamplesFromPCM16 converts PCM16 signed little-endian bytes into normalized
// float64 samples in [-1, 1). A trailing odd byte is ignored.
func SamplesFromPCM16(pcm []byte) []float64 {
	n := len(pcm) / 2
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		s := int16(pcm[2*i]) | int16(pcm[2*i+1])<<8
		samples[i] = float64(s) / 32768.0
	}
	return samples
}

// hannWindow computes a periodic Hann window of length n.
func hannWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}

// nextPow2 returns the smallest power of 2 >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
