// Package analyze measures rendered audio: it captures a signal into a
// sample slice and computes windowed magnitude or power spectra. It exists
// for verification (does the oscillator sit on its pitch, does the filter
// cut what it should), not for the render path.
package analyze

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/synth/render"
	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
	"github.com/cwbudde/algo-synth/synth/units"
)

// Capture renders n frames of a mono signal into a slice.
func Capture(sgn signal.Mutable[sample.Mono], n int) []float64 {
	out := make([]float64, 0, n)
	// The sink cannot fail, so neither can the render.
	_ = render.Frames[sample.Mono](sgn, n, render.SinkFunc[sample.Mono](func(m sample.Mono) error {
		out = append(out, m.Val())
		return nil
	}))
	return out
}

// Spectrum returns the magnitude of the positive-frequency bins of the
// Hann-windowed input, zero-padded to the next power of two.
func Spectrum(samples []float64) ([]float64, error) {
	out, err := transform(samples)
	if err != nil {
		return nil, err
	}
	re, im := split(out)
	mag := make([]float64, len(re))
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// PowerSpectrum returns |X[k]|^2 for the positive-frequency bins.
func PowerSpectrum(samples []float64) ([]float64, error) {
	out, err := transform(samples)
	if err != nil {
		return nil, err
	}
	re, im := split(out)
	pow := make([]float64, len(re))
	vecmath.Power(pow, re, im)
	return pow, nil
}

func transform(samples []float64) ([]complex128, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("analyze: empty input")
	}
	windowed := make([]float64, len(samples))
	copy(windowed, samples)
	vecmath.MulBlockInPlace(windowed, hann(len(samples)))

	fftSize := nextPowerOf2(len(samples))
	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("analyze: FFT plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("analyze: forward FFT: %w", err)
	}
	return out[:fftSize/2+1], nil
}

func split(bins []complex128) (re, im []float64) {
	re = make([]float64, len(bins))
	im = make([]float64, len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PeakBin returns the index of the largest bin.
func PeakBin(bins []float64) int {
	peak := 0
	for i, v := range bins {
		if v > bins[peak] {
			peak = i
		}
	}
	return peak
}

// BinFreq returns the center frequency in Hz of a bin, given the FFT size
// the bins came from.
func BinFreq(bin, fftSize int, rate units.SampleRate) float64 {
	return float64(bin) * rate.Hz() / float64(fftSize)
}
