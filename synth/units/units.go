// Package units provides the time and frequency quantities of the engine.
//
// Time counts whole and fractional samples in unsigned 48.16 fixed point, so
// repeated advancement never accumulates rounding drift: a million frames of
// one sample each is exactly a million samples. Freq stores cycles per
// sample, the per-frame phase increment, so advancing a Phase by a Freq is a
// single addition.
package units

import (
	"fmt"
	"math"
)

// SampleRate is the number of frames per second, in Hz.
type SampleRate uint32

// CD is the standard audio CD sample rate.
const CD SampleRate = 44100

// Hz returns the rate as a float64.
func (r SampleRate) Hz() float64 { return float64(r) }

const (
	timeFracBits = 16
	// timeOne is one whole sample.
	timeOne = 1 << timeFracBits
	timeMax = math.MaxUint64 >> timeFracBits
)

// Time is a duration or timestamp measured in samples, stored as unsigned
// 48.16 fixed point. The zero value is zero samples.
type Time uint64

// Samples returns a Time of n whole samples.
func Samples(n uint64) Time {
	return Time(n << timeFracBits)
}

// FloatSamples converts a possibly fractional sample count to a Time.
// n must be finite and non-negative.
func FloatSamples(n float64) (Time, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0, fmt.Errorf("units: invalid sample count %v", n)
	}
	if n > timeMax {
		return 0, fmt.Errorf("units: sample count %v overflows", n)
	}
	return Time(n * timeOne), nil
}

// Seconds converts a duration in seconds to a Time at the given rate.
func Seconds(sec float64, rate SampleRate) (Time, error) {
	if rate == 0 {
		return 0, fmt.Errorf("units: sample rate must be positive")
	}
	t, err := FloatSamples(sec * rate.Hz())
	if err != nil {
		return 0, fmt.Errorf("units: invalid duration %vs: %w", sec, err)
	}
	return t, nil
}

// Int returns the whole-sample part.
func (t Time) Int() uint64 { return uint64(t) >> timeFracBits }

// Frac returns the fractional-sample part in [0,1).
func (t Time) Frac() float64 {
	return float64(uint64(t)&(timeOne-1)) / timeOne
}

// Float returns the duration as a float64 sample count.
func (t Time) Float() float64 { return float64(t) / timeOne }

// Seconds returns the duration in seconds at the given rate.
func (t Time) Seconds(rate SampleRate) float64 {
	return t.Float() / rate.Hz()
}

// Add returns t + o.
func (t Time) Add(o Time) Time { return t + o }

// Sub returns t - o, saturating at zero.
func (t Time) Sub(o Time) Time {
	if o > t {
		return 0
	}
	return t - o
}

// Advance moves t forward by exactly one sample.
func (t *Time) Advance() { *t += timeOne }

// Freq is a frequency stored as cycles per sample. A signal advancing its
// phase by a Freq every frame oscillates at the corresponding Hz rate.
type Freq float64

// Hertz converts a frequency in Hz to cycles per sample at the given rate.
// hz must be finite and positive.
func Hertz(hz float64, rate SampleRate) (Freq, error) {
	if rate == 0 {
		return 0, fmt.Errorf("units: sample rate must be positive")
	}
	if math.IsNaN(hz) || math.IsInf(hz, 0) || hz <= 0 {
		return 0, fmt.Errorf("units: frequency must be positive and finite, got %v Hz", hz)
	}
	return Freq(hz / rate.Hz()), nil
}

// MIDI converts a (possibly fractional) MIDI note number to a Freq, with
// A4 = note 69 = 440 Hz.
func MIDI(note float64, rate SampleRate) (Freq, error) {
	hz := 440 * math.Pow(2, (note-69)/12)
	f, err := Hertz(hz, rate)
	if err != nil {
		return 0, fmt.Errorf("units: note %v: %w", note, err)
	}
	return f, nil
}

// Hz returns the frequency in Hz at the given rate.
func (f Freq) Hz(rate SampleRate) float64 { return float64(f) * rate.Hz() }

// Period returns the duration of one cycle.
func (f Freq) Period() Time {
	return Time(timeOne / float64(f))
}

// Mul scales the frequency by an interval ratio, e.g. 2 for an octave up.
func (f Freq) Mul(ratio float64) Freq { return Freq(float64(f) * ratio) }

// Phase is an oscillator position in [0,1).
type Phase float64

// Advance returns the phase moved forward by one frame at frequency f,
// wrapped into [0,1).
func (p Phase) Advance(f Freq) Phase {
	x := float64(p) + float64(f)
	return Phase(x - math.Floor(x))
}

// Float returns the phase as a float64 in [0,1).
func (p Phase) Float() float64 { return float64(p) }
