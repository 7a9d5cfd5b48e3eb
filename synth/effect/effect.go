// Package effect wraps signals in per-frame transformations: stateless
// maps, waveshaping, control-driven modulation, and a feedback delay.
//
// Effects own the signal they wrap. Completion follows the wrapped carrier:
// an effect is done exactly when its input is.
package effect

import (
	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
)

// Mapped applies a stateless frame transformation to an inner signal.
type Mapped[F sample.Frame[F]] struct {
	sgn signal.Mutable[F]
	fn  func(F) F
}

// NewMapped wraps sgn with fn.
func NewMapped[F sample.Frame[F]](sgn signal.Mutable[F], fn func(F) F) *Mapped[F] {
	return &Mapped[F]{sgn: sgn, fn: fn}
}

// Frame returns fn applied to the inner frame.
func (e *Mapped[F]) Frame() F { return e.fn(e.sgn.Frame()) }

// Advance moves the inner signal forward.
func (e *Mapped[F]) Advance() { e.sgn.Advance() }

// Retrigger retriggers the inner signal.
func (e *Mapped[F]) Retrigger() { e.sgn.Retrigger() }

// Done reports completion of the inner signal.
func (e *Mapped[F]) Done() bool { return signal.IsDone(e.sgn) }

// Volume scales an inner signal by a fixed gain.
type Volume[F sample.Frame[F]] struct {
	sgn  signal.Mutable[F]
	gain float64
}

// NewVolume wraps sgn with the given gain.
func NewVolume[F sample.Frame[F]](sgn signal.Mutable[F], gain float64) *Volume[F] {
	return &Volume[F]{sgn: sgn, gain: gain}
}

// Frame returns the scaled inner frame.
func (e *Volume[F]) Frame() F { return e.sgn.Frame().Scale(e.gain) }

// Advance moves the inner signal forward.
func (e *Volume[F]) Advance() { e.sgn.Advance() }

// Retrigger retriggers the inner signal.
func (e *Volume[F]) Retrigger() { e.sgn.Retrigger() }

// Done reports completion of the inner signal.
func (e *Volume[F]) Done() bool { return signal.IsDone(e.sgn) }

// Gain returns the current gain.
func (e *Volume[F]) Gain() float64 { return e.gain }

// SetGain changes the gain.
func (e *Volume[F]) SetGain(g float64) { e.gain = g }
