package filter

import (
	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
)

// Filtered runs an inner signal through a biquad cascade. Frame returns the
// filtered value of the inner signal's current frame.
type Filtered[F sample.Frame[F]] struct {
	sgn  signal.Mutable[F]
	casc *Cascade[F]
	cur  F
}

// NewFiltered wraps sgn with a cascade over coeffs.
func NewFiltered[F sample.Frame[F]](sgn signal.Mutable[F], coeffs ...Coefficients) *Filtered[F] {
	f := &Filtered[F]{sgn: sgn, casc: NewCascade[F](coeffs)}
	f.cur = f.casc.Process(sgn.Frame())
	return f
}

// Frame returns the filtered current frame.
func (f *Filtered[F]) Frame() F { return f.cur }

// Advance moves the inner signal forward and filters its new frame.
func (f *Filtered[F]) Advance() {
	f.sgn.Advance()
	f.cur = f.casc.Process(f.sgn.Frame())
}

// Retrigger retriggers the inner signal and clears the filter history.
func (f *Filtered[F]) Retrigger() {
	f.sgn.Retrigger()
	f.casc.Reset()
	f.cur = f.casc.Process(f.sgn.Frame())
}

// Done reports completion of the inner signal.
func (f *Filtered[F]) Done() bool { return signal.IsDone(f.sgn) }

// SetCoefficients swaps the cascade's coefficients, keeping filter state
// when the section count is unchanged.
func (f *Filtered[F]) SetCoefficients(coeffs ...Coefficients) {
	f.casc.SetCoefficients(coeffs)
}
