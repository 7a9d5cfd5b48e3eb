package effect

import (
	"math"

	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
)

// Shaper is a stateless per-channel transfer function.
type Shaper interface {
	Shape(x float64) float64
}

// Pointwise applies a shaper to every channel of an inner signal.
type Pointwise[F sample.Frame[F]] struct {
	sgn    signal.Mutable[F]
	shaper Shaper
}

// NewPointwise wraps sgn with the shaper.
func NewPointwise[F sample.Frame[F]](sgn signal.Mutable[F], shaper Shaper) *Pointwise[F] {
	return &Pointwise[F]{sgn: sgn, shaper: shaper}
}

// Frame returns the shaped inner frame.
func (e *Pointwise[F]) Frame() F { return e.sgn.Frame().Map(e.shaper.Shape) }

// Advance moves the inner signal forward.
func (e *Pointwise[F]) Advance() { e.sgn.Advance() }

// Retrigger retriggers the inner signal.
func (e *Pointwise[F]) Retrigger() { e.sgn.Retrigger() }

// Done reports completion of the inner signal.
func (e *Pointwise[F]) Done() bool { return signal.IsDone(e.sgn) }

// Clip hard-limits amplitudes to [-Level, Level].
type Clip struct {
	Level float64
}

func (c Clip) Shape(x float64) float64 {
	return math.Max(-c.Level, math.Min(c.Level, x))
}

// Atan is smooth arctangent saturation, normalized to unity gain at x=1.
// Larger Drive values distort more.
type Atan struct {
	Drive float64
}

func (a Atan) Shape(x float64) float64 {
	return math.Atan(a.Drive*x) / math.Atan(a.Drive)
}

// Pow raises the magnitude to Exponent, preserving sign. Exponents below 1
// fatten the waveform, above 1 thin it.
type Pow struct {
	Exponent float64
}

func (p Pow) Shape(x float64) float64 {
	return math.Copysign(math.Pow(math.Abs(x), p.Exponent), x)
}

// Bitcrush quantizes amplitudes to Steps levels per unit.
type Bitcrush struct {
	Steps float64
}

func (b Bitcrush) Shape(x float64) float64 {
	return math.Round(x*b.Steps) / b.Steps
}
