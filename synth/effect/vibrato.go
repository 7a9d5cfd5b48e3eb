package effect

import (
	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
	"github.com/cwbudde/algo-synth/synth/units"
)

// Vibrato modulates the pitch of a frequency-bearing carrier with a mono
// control signal. Each frame the carrier's frequency is set to the base
// frequency times the control value, so a control holding 1 leaves the
// pitch untouched and a control oscillating around 1 bends it.
//
// The wrapper's own Frequency capability reads and writes the base, not the
// bent value.
type Vibrato[F sample.Frame[F]] struct {
	sgn   signal.FreqMutable[F]
	ctl   signal.Control
	base  units.Freq
	scope RetriggerScope
}

// NewVibrato wraps sgn so its frequency follows base times the control
// value.
func NewVibrato[F sample.Frame[F]](sgn signal.FreqMutable[F], base units.Freq, ctl signal.Control, opts ...ControlledOption) *Vibrato[F] {
	cfg := controlledConfig{scope: RetriggerBoth}
	for _, o := range opts {
		o(&cfg)
	}
	e := &Vibrato[F]{sgn: sgn, ctl: ctl, base: base, scope: cfg.scope}
	e.bend()
	return e
}

// bend pushes the current bent frequency into the carrier.
func (e *Vibrato[F]) bend() {
	e.sgn.SetFreq(e.base.Mul(e.ctl.Frame().Val()))
}

// Frame returns the carrier frame at the bent pitch.
func (e *Vibrato[F]) Frame() F { return e.sgn.Frame() }

// Advance moves carrier and control forward together and re-applies the
// bend.
func (e *Vibrato[F]) Advance() {
	e.sgn.Advance()
	e.ctl.Advance()
	e.bend()
}

// Retrigger retriggers carrier and/or control per the configured scope,
// then re-applies the bend.
func (e *Vibrato[F]) Retrigger() {
	if e.scope != RetriggerControl {
		e.sgn.Retrigger()
	}
	if e.scope != RetriggerCarrier {
		e.ctl.Retrigger()
	}
	e.bend()
}

// Done reports completion of the carrier.
func (e *Vibrato[F]) Done() bool { return signal.IsDone(e.sgn) }

// Freq returns the base frequency.
func (e *Vibrato[F]) Freq() units.Freq { return e.base }

// SetFreq changes the base frequency. The bend applies from the current
// frame on.
func (e *Vibrato[F]) SetFreq(f units.Freq) {
	e.base = f
	e.bend()
}
