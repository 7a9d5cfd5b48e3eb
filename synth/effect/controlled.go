package effect

import (
	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
)

// RetriggerScope selects which parts of a Controlled effect a retrigger
// reaches. The coupling between carrier and control is an explicit choice:
// a tremolo usually restarts with its note, while a free-running LFO keeps
// its phase across retriggers.
type RetriggerScope int

const (
	// RetriggerBoth retriggers carrier and control together.
	RetriggerBoth RetriggerScope = iota
	// RetriggerCarrier retriggers only the carrier; the control runs free.
	RetriggerCarrier
	// RetriggerControl retriggers only the control.
	RetriggerControl
)

// Controlled modulates a carrier signal with a mono control signal through
// a combine function, advancing both in lockstep.
type Controlled[F sample.Frame[F]] struct {
	sgn     signal.Mutable[F]
	ctl     signal.Control
	combine func(F, float64) F
	scope   RetriggerScope
}

// ControlledOption configures a Controlled effect.
type ControlledOption func(*controlledConfig)

type controlledConfig struct {
	scope RetriggerScope
}

// WithRetriggerScope sets which nodes a retrigger reaches.
func WithRetriggerScope(s RetriggerScope) ControlledOption {
	return func(cfg *controlledConfig) { cfg.scope = s }
}

// NewControlled combines sgn with ctl through combine.
func NewControlled[F sample.Frame[F]](sgn signal.Mutable[F], ctl signal.Control, combine func(F, float64) F, opts ...ControlledOption) *Controlled[F] {
	cfg := controlledConfig{scope: RetriggerBoth}
	for _, o := range opts {
		o(&cfg)
	}
	return &Controlled[F]{sgn: sgn, ctl: ctl, combine: combine, scope: cfg.scope}
}

// Frame combines the carrier frame with the control value.
func (e *Controlled[F]) Frame() F {
	return e.combine(e.sgn.Frame(), e.ctl.Frame().Val())
}

// Advance moves carrier and control forward together.
func (e *Controlled[F]) Advance() {
	e.sgn.Advance()
	e.ctl.Advance()
}

// Retrigger retriggers carrier and/or control per the configured scope.
func (e *Controlled[F]) Retrigger() {
	if e.scope != RetriggerControl {
		e.sgn.Retrigger()
	}
	if e.scope != RetriggerCarrier {
		e.ctl.Retrigger()
	}
}

// Done reports completion of the carrier.
func (e *Controlled[F]) Done() bool { return signal.IsDone(e.sgn) }

// NewTremolo scales sgn by the control value.
func NewTremolo[F sample.Frame[F]](sgn signal.Mutable[F], ctl signal.Control, opts ...ControlledOption) *Controlled[F] {
	return NewControlled(sgn, ctl, func(f F, v float64) F {
		return f.Scale(v)
	}, opts...)
}

// NewGate passes sgn only while the control value is at or above threshold.
func NewGate[F sample.Frame[F]](sgn signal.Mutable[F], ctl signal.Control, threshold float64, opts ...ControlledOption) *Controlled[F] {
	return NewControlled(sgn, ctl, func(f F, v float64) F {
		if v >= threshold {
			return f
		}
		var z F
		return z
	}, opts...)
}
