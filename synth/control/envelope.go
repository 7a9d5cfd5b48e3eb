package control

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/units"
)

// Stage is one segment of an envelope: ramp linearly to Target over
// Duration. A zero duration is an instant jump.
type Stage struct {
	Target   float64
	Duration units.Time
}

// Envelope ramps through an ordered list of stages, interpolating linearly
// within each. When a stage boundary falls between frames the fractional
// overshoot carries into the next stage, so stage totals are exact.
// After the last stage the envelope holds its final target and reports done.
type Envelope struct {
	initial float64
	stages  []Stage

	start   float64
	idx     int
	elapsed units.Time
}

// NewEnvelope returns an envelope starting at initial.
func NewEnvelope(initial float64, stages []Stage) (*Envelope, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("control: envelope needs at least one stage")
	}
	e := &Envelope{
		initial: initial,
		stages:  append([]Stage(nil), stages...),
	}
	e.Retrigger()
	return e, nil
}

// Frame returns the current envelope value.
func (e *Envelope) Frame() sample.Mono {
	if e.idx >= len(e.stages) {
		return sample.Mono(e.stages[len(e.stages)-1].Target)
	}
	st := e.stages[e.idx]
	if st.Duration == 0 {
		return sample.Mono(st.Target)
	}
	x := e.elapsed.Float() / st.Duration.Float()
	if x > 1 {
		x = 1
	}
	return sample.Mono(e.start + (st.Target-e.start)*x)
}

// Advance moves one frame forward, stepping to the next stage with exact
// overshoot carry when the current one ends.
func (e *Envelope) Advance() {
	if e.idx >= len(e.stages) {
		return
	}
	e.elapsed.Advance()
	for e.idx < len(e.stages) && e.elapsed >= e.stages[e.idx].Duration {
		e.elapsed -= e.stages[e.idx].Duration
		e.start = e.stages[e.idx].Target
		e.idx++
	}
}

// Retrigger restarts the envelope from its initial value.
func (e *Envelope) Retrigger() {
	e.start = e.initial
	e.idx = 0
	e.elapsed = 0
}

// Done reports whether every stage has completed.
func (e *Envelope) Done() bool { return e.idx >= len(e.stages) }
