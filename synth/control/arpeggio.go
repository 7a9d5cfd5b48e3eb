package control

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
	"github.com/cwbudde/algo-synth/synth/units"
)

// Arpeggio cycles a pitch-bearing signal through a list of notes, moving to
// the next note every step. Step boundaries carry fractional overshoot, so
// an arpeggio never drifts against the clock even with fractional step
// lengths.
type Arpeggio[F sample.Frame[F]] struct {
	sgn   signal.FreqMutable[F]
	notes []units.Freq
	step  units.Time

	since units.Time
	idx   int
}

// NewArpeggio wraps sgn, stepping through notes at the given step duration.
func NewArpeggio[F sample.Frame[F]](sgn signal.FreqMutable[F], notes []units.Freq, step units.Time) (*Arpeggio[F], error) {
	if len(notes) == 0 {
		return nil, fmt.Errorf("control: arpeggio needs at least one note")
	}
	if step == 0 {
		return nil, fmt.Errorf("control: arpeggio step must be positive")
	}
	a := &Arpeggio[F]{
		sgn:   sgn,
		notes: append([]units.Freq(nil), notes...),
		step:  step,
	}
	sgn.SetFreq(a.notes[0])
	return a, nil
}

// Frame returns the wrapped signal's frame.
func (a *Arpeggio[F]) Frame() F { return a.sgn.Frame() }

// Advance moves the wrapped signal one frame and switches notes at step
// boundaries.
func (a *Arpeggio[F]) Advance() {
	a.sgn.Advance()
	a.since.Advance()
	for a.since >= a.step {
		a.since -= a.step
		a.idx++
		if a.idx == len(a.notes) {
			a.idx = 0
		}
		a.sgn.SetFreq(a.notes[a.idx])
	}
}

// Retrigger restarts the wrapped signal on the first note.
func (a *Arpeggio[F]) Retrigger() {
	a.sgn.Retrigger()
	a.since = 0
	a.idx = 0
	a.sgn.SetFreq(a.notes[0])
}

// Done reports completion of the wrapped signal.
func (a *Arpeggio[F]) Done() bool { return signal.IsDone(a.sgn) }
