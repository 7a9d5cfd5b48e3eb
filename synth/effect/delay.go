package effect

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/synth/ring"
	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
	"github.com/cwbudde/algo-synth/synth/units"
)

// Delay is a feedback comb: the output is the dry input plus the output
// from delay frames ago scaled by the feedback gain. Past outputs live in a
// ring buffer sized to the delay.
type Delay[F sample.Frame[F]] struct {
	sgn      signal.Mutable[F]
	buf      *ring.Buffer[F]
	feedback float64
}

// NewDelay wraps sgn with an echo after delay (rounded down to whole
// samples). The delay must be at least one sample; |feedback| must be below
// one so the echo decays.
func NewDelay[F sample.Frame[F]](sgn signal.Mutable[F], delay units.Time, feedback float64) (*Delay[F], error) {
	n := int(delay.Int())
	if n < 1 {
		return nil, fmt.Errorf("effect: delay must be at least one sample, got %v", delay.Float())
	}
	if math.Abs(feedback) >= 1 {
		return nil, fmt.Errorf("effect: delay feedback %v must lie in (-1,1)", feedback)
	}
	buf, err := ring.New[F](n)
	if err != nil {
		return nil, err
	}
	return &Delay[F]{sgn: sgn, buf: buf, feedback: feedback}, nil
}

// Frame returns the dry input plus the delayed, feedback-scaled output.
func (e *Delay[F]) Frame() F {
	return e.sgn.Frame().Add(e.buf.At(e.buf.Cap() - 1).Scale(e.feedback))
}

// Advance records the current output and moves the input forward.
func (e *Delay[F]) Advance() {
	e.buf.Push(e.Frame())
	e.sgn.Advance()
}

// Retrigger retriggers the input and clears the echo tail.
func (e *Delay[F]) Retrigger() {
	e.sgn.Retrigger()
	e.buf.Clear()
}

// Done reports completion of the input. A pending echo tail is cut off.
func (e *Delay[F]) Done() bool { return signal.IsDone(e.sgn) }
