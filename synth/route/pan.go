package route

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
)

// Law selects how a pan position maps to channel gains.
type Law int

const (
	// LawLinear fades the channels linearly. Cheap, but the center is
	// 3 dB quieter than the extremes.
	LawLinear Law = iota
	// LawPower keeps the total power constant across positions.
	LawPower
	// LawMixed is the geometric mean of the linear and power gains.
	LawMixed
)

// Pan places a mono signal in the stereo field. Position -1 is hard left,
// 0 center, 1 hard right.
type Pan struct {
	sgn signal.Mutable[sample.Mono]
	law Law
	pos float64

	left, right float64
}

// NewPan wraps sgn at the given position using the given law.
func NewPan(sgn signal.Mutable[sample.Mono], pos float64, law Law) (*Pan, error) {
	if law < LawLinear || law > LawMixed {
		return nil, fmt.Errorf("route: unknown pan law %d", law)
	}
	p := &Pan{sgn: sgn, law: law}
	if err := p.SetPos(pos); err != nil {
		return nil, err
	}
	return p, nil
}

// SetPos moves the pan position. pos must lie in [-1,1].
func (p *Pan) SetPos(pos float64) error {
	if math.IsNaN(pos) || pos < -1 || pos > 1 {
		return fmt.Errorf("route: pan position %v outside [-1,1]", pos)
	}
	p.pos = pos
	t := (pos + 1) / 2
	switch p.law {
	case LawLinear:
		p.left, p.right = 1-t, t
	case LawPower:
		p.left = math.Cos(t * math.Pi / 2)
		p.right = math.Sin(t * math.Pi / 2)
	case LawMixed:
		p.left = math.Sqrt((1 - t) * math.Cos(t*math.Pi/2))
		p.right = math.Sqrt(t * math.Sin(t*math.Pi/2))
	}
	return nil
}

// Pos returns the current position.
func (p *Pan) Pos() float64 { return p.pos }

// Frame returns the panned stereo frame.
func (p *Pan) Frame() sample.Stereo {
	v := p.sgn.Frame().Val()
	return sample.Stereo{v * p.left, v * p.right}
}

// Advance moves the inner signal forward.
func (p *Pan) Advance() { p.sgn.Advance() }

// Retrigger retriggers the inner signal.
func (p *Pan) Retrigger() { p.sgn.Retrigger() }

// Done reports completion of the inner signal.
func (p *Pan) Done() bool { return signal.IsDone(p.sgn) }

// Pair joins two mono signals into one stereo signal. It finishes when both
// sides have finished.
type Pair struct {
	left, right signal.Mutable[sample.Mono]
}

// NewPair returns a stereo signal with the given sides.
func NewPair(left, right signal.Mutable[sample.Mono]) *Pair {
	return &Pair{left: left, right: right}
}

// Frame returns the two sides as one stereo frame.
func (p *Pair) Frame() sample.Stereo {
	return sample.Stereo{p.left.Frame().Val(), p.right.Frame().Val()}
}

// Advance moves both sides forward.
func (p *Pair) Advance() {
	p.left.Advance()
	p.right.Advance()
}

// Retrigger retriggers both sides.
func (p *Pair) Retrigger() {
	p.left.Retrigger()
	p.right.Retrigger()
}

// Done reports whether both sides have finished.
func (p *Pair) Done() bool {
	return signal.IsDone(p.left) && signal.IsDone(p.right)
}
