// Package gen provides the leaf generators of a synthesis tree: curve
// players, noise, and function signals. Generators are deterministic; a
// retrigger reproduces their output bit for bit.
package gen

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-synth/synth/curve"
	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/units"
)

// Loop plays a curve cyclically at a given frequency. It never finishes.
type Loop[F sample.Frame[F]] struct {
	crv   curve.Curve
	freq  units.Freq
	phase units.Phase
}

// NewLoop returns a looping player over crv at freq.
func NewLoop[F sample.Frame[F]](crv curve.Curve, freq units.Freq) *Loop[F] {
	return &Loop[F]{crv: crv, freq: freq}
}

// Frame returns the curve value at the current phase on all channels.
func (g *Loop[F]) Frame() F {
	var z F
	return z.FromVal(g.crv.At(g.phase.Float()))
}

// Advance moves the phase forward by one frame, wrapping in [0,1).
func (g *Loop[F]) Advance() { g.phase = g.phase.Advance(g.freq) }

// Retrigger resets the phase to zero.
func (g *Loop[F]) Retrigger() { g.phase = 0 }

// Freq returns the playback frequency.
func (g *Loop[F]) Freq() units.Freq { return g.freq }

// SetFreq changes the playback frequency without resetting the phase.
func (g *Loop[F]) SetFreq(f units.Freq) { g.freq = f }

// Phase returns the current phase.
func (g *Loop[F]) Phase() units.Phase { return g.phase }

// SetPhase jumps to the given phase.
func (g *Loop[F]) SetPhase(p units.Phase) { g.phase = p }

// Once plays a curve exactly once over a fixed duration, then holds the
// curve's end value and reports done.
type Once[F sample.Frame[F]] struct {
	crv     curve.Curve
	dur     units.Time
	elapsed units.Time
}

// NewOnce returns a one-shot player over crv lasting dur.
func NewOnce[F sample.Frame[F]](crv curve.Curve, dur units.Time) (*Once[F], error) {
	if dur == 0 {
		return nil, fmt.Errorf("gen: one-shot duration must be positive")
	}
	return &Once[F]{crv: crv, dur: dur}, nil
}

// Frame returns the curve value at the elapsed fraction of the duration.
// After completion this is the value at phase 1.
func (g *Once[F]) Frame() F {
	x := g.elapsed.Float() / g.dur.Float()
	if x > 1 {
		x = 1
	}
	var z F
	return z.FromVal(g.crv.At(x))
}

// Advance moves forward one frame until the duration is reached.
func (g *Once[F]) Advance() {
	if g.elapsed < g.dur {
		g.elapsed.Advance()
	}
}

// Retrigger restarts playback from the beginning.
func (g *Once[F]) Retrigger() { g.elapsed = 0 }

// Done reports whether the full duration has played.
func (g *Once[F]) Done() bool { return g.elapsed >= g.dur }

// Noise is deterministic white noise in [-1,1]. The same seed always yields
// the same sequence, and a retrigger replays it from the start.
type Noise[F sample.Frame[F]] struct {
	seed int64
	rng  *rand.Rand
	val  float64
}

// NewNoise returns a noise generator with the given seed.
func NewNoise[F sample.Frame[F]](seed int64) *Noise[F] {
	g := &Noise[F]{seed: seed}
	g.Retrigger()
	return g
}

// Frame returns the current noise value on all channels.
func (g *Noise[F]) Frame() F {
	var z F
	return z.FromVal(g.val)
}

// Advance draws the next value.
func (g *Noise[F]) Advance() { g.val = 2*g.rng.Float64() - 1 }

// Retrigger reseeds so the sequence repeats exactly.
func (g *Noise[F]) Retrigger() {
	g.rng = rand.New(rand.NewSource(g.seed))
	g.val = 2*g.rng.Float64() - 1
}

// Func evaluates a frame-valued function of elapsed time.
type Func[F sample.Frame[F]] struct {
	fn func(units.Time) F
	t  units.Time
}

// NewFunc returns a generator evaluating fn at the elapsed time.
func NewFunc[F sample.Frame[F]](fn func(units.Time) F) *Func[F] {
	return &Func[F]{fn: fn}
}

// Frame evaluates the function at the current time.
func (g *Func[F]) Frame() F { return g.fn(g.t) }

// Advance moves the clock forward one frame.
func (g *Func[F]) Advance() { g.t.Advance() }

// Retrigger resets the clock to zero.
func (g *Func[F]) Retrigger() { g.t = 0 }

// Silence produces zero frames forever.
type Silence[F sample.Frame[F]] struct{}

// Frame returns a zero frame.
func (Silence[F]) Frame() F {
	var z F
	return z
}

// Advance does nothing.
func (Silence[F]) Advance() {}

// Retrigger does nothing.
func (Silence[F]) Retrigger() {}
