package control

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/units"
)

// adsrStage enumerates the ADSR states.
type adsrStage int

const (
	stageAttack adsrStage = iota
	stageDecay
	stageSustain
	stageRelease
	stageDone
)

// ADSR is an attack/decay/sustain/release envelope. It rises from 0 to 1
// over the attack, falls to the sustain level over the decay, holds until
// Release is called, then falls to 0 over the release time. Calling Release
// early releases from the current value, wherever the envelope happens to
// be.
type ADSR struct {
	attack  units.Time
	decay   units.Time
	sustain float64
	release units.Time

	stage       adsrStage
	elapsed     units.Time
	releaseFrom float64
}

// NewADSR returns an ADSR envelope. sustain must lie in [0,1]; zero times
// make the corresponding stage an instant jump.
func NewADSR(attack, decay units.Time, sustain float64, release units.Time) (*ADSR, error) {
	if sustain < 0 || sustain > 1 {
		return nil, fmt.Errorf("control: sustain level %v outside [0,1]", sustain)
	}
	e := &ADSR{attack: attack, decay: decay, sustain: sustain, release: release}
	e.Retrigger()
	return e, nil
}

// ramp interpolates from a to b over dur at the current elapsed time.
func (e *ADSR) ramp(a, b float64, dur units.Time) float64 {
	if dur == 0 {
		return b
	}
	x := e.elapsed.Float() / dur.Float()
	if x > 1 {
		x = 1
	}
	return a + (b-a)*x
}

// Frame returns the current envelope value.
func (e *ADSR) Frame() sample.Mono {
	switch e.stage {
	case stageAttack:
		return sample.Mono(e.ramp(0, 1, e.attack))
	case stageDecay:
		return sample.Mono(e.ramp(1, e.sustain, e.decay))
	case stageSustain:
		return sample.Mono(e.sustain)
	case stageRelease:
		return sample.Mono(e.ramp(e.releaseFrom, 0, e.release))
	default:
		return 0
	}
}

// Advance moves one frame forward. Stage boundaries carry their fractional
// overshoot into the next stage.
func (e *ADSR) Advance() {
	switch e.stage {
	case stageAttack:
		e.elapsed.Advance()
		if e.elapsed >= e.attack {
			e.elapsed -= e.attack
			e.stage = stageDecay
			if e.elapsed >= e.decay {
				e.elapsed = 0
				e.stage = stageSustain
			}
		}
	case stageDecay:
		e.elapsed.Advance()
		if e.elapsed >= e.decay {
			e.elapsed = 0
			e.stage = stageSustain
		}
	case stageRelease:
		e.elapsed.Advance()
		if e.elapsed >= e.release {
			e.elapsed = 0
			e.stage = stageDone
		}
	}
}

// Release starts the release ramp from the current value. It may be called
// in any stage; once done it has no effect.
func (e *ADSR) Release() {
	if e.stage == stageDone || e.stage == stageRelease {
		return
	}
	e.releaseFrom = e.Frame().Val()
	e.elapsed = 0
	e.stage = stageRelease
	if e.release == 0 {
		e.stage = stageDone
	}
}

// Retrigger restarts the envelope from the beginning of the attack.
func (e *ADSR) Retrigger() {
	e.stage = stageAttack
	e.elapsed = 0
	e.releaseFrom = 0
	if e.attack == 0 {
		e.stage = stageDecay
		if e.decay == 0 {
			e.stage = stageSustain
		}
	}
}

// Done reports whether the release has completed.
func (e *ADSR) Done() bool { return e.stage == stageDone }
