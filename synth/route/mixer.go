// Package route combines signals: mixing with per-input gains, panning a
// mono signal into the stereo field, and pairing two mono signals into one
// stereo signal.
package route

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
)

// Completion selects when a mixer reports done.
type Completion int

const (
	// CompleteAll finishes when every input has finished.
	CompleteAll Completion = iota
	// CompleteAny finishes as soon as one input has finished.
	CompleteAny
)

// Input is one mixer input with its gain.
type Input[F sample.Frame[F]] struct {
	sgn  signal.Mutable[F]
	gain float64
}

// In pairs a signal with a gain for NewMixer.
func In[F sample.Frame[F]](sgn signal.Mutable[F], gain float64) Input[F] {
	return Input[F]{sgn: sgn, gain: gain}
}

// Mixer sums a fixed set of inputs, each scaled by its gain. Inputs that
// never finish keep a CompleteAll mixer running forever; the policy is an
// explicit construction choice.
type Mixer[F sample.Frame[F]] struct {
	inputs     []Input[F]
	completion Completion
}

// mixerConfig carries options independent of the frame type.
type mixerConfig struct {
	completion Completion
}

// MixerOpt configures a mixer.
type MixerOpt func(*mixerConfig)

// WithCompletion sets the completion policy. Default is CompleteAll.
func WithCompletion(c Completion) MixerOpt {
	return func(cfg *mixerConfig) { cfg.completion = c }
}

// NewMixer returns a mixer over the given inputs.
func NewMixer[F sample.Frame[F]](inputs []Input[F], opts ...MixerOpt) (*Mixer[F], error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("route: mixer needs at least one input")
	}
	cfg := mixerConfig{completion: CompleteAll}
	for _, o := range opts {
		o(&cfg)
	}
	return &Mixer[F]{
		inputs:     append([]Input[F](nil), inputs...),
		completion: cfg.completion,
	}, nil
}

// Frame returns the gain-weighted sum of all input frames.
func (m *Mixer[F]) Frame() F {
	var sum F
	for _, in := range m.inputs {
		sum = sum.Add(in.sgn.Frame().Scale(in.gain))
	}
	return sum
}

// Advance moves every input forward.
func (m *Mixer[F]) Advance() {
	for _, in := range m.inputs {
		in.sgn.Advance()
	}
}

// Retrigger retriggers every input.
func (m *Mixer[F]) Retrigger() {
	for _, in := range m.inputs {
		in.sgn.Retrigger()
	}
}

// Done applies the configured completion policy over the inputs.
func (m *Mixer[F]) Done() bool {
	switch m.completion {
	case CompleteAny:
		for _, in := range m.inputs {
			if signal.IsDone(in.sgn) {
				return true
			}
		}
		return false
	default:
		for _, in := range m.inputs {
			if !signal.IsDone(in.sgn) {
				return false
			}
		}
		return true
	}
}

// Gain returns the gain of input i.
func (m *Mixer[F]) Gain(i int) float64 { return m.inputs[i].gain }

// SetGain changes the gain of input i.
func (m *Mixer[F]) SetGain(i int, g float64) { m.inputs[i].gain = g }
