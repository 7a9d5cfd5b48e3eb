// Package signal defines the pull contract every node in a synthesis tree
// follows.
//
// A node exposes its current frame without side effects; advancing moves it
// forward exactly one frame; retriggering returns it to its initial state so
// that subsequent output is bit-identical to a fresh instance. Completion
// and pitch are optional capabilities probed at runtime, so nodes that never
// end or carry no frequency simply omit them.
package signal

import (
	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/units"
)

// Signal produces frames on demand. Frame must be pure: repeated calls
// between advances return the same value.
type Signal[F sample.Frame[F]] interface {
	Frame() F
}

// Mutable is a signal that can move through time.
type Mutable[F sample.Frame[F]] interface {
	Signal[F]

	// Advance moves the signal forward by exactly one frame.
	Advance()
	// Retrigger restores the initial state. Output after a retrigger is
	// bit-identical to a fresh instance.
	Retrigger()
}

// Control is a mono mutable signal used to drive parameters of other nodes.
type Control = Mutable[sample.Mono]

// Frequency is the capability of pitch-bearing nodes.
type Frequency interface {
	Freq() units.Freq
	SetFreq(units.Freq)
}

// FreqMutable is a mutable signal with a controllable frequency.
type FreqMutable[F sample.Frame[F]] interface {
	Mutable[F]
	Frequency
}

// IsDone reports whether s has finished. Nodes that end implement
// Done() bool; anything else never finishes.
func IsDone(s any) bool {
	if d, ok := s.(interface{ Done() bool }); ok {
		return d.Done()
	}
	return false
}

// Next returns the current frame and advances the signal.
func Next[F sample.Frame[F]](s Mutable[F]) F {
	f := s.Frame()
	s.Advance()
	return f
}
