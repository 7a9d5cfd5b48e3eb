// Package sample defines the frame types carried through a signal tree.
//
// A frame holds one float64 amplitude per channel. Mono and Stereo are the
// two concrete layouts; generic code abstracts over them via the Frame
// constraint. Mixing is Add, gain is Scale, and FromVal duplicates a scalar
// across all channels, which is how control values become audio.
package sample

import "fmt"

// Frame constrains the frame types a signal can produce. All operations are
// channel-wise and allocation-free.
type Frame[F any] interface {
	// Add sums two frames channel by channel.
	Add(F) F
	// Scale multiplies every channel by a gain.
	Scale(float64) F
	// Map applies fn to every channel.
	Map(fn func(float64) float64) F
	// FromVal duplicates a scalar across all channels.
	FromVal(float64) F
	// Channel returns the value of channel i. Panics if i is out of range.
	Channel(i int) float64
	// Channels returns the channel count.
	Channels() int
}

// Mono is a single-channel frame.
type Mono float64

// Add sums two mono frames.
func (m Mono) Add(o Mono) Mono { return m + o }

// Scale multiplies the frame by a gain.
func (m Mono) Scale(g float64) Mono { return Mono(float64(m) * g) }

// Map applies fn to the single channel.
func (m Mono) Map(fn func(float64) float64) Mono { return Mono(fn(float64(m))) }

// FromVal returns v as a mono frame.
func (Mono) FromVal(v float64) Mono { return Mono(v) }

// Channel returns the single channel value. Panics unless i == 0.
func (m Mono) Channel(i int) float64 {
	if i != 0 {
		panic(fmt.Sprintf("sample: mono channel index %d out of range", i))
	}
	return float64(m)
}

// Channels returns 1.
func (Mono) Channels() int { return 1 }

// Val returns the frame as a plain scalar.
func (m Mono) Val() float64 { return float64(m) }

// Stereo is a two-channel frame, left then right.
type Stereo [2]float64

// Add sums two stereo frames channel-wise.
func (s Stereo) Add(o Stereo) Stereo { return Stereo{s[0] + o[0], s[1] + o[1]} }

// Scale multiplies both channels by a gain.
func (s Stereo) Scale(g float64) Stereo { return Stereo{s[0] * g, s[1] * g} }

// Map applies fn to both channels.
func (s Stereo) Map(fn func(float64) float64) Stereo { return Stereo{fn(s[0]), fn(s[1])} }

// FromVal duplicates v into both channels.
func (Stereo) FromVal(v float64) Stereo { return Stereo{v, v} }

// Channel returns channel i. Panics unless i is 0 or 1.
func (s Stereo) Channel(i int) float64 {
	if i < 0 || i > 1 {
		panic(fmt.Sprintf("sample: stereo channel index %d out of range", i))
	}
	return s[i]
}

// Channels returns 2.
func (Stereo) Channels() int { return 2 }

// Left returns the left channel.
func (s Stereo) Left() float64 { return s[0] }

// Right returns the right channel.
func (s Stereo) Right() float64 { return s[1] }

// Flip swaps the two channels.
func (s Stereo) Flip() Stereo { return Stereo{s[1], s[0]} }
