package curve

import "math"

// Curve maps a phase in [0,1) to an amplitude, nominally in [-1,1].
// Implementations hold no playback state; a generator owns the phase.
type Curve interface {
	At(phase float64) float64
}

// Sin is one cycle of a sine wave starting at zero, rising.
type Sin struct{}

// At returns sin(2*pi*phase).
func (Sin) At(x float64) float64 { return math.Sin(2 * math.Pi * x) }

// Cos is one cycle of a cosine wave starting at one.
type Cos struct{}

// At returns cos(2*pi*phase).
func (Cos) At(x float64) float64 { return math.Cos(2 * math.Pi * x) }

// Saw rises linearly from -1 to 1.
type Saw struct{}

// At returns 2*phase - 1.
func (Saw) At(x float64) float64 { return 2*x - 1 }

// InvSaw falls linearly from 1 to -1.
type InvSaw struct{}

// At returns 1 - 2*phase.
func (InvSaw) At(x float64) float64 { return 1 - 2*x }

// PosSaw rises linearly from 0 to 1. Useful as a control curve.
type PosSaw struct{}

// At returns the phase itself.
func (PosSaw) At(x float64) float64 { return x }

// PosInvSaw falls linearly from 1 to 0. Useful as a control curve.
type PosInvSaw struct{}

// At returns 1 - phase.
func (PosInvSaw) At(x float64) float64 { return 1 - x }

// Tri is a triangle wave: 0 at phase 0, peaking at 1 and -1 at the quarter
// points.
type Tri struct{}

func (Tri) At(x float64) float64 {
	if x < 0.5 {
		return 1 - 4*math.Abs(x-0.25)
	}
	return 4*math.Abs(x-0.75) - 1
}

// Sq is a square wave, high for the first half cycle.
type Sq struct{}

func (Sq) At(x float64) float64 {
	if x < 0.5 {
		return 1
	}
	return -1
}

// Pulse is a rectangular wave, high for the first Width of each cycle.
// Width 0.5 is a square wave.
type Pulse struct {
	Width float64
}

func (p Pulse) At(x float64) float64 {
	if x < p.Width {
		return 1
	}
	return -1
}

// SawTri morphs between saw shapes through a triangle. The wave rises from
// -1 to 1 over the first Peak of the cycle and falls back afterwards:
// Peak 1 is a rising saw, Peak 0.5 a triangle, Peak 0 a falling saw.
type SawTri struct {
	Peak float64
}

func (s SawTri) At(x float64) float64 {
	switch {
	case x < s.Peak:
		return 2*x/s.Peak - 1
	case s.Peak == 1:
		return 1
	default:
		return 1 - 2*(x-s.Peak)/(1-s.Peak)
	}
}

// Morph crossfades pointwise between two curves. Mix 0 is pure A, 1 pure B.
type Morph struct {
	A, B Curve
	Mix  float64
}

func (m Morph) At(x float64) float64 {
	return (1-m.Mix)*m.A.At(x) + m.Mix*m.B.At(x)
}

// Func adapts an arbitrary function to a Curve.
type Func func(float64) float64

// At calls the function.
func (f Func) At(x float64) float64 { return f(x) }
