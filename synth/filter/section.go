package filter

import (
	"github.com/cwbudde/algo-synth/synth/ring"
	"github.com/cwbudde/algo-synth/synth/sample"
)

// Section is a single biquad with its two-frame input and output history
// kept in ring buffers. Processing is channel-wise, so one section filters
// frames of any width.
type Section[F sample.Frame[F]] struct {
	coeffs Coefficients
	in     *ring.Buffer[F]
	out    *ring.Buffer[F]
}

// NewSection returns a section with the given coefficients and silent
// history.
func NewSection[F sample.Frame[F]](c Coefficients) *Section[F] {
	in, err := ring.New[F](2)
	if err != nil {
		panic(err) // capacity is a constant
	}
	out, err := ring.New[F](2)
	if err != nil {
		panic(err)
	}
	return &Section[F]{coeffs: c, in: in, out: out}
}

// Process filters one frame and records it in the history rings.
func (s *Section[F]) Process(x F) F {
	c := s.coeffs
	y := x.Scale(c.B0).
		Add(s.in.At(0).Scale(c.B1)).
		Add(s.in.At(1).Scale(c.B2)).
		Add(s.out.At(0).Scale(-c.A1)).
		Add(s.out.At(1).Scale(-c.A2))
	s.in.Push(x)
	s.out.Push(y)
	return y
}

// Reset clears the history rings.
func (s *Section[F]) Reset() {
	s.in.Clear()
	s.out.Clear()
}

// Coefficients returns the current coefficients.
func (s *Section[F]) Coefficients() Coefficients { return s.coeffs }

// SetCoefficients swaps the coefficients, keeping the history so modulation
// does not click.
func (s *Section[F]) SetCoefficients(c Coefficients) { s.coeffs = c }

// Cascade runs sections in series, each one's output feeding the next.
type Cascade[F sample.Frame[F]] struct {
	sections []*Section[F]
}

// NewCascade creates a cascade from one or more coefficient sets.
func NewCascade[F sample.Frame[F]](coeffs []Coefficients) *Cascade[F] {
	c := &Cascade[F]{sections: make([]*Section[F], len(coeffs))}
	for i := range coeffs {
		c.sections[i] = NewSection[F](coeffs[i])
	}
	return c
}

// Process filters one frame through every section in order.
func (c *Cascade[F]) Process(x F) F {
	for _, s := range c.sections {
		x = s.Process(x)
	}
	return x
}

// Reset clears every section's history.
func (c *Cascade[F]) Reset() {
	for _, s := range c.sections {
		s.Reset()
	}
}

// NumSections returns the section count.
func (c *Cascade[F]) NumSections() int { return len(c.sections) }

// Section returns the i-th section for inspection or modulation.
func (c *Cascade[F]) Section(i int) *Section[F] { return c.sections[i] }

// SetCoefficients replaces all coefficients. If the section count is
// unchanged the history is preserved, avoiding a discontinuity; otherwise
// the cascade is rebuilt with silent history.
func (c *Cascade[F]) SetCoefficients(coeffs []Coefficients) {
	if len(coeffs) == len(c.sections) {
		for i := range coeffs {
			c.sections[i].SetCoefficients(coeffs[i])
		}
		return
	}
	c.sections = make([]*Section[F], len(coeffs))
	for i := range coeffs {
		c.sections[i] = NewSection[F](coeffs[i])
	}
}
