package curve

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/synth/interp"
)

// Table is a wavetable: a curve sampled into a fixed array and read back
// with cubic interpolation. Evaluating a Table is one interpolated lookup
// regardless of how expensive the source curve was.
type Table struct {
	data []float64
}

// NewTable samples src at size evenly spaced phases. size must be at least 4
// for the interpolation neighborhood.
func NewTable(src Curve, size int) (*Table, error) {
	if size < 4 {
		return nil, fmt.Errorf("curve: table size must be at least 4, got %d", size)
	}
	data := make([]float64, size)
	for i := range data {
		data[i] = src.At(float64(i) / float64(size))
	}
	return &Table{data: data}, nil
}

// Len returns the number of stored samples.
func (t *Table) Len() int { return len(t.data) }

// At reads the table at the given phase with Hermite interpolation,
// wrapping around the table ends.
func (t *Table) At(x float64) float64 {
	n := len(t.data)
	pos := x * float64(n)
	i := int(math.Floor(pos))
	frac := pos - float64(i)

	wrap := func(k int) float64 {
		k %= n
		if k < 0 {
			k += n
		}
		return t.data[k]
	}
	return interp.Hermite4(frac, wrap(i-1), wrap(i), wrap(i+1), wrap(i+2))
}
