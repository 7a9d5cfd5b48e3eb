// Package ring implements a fixed-capacity ring buffer over frames. It backs
// filter state and delay effects, where a node continually needs the last
// few frames it produced.
package ring

import "fmt"

// Buffer is a fixed-capacity ring buffer. Pushing overwrites the oldest
// entry; At(0) is the most recent push. A fresh buffer reads as silence.
type Buffer[F any] struct {
	data []F
	pos  int
}

// New returns a buffer holding the last capacity frames.
func New[F any](capacity int) (*Buffer[F], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ring: capacity must be positive, got %d", capacity)
	}
	return &Buffer[F]{data: make([]F, capacity)}, nil
}

// Push stores f, overwriting the oldest entry once full.
func (b *Buffer[F]) Push(f F) {
	b.data[b.pos] = f
	b.pos++
	if b.pos == len(b.data) {
		b.pos = 0
	}
}

// At returns the frame pushed offset frames ago; At(0) is the latest.
// Panics if offset is not in [0, Cap()).
func (b *Buffer[F]) At(offset int) F {
	if offset < 0 || offset >= len(b.data) {
		panic(fmt.Sprintf("ring: offset %d out of range [0,%d)", offset, len(b.data)))
	}
	i := b.pos - 1 - offset
	if i < 0 {
		i += len(b.data)
	}
	return b.data[i]
}

// Last returns the most recently pushed frame.
func (b *Buffer[F]) Last() F { return b.At(0) }

// Cap returns the capacity.
func (b *Buffer[F]) Cap() int { return len(b.data) }

// Clear zeroes the contents without changing the capacity.
func (b *Buffer[F]) Clear() {
	var zero F
	for i := range b.data {
		b.data[i] = zero
	}
	b.pos = 0
}
