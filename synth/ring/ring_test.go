package ring

import (
	"testing"

	"github.com/cwbudde/algo-synth/synth/sample"
)

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		if _, err := New[sample.Mono](c); err == nil {
			t.Fatalf("capacity %d: expected error", c)
		}
	}
}

func TestLookback(t *testing.T) {
	b, err := New[sample.Mono](3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Push more values than the capacity; only the last three survive.
	for i := 1; i <= 5; i++ {
		b.Push(sample.Mono(i))
	}
	for off, want := range []sample.Mono{5, 4, 3} {
		if got := b.At(off); got != want {
			t.Fatalf("At(%d): got %v, want %v", off, got, want)
		}
	}
	if b.Last() != 5 {
		t.Fatalf("Last: got %v, want 5", b.Last())
	}
}

func TestFreshBufferIsSilent(t *testing.T) {
	b, err := New[sample.Stereo](4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for off := 0; off < b.Cap(); off++ {
		if got := b.At(off); got != (sample.Stereo{}) {
			t.Fatalf("At(%d): got %v, want zero", off, got)
		}
	}
}

func TestClear(t *testing.T) {
	b, _ := New[sample.Mono](2)
	b.Push(1)
	b.Push(2)
	b.Clear()
	if b.At(0) != 0 || b.At(1) != 0 {
		t.Fatalf("after Clear: got %v, %v", b.At(0), b.At(1))
	}
	b.Push(7)
	if b.Last() != 7 {
		t.Fatalf("push after Clear: got %v", b.Last())
	}
}

func TestOffsetOutOfRangePanics(t *testing.T) {
	b, _ := New[sample.Mono](2)
	for _, off := range []int{-1, 2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("At(%d): expected panic", off)
				}
			}()
			_ = b.At(off)
		}()
	}
}
