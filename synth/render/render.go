// Package render drives a signal tree: it pulls one frame at a time from
// the root and hands it to a sink, with no buffering and no concurrency.
package render

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
	"github.com/cwbudde/algo-synth/synth/units"
)

// Sink consumes rendered frames.
type Sink[F sample.Frame[F]] interface {
	Write(F) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc[F sample.Frame[F]] func(F) error

// Write calls the function.
func (fn SinkFunc[F]) Write(f F) error { return fn(f) }

// Frames pulls exactly n frames from sgn into sink.
func Frames[F sample.Frame[F]](sgn signal.Mutable[F], n int, sink Sink[F]) error {
	for i := 0; i < n; i++ {
		if err := sink.Write(sgn.Frame()); err != nil {
			return fmt.Errorf("render: frame %d: %w", i, err)
		}
		sgn.Advance()
	}
	return nil
}

// Length renders for the given duration, rounded down to whole samples.
func Length[F sample.Frame[F]](sgn signal.Mutable[F], length units.Time, sink Sink[F]) error {
	return Frames(sgn, int(length.Int()), sink)
}

// Until renders until sgn reports done, up to max frames. It returns the
// number of frames written.
func Until[F sample.Frame[F]](sgn signal.Mutable[F], max int, sink Sink[F]) (int, error) {
	for n := 0; n < max; n++ {
		if signal.IsDone(sgn) {
			return n, nil
		}
		if err := sink.Write(sgn.Frame()); err != nil {
			return n, fmt.Errorf("render: frame %d: %w", n, err)
		}
		sgn.Advance()
	}
	return max, nil
}
