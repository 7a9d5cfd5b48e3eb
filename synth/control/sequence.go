package control

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/units"
)

// Event is one entry of a Sequence: emit Value from Onset for Duration.
type Event struct {
	Onset    units.Time
	Duration units.Time
	Value    float64
}

// end returns the time the event stops sounding.
func (ev Event) end() units.Time { return ev.Onset.Add(ev.Duration) }

// Sequence emits the value of the active scheduled event and zero between
// events. Events must have a positive duration, must be ordered by onset and
// must not overlap; construction rejects schedules that violate any of
// these.
type Sequence struct {
	events []Event
	period units.Time // 0 means play once

	clock units.Time
	idx   int // first event that has not finished
}

// SequenceOption configures a Sequence.
type SequenceOption func(*Sequence)

// WithLoop makes the sequence repeat with the given period. The period must
// cover every event; the wrap carries fractional overshoot exactly.
func WithLoop(period units.Time) SequenceOption {
	return func(s *Sequence) { s.period = period }
}

// NewSequence validates and returns a sequence over events.
func NewSequence(events []Event, opts ...SequenceOption) (*Sequence, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("control: sequence needs at least one event")
	}
	for i, ev := range events {
		if ev.Duration == 0 {
			return nil, fmt.Errorf("control: event %d has zero duration", i)
		}
	}
	for i := 1; i < len(events); i++ {
		prev, cur := events[i-1], events[i]
		if cur.Onset < prev.Onset {
			return nil, fmt.Errorf("control: event %d starts at %v samples, before event %d at %v",
				i, cur.Onset.Float(), i-1, prev.Onset.Float())
		}
		if cur.Onset < prev.end() {
			return nil, fmt.Errorf("control: event %d overlaps event %d (onset %v < end %v samples)",
				i, i-1, cur.Onset.Float(), prev.end().Float())
		}
	}

	s := &Sequence{events: append([]Event(nil), events...)}
	for _, o := range opts {
		o(s)
	}
	if s.period != 0 {
		if last := s.events[len(s.events)-1].end(); s.period < last {
			return nil, fmt.Errorf("control: loop period %v samples shorter than schedule end %v",
				s.period.Float(), last.Float())
		}
	}
	return s, nil
}

// Frame returns the active event's value, or zero between events.
func (s *Sequence) Frame() sample.Mono {
	if s.idx < len(s.events) {
		ev := s.events[s.idx]
		if s.clock >= ev.Onset && s.clock < ev.end() {
			return sample.Mono(ev.Value)
		}
	}
	return 0
}

// Advance moves the clock one frame, finishing and wrapping events as their
// boundaries pass.
func (s *Sequence) Advance() {
	s.clock.Advance()
	s.catchUp()
	if s.period != 0 && s.clock >= s.period {
		s.clock -= s.period
		s.idx = 0
		s.catchUp()
	}
}

func (s *Sequence) catchUp() {
	for s.idx < len(s.events) && s.clock >= s.events[s.idx].end() {
		s.idx++
	}
}

// Retrigger rewinds to the start of the schedule.
func (s *Sequence) Retrigger() {
	s.clock = 0
	s.idx = 0
}

// Done reports whether a non-looping sequence has played every event.
func (s *Sequence) Done() bool {
	return s.period == 0 && s.idx >= len(s.events)
}
