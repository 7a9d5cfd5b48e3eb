package control

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
	"github.com/cwbudde/algo-synth/synth/units"
)

// Note is one entry of a monophonic Track.
type Note struct {
	Onset    units.Time
	Freq     units.Freq
	Velocity float64
	Duration units.Time
}

func (n Note) end() units.Time { return n.Onset.Add(n.Duration) }

// Track is an ordered, non-overlapping list of notes.
type Track struct {
	notes []Note
}

// NewTrack validates and returns a track. Notes must be ordered by onset,
// must not overlap, and need positive durations and velocities in [0,1].
func NewTrack(notes []Note) (*Track, error) {
	if len(notes) == 0 {
		return nil, fmt.Errorf("control: track needs at least one note")
	}
	for i, n := range notes {
		if n.Duration == 0 {
			return nil, fmt.Errorf("control: note %d has zero duration", i)
		}
		if n.Velocity < 0 || n.Velocity > 1 {
			return nil, fmt.Errorf("control: note %d velocity %v outside [0,1]", i, n.Velocity)
		}
		if i == 0 {
			continue
		}
		prev := notes[i-1]
		if n.Onset < prev.Onset {
			return nil, fmt.Errorf("control: note %d starts at %v samples, before note %d at %v",
				i, n.Onset.Float(), i-1, prev.Onset.Float())
		}
		if n.Onset < prev.end() {
			return nil, fmt.Errorf("control: note %d overlaps note %d (onset %v < end %v samples)",
				i, i-1, n.Onset.Float(), prev.end().Float())
		}
	}
	return &Track{notes: append([]Note(nil), notes...)}, nil
}

// Len returns the note count.
func (t *Track) Len() int { return len(t.notes) }

// End returns the time the last note releases.
func (t *Track) End() units.Time { return t.notes[len(t.notes)-1].end() }

// Player performs a track on a pitch-bearing voice through an ADSR. At each
// onset the voice is retuned and both voice and envelope retrigger; at the
// note's end the envelope releases. Output is the voice scaled by envelope
// value and note velocity.
type Player[F sample.Frame[F]] struct {
	track *Track
	voice signal.FreqMutable[F]
	env   *ADSR

	clock    units.Time
	next     int
	active   bool
	offAt    units.Time
	velocity float64
}

// NewPlayer returns a player performing track on voice through env.
func NewPlayer[F sample.Frame[F]](track *Track, voice signal.FreqMutable[F], env *ADSR) *Player[F] {
	p := &Player[F]{track: track, voice: voice, env: env}
	p.tick()
	return p
}

// Frame returns the voice frame scaled by envelope and velocity.
func (p *Player[F]) Frame() F {
	return p.voice.Frame().Scale(p.env.Frame().Val() * p.velocity)
}

// Advance moves the performance one frame forward.
func (p *Player[F]) Advance() {
	p.voice.Advance()
	p.env.Advance()
	p.clock.Advance()
	p.tick()
}

// tick fires any note-off and note-on due at the current clock.
func (p *Player[F]) tick() {
	if p.active && p.clock >= p.offAt {
		p.env.Release()
		p.active = false
	}
	if p.next < p.track.Len() {
		n := p.track.notes[p.next]
		if p.clock >= n.Onset {
			p.voice.SetFreq(n.Freq)
			p.voice.Retrigger()
			p.env.Retrigger()
			p.velocity = n.Velocity
			p.offAt = n.end()
			p.active = true
			p.next++
		}
	}
}

// Retrigger rewinds the performance to the beginning.
func (p *Player[F]) Retrigger() {
	p.voice.Retrigger()
	p.env.Retrigger()
	p.clock = 0
	p.next = 0
	p.active = false
	p.velocity = 0
	p.tick()
}

// Done reports whether every note has played and the final release has
// finished.
func (p *Player[F]) Done() bool {
	return p.next >= p.track.Len() && !p.active && p.env.Done()
}
