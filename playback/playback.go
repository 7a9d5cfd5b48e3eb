// Package playback streams a signal to the default audio device via oto.
//
// The device pulls samples on its own reader goroutine, so this is the one
// place the engine is touched concurrently; a mutex serializes access to
// the signal. Everything else in the engine stays single-threaded.
package playback

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
	"github.com/cwbudde/algo-synth/synth/units"
)

// Player streams a signal to the default audio device as 32-bit float PCM.
// The channel count follows the frame type.
type Player[F sample.Frame[F]] struct {
	player *oto.Player

	mu       sync.Mutex
	sgn      signal.Mutable[F]
	channels int
}

// NewPlayer opens the default audio device for sgn at the given rate.
// Opening the device blocks until it is ready.
func NewPlayer[F sample.Frame[F]](sgn signal.Mutable[F], rate units.SampleRate) (*Player[F], error) {
	if rate == 0 {
		return nil, fmt.Errorf("playback: sample rate must be positive")
	}
	var zero F
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(rate),
		ChannelCount: zero.Channels(),
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("playback: open device: %w", err)
	}
	<-ready

	p := &Player[F]{sgn: sgn, channels: zero.Channels()}
	p.player = ctx.NewPlayer(p)
	return p, nil
}

// Read fills b with little-endian float32 frames pulled from the signal.
// It runs on the device's reader goroutine and returns io.EOF once the
// signal reports done.
func (p *Player[F]) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := fillFloat32LE(b, p.sgn, p.channels)
	if n == 0 && signal.IsDone(p.sgn) {
		return 0, io.EOF
	}
	return n, nil
}

// fillFloat32LE pulls frames from sgn until b has no room for another full
// frame or sgn finishes, returning the bytes written.
func fillFloat32LE[F sample.Frame[F]](b []byte, sgn signal.Mutable[F], channels int) int {
	frameBytes := 4 * channels
	written := 0
	for written+frameBytes <= len(b) {
		if signal.IsDone(sgn) {
			break
		}
		f := signal.Next[F](sgn)
		for c := 0; c < channels; c++ {
			bits := math.Float32bits(float32(f.Channel(c)))
			binary.LittleEndian.PutUint32(b[written:], bits)
			written += 4
		}
	}
	return written
}

// Play starts (or resumes) playback.
func (p *Player[F]) Play() { p.player.Play() }

// Pause suspends playback, keeping the signal position.
func (p *Player[F]) Pause() { p.player.Pause() }

// IsPlaying reports whether the device is currently pulling frames.
func (p *Player[F]) IsPlaying() bool { return p.player.IsPlaying() }

// Close stops playback and releases the device player.
func (p *Player[F]) Close() error {
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("playback: close: %w", err)
	}
	return nil
}
