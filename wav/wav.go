// Package wav writes rendered frames to a WAV file. It is a thin boundary
// adapter: the engine renders frames, this package encodes them as PCM.
package wav

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/units"
)

const wavFormatPCM = 1

// defaultBufferFrames is the number of frames buffered between encoder
// writes.
const defaultBufferFrames = 4096

// Sink encodes frames to a PCM WAV file. The channel count follows the
// frame type. Close must be called to flush and finalize the file.
type Sink[F sample.Frame[F]] struct {
	file     *os.File
	enc      *wav.Encoder
	data     []int
	channels int
	bitDepth int
	rate     int
	limit    int
	mult     float64
}

// SinkOption configures a Sink.
type SinkOption func(*sinkConfig)

type sinkConfig struct {
	bufferFrames int
}

// WithBufferFrames sets how many frames are buffered between encoder
// writes.
func WithBufferFrames(n int) SinkOption {
	return func(cfg *sinkConfig) { cfg.bufferFrames = n }
}

// NewSink creates path and returns a sink encoding bitDepth-bit PCM at the
// given rate. Supported bit depths are 16 and 32.
func NewSink[F sample.Frame[F]](path string, rate units.SampleRate, bitDepth int, opts ...SinkOption) (*Sink[F], error) {
	if bitDepth != 16 && bitDepth != 32 {
		return nil, fmt.Errorf("wav: bit depth %d not supported, use 16 or 32", bitDepth)
	}
	if rate == 0 {
		return nil, fmt.Errorf("wav: sample rate must be positive")
	}
	cfg := sinkConfig{bufferFrames: defaultBufferFrames}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.bufferFrames <= 0 {
		return nil, fmt.Errorf("wav: buffer size must be positive, got %d frames", cfg.bufferFrames)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("wav: create %s: %w", path, err)
	}

	var zero F
	channels := zero.Channels()
	s := &Sink[F]{
		file:     f,
		enc:      wav.NewEncoder(f, int(rate), bitDepth, channels, wavFormatPCM),
		channels: channels,
		bitDepth: bitDepth,
		rate:     int(rate),
		limit:    cfg.bufferFrames * channels,
		mult:     float64(int64(1)<<(bitDepth-1)) - 1,
	}
	s.data = make([]int, 0, s.limit)
	return s, nil
}

// Write buffers one frame, clipping amplitudes outside [-1,1].
func (s *Sink[F]) Write(f F) error {
	for c := 0; c < s.channels; c++ {
		v := f.Channel(c)
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s.data = append(s.data, int(v*s.mult))
	}
	if len(s.data) >= s.limit {
		return s.flush()
	}
	return nil
}

func (s *Sink[F]) flush() error {
	if len(s.data) == 0 {
		return nil
	}
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: s.channels,
			SampleRate:  s.rate,
		},
		Data:           s.data,
		SourceBitDepth: s.bitDepth,
	}
	if err := s.enc.Write(buf); err != nil {
		return fmt.Errorf("wav: encode: %w", err)
	}
	s.data = s.data[:0]
	return nil
}

// Close flushes buffered frames and finalizes the file.
func (s *Sink[F]) Close() error {
	if err := s.flush(); err != nil {
		return err
	}
	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize: %w", err)
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("wav: close: %w", err)
	}
	return nil
}
