package effect

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/synth/curve"
	"github.com/cwbudde/algo-synth/synth/gen"
	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/signal"
	"github.com/cwbudde/algo-synth/synth/units"
)

// ramp emits 0, 1, 2, ... and finishes at stop.
type ramp struct {
	n    int
	stop int
}

func (r *ramp) Frame() sample.Mono { return sample.Mono(r.n) }
func (r *ramp) Advance()           { r.n++ }
func (r *ramp) Retrigger()         { r.n = 0 }
func (r *ramp) Done() bool         { return r.n >= r.stop }

func TestMapped(t *testing.T) {
	e := NewMapped[sample.Mono](&ramp{stop: 3}, func(f sample.Mono) sample.Mono {
		return f.Scale(-2)
	})
	want := []float64{0, -2, -4}
	for i, w := range want {
		if e.Done() {
			t.Fatalf("done at frame %d", i)
		}
		if got := signal.Next[sample.Mono](e).Val(); got != w {
			t.Fatalf("frame %d: got %v, want %v", i, got, w)
		}
	}
	if !e.Done() {
		t.Fatal("not done when inner signal is")
	}
	e.Retrigger()
	if got := e.Frame().Val(); got != 0 {
		t.Fatalf("after retrigger: got %v", got)
	}
}

func TestVolume(t *testing.T) {
	e := NewVolume[sample.Mono](&ramp{stop: 100}, 0.5)
	e.Advance()
	e.Advance()
	if got := e.Frame().Val(); got != 1 {
		t.Fatalf("got %v, want 1", got)
	}
	e.SetGain(0.25)
	if e.Gain() != 0.25 {
		t.Fatalf("Gain: got %v", e.Gain())
	}
	if got := e.Frame().Val(); got != 0.5 {
		t.Fatalf("after SetGain: got %v, want 0.5", got)
	}
}

func TestTremolo(t *testing.T) {
	freq, _ := units.Hertz(441, units.CD)
	lfo := gen.NewLoop[sample.Mono](curve.PosSaw{}, freq)
	e := NewTremolo[sample.Mono](&ramp{stop: 1000}, lfo)

	// Carrier times LFO, frame by frame.
	for i := 0; i < 10; i++ {
		want := float64(i) * lfo.Frame().Val()
		if got := e.Frame().Val(); math.Abs(got-want) > 1e-12 {
			t.Fatalf("frame %d: got %v, want %v", i, got, want)
		}
		e.Advance()
	}
}

func TestGate(t *testing.T) {
	seq := gen.NewFunc(func(at units.Time) sample.Mono {
		if at.Int()%2 == 0 {
			return 1
		}
		return 0
	})
	e := NewGate[sample.Mono](&ramp{stop: 1000}, seq, 0.5)
	want := []float64{0, 0, 2, 0, 4, 0}
	for i, w := range want {
		if got := signal.Next[sample.Mono](e).Val(); got != w {
			t.Fatalf("frame %d: got %v, want %v", i, got, w)
		}
	}
}

func TestVibratoBendsPitch(t *testing.T) {
	base, _ := units.Hertz(440, units.CD)
	carrier := gen.NewLoop[sample.Mono](curve.Sin{}, base)
	lfo := gen.NewFunc(func(at units.Time) sample.Mono {
		return sample.Mono(1 + 0.1*math.Sin(2*math.Pi*at.Float()/100))
	})
	e := NewVibrato[sample.Mono](carrier, base, lfo)

	// The carrier's frequency tracks base times the control, frame by frame.
	for i := 0; i < 200; i++ {
		want := base.Mul(lfo.Frame().Val())
		if got := carrier.Freq(); got != want {
			t.Fatalf("frame %d: carrier at %v cycles, want %v", i, got, want)
		}
		e.Advance()
	}
}

func TestVibratoFreqIsBase(t *testing.T) {
	base, _ := units.Hertz(200, units.CD)
	carrier := gen.NewLoop[sample.Mono](curve.Sin{}, base)
	ctl := gen.NewFunc(func(units.Time) sample.Mono { return 2 })
	e := NewVibrato[sample.Mono](carrier, base, ctl)

	if e.Freq() != base {
		t.Fatalf("Freq: got %v, want unbent base %v", e.Freq(), base)
	}
	if got := carrier.Freq(); got != base.Mul(2) {
		t.Fatalf("carrier: got %v, want %v", got, base.Mul(2))
	}
	e.SetFreq(base.Mul(1.5))
	if got := carrier.Freq(); got != base.Mul(1.5).Mul(2) {
		t.Fatalf("after SetFreq: got %v, want %v", got, base.Mul(1.5).Mul(2))
	}
}

func TestVibratoRetrigger(t *testing.T) {
	base, _ := units.Hertz(300, units.CD)
	lfoFreq, _ := units.Hertz(5, units.CD)
	e := NewVibrato[sample.Mono](
		gen.NewLoop[sample.Mono](curve.Sin{}, base), base,
		gen.NewLoop[sample.Mono](curve.PosSaw{}, lfoFreq))

	first := make([]sample.Mono, 50)
	for i := range first {
		first[i] = signal.Next[sample.Mono](e)
	}
	e.Retrigger()
	for i := range first {
		if got := signal.Next[sample.Mono](e); got != first[i] {
			t.Fatalf("frame %d: got %v, want %v", i, got, first[i])
		}
	}
}

func TestRetriggerScope(t *testing.T) {
	cases := []struct {
		name        string
		scope       RetriggerScope
		wantCarrier float64 // carrier frame after retrigger
		wantControl float64 // control frame after retrigger
	}{
		{"both", RetriggerBoth, 0, 0},
		{"carrier only", RetriggerCarrier, 0, 5},
		{"control only", RetriggerControl, 5, 0},
	}
	for _, tc := range cases {
		carrier := &ramp{stop: 1000}
		control := &ramp{stop: 1000}
		e := NewControlled[sample.Mono](carrier, control,
			func(f sample.Mono, v float64) sample.Mono { return f },
			WithRetriggerScope(tc.scope))
		for i := 0; i < 5; i++ {
			e.Advance()
		}
		e.Retrigger()
		if got := carrier.Frame().Val(); got != tc.wantCarrier {
			t.Errorf("%s: carrier at %v, want %v", tc.name, got, tc.wantCarrier)
		}
		if got := control.Frame().Val(); got != tc.wantControl {
			t.Errorf("%s: control at %v, want %v", tc.name, got, tc.wantControl)
		}
	}
}

func TestShapers(t *testing.T) {
	cases := []struct {
		name string
		s    Shaper
		in   float64
		want float64
	}{
		{"clip inside", Clip{Level: 0.5}, 0.3, 0.3},
		{"clip above", Clip{Level: 0.5}, 0.9, 0.5},
		{"clip below", Clip{Level: 0.5}, -0.9, -0.5},
		{"atan unity", Atan{Drive: 3}, 1, 1},
		{"atan zero", Atan{Drive: 3}, 0, 0},
		{"pow sign", Pow{Exponent: 2}, -0.5, -0.25},
		{"bitcrush", Bitcrush{Steps: 4}, 0.3, 0.25},
	}
	for _, tc := range cases {
		if got := tc.s.Shape(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%s: Shape(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestPointwiseStereo(t *testing.T) {
	freq, _ := units.Hertz(100, units.CD)
	osc := gen.NewLoop[sample.Stereo](curve.Sin{}, freq)
	e := NewPointwise[sample.Stereo](osc, Clip{Level: 0.5})
	for i := 0; i < 300; i++ {
		f := signal.Next[sample.Stereo](e)
		for c := 0; c < 2; c++ {
			if v := f.Channel(c); v < -0.5 || v > 0.5 {
				t.Fatalf("frame %d channel %d: %v escapes clip level", i, c, v)
			}
		}
	}
}

func TestDelayValidation(t *testing.T) {
	src := &ramp{stop: 10}
	if _, err := NewDelay[sample.Mono](src, 0, 0.5); err == nil {
		t.Fatal("expected error for sub-sample delay")
	}
	if _, err := NewDelay[sample.Mono](src, units.Samples(4), 1); err == nil {
		t.Fatal("expected error for unity feedback")
	}
}

func TestDelayEcho(t *testing.T) {
	// Impulse at frame 0; echoes at multiples of the delay, each halved.
	impulse := gen.NewFunc(func(at units.Time) sample.Mono {
		if at == 0 {
			return 1
		}
		return 0
	})
	e, err := NewDelay[sample.Mono](impulse, units.Samples(3), 0.5)
	if err != nil {
		t.Fatalf("NewDelay: %v", err)
	}

	want := []float64{1, 0, 0, 0.5, 0, 0, 0.25, 0, 0, 0.125}
	for i, w := range want {
		if got := signal.Next[sample.Mono](e).Val(); math.Abs(got-w) > 1e-12 {
			t.Fatalf("frame %d: got %v, want %v", i, got, w)
		}
	}

	e.Retrigger()
	if got := e.Frame().Val(); got != 1 {
		t.Fatalf("after retrigger: got %v, want clean impulse 1", got)
	}
}
