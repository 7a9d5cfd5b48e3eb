package units

import (
	"math"
	"testing"
)

func TestTimeFixedPoint(t *testing.T) {
	half, err := FloatSamples(2.5)
	if err != nil {
		t.Fatalf("FloatSamples: %v", err)
	}
	if half.Int() != 2 {
		t.Fatalf("Int: got %d, want 2", half.Int())
	}
	if half.Frac() != 0.5 {
		t.Fatalf("Frac: got %v, want 0.5", half.Frac())
	}
	if half.Float() != 2.5 {
		t.Fatalf("Float: got %v, want 2.5", half.Float())
	}
}

// One million single-sample advances must land exactly on one million
// samples, with no accumulated drift.
func TestTimeAdvanceDriftFree(t *testing.T) {
	var clock Time
	const n = 1_000_000
	for i := 0; i < n; i++ {
		clock.Advance()
	}
	if clock != Samples(n) {
		t.Fatalf("after %d advances: got %v samples, want %d", n, clock.Float(), n)
	}
	if clock.Frac() != 0 {
		t.Fatalf("fractional residue %v after whole-sample advances", clock.Frac())
	}
}

func TestSeconds(t *testing.T) {
	sec, err := Seconds(1, CD)
	if err != nil {
		t.Fatalf("Seconds: %v", err)
	}
	if sec != Samples(44100) {
		t.Fatalf("1s at CD: got %v samples", sec.Float())
	}
	if got := sec.Seconds(CD); got != 1 {
		t.Fatalf("round trip: got %v, want 1", got)
	}

	if _, err := Seconds(-1, CD); err == nil {
		t.Fatal("expected error for negative duration")
	}
	if _, err := Seconds(1, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if _, err := FloatSamples(math.NaN()); err == nil {
		t.Fatal("expected error for NaN sample count")
	}
}

func TestTimeSubSaturates(t *testing.T) {
	if got := Samples(3).Sub(Samples(5)); got != 0 {
		t.Fatalf("Sub below zero: got %v, want 0", got)
	}
	if got := Samples(5).Sub(Samples(3)); got != Samples(2) {
		t.Fatalf("Sub: got %v samples, want 2", got.Float())
	}
}

func TestHertz(t *testing.T) {
	f, err := Hertz(441, CD)
	if err != nil {
		t.Fatalf("Hertz: %v", err)
	}
	if got := float64(f); math.Abs(got-0.01) > 1e-12 {
		t.Fatalf("441 Hz at CD: got %v cycles/sample, want 0.01", got)
	}
	if got := f.Hz(CD); math.Abs(got-441) > 1e-9 {
		t.Fatalf("Hz round trip: got %v", got)
	}
	if got := f.Period().Float(); math.Abs(got-100) > 1e-3 {
		t.Fatalf("period: got %v samples, want 100", got)
	}

	for _, hz := range []float64{0, -20, math.Inf(1), math.NaN()} {
		if _, err := Hertz(hz, CD); err == nil {
			t.Fatalf("expected error for %v Hz", hz)
		}
	}
}

func TestMIDI(t *testing.T) {
	a4, err := MIDI(69, CD)
	if err != nil {
		t.Fatalf("MIDI: %v", err)
	}
	if got := a4.Hz(CD); math.Abs(got-440) > 1e-9 {
		t.Fatalf("note 69: got %v Hz, want 440", got)
	}
	a5, err := MIDI(81, CD)
	if err != nil {
		t.Fatalf("MIDI: %v", err)
	}
	if got := a5.Hz(CD) / a4.Hz(CD); math.Abs(got-2) > 1e-9 {
		t.Fatalf("octave ratio: got %v, want 2", got)
	}
}

func TestPhaseAdvanceWraps(t *testing.T) {
	p := Phase(0.95)
	p = p.Advance(Freq(0.1))
	if math.Abs(p.Float()-0.05) > 1e-12 {
		t.Fatalf("wrap: got %v, want 0.05", p.Float())
	}
	if p.Float() < 0 || p.Float() >= 1 {
		t.Fatalf("phase %v outside [0,1)", p.Float())
	}
}
