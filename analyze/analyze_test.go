package analyze

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/internal/testutil"
	"github.com/cwbudde/algo-synth/synth/curve"
	"github.com/cwbudde/algo-synth/synth/filter"
	"github.com/cwbudde/algo-synth/synth/gen"
	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/units"
)

func TestCapture(t *testing.T) {
	freq, _ := units.Hertz(100, units.CD)
	out := Capture(gen.NewLoop[sample.Mono](curve.Sin{}, freq), 64)
	if len(out) != 64 {
		t.Fatalf("got %d samples, want 64", len(out))
	}
	if out[0] != 0 {
		t.Fatalf("sine start: got %v, want 0", out[0])
	}
	testutil.RequireFinite(t, out)
}

func TestSpectrumRejectsEmpty(t *testing.T) {
	if _, err := Spectrum(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

// The dominant spectral bin of a sine must sit at its frequency.
func TestSpectrumPeakAtPitch(t *testing.T) {
	const wantHz = 440.0
	freq, err := units.Hertz(wantHz, units.CD)
	if err != nil {
		t.Fatalf("Hertz: %v", err)
	}
	samples := Capture(gen.NewLoop[sample.Mono](curve.Sin{}, freq), 8192)

	mag, err := Spectrum(samples)
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
	got := BinFreq(PeakBin(mag), 8192, units.CD)
	resolution := units.CD.Hz() / 8192
	if math.Abs(got-wantHz) > resolution {
		t.Fatalf("peak at %v Hz, want %v (resolution %v)", got, wantHz, resolution)
	}
}

// A lowpass far below a sine's pitch must attenuate it heavily.
func TestSpectrumShowsFilterCut(t *testing.T) {
	freq, _ := units.Hertz(8000, units.CD)
	osc := func() *gen.Loop[sample.Mono] {
		return gen.NewLoop[sample.Mono](curve.Sin{}, freq)
	}

	dry, err := Spectrum(Capture(osc(), 8192))
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}

	coeffs, err := filter.ButterworthLP(500, 4, units.CD.Hz())
	if err != nil {
		t.Fatalf("ButterworthLP: %v", err)
	}
	wet, err := Spectrum(Capture(filter.NewFiltered[sample.Mono](osc(), coeffs...), 8192))
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}

	bin := PeakBin(dry)
	if wet[bin] > dry[bin]*1e-3 {
		t.Fatalf("8 kHz through 500 Hz lowpass: %v of dry %v, want at least 60 dB down",
			wet[bin], dry[bin])
	}
}

func TestPowerSpectrumIsSquaredMagnitude(t *testing.T) {
	freq, _ := units.Hertz(1000, units.CD)
	samples := Capture(gen.NewLoop[sample.Mono](curve.Saw{}, freq), 2048)

	mag, err := Spectrum(samples)
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
	pow, err := PowerSpectrum(samples)
	if err != nil {
		t.Fatalf("PowerSpectrum: %v", err)
	}
	want := make([]float64, len(mag))
	for i, m := range mag {
		want[i] = m * m
	}
	testutil.RequireSliceNearlyEqual(t, pow, want, 1e-6)
}

func TestBinFreq(t *testing.T) {
	if got := BinFreq(0, 1024, units.CD); got != 0 {
		t.Fatalf("bin 0: got %v", got)
	}
	if got := BinFreq(512, 1024, units.CD); got != 22050 {
		t.Fatalf("bin 512: got %v, want 22050", got)
	}
}
