// Command synthdemo renders a short demo patch to a WAV file.
//
// The patch is a single enveloped oscillator through a Butterworth lowpass,
// panned into the stereo field.
//
// Usage:
//
//	synthdemo [flags]
//
// Examples:
//
//	synthdemo -out sine.wav
//	synthdemo -wave saw -freq 110 -cutoff 800 -out bass.wav
//	synthdemo -wave square -dur 2.5 -pan -0.5 -out left.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cwbudde/algo-synth/synth/control"
	"github.com/cwbudde/algo-synth/synth/curve"
	"github.com/cwbudde/algo-synth/synth/effect"
	"github.com/cwbudde/algo-synth/synth/filter"
	"github.com/cwbudde/algo-synth/synth/gen"
	"github.com/cwbudde/algo-synth/synth/render"
	"github.com/cwbudde/algo-synth/synth/route"
	"github.com/cwbudde/algo-synth/synth/sample"
	"github.com/cwbudde/algo-synth/synth/units"
	"github.com/cwbudde/algo-synth/wav"
)

var waveforms = map[string]curve.Curve{
	"sine":     curve.Sin{},
	"saw":      curve.Saw{},
	"square":   curve.Sq{},
	"triangle": curve.Tri{},
}

func main() {
	var (
		out     = flag.String("out", "demo.wav", "output WAV file")
		wave    = flag.String("wave", "sine", "waveform: sine, saw, square, triangle")
		freqHz  = flag.Float64("freq", 220, "oscillator frequency in Hz")
		durSec  = flag.Float64("dur", 2, "duration in seconds")
		cutoff  = flag.Float64("cutoff", 2000, "lowpass cutoff in Hz")
		pan     = flag.Float64("pan", 0, "stereo position in [-1,1]")
		gain    = flag.Float64("gain", 0.8, "output gain")
		rateHz  = flag.Uint("rate", uint(units.CD), "sample rate in Hz")
		verbose = flag.Bool("v", false, "log patch details")
	)
	flag.Parse()

	if err := run(*out, *wave, *freqHz, *durSec, *cutoff, *pan, *gain, units.SampleRate(*rateHz), *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "synthdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(out, wave string, freqHz, durSec, cutoff, pan, gain float64, rate units.SampleRate, verbose bool) error {
	crv, ok := waveforms[wave]
	if !ok {
		return fmt.Errorf("unknown waveform %q", wave)
	}
	freq, err := units.Hertz(freqHz, rate)
	if err != nil {
		return err
	}
	length, err := units.Seconds(durSec, rate)
	if err != nil {
		return err
	}

	// Envelope times proportional to the note length, releasing in the
	// final quarter.
	attack, err := units.Seconds(durSec*0.05, rate)
	if err != nil {
		return err
	}
	decay, err := units.Seconds(durSec*0.2, rate)
	if err != nil {
		return err
	}
	releaseAt := durSec * 0.75
	release, err := units.Seconds(durSec*0.25, rate)
	if err != nil {
		return err
	}
	env, err := control.NewADSR(attack, decay, 0.7, release)
	if err != nil {
		return err
	}

	coeffs, err := filter.ButterworthLP(cutoff, 4, rate.Hz())
	if err != nil {
		return err
	}

	voice := effect.NewTremolo[sample.Mono](
		gen.NewLoop[sample.Mono](crv, freq), env)
	filtered := filter.NewFiltered[sample.Mono](voice, coeffs...)
	panned, err := route.NewPan(effect.NewVolume[sample.Mono](filtered, gain), pan, route.LawPower)
	if err != nil {
		return err
	}

	sink, err := wav.NewSink[sample.Stereo](out, rate, 16)
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("rendering %s %g Hz for %gs at %d Hz to %s", wave, freqHz, durSec, rate, out)
	}

	// Render in two spans so the release starts at the right time.
	head, err := units.Seconds(releaseAt, rate)
	if err != nil {
		return err
	}
	if err := render.Length[sample.Stereo](panned, head, sink); err != nil {
		return err
	}
	env.Release()
	if err := render.Length[sample.Stereo](panned, length.Sub(head), sink); err != nil {
		return err
	}

	if err := sink.Close(); err != nil {
		return err
	}
	if verbose {
		log.Printf("wrote %d frames", length.Int())
	}
	return nil
}
