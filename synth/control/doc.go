// Package control implements the mono signals that shape and schedule other
// nodes: multi-stage envelopes, an ADSR state machine, validated event
// sequences, arpeggios, and monophonic note tracks.
//
// All stage and event durations are measured in fixed-point sample time.
// When a stage or step boundary falls between frames, the fractional
// overshoot carries into the next one, so totals stay exact no matter how
// long a schedule runs.
package control
