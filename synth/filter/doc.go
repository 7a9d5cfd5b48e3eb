// Package filter provides biquad filtering for signal trees.
//
// Design functions produce the five coefficients of a second-order section
// (a0 normalized out) from musical parameters, validating them instead of
// degrading silently: a cutoff at or beyond Nyquist or a non-positive Q is
// an error, never a clamped filter. Runtime sections keep their input and
// output history in ring buffers and process whole frames channel-wise, so
// the same section filters mono and stereo alike. Higher-order responses
// cascade sections in series.
package filter
