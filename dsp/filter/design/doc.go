// Package design computes biquad coefficients from musical parameters
// (cutoff/center frequency, Q, gain in dB) using the RBJ audio-EQ
// cookbook formulas.
//
// The design math is kept apart from the filter sections on purpose:
// [github.com/cwbudde/algo-tick/dsp/filter/biquad.Section] consumes five
// already-normalized coefficients and knows nothing about frequencies.
// All designers return normalized coefficients (a0 = 1). Out-of-range
// parameters (non-positive sample rate, frequency outside (0, Nyquist))
// fall back to the identity coefficient set.
package design
