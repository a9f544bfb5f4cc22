// Package envelope provides signal-level followers and envelope
// generators.
//
// [Detector] tracks a smoothed magnitude estimate of its input using
// asymmetric one-pole attack/release smoothing; it is the control signal
// source for compressors, gates and meters. [LeakyIntegrator] is the
// underlying single-gain averager. [AR] and [ADSR] are gate-driven
// envelope generators producing a control signal without any input.
//
// All coefficients derive from time constants and an explicit sample
// rate passed at configuration time; nothing here reads ambient global
// state, so instances stay independently testable.
package envelope
