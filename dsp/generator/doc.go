// Package generator provides per-sample signal sources: trivially sampled
// oscillators (sine, square, sawtooth, triangle), seeded white noise, and
// batch helpers for rendering whole buffers.
//
// The oscillators keep phase as a running accumulator rather than deriving
// it from a sample index, so frequency can change at any sample without a
// phase jump. They sample the ideal waveform directly; the non-sinusoidal
// shapes alias above a few kilohertz and are meant for control signals and
// test stimuli rather than band-limited synthesis.
package generator
