// Package spectrum provides frequency-domain views of sample streams.
//
// Analyzer is the main entry point: a streaming, windowed FFT magnitude
// analyzer fed one sample at a time. The package also exposes bin-level
// helpers (magnitude, power, phase, unwrapping) for callers that run their
// own transforms, and a Goertzel analyzer for single-frequency detection
// without a full FFT.
package spectrum
