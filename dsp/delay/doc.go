// Package delay implements integer and fractional sample delay lines.
//
// [Line] delays by a whole number of samples; [LinearLine] supports
// fractional delays via linear interpolation between neighboring history
// samples. Both follow a write-then-read convention: ProcessSample first
// writes the input into history, then reads at the current delay, so a
// Line with delay 0 is an exact pass-through.
//
// The maximum delay is fixed at construction and backs a single
// allocation; SetDelay above the maximum fails instead of clamping or
// reallocating. Changing the delay never clears accumulated history.
package delay
