package onepole

import "math"

// OnePole is a single-channel first-order recursive filter:
//
//	y[n] = B0*x[n] - A1*y[n-1]
type OnePole struct {
	B0, A1 float64

	y1 float64
}

// NewOnePole returns a OnePole that passes the input through unchanged.
func NewOnePole() *OnePole {
	return &OnePole{B0: 1}
}

// SetCoefficients sets both coefficients at once.
func (f *OnePole) SetCoefficients(b0, a1 float64) {
	f.B0 = b0
	f.A1 = a1
}

// SetLowpass configures the filter as a one-pole lowpass with the given
// cutoff (Hz). Out-of-range parameters leave the coefficients unchanged.
func (f *OnePole) SetLowpass(cutoff, sampleRate float64) {
	if sampleRate <= 0 || cutoff <= 0 || cutoff >= sampleRate/2 {
		return
	}

	pole := math.Exp(-2 * math.Pi * cutoff / sampleRate)
	f.B0 = 1 - pole
	f.A1 = -pole
}

// ProcessSample filters one input sample and returns the output.
func (f *OnePole) ProcessSample(x float64) float64 {
	y := f.B0*x - f.A1*f.y1
	f.y1 = y

	return y
}

// Reset clears the output memory to zero.
func (f *OnePole) Reset() {
	f.y1 = 0
}

// LastOut returns the most recently computed output sample.
func (f *OnePole) LastOut() float64 {
	return f.y1
}

// OneZero is a single-channel first-order feedforward filter:
//
//	y[n] = B0*x[n] + B1*x[n-1]
type OneZero struct {
	B0, B1 float64

	x1 float64
	y1 float64
}

// NewOneZero returns a OneZero that passes the input through unchanged.
func NewOneZero() *OneZero {
	return &OneZero{B0: 1}
}

// SetCoefficients sets both coefficients at once.
func (f *OneZero) SetCoefficients(b0, b1 float64) {
	f.B0 = b0
	f.B1 = b1
}

// ProcessSample filters one input sample and returns the output.
func (f *OneZero) ProcessSample(x float64) float64 {
	y := f.B0*x + f.B1*f.x1
	f.x1 = x
	f.y1 = y

	return y
}

// Reset clears the input memory to zero.
func (f *OneZero) Reset() {
	f.x1 = 0
	f.y1 = 0
}

// LastOut returns the most recently computed output sample.
func (f *OneZero) LastOut() float64 {
	return f.y1
}
