package biquad

// TransposedSection is a single biquad filter implementing the transposed
// Direct Form II realization:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
//
// Compared to [Section] it holds only two state registers and accumulates
// less rounding error, at the cost of unbounded intermediate sums.
type TransposedSection struct {
	Coefficients

	d0, d1 float64
}

// NewTransposedSection returns a TransposedSection initialized with the
// given coefficients and zero state.
func NewTransposedSection(c Coefficients) *TransposedSection {
	return &TransposedSection{Coefficients: c}
}

// SetCoefficients replaces all five coefficients at once, keeping state.
func (s *TransposedSection) SetCoefficients(c Coefficients) {
	s.Coefficients = c
}

// ProcessSample filters one input sample and returns the output.
func (s *TransposedSection) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *TransposedSection) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// Reset clears the delay registers to zero without touching coefficients.
func (s *TransposedSection) Reset() {
	s.d0, s.d1 = 0, 0
}

// State returns the current delay-register state [d0, d1].
func (s *TransposedSection) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-register state.
func (s *TransposedSection) SetState(state [2]float64) {
	s.d0, s.d1 = state[0], state[1]
}
