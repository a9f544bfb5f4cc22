package envelope

import "fmt"

// LeakyIntegrator averages a signal with a single feedback gain. It is a
// one-pole filter whose input and feedback gains are complements
// (b0 = 1 - a1), which reduces the recurrence to:
//
//	y[n] = x[n] + alpha*(y[n-1] - x[n])
type LeakyIntegrator struct {
	alpha float64
	y1    float64
}

// NewLeakyIntegrator returns an integrator with alpha 0, which passes
// the input through unchanged.
func NewLeakyIntegrator() *LeakyIntegrator {
	return &LeakyIntegrator{}
}

// Alpha returns the feedback gain.
func (l *LeakyIntegrator) Alpha() float64 {
	return l.alpha
}

// SetAlpha sets the feedback gain, which must lie in [0, 1). Values
// outside that range fail with [ErrInvalidParameter] and leave the
// current gain unchanged; at alpha = 1 the complement relation would
// zero the input gain and the integrator could never move.
func (l *LeakyIntegrator) SetAlpha(alpha float64) error {
	if alpha < 0 || alpha >= 1 {
		return fmt.Errorf("alpha %g not in [0, 1): %w", alpha, ErrInvalidParameter)
	}

	l.alpha = alpha

	return nil
}

// ProcessSample integrates one input sample and returns the average.
func (l *LeakyIntegrator) ProcessSample(x float64) float64 {
	l.y1 = x + l.alpha*(l.y1-x)

	return l.y1
}

// LastOut returns the most recently computed output sample.
func (l *LeakyIntegrator) LastOut() float64 {
	return l.y1
}

// Reset clears the integrator memory to zero.
func (l *LeakyIntegrator) Reset() {
	l.y1 = 0
}
