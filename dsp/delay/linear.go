package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tick/dsp/buffer"
)

// LinearLine is a fractional-sample delay line using linear
// interpolation between the two history samples straddling the delay.
type LinearLine struct {
	ring  *buffer.Ring
	delay float64
	max   float64
	last  float64
}

// NewLinear returns a LinearLine able to delay by up to maxDelay
// samples, which may be fractional. The initial delay is maxDelay.
func NewLinear(maxDelay float64) (*LinearLine, error) {
	if maxDelay < 0 || math.IsNaN(maxDelay) || math.IsInf(maxDelay, 0) {
		return nil, fmt.Errorf("maximum delay must be >= 0: %g", maxDelay)
	}

	// One extra slot beyond ceil(max) so the interpolation neighbor at
	// floor(delay)+1 is always inside valid history.
	ring, err := buffer.New(int(math.Ceil(maxDelay)) + 2)
	if err != nil {
		return nil, err
	}

	return &LinearLine{ring: ring, delay: maxDelay, max: maxDelay}, nil
}

// SetDelay sets the current delay in samples, fractional values allowed.
// A delay that is negative, non-finite, or above the maximum fails with
// [ErrInvalidDelay] and leaves the previous delay unchanged.
func (l *LinearLine) SetDelay(n float64) error {
	if n < 0 || n > l.max || math.IsNaN(n) {
		return fmt.Errorf("delay %g with maximum %g: %w", n, l.max, ErrInvalidDelay)
	}

	l.delay = n

	return nil
}

// Delay returns the current delay in samples.
func (l *LinearLine) Delay() float64 {
	return l.delay
}

// MaxDelay returns the maximum delay in samples.
func (l *LinearLine) MaxDelay() float64 {
	return l.max
}

// ProcessSample writes x into history and returns the linearly
// interpolated sample at the current fractional delay.
func (l *LinearLine) ProcessSample(x float64) float64 {
	l.ring.Write(x)

	y, _ := l.ring.ReadInterpolated(l.delay) // offset validated by SetDelay
	l.last = y

	return y
}

// LastOut returns the most recently computed output sample.
func (l *LinearLine) LastOut() float64 {
	return l.last
}

// TapOut returns the interpolated history sample at a fractional offset
// without advancing the line.
func (l *LinearLine) TapOut(offset float64) (float64, error) {
	return l.ring.ReadInterpolated(offset)
}

// Reset zero-fills the history and leaves the delay length unchanged.
func (l *LinearLine) Reset() {
	l.ring.Reset()
	l.last = 0
}
