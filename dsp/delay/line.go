package delay

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-tick/dsp/buffer"
)

// ErrInvalidDelay is returned when a requested delay is negative or
// exceeds the maximum configured at construction.
var ErrInvalidDelay = errors.New("delay outside configured range")

// Line is an integer-sample delay line with a fixed maximum delay.
type Line struct {
	ring  *buffer.Ring
	delay int
	max   int
	last  float64
}

// New returns a Line able to delay by up to maxDelay samples. The
// initial delay is maxDelay.
func New(maxDelay int) (*Line, error) {
	if maxDelay < 0 {
		return nil, fmt.Errorf("maximum delay must be >= 0: %d", maxDelay)
	}

	ring, err := buffer.New(maxDelay + 1)
	if err != nil {
		return nil, err
	}

	return &Line{ring: ring, delay: maxDelay, max: maxDelay}, nil
}

// SetDelay sets the current delay in samples. A delay that is negative
// or above the maximum fails with [ErrInvalidDelay] and leaves the
// previous delay unchanged. History is never cleared by a delay change:
// previously written samples stay valid and become reachable or
// unreachable as the read offset moves.
func (l *Line) SetDelay(n int) error {
	if n < 0 || n > l.max {
		return fmt.Errorf("delay %d with maximum %d: %w", n, l.max, ErrInvalidDelay)
	}

	l.delay = n

	return nil
}

// Delay returns the current delay in samples.
func (l *Line) Delay() int {
	return l.delay
}

// MaxDelay returns the maximum delay in samples.
func (l *Line) MaxDelay() int {
	return l.max
}

// ProcessSample writes x into history and returns the sample delayed by
// the current delay. With delay 0 the just-written sample comes straight
// back out.
func (l *Line) ProcessSample(x float64) float64 {
	l.ring.Write(x)

	y, _ := l.ring.Read(l.delay) // offset validated by SetDelay
	l.last = y

	return y
}

// LastOut returns the most recently computed output sample.
func (l *Line) LastOut() float64 {
	return l.last
}

// TapOut returns the history sample offset writes ago without advancing
// the line. Offsets outside [0, maxDelay] fail with
// [buffer.ErrOutOfRange].
func (l *Line) TapOut(offset int) (float64, error) {
	return l.ring.Read(offset)
}

// TapIn overwrites the history sample offset writes ago.
func (l *Line) TapIn(value float64, offset int) error {
	return l.ring.Set(offset, value)
}

// AddTo adds value to the history sample offset writes ago and returns
// the new sample value. Feedback-network topologies use this to sum into
// a shared delay path.
func (l *Line) AddTo(value float64, offset int) (float64, error) {
	current, err := l.ring.Read(offset)
	if err != nil {
		return 0, err
	}

	sum := current + value
	if err := l.ring.Set(offset, sum); err != nil {
		return 0, err
	}

	return sum, nil
}

// Reset zero-fills the history and leaves the delay length unchanged.
func (l *Line) Reset() {
	l.ring.Reset()
	l.last = 0
}
