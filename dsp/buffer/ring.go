package buffer

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a read offset lies outside the valid
// history range [0, capacity-1].
var ErrOutOfRange = errors.New("read offset outside buffer history")

// Ring is a fixed-capacity circular store of past samples. Offset 0 is
// the most recent write, offset capacity-1 the oldest still-valid one.
type Ring struct {
	samples []float64
	write   int
}

// New returns a zero-filled Ring holding the given number of samples.
func New(capacity int) (*Ring, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ring capacity must be > 0: %d", capacity)
	}

	return &Ring{samples: make([]float64, capacity)}, nil
}

// Capacity returns the fixed number of samples the ring remembers.
func (r *Ring) Capacity() int {
	return len(r.samples)
}

// Write appends one sample, overwriting the oldest entry once the ring
// is full. It never fails.
func (r *Ring) Write(sample float64) {
	r.samples[r.write] = sample
	r.write++
	if r.write >= len(r.samples) {
		r.write = 0
	}
}

// Read returns the sample written offset writes ago. An offset outside
// [0, capacity-1] fails with [ErrOutOfRange]: wrapping past capacity
// would return already-overwritten data mislabeled as valid history.
func (r *Ring) Read(offset int) (float64, error) {
	if offset < 0 || offset >= len(r.samples) {
		return 0, fmt.Errorf("offset %d with capacity %d: %w", offset, len(r.samples), ErrOutOfRange)
	}

	return r.at(offset), nil
}

// ReadInterpolated returns the linear interpolation between the samples
// at floor(offset) and floor(offset)+1, weighted by the fractional part.
// Both straddling offsets must lie inside the valid history range unless
// the fractional part is exactly zero.
func (r *Ring) ReadInterpolated(offset float64) (float64, error) {
	if offset < 0 || offset > float64(len(r.samples)-1) {
		return 0, fmt.Errorf("fractional offset %g with capacity %d: %w", offset, len(r.samples), ErrOutOfRange)
	}

	low := int(math.Floor(offset))
	frac := offset - float64(low)

	if frac == 0 {
		return r.at(low), nil
	}

	if low+1 >= len(r.samples) {
		return 0, fmt.Errorf("fractional offset %g with capacity %d: %w", offset, len(r.samples), ErrOutOfRange)
	}

	a := r.at(low)
	b := r.at(low + 1)

	return a + frac*(b-a), nil
}

// Reset zero-fills the history and rewinds the write cursor.
func (r *Ring) Reset() {
	for i := range r.samples {
		r.samples[i] = 0
	}
	r.write = 0
}

// at returns the sample at a validated offset.
func (r *Ring) at(offset int) float64 {
	idx := r.write - 1 - offset
	if idx < 0 {
		idx += len(r.samples)
	}

	return r.samples[idx]
}

// set overwrites the sample at a validated offset. Used by delay taps.
func (r *Ring) set(offset int, value float64) {
	idx := r.write - 1 - offset
	if idx < 0 {
		idx += len(r.samples)
	}

	r.samples[idx] = value
}

// Set overwrites the sample written offset writes ago. Like [Ring.Read],
// offsets outside the valid history range fail with [ErrOutOfRange].
func (r *Ring) Set(offset int, value float64) error {
	if offset < 0 || offset >= len(r.samples) {
		return fmt.Errorf("offset %d with capacity %d: %w", offset, len(r.samples), ErrOutOfRange)
	}

	r.set(offset, value)

	return nil
}
