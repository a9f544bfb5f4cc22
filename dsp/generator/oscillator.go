package generator

import (
	"errors"
	"fmt"
	"math"
)

var errInvalidFrequency = errors.New("frequency outside valid range")

const twoPi = 2 * math.Pi

// phaseAccumulator is the shared oscillator core. Phase advances by
// 2*pi*frequency/sampleRate per tick and wraps into [0, 2*pi). Negative
// frequencies are allowed for FM use.
type phaseAccumulator struct {
	sampleRate float64
	frequency  float64
	phase      float64
	increment  float64
	last       float64
}

func newPhaseAccumulator(sampleRate, frequency float64) (phaseAccumulator, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return phaseAccumulator{}, fmt.Errorf("sample rate must be > 0: %v", sampleRate)
	}

	acc := phaseAccumulator{sampleRate: sampleRate}
	if err := acc.SetFrequency(frequency); err != nil {
		return phaseAccumulator{}, err
	}

	return acc, nil
}

// SetFrequency updates the oscillator frequency without disturbing phase.
func (a *phaseAccumulator) SetFrequency(freq float64) error {
	if math.Abs(freq) >= a.sampleRate || math.IsNaN(freq) {
		return fmt.Errorf("%w: %v at sample rate %v", errInvalidFrequency, freq, a.sampleRate)
	}

	a.frequency = freq
	a.increment = twoPi * freq / a.sampleRate

	return nil
}

// Frequency returns the current frequency.
func (a *phaseAccumulator) Frequency() float64 {
	return a.frequency
}

// Phase returns the phase of the next sample, in [0, 2*pi).
func (a *phaseAccumulator) Phase() float64 {
	return a.phase
}

// SetPhase sets the phase of the next sample; the value is wrapped into
// [0, 2*pi). Non-finite phases are rejected.
func (a *phaseAccumulator) SetPhase(phase float64) error {
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		return fmt.Errorf("phase must be finite: %v", phase)
	}

	a.phase = wrapPhase(phase)

	return nil
}

// LastOut returns the most recently generated sample.
func (a *phaseAccumulator) LastOut() float64 {
	return a.last
}

// Reset returns the phase to zero. Frequency is kept.
func (a *phaseAccumulator) Reset() {
	a.phase = 0
	a.last = 0
}

// advance returns the current phase and steps the accumulator.
func (a *phaseAccumulator) advance() float64 {
	p := a.phase

	a.phase = wrapPhase(a.phase + a.increment)

	return p
}

func wrapPhase(p float64) float64 {
	p = math.Mod(p, twoPi)
	if p < 0 {
		p += twoPi
	}

	return p
}

// Sine is a trivially sampled sine oscillator.
type Sine struct {
	phaseAccumulator
}

// NewSine creates a sine oscillator at the given frequency with zero phase.
func NewSine(sampleRate, frequency float64) (*Sine, error) {
	acc, err := newPhaseAccumulator(sampleRate, frequency)
	if err != nil {
		return nil, err
	}

	return &Sine{phaseAccumulator: acc}, nil
}

// Tick generates the next sample.
func (o *Sine) Tick() float64 {
	o.last = math.Sin(o.advance())
	return o.last
}

// Square is a trivially sampled square oscillator with adjustable pulse
// width.
type Square struct {
	phaseAccumulator
	pulseWidth float64
}

// NewSquare creates a square oscillator at the given frequency with a 50%
// duty cycle and zero phase.
func NewSquare(sampleRate, frequency float64) (*Square, error) {
	acc, err := newPhaseAccumulator(sampleRate, frequency)
	if err != nil {
		return nil, err
	}

	return &Square{phaseAccumulator: acc, pulseWidth: 0.5}, nil
}

// SetPulseWidth sets the duty cycle as a fraction in (0, 1).
func (o *Square) SetPulseWidth(width float64) error {
	if !(width > 0 && width < 1) {
		return fmt.Errorf("pulse width must be in (0, 1): %v", width)
	}

	o.pulseWidth = width

	return nil
}

// PulseWidth returns the duty cycle fraction.
func (o *Square) PulseWidth() float64 {
	return o.pulseWidth
}

// Tick generates the next sample: +1 for the high part of the cycle, -1
// for the rest.
func (o *Square) Tick() float64 {
	p := o.advance()

	if p < o.pulseWidth*twoPi {
		o.last = 1
	} else {
		o.last = -1
	}

	return o.last
}

// Saw is a trivially sampled rising sawtooth oscillator.
type Saw struct {
	phaseAccumulator
}

// NewSaw creates a sawtooth oscillator at the given frequency with zero
// phase.
func NewSaw(sampleRate, frequency float64) (*Saw, error) {
	acc, err := newPhaseAccumulator(sampleRate, frequency)
	if err != nil {
		return nil, err
	}

	return &Saw{phaseAccumulator: acc}, nil
}

// Tick generates the next sample, rising from -1 to +1 over each cycle.
func (o *Saw) Tick() float64 {
	p := o.advance()

	o.last = p/math.Pi - 1
	return o.last
}

// Triangle is a trivially sampled triangle oscillator.
type Triangle struct {
	phaseAccumulator
}

// NewTriangle creates a triangle oscillator at the given frequency with
// zero phase.
func NewTriangle(sampleRate, frequency float64) (*Triangle, error) {
	acc, err := newPhaseAccumulator(sampleRate, frequency)
	if err != nil {
		return nil, err
	}

	return &Triangle{phaseAccumulator: acc}, nil
}

// Tick generates the next sample. The waveform starts at 0, peaks at +1 a
// quarter cycle in, and reaches -1 at three quarters.
func (o *Triangle) Tick() float64 {
	p := o.advance() / twoPi

	// Fold the unit ramp into a triangle.
	v := 4 * p
	switch {
	case v < 1:
		o.last = v
	case v < 3:
		o.last = 2 - v
	default:
		o.last = v - 4
	}

	return o.last
}
