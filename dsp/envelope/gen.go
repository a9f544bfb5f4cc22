package envelope

import (
	"fmt"
	"math"
)

// genState tracks which segment a gate-driven envelope generator is in.
type genState int

const (
	stateIdle genState = iota
	stateAttack
	stateDecay
	stateSustain
	stateRelease
)

// snapEpsilon is the distance from an exponential segment's target at
// which the segment is considered finished.
const snapEpsilon = 1e-4

// AR is a gate-driven attack/release envelope generator. The envelope
// rises exponentially toward 1 while the gate is on and decays
// exponentially toward 0 after the gate closes.
type AR struct {
	sampleRate  float64
	state       genState
	value       float64
	attackGain  float64
	releaseGain float64
}

// NewAR returns an idle AR generator with instant attack and release.
func NewAR(sampleRate float64) (*AR, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("sample rate %g: %w", sampleRate, ErrInvalidParameter)
	}

	return &AR{sampleRate: sampleRate}, nil
}

// SetAttack sets the attack time in seconds.
func (a *AR) SetAttack(sec float64) error {
	if sec < 0 || math.IsNaN(sec) {
		return fmt.Errorf("attack time %g: %w", sec, ErrInvalidParameter)
	}

	a.attackGain = smoothingGain(sec * a.sampleRate)

	return nil
}

// SetRelease sets the release time in seconds.
func (a *AR) SetRelease(sec float64) error {
	if sec < 0 || math.IsNaN(sec) {
		return fmt.Errorf("release time %g: %w", sec, ErrInvalidParameter)
	}

	a.releaseGain = smoothingGain(sec * a.sampleRate)

	return nil
}

// GateOn starts the attack segment.
func (a *AR) GateOn() {
	a.state = stateAttack
}

// GateOff starts the release segment unless the envelope is idle.
func (a *AR) GateOff() {
	if a.state != stateIdle {
		a.state = stateRelease
	}
}

// Tick advances the envelope by one sample and returns its value.
func (a *AR) Tick() float64 {
	switch a.state {
	case stateAttack:
		a.value = 1 + a.attackGain*(a.value-1)
		if a.value >= 1-snapEpsilon {
			a.value = 1
			a.state = stateSustain
		}
	case stateRelease:
		a.value *= a.releaseGain
		if a.value <= snapEpsilon {
			a.value = 0
			a.state = stateIdle
		}
	case stateIdle, stateSustain, stateDecay:
	}

	return a.value
}

// LastOut returns the current envelope value without advancing it.
func (a *AR) LastOut() float64 {
	return a.value
}

// Active reports whether the envelope is producing a non-idle segment.
func (a *AR) Active() bool {
	return a.state != stateIdle
}

// Reset returns the generator to idle with a zero envelope.
func (a *AR) Reset() {
	a.state = stateIdle
	a.value = 0
}

// ADSR is a gate-driven attack/decay/sustain/release envelope generator
// with linear segment rates.
type ADSR struct {
	sampleRate float64
	state      genState
	value      float64

	attackSec    float64
	decaySec     float64
	sustainLevel float64
	releaseSec   float64

	attackRate  float64
	decayRate   float64
	releaseRate float64
}

// NewADSR returns an idle ADSR generator with instant segments and a
// sustain level of 1.
func NewADSR(sampleRate float64) (*ADSR, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("sample rate %g: %w", sampleRate, ErrInvalidParameter)
	}

	g := &ADSR{sampleRate: sampleRate, sustainLevel: 1}
	g.recalculate()

	return g, nil
}

// SetAttack sets the attack time in seconds.
func (g *ADSR) SetAttack(sec float64) error {
	if sec < 0 || math.IsNaN(sec) {
		return fmt.Errorf("attack time %g: %w", sec, ErrInvalidParameter)
	}

	g.attackSec = sec
	g.recalculate()

	return nil
}

// SetDecay sets the decay time in seconds.
func (g *ADSR) SetDecay(sec float64) error {
	if sec < 0 || math.IsNaN(sec) {
		return fmt.Errorf("decay time %g: %w", sec, ErrInvalidParameter)
	}

	g.decaySec = sec
	g.recalculate()

	return nil
}

// SetSustain sets the sustain level in [0, 1]. Decay and release rates
// depend on the sustain level and are recomputed.
func (g *ADSR) SetSustain(level float64) error {
	if level < 0 || level > 1 || math.IsNaN(level) {
		return fmt.Errorf("sustain level %g not in [0, 1]: %w", level, ErrInvalidParameter)
	}

	g.sustainLevel = level
	g.recalculate()

	return nil
}

// SetRelease sets the release time in seconds.
func (g *ADSR) SetRelease(sec float64) error {
	if sec < 0 || math.IsNaN(sec) {
		return fmt.Errorf("release time %g: %w", sec, ErrInvalidParameter)
	}

	g.releaseSec = sec
	g.recalculate()

	return nil
}

// recalculate derives per-sample linear rates from the stored segment
// times. Times shorter than one sample period count as one sample.
func (g *ADSR) recalculate() {
	g.attackRate = 1 / segmentSamples(g.attackSec, g.sampleRate)
	g.decayRate = (1 - g.sustainLevel) / segmentSamples(g.decaySec, g.sampleRate)
	g.releaseRate = g.sustainLevel / segmentSamples(g.releaseSec, g.sampleRate)

	// A zero sustain level would stall release; fall back to draining
	// the full range over the release time.
	if g.releaseRate == 0 {
		g.releaseRate = 1 / segmentSamples(g.releaseSec, g.sampleRate)
	}
}

func segmentSamples(sec, sampleRate float64) float64 {
	samples := sec * sampleRate
	if samples < 1 {
		return 1
	}

	return samples
}

// GateOn starts the attack segment.
func (g *ADSR) GateOn() {
	g.state = stateAttack
}

// GateOff starts the release segment unless the envelope is idle.
func (g *ADSR) GateOff() {
	if g.state != stateIdle {
		g.state = stateRelease
	}
}

// Tick advances the envelope by one sample and returns its value.
func (g *ADSR) Tick() float64 {
	switch g.state {
	case stateAttack:
		g.value += g.attackRate
		if g.value >= 1 {
			g.value = 1
			g.state = stateDecay
		}
	case stateDecay:
		g.value -= g.decayRate
		if g.value <= g.sustainLevel {
			g.value = g.sustainLevel
			g.state = stateSustain
		}
	case stateRelease:
		g.value -= g.releaseRate
		if g.value <= 0 {
			g.value = 0
			g.state = stateIdle
		}
	case stateIdle, stateSustain:
	}

	return g.value
}

// LastOut returns the current envelope value without advancing it.
func (g *ADSR) LastOut() float64 {
	return g.value
}

// Active reports whether the envelope is producing a non-idle segment.
func (g *ADSR) Active() bool {
	return g.state != stateIdle
}

// Reset returns the generator to idle with a zero envelope.
func (g *ADSR) Reset() {
	g.state = stateIdle
	g.value = 0
}
