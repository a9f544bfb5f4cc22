package envelope

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned for negative time constants or a
// non-positive sample rate.
var ErrInvalidParameter = errors.New("invalid envelope parameter")

// Mode controls how the detector derives the magnitude it follows.
type Mode int

const (
	// ModePeak follows the absolute value of the input.
	ModePeak Mode = iota
	// ModeRMS follows the squared input. The detector output is then
	// the smoothed square; callers wanting true RMS take the square
	// root at the boundary.
	ModeRMS
)

// Detector is an envelope follower with asymmetric one-pole smoothing.
// The envelope moves toward the input magnitude using the attack gain
// while the magnitude exceeds it, and the release gain otherwise.
type Detector struct {
	mode        Mode
	attackGain  float64
	releaseGain float64
	envelope    float64
}

// NewDetector returns a Detector in the given mode with instant attack
// and release. Configure sets the actual time constants.
func NewDetector(mode Mode) *Detector {
	return &Detector{mode: mode}
}

// Configure derives both smoothing gains from time constants in seconds
// and the sample rate in Hz, using gain = exp(-1/(t*fs)). A zero time
// yields an instant (gain 0) response. Negative times or a non-positive
// sample rate fail with [ErrInvalidParameter] and leave the previous
// gains unchanged.
func (d *Detector) Configure(attackSec, releaseSec, sampleRate float64) error {
	if attackSec < 0 || math.IsNaN(attackSec) {
		return fmt.Errorf("attack time %g: %w", attackSec, ErrInvalidParameter)
	}
	if releaseSec < 0 || math.IsNaN(releaseSec) {
		return fmt.Errorf("release time %g: %w", releaseSec, ErrInvalidParameter)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("sample rate %g: %w", sampleRate, ErrInvalidParameter)
	}

	d.attackGain = smoothingGain(attackSec * sampleRate)
	d.releaseGain = smoothingGain(releaseSec * sampleRate)

	return nil
}

// smoothingGain converts a time constant in samples to a one-pole gain.
func smoothingGain(samples float64) float64 {
	if samples <= 0 {
		return 0
	}

	return math.Exp(-1 / samples)
}

// ProcessSample feeds one input sample and returns the updated envelope.
// The envelope is non-negative and moves monotonically toward the input
// magnitude at the rate of whichever gain is active.
func (d *Detector) ProcessSample(x float64) float64 {
	var magnitude float64
	if d.mode == ModeRMS {
		magnitude = x * x
	} else {
		magnitude = math.Abs(x)
	}

	gain := d.releaseGain
	if magnitude > d.envelope {
		gain = d.attackGain
	}

	d.envelope = magnitude + gain*(d.envelope-magnitude)

	return d.envelope
}

// Envelope returns the current envelope value without advancing state.
func (d *Detector) Envelope() float64 {
	return d.envelope
}

// Mode returns the configured magnitude mode.
func (d *Detector) Mode() Mode {
	return d.mode
}

// AttackGain returns the derived attack smoothing gain.
func (d *Detector) AttackGain() float64 {
	return d.attackGain
}

// ReleaseGain returns the derived release smoothing gain.
func (d *Detector) ReleaseGain() float64 {
	return d.releaseGain
}

// Reset zeroes the envelope without touching the gains.
func (d *Detector) Reset() {
	d.envelope = 0
}
