package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates a single DFT bin from a sample stream without
// computing a full transform, which makes it the cheap choice for tone
// detection (DTMF, pilot tones).
//
// The analyzer is stateful: Power and Magnitude reflect every sample
// processed since the last Reset. Frequency resolution follows the block
// length N; two tones need a separation of more than sampleRate/N to be
// told apart, and off-bin tones leak unless the input is windowed first.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
}

// NewGoertzel creates an analyzer for the target frequency, which must lie
// in [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel sample rate must be > 0: %v", sampleRate)
	}

	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) {
		return nil, fmt.Errorf("goertzel frequency must be in [0, sampleRate/2]: %v", frequency)
	}

	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Frequency returns the target frequency in Hz.
func (g *Goertzel) Frequency() float64 {
	return g.frequency
}

// ProcessSample feeds one sample into the analyzer.
func (g *Goertzel) ProcessSample(x float64) {
	s := x + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
}

// ProcessBlock feeds a block of samples into the analyzer.
func (g *Goertzel) ProcessBlock(buf []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range buf {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Power returns |X[k]|^2 for the accumulated block, equivalent to the
// squared magnitude of the matching DFT bin.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns |X[k]| for the accumulated block.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p < 0 {
		return 0
	}

	return math.Sqrt(p)
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}
