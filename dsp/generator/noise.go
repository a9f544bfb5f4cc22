package generator

import (
	"fmt"
	"math/rand"
)

// Noise generates seeded uniform white noise in [-1, 1). The same seed
// always produces the same sequence.
type Noise struct {
	seed int64
	rng  *rand.Rand
	last float64
}

// NewNoise creates a white noise source with the given seed.
func NewNoise(seed int64) *Noise {
	return &Noise{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Tick generates the next sample.
func (n *Noise) Tick() float64 {
	n.last = n.rng.Float64()*2 - 1
	return n.last
}

// LastOut returns the most recently generated sample.
func (n *Noise) LastOut() float64 {
	return n.last
}

// Reset restarts the sequence from the seed.
func (n *Noise) Reset() {
	n.rng = rand.New(rand.NewSource(n.seed))
	n.last = 0
}

// Ticker is the common source contract shared by the oscillators and
// Noise.
type Ticker interface {
	Tick() float64
	LastOut() float64
	Reset()
}

// Render fills out with consecutive samples from src.
func Render(src Ticker, out []float64) {
	for i := range out {
		out[i] = src.Tick()
	}
}

// RenderN generates n samples from src into a fresh slice.
func RenderN(src Ticker, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sample count must be > 0: %d", n)
	}

	out := make([]float64, n)
	Render(src, out)

	return out, nil
}
