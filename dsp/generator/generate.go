package generator

import (
	"fmt"
	"math"
)

// SineBuffer renders a sine wave into a fresh slice.
func SineBuffer(freqHz, amplitude, sampleRate float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}

	osc, err := NewSine(sampleRate, freqHz)
	if err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude * osc.Tick()
	}

	return out, nil
}

// NoiseBuffer renders deterministic white noise in [-amplitude, amplitude).
func NoiseBuffer(amplitude float64, seed int64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %v", amplitude)
	}

	src := NewNoise(seed)

	out := make([]float64, samples)
	for i := range out {
		out[i] = src.Tick() * amplitude
	}

	return out, nil
}

// Normalize scales data to the target peak amplitude and returns a new
// slice. Silence stays silent.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %v", targetPeak)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}

	return out, nil
}
