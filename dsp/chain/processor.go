package chain

// Processor is the single-sample processing contract. Implementations keep
// whatever internal state they need between calls; Reset clears that state
// without touching configuration.
type Processor interface {
	ProcessSample(x float64) float64
	Reset()
}

// ProcessBlock runs p over buf in-place, one sample at a time.
func ProcessBlock(p Processor, buf []float64) {
	for i, x := range buf {
		buf[i] = p.ProcessSample(x)
	}
}

// Gain scales every sample by a constant factor.
type Gain struct {
	Factor float64
}

// NewGain creates a Gain with the given linear factor.
func NewGain(factor float64) *Gain {
	return &Gain{Factor: factor}
}

// ProcessSample scales x by the gain factor.
func (g *Gain) ProcessSample(x float64) float64 {
	return g.Factor * x
}

// Reset is a no-op; Gain is stateless.
func (g *Gain) Reset() {}
