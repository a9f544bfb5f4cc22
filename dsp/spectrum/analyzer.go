package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-tick/dsp/buffer"
	"github.com/cwbudde/algo-tick/dsp/core"
	"github.com/cwbudde/algo-tick/dsp/window"
)

// Analyzer is a streaming magnitude spectrum analyzer. Samples are pushed
// one at a time; once a full frame has accumulated the analyzer takes a
// windowed FFT every hop interval and exposes the single-sided magnitude
// spectrum in dB, optionally smoothed across frames.
type Analyzer struct {
	plan *algofft.Plan[complex128]
	ring *buffer.Ring

	win     []float64
	winGain float64

	fftSize int
	hop     int

	sampleRate float64
	smoothing  float64

	in  []complex128
	out []complex128
	db  []float64

	filled int
	toHop  int
	ready  bool
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*analyzerConfig)

type analyzerConfig struct {
	windowType window.Type
	overlap    float64
	smoothing  float64
}

// WithWindow selects the analysis window. The default is Blackman-Harris.
func WithWindow(t window.Type) AnalyzerOption {
	return func(c *analyzerConfig) { c.windowType = t }
}

// WithOverlap sets the frame overlap fraction, clamped to [0, 0.95].
// The default is 0.5.
func WithOverlap(overlap float64) AnalyzerOption {
	return func(c *analyzerConfig) { c.overlap = core.Clamp(overlap, 0, 0.95) }
}

// WithSmoothing sets the cross-frame smoothing factor, clamped to
// [0, 0.95]. Zero (the default) disables smoothing.
func WithSmoothing(smoothing float64) AnalyzerOption {
	return func(c *analyzerConfig) { c.smoothing = core.Clamp(smoothing, 0, 0.95) }
}

// NewAnalyzer creates an analyzer for the given FFT size and sample rate.
func NewAnalyzer(fftSize int, sampleRate float64, opts ...AnalyzerOption) (*Analyzer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("analyzer sample rate must be > 0: %v", sampleRate)
	}

	cfg := analyzerConfig{
		windowType: window.TypeBlackmanHarris,
		overlap:    0.5,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("analyzer fft plan: %w", err)
	}

	win, err := window.Generate(cfg.windowType, fftSize, window.WithPeriodic())
	if err != nil {
		return nil, fmt.Errorf("analyzer window: %w", err)
	}

	ring, err := buffer.New(fftSize)
	if err != nil {
		return nil, fmt.Errorf("analyzer ring: %w", err)
	}

	sum := 0.0
	for _, w := range win {
		sum += w
	}

	hop := int(math.Round(float64(fftSize) * (1 - cfg.overlap)))
	if hop < 1 {
		hop = 1
	}

	a := &Analyzer{
		plan:       plan,
		ring:       ring,
		win:        win,
		winGain:    sum / float64(fftSize),
		fftSize:    fftSize,
		hop:        hop,
		sampleRate: sampleRate,
		smoothing:  cfg.smoothing,
		in:         make([]complex128, fftSize),
		out:        make([]complex128, fftSize),
		db:         make([]float64, fftSize/2+1),
	}

	for i := range a.db {
		a.db[i] = core.MinDB
	}

	return a, nil
}

// FFTSize returns the analysis frame length.
func (a *Analyzer) FFTSize() int {
	return a.fftSize
}

// HopSize returns the number of samples between analysis frames.
func (a *Analyzer) HopSize() int {
	return a.hop
}

// BinCount returns the number of single-sided spectrum bins.
func (a *Analyzer) BinCount() int {
	return len(a.db)
}

// BinFrequency returns the center frequency of bin k in Hz.
func (a *Analyzer) BinFrequency(k int) float64 {
	return float64(k) * a.sampleRate / float64(a.fftSize)
}

// Ready reports whether at least one full frame has been analyzed.
func (a *Analyzer) Ready() bool {
	return a.ready
}

// ProcessSample pushes one sample into the analyzer.
func (a *Analyzer) ProcessSample(x float64) {
	a.ring.Write(x)

	if a.filled < a.fftSize {
		a.filled++
	}

	a.toHop++
	if a.filled < a.fftSize || a.toHop < a.hop {
		return
	}

	a.toHop = 0
	a.analyzeFrame()
}

// ProcessBlock pushes a block of samples into the analyzer.
func (a *Analyzer) ProcessBlock(buf []float64) {
	for _, x := range buf {
		a.ProcessSample(x)
	}
}

// MagnitudeDB copies the current single-sided spectrum in dB into dst,
// which is grown as needed, and returns it. Values are floored at
// core.MinDB; before the first frame every bin reads as the floor.
func (a *Analyzer) MagnitudeDB(dst []float64) []float64 {
	if cap(dst) < len(a.db) {
		dst = make([]float64, len(a.db))
	}

	dst = dst[:len(a.db)]
	copy(dst, a.db)

	return dst
}

// PeakBin returns the bin with the highest magnitude and its level in dB.
func (a *Analyzer) PeakBin() (int, float64) {
	best := 0
	for k, v := range a.db {
		if v > a.db[best] {
			best = k
		}
	}

	return best, a.db[best]
}

// Reset clears the sample history and the spectrum.
func (a *Analyzer) Reset() {
	a.ring.Reset()
	a.filled = 0
	a.toHop = 0
	a.ready = false

	for i := range a.db {
		a.db[i] = core.MinDB
	}
}

func (a *Analyzer) analyzeFrame() {
	// Oldest sample first.
	for i := 0; i < a.fftSize; i++ {
		s, err := a.ring.Read(a.fftSize - 1 - i)
		if err != nil {
			return
		}

		a.in[i] = complex(s*a.win[i], 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return
	}

	// Normalize by frame length and coherent window gain, and double the
	// interior bins to fold negative frequencies into the single-sided
	// view.
	norm := float64(a.fftSize) * math.Max(a.winGain, 1e-12)

	last := len(a.db) - 1
	for k := 0; k <= last; k++ {
		mag := magnitudeOf(a.out[k]) / norm
		if k > 0 && k < last {
			mag *= 2
		}

		valDB := core.LinearToDBClamped(mag)

		if !a.ready {
			a.db[k] = valDB
			continue
		}

		a.db[k] = a.smoothing*a.db[k] + (1-a.smoothing)*valDB
	}

	a.ready = true
}

func magnitudeOf(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
