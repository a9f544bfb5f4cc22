package chain

import (
	"fmt"

	"github.com/cwbudde/algo-tick/dsp/core"
	"github.com/cwbudde/algo-tick/dsp/delay"
	"github.com/cwbudde/algo-tick/dsp/envelope"
	"github.com/cwbudde/algo-tick/dsp/filter/biquad"
	"github.com/cwbudde/algo-tick/dsp/filter/design"
	"github.com/cwbudde/algo-tick/dsp/filter/onepole"
)

// gainRuntime handles the "gain" node type.
type gainRuntime struct {
	factor float64
}

func (r *gainRuntime) Configure(_ Context, p Params) error {
	r.factor = core.DBToLinear(core.Clamp(p.GetNum("gainDb", 0), -96, 24))
	return nil
}

func (r *gainRuntime) ProcessSample(x float64) float64 {
	return r.factor * x
}

func (r *gainRuntime) Reset() {}

// biquadRuntime handles the "biquad" node type. The filter shape comes from
// the "shape" string parameter; changing coefficients keeps the section
// state so the runtime can be retuned mid-stream.
type biquadRuntime struct {
	sec *biquad.Section
}

func (r *biquadRuntime) Configure(ctx Context, p Params) error {
	shape := p.GetStr("shape", "lowpass")
	freq := p.GetNum("freqHz", 1000)
	q := p.GetNum("q", 0.7071)
	gainDB := p.GetNum("gainDb", 0)

	var c biquad.Coefficients

	switch shape {
	case "lowpass":
		c = design.Lowpass(freq, q, ctx.SampleRate)
	case "highpass":
		c = design.Highpass(freq, q, ctx.SampleRate)
	case "bandpass":
		c = design.Bandpass(freq, q, ctx.SampleRate)
	case "notch":
		c = design.Notch(freq, q, ctx.SampleRate)
	case "allpass":
		c = design.Allpass(freq, q, ctx.SampleRate)
	case "peak":
		c = design.Peak(freq, q, gainDB, ctx.SampleRate)
	case "lowshelf":
		c = design.LowShelf(freq, q, gainDB, ctx.SampleRate)
	case "highshelf":
		c = design.HighShelf(freq, q, gainDB, ctx.SampleRate)
	default:
		return fmt.Errorf("chain: unknown biquad shape %q", shape)
	}

	if r.sec == nil {
		r.sec = biquad.NewSection(c)
	} else {
		r.sec.SetCoefficients(c)
	}

	return nil
}

func (r *biquadRuntime) ProcessSample(x float64) float64 {
	return r.sec.ProcessSample(x)
}

func (r *biquadRuntime) Reset() {
	if r.sec != nil {
		r.sec.Reset()
	}
}

// onepoleRuntime handles the "lowpass1" node type.
type onepoleRuntime struct {
	f *onepole.OnePole
}

func (r *onepoleRuntime) Configure(ctx Context, p Params) error {
	if r.f == nil {
		r.f = onepole.NewOnePole()
	}

	freq := core.Clamp(p.GetNum("freqHz", 1000), 1, ctx.SampleRate*0.49)
	r.f.SetLowpass(freq, ctx.SampleRate)

	return nil
}

func (r *onepoleRuntime) ProcessSample(x float64) float64 {
	return r.f.ProcessSample(x)
}

func (r *onepoleRuntime) Reset() {
	if r.f != nil {
		r.f.Reset()
	}
}

// delayRuntime handles the "delay" node type. The line is sized for one
// second of delay at the context sample rate.
type delayRuntime struct {
	line *delay.Line
}

func (r *delayRuntime) Configure(ctx Context, p Params) error {
	if r.line == nil {
		max := int(ctx.SampleRate)
		if max < 1 {
			max = 1
		}

		line, err := delay.New(max)
		if err != nil {
			return fmt.Errorf("chain: create delay line: %w", err)
		}

		r.line = line
	}

	ms := p.GetNum("delayMs", 0)
	samples := int(ms * ctx.SampleRate / 1000)
	samples = int(core.Clamp(float64(samples), 0, float64(r.line.MaxDelay())))

	return r.line.SetDelay(samples)
}

func (r *delayRuntime) ProcessSample(x float64) float64 {
	return r.line.ProcessSample(x)
}

func (r *delayRuntime) Reset() {
	if r.line != nil {
		r.line.Reset()
	}
}

// envelopeRuntime handles the "envelope" node type; it replaces the signal
// with its detected envelope.
type envelopeRuntime struct {
	det *envelope.Detector
}

func (r *envelopeRuntime) Configure(ctx Context, p Params) error {
	mode := envelope.ModePeak
	if p.GetStr("mode", "peak") == "rms" {
		mode = envelope.ModeRMS
	}

	if r.det == nil || r.det.Mode() != mode {
		r.det = envelope.NewDetector(mode)
	}

	attack := core.Clamp(p.GetNum("attackMs", 5), 0, 5000) / 1000
	release := core.Clamp(p.GetNum("releaseMs", 50), 0, 5000) / 1000

	err := r.det.Configure(attack, release, ctx.SampleRate)
	if err != nil {
		return fmt.Errorf("chain: configure envelope: %w", err)
	}

	return nil
}

func (r *envelopeRuntime) ProcessSample(x float64) float64 {
	return r.det.ProcessSample(x)
}

func (r *envelopeRuntime) Reset() {
	if r.det != nil {
		r.det.Reset()
	}
}

// DefaultRegistry returns a Registry pre-populated with the built-in node
// runtimes.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister("gain", func(_ Context) (Runtime, error) {
		return &gainRuntime{factor: 1}, nil
	})
	r.MustRegister("biquad", func(_ Context) (Runtime, error) {
		return &biquadRuntime{}, nil
	})
	r.MustRegister("lowpass1", func(_ Context) (Runtime, error) {
		return &onepoleRuntime{}, nil
	})
	r.MustRegister("delay", func(_ Context) (Runtime, error) {
		return &delayRuntime{}, nil
	})
	r.MustRegister("envelope", func(_ Context) (Runtime, error) {
		return &envelopeRuntime{}, nil
	})

	return r
}
