package chain

import "github.com/cwbudde/algo-tick/dsp/core"

// Context provides environmental information that node runtimes need.
type Context struct {
	SampleRate float64
}

// NewContext builds a Context from core options, falling back to the
// default sample rate when none is given.
func NewContext(opts ...core.Option) Context {
	cfg := core.ApplyOptions(opts...)

	return Context{SampleRate: cfg.SampleRate}
}
