package chain

// Serial runs processors back to back: the output of one feeds the next.
type Serial struct {
	stages []Processor
}

// NewSerial creates a serial chain from the given stages. Nil stages are
// skipped.
func NewSerial(stages ...Processor) *Serial {
	s := &Serial{stages: make([]Processor, 0, len(stages))}
	for _, p := range stages {
		if p != nil {
			s.stages = append(s.stages, p)
		}
	}

	return s
}

// Append adds a stage to the end of the chain.
func (s *Serial) Append(p Processor) {
	if p != nil {
		s.stages = append(s.stages, p)
	}
}

// Len returns the number of stages.
func (s *Serial) Len() int {
	return len(s.stages)
}

// ProcessSample runs x through every stage in order.
func (s *Serial) ProcessSample(x float64) float64 {
	y := x
	for _, p := range s.stages {
		y = p.ProcessSample(y)
	}

	return y
}

// Reset resets every stage.
func (s *Serial) Reset() {
	for _, p := range s.stages {
		p.Reset()
	}
}

// Parallel feeds the same input to every branch and sums the outputs
// scaled by 1/N, matching how the graph form mixes multiple inputs.
type Parallel struct {
	branches []Processor
}

// NewParallel creates a parallel composition from the given branches.
// Nil branches are skipped.
func NewParallel(branches ...Processor) *Parallel {
	p := &Parallel{branches: make([]Processor, 0, len(branches))}
	for _, b := range branches {
		if b != nil {
			p.branches = append(p.branches, b)
		}
	}

	return p
}

// Len returns the number of branches.
func (p *Parallel) Len() int {
	return len(p.branches)
}

// ProcessSample runs x through every branch and returns the average of
// the branch outputs. With no branches the input passes through.
func (p *Parallel) ProcessSample(x float64) float64 {
	if len(p.branches) == 0 {
		return x
	}

	sum := 0.0
	for _, b := range p.branches {
		sum += b.ProcessSample(x)
	}

	return sum / float64(len(p.branches))
}

// Reset resets every branch.
func (p *Parallel) Reset() {
	for _, b := range p.branches {
		b.Reset()
	}
}

// Feedback wraps a forward processor in a one-sample feedback loop:
//
//	y[n] = forward(x[n] + gain*back(y[n-1]))
//
// The back processor shapes the feedback path and may be nil for a plain
// gain loop. Stability is the caller's responsibility; |gain| < 1 with a
// passive back path is the safe regime.
type Feedback struct {
	forward Processor
	back    Processor
	gain    float64
	last    float64
}

// NewFeedback creates a feedback loop around forward with the given loop
// gain. back may be nil.
func NewFeedback(forward Processor, back Processor, gain float64) *Feedback {
	return &Feedback{forward: forward, back: back, gain: gain}
}

// SetGain updates the loop gain.
func (f *Feedback) SetGain(gain float64) {
	f.gain = gain
}

// Gain returns the loop gain.
func (f *Feedback) Gain() float64 {
	return f.gain
}

// ProcessSample advances the loop by one sample.
func (f *Feedback) ProcessSample(x float64) float64 {
	fb := f.last
	if f.back != nil {
		fb = f.back.ProcessSample(fb)
	}

	y := f.forward.ProcessSample(x + f.gain*fb)
	f.last = y

	return y
}

// Reset clears the loop state and resets both processors.
func (f *Feedback) Reset() {
	f.last = 0
	f.forward.Reset()

	if f.back != nil {
		f.back.Reset()
	}
}
