package chain

// stubRuntime is a minimal Runtime implementation for testing.
type stubRuntime struct {
	configureErr   error
	configureCalls int
	processCalls   int
	resetCalls     int
	lastCtx        Context
	lastParams     Params
}

func (s *stubRuntime) Configure(ctx Context, params Params) error {
	s.configureCalls++
	s.lastCtx = ctx
	s.lastParams = params

	return s.configureErr
}

func (s *stubRuntime) ProcessSample(x float64) float64 {
	s.processCalls++
	return x
}

func (s *stubRuntime) Reset() {
	s.resetCalls++
}

// scaleRuntime multiplies every sample by a fixed factor.
type scaleRuntime struct {
	factor float64
}

func (r *scaleRuntime) Configure(_ Context, params Params) error {
	r.factor = params.GetNum("factor", 1)

	return nil
}

func (r *scaleRuntime) ProcessSample(x float64) float64 {
	return x * r.factor
}

func (r *scaleRuntime) Reset() {}

// addRuntime adds a constant to every sample (for testing multi-parent mixing).
type addRuntime struct {
	value float64
}

func (r *addRuntime) Configure(_ Context, params Params) error {
	r.value = params.GetNum("value", 0)

	return nil
}

func (r *addRuntime) ProcessSample(x float64) float64 {
	return x + r.value
}

func (r *addRuntime) Reset() {}

// offset is a stateless Processor adding a constant, for composition tests.
type offset struct {
	value float64
}

func (o *offset) ProcessSample(x float64) float64 {
	return x + o.value
}

func (o *offset) Reset() {}

// accumulator sums its inputs, for verifying Reset propagation.
type accumulator struct {
	sum float64
}

func (a *accumulator) ProcessSample(x float64) float64 {
	a.sum += x
	return a.sum
}

func (a *accumulator) Reset() {
	a.sum = 0
}

func testRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister("scale", func(_ Context) (Runtime, error) {
		return &scaleRuntime{factor: 1}, nil
	})
	r.MustRegister("add", func(_ Context) (Runtime, error) {
		return &addRuntime{}, nil
	})

	return r
}
