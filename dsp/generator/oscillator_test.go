package generator

import (
	"math"
	"testing"
)

func TestNewSineValidation(t *testing.T) {
	cases := []struct {
		name       string
		sampleRate float64
		frequency  float64
	}{
		{"zero sample rate", 0, 440},
		{"negative sample rate", -48000, 440},
		{"nan sample rate", math.NaN(), 440},
		{"frequency at sample rate", 48000, 48000},
		{"frequency above sample rate", 48000, 96000},
		{"nan frequency", 48000, math.NaN()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSine(tc.sampleRate, tc.frequency); err == nil {
				t.Fatalf("NewSine(%v, %v) succeeded", tc.sampleRate, tc.frequency)
			}
		})
	}
}

func TestSineMatchesClosedForm(t *testing.T) {
	const (
		fs   = 48000.0
		freq = 997.0
	)

	osc, err := NewSine(fs, freq)
	if err != nil {
		t.Fatal(err)
	}

	step := 2 * math.Pi * freq / fs
	for i := 0; i < 1000; i++ {
		want := math.Sin(step * float64(i))
		got := osc.Tick()

		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}

		if osc.LastOut() != got {
			t.Fatalf("LastOut() = %v, want %v", osc.LastOut(), got)
		}
	}
}

func TestSinePhaseStaysWrapped(t *testing.T) {
	osc, err := NewSine(1000, 440)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100000; i++ {
		osc.Tick()

		p := osc.Phase()
		if p < 0 || p >= 2*math.Pi {
			t.Fatalf("phase out of range after %d ticks: %v", i+1, p)
		}
	}
}

func TestSineFrequencyChangeKeepsPhase(t *testing.T) {
	osc, err := NewSine(48000, 100)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		osc.Tick()
	}

	before := osc.Phase()

	if err := osc.SetFrequency(200); err != nil {
		t.Fatal(err)
	}

	if osc.Phase() != before {
		t.Fatalf("SetFrequency moved phase from %v to %v", before, osc.Phase())
	}

	if osc.Frequency() != 200 {
		t.Fatalf("Frequency() = %v, want 200", osc.Frequency())
	}
}

func TestSineNegativeFrequency(t *testing.T) {
	fwd, err := NewSine(8000, 50)
	if err != nil {
		t.Fatal(err)
	}

	rev, err := NewSine(8000, -50)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 200; i++ {
		f := fwd.Tick()
		r := rev.Tick()

		if math.Abs(f+r) > 1e-9 {
			t.Fatalf("sample %d: sin(-x) != -sin(x): %v vs %v", i, r, f)
		}
	}
}

func TestSetPhaseWraps(t *testing.T) {
	osc, err := NewSine(48000, 440)
	if err != nil {
		t.Fatal(err)
	}

	if err := osc.SetPhase(5 * math.Pi); err != nil {
		t.Fatal(err)
	}

	if math.Abs(osc.Phase()-math.Pi) > 1e-12 {
		t.Fatalf("Phase() = %v, want pi", osc.Phase())
	}

	if err := osc.SetPhase(-math.Pi / 2); err != nil {
		t.Fatal(err)
	}

	if math.Abs(osc.Phase()-3*math.Pi/2) > 1e-12 {
		t.Fatalf("Phase() = %v, want 3pi/2", osc.Phase())
	}

	if err := osc.SetPhase(math.Inf(1)); err == nil {
		t.Fatal("SetPhase(+Inf) succeeded")
	}
}

func TestSineReset(t *testing.T) {
	osc, err := NewSine(48000, 440)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 37; i++ {
		osc.Tick()
	}

	osc.Reset()

	if osc.Phase() != 0 || osc.LastOut() != 0 {
		t.Fatalf("Reset left phase %v, last %v", osc.Phase(), osc.LastOut())
	}

	if osc.Frequency() != 440 {
		t.Fatalf("Reset changed frequency to %v", osc.Frequency())
	}
}

func TestSquareDutyCycle(t *testing.T) {
	// 100 Hz at 10 kHz gives a 100-sample period; count over 100 periods
	// so boundary rounding cannot skew the ratio.
	osc, err := NewSquare(10000, 100)
	if err != nil {
		t.Fatal(err)
	}

	const n = 10000

	high := 0
	for i := 0; i < n; i++ {
		v := osc.Tick()
		if v != 1 && v != -1 {
			t.Fatalf("sample %d: %v, want +/-1", i, v)
		}

		if v == 1 {
			high++
		}
	}

	if high < n/2-100 || high > n/2+100 {
		t.Fatalf("high samples = %d, want ~%d", high, n/2)
	}
}

func TestSquarePulseWidth(t *testing.T) {
	osc, err := NewSquare(10000, 100)
	if err != nil {
		t.Fatal(err)
	}

	if err := osc.SetPulseWidth(0.25); err != nil {
		t.Fatal(err)
	}

	const n = 10000

	high := 0
	for i := 0; i < n; i++ {
		if osc.Tick() == 1 {
			high++
		}
	}

	if high < n/4-100 || high > n/4+100 {
		t.Fatalf("high samples = %d, want ~%d", high, n/4)
	}

	for _, bad := range []float64{0, 1, -0.5, math.NaN()} {
		if err := osc.SetPulseWidth(bad); err == nil {
			t.Fatalf("SetPulseWidth(%v) succeeded", bad)
		}
	}

	if osc.PulseWidth() != 0.25 {
		t.Fatalf("PulseWidth() = %v, want 0.25", osc.PulseWidth())
	}
}

func TestSawRamp(t *testing.T) {
	// 4-sample period: -1, -0.5, 0, 0.5 repeating.
	osc, err := NewSaw(8, 2)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{-1, -0.5, 0, 0.5, -1, -0.5, 0, 0.5}
	for i, w := range want {
		got := osc.Tick()
		if math.Abs(got-w) > 1e-12 {
			t.Fatalf("sample %d: %v, want %v", i, got, w)
		}
	}
}

func TestTriangleShape(t *testing.T) {
	// 8-sample period starting at 0, peaking at +1, troughing at -1.
	osc, err := NewTriangle(8, 1)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0, 0.5, 1, 0.5, 0, -0.5, -1, -0.5}
	for i, w := range want {
		got := osc.Tick()
		if math.Abs(got-w) > 1e-12 {
			t.Fatalf("sample %d: %v, want %v", i, got, w)
		}
	}
}

func BenchmarkSineTick(b *testing.B) {
	osc, err := NewSine(48000, 440)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = osc.Tick()
	}
}
