package onepole

import (
	"math"
	"testing"
)

func TestOnePoleIdentity(t *testing.T) {
	f := NewOnePole()
	for _, x := range []float64{0.55, -0.55, 0.25} {
		if y := f.ProcessSample(x); y != x {
			t.Fatalf("identity ProcessSample(%v) = %v", x, y)
		}
	}
}

func TestOnePoleRecurrence(t *testing.T) {
	f := NewOnePole()
	f.SetCoefficients(1, -0.5)

	// y[n] = x[n] + 0.5*y[n-1]
	input := []float64{1, 0, 0, 0}
	expected := []float64{1, 0.5, 0.25, 0.125}

	for i, x := range input {
		y := f.ProcessSample(x)
		if math.Abs(y-expected[i]) > 1e-12 {
			t.Fatalf("sample %d: got %v, want %v", i, y, expected[i])
		}
	}

	if got := f.LastOut(); got != expected[len(expected)-1] {
		t.Fatalf("LastOut() = %v, want %v", got, expected[len(expected)-1])
	}
}

func TestOnePoleLowpassSmoothesSteps(t *testing.T) {
	f := NewOnePole()
	f.SetLowpass(100, 48000)

	// A unit step must approach 1 monotonically from below.
	prev := 0.0
	for i := 0; i < 4800; i++ {
		y := f.ProcessSample(1)
		if y < prev || y > 1+1e-9 {
			t.Fatalf("sample %d: %v not monotone toward 1 (prev %v)", i, y, prev)
		}
		prev = y
	}

	if prev < 0.7 {
		t.Fatalf("step response after 100 ms = %v, want well on its way to 1", prev)
	}
}

func TestOnePoleSetLowpassRejectsInvalid(t *testing.T) {
	f := NewOnePole()
	f.SetCoefficients(0.3, -0.7)
	f.SetLowpass(-10, 48000)
	f.SetLowpass(100, 0)
	f.SetLowpass(30000, 48000)

	if f.B0 != 0.3 || f.A1 != -0.7 {
		t.Fatalf("coefficients changed: B0=%v A1=%v", f.B0, f.A1)
	}
}

func TestOneZeroRecurrence(t *testing.T) {
	f := NewOneZero()
	f.SetCoefficients(0.5, 0.5)

	// Two-point moving average.
	input := []float64{1, 0, 1, 1}
	expected := []float64{0.5, 0.5, 0.5, 1}

	for i, x := range input {
		y := f.ProcessSample(x)
		if math.Abs(y-expected[i]) > 1e-12 {
			t.Fatalf("sample %d: got %v, want %v", i, y, expected[i])
		}
	}
}

func TestReset(t *testing.T) {
	p := NewOnePole()
	p.SetCoefficients(1, -0.9)
	p.ProcessSample(1)
	p.Reset()
	if y := p.ProcessSample(0); y != 0 {
		t.Fatalf("OnePole after Reset = %v, want 0", y)
	}

	z := NewOneZero()
	z.SetCoefficients(0.5, 0.5)
	z.ProcessSample(1)
	z.Reset()
	if y := z.ProcessSample(0); y != 0 {
		t.Fatalf("OneZero after Reset = %v, want 0", y)
	}
}
