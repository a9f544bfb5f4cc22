package delay

import (
	"errors"
	"math"
	"testing"
)

func TestLinearZeroDelayPassThrough(t *testing.T) {
	l, err := NewLinear(8)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.SetDelay(0); err != nil {
		t.Fatal(err)
	}

	for _, x := range []float64{0.5, -1, 0.25} {
		if y := l.ProcessSample(x); y != x {
			t.Fatalf("ProcessSample(%v) = %v, want pass-through", x, y)
		}
	}
}

func TestLinearIntegerDelayMatchesLine(t *testing.T) {
	linear, _ := NewLinear(8)
	integer, _ := New(8)

	if err := linear.SetDelay(3); err != nil {
		t.Fatal(err)
	}
	if err := integer.SetDelay(3); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 32; i++ {
		x := math.Sin(float64(i) * 0.3)
		a := linear.ProcessSample(x)
		b := integer.ProcessSample(x)
		if a != b {
			t.Fatalf("sample %d: linear %v, integer %v", i, a, b)
		}
	}
}

func TestLinearHalfSampleDelayOnRamp(t *testing.T) {
	l, _ := NewLinear(8)
	if err := l.SetDelay(2.5); err != nil {
		t.Fatal(err)
	}

	// A linear ramp is reproduced exactly by linear interpolation once
	// enough history has accumulated.
	for i := 0; i < 32; i++ {
		x := float64(i)
		y := l.ProcessSample(x)
		if i >= 3 {
			want := x - 2.5
			if math.Abs(y-want) > 1e-12 {
				t.Fatalf("sample %d: got %v, want %v", i, y, want)
			}
		}
	}
}

func TestLinearSetDelayOutOfRange(t *testing.T) {
	l, _ := NewLinear(4)
	if err := l.SetDelay(1.5); err != nil {
		t.Fatal(err)
	}

	for _, n := range []float64{-0.1, 4.01, math.NaN()} {
		if err := l.SetDelay(n); !errors.Is(err, ErrInvalidDelay) {
			t.Fatalf("SetDelay(%v) err = %v, want ErrInvalidDelay", n, err)
		}
		if l.Delay() != 1.5 {
			t.Fatalf("delay after failed SetDelay = %v, want unchanged 1.5", l.Delay())
		}
	}
}

func TestLinearNewRejectsInvalidMax(t *testing.T) {
	for _, max := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := NewLinear(max); err == nil {
			t.Fatalf("NewLinear(%v) succeeded, want error", max)
		}
	}
}

func TestLinearResetKeepsDelay(t *testing.T) {
	l, _ := NewLinear(4)
	if err := l.SetDelay(2.25); err != nil {
		t.Fatal(err)
	}
	l.ProcessSample(1)
	l.ProcessSample(2)

	l.Reset()

	if l.Delay() != 2.25 {
		t.Fatalf("delay after Reset = %v, want 2.25", l.Delay())
	}
	for i := 0; i < 4; i++ {
		if y := l.ProcessSample(0); y != 0 {
			t.Fatalf("history after Reset not zero-filled: %v", y)
		}
	}
}

func TestLinearTapOut(t *testing.T) {
	l, _ := NewLinear(4)
	l.ProcessSample(1)
	l.ProcessSample(3)

	got, err := l.TapOut(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Fatalf("TapOut(0.5) = %v, want 2", got)
	}
}

func BenchmarkLinearProcessSample(b *testing.B) {
	l, _ := NewLinear(1024)
	if err := l.SetDelay(511.5); err != nil {
		b.Fatal(err)
	}

	x := 0.0
	for i := 0; i < b.N; i++ {
		x = l.ProcessSample(x + 1)
	}
	_ = x
}
