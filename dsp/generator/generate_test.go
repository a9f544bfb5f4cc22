package generator

import (
	"math"
	"testing"
)

func TestSineBuffer(t *testing.T) {
	out, err := SineBuffer(1000, 0.5, 48000, 480)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 480 {
		t.Fatalf("len = %d, want 480", len(out))
	}

	step := 2 * math.Pi * 1000 / 48000
	for i, v := range out {
		want := 0.5 * math.Sin(step*float64(i))
		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("sample %d: %v, want %v", i, v, want)
		}
	}
}

func TestSineBufferValidation(t *testing.T) {
	if _, err := SineBuffer(1000, 1, 48000, 0); err == nil {
		t.Error("zero samples accepted")
	}

	if _, err := SineBuffer(1000, 1, 0, 16); err == nil {
		t.Error("zero sample rate accepted")
	}
}

func TestNoiseBufferDeterministic(t *testing.T) {
	a, err := NoiseBuffer(0.8, 42, 256)
	if err != nil {
		t.Fatal(err)
	}

	b, _ := NoiseBuffer(0.8, 42, 256)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at sample %d", i)
		}

		if a[i] < -0.8 || a[i] >= 0.8 {
			t.Fatalf("sample %d outside amplitude: %v", i, a[i])
		}
	}

	c, _ := NoiseBuffer(0.8, 43, 256)

	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}

	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestNoiseBufferValidation(t *testing.T) {
	if _, err := NoiseBuffer(1, 1, 0); err == nil {
		t.Error("zero samples accepted")
	}

	if _, err := NoiseBuffer(-1, 1, 16); err == nil {
		t.Error("negative amplitude accepted")
	}
}

func TestNoiseReset(t *testing.T) {
	n := NewNoise(7)

	first := make([]float64, 32)
	Render(n, first)

	n.Reset()

	for i := range first {
		if got := n.Tick(); got != first[i] {
			t.Fatalf("sample %d after Reset: %v, want %v", i, got, first[i])
		}
	}
}

func TestRenderN(t *testing.T) {
	osc, err := NewSine(48000, 440)
	if err != nil {
		t.Fatal(err)
	}

	out, err := RenderN(osc, 64)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 64 {
		t.Fatalf("len = %d, want 64", len(out))
	}

	if _, err := RenderN(osc, 0); err == nil {
		t.Error("zero count accepted")
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{0.5, -0.25, 0.1}, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{1, -0.5, 0.2}
	for i := range out {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("sample %d: %v, want %v", i, out[i], want[i])
		}
	}
}

func TestNormalizeEdgeCases(t *testing.T) {
	if _, err := Normalize(nil, 1); err == nil {
		t.Error("empty input accepted")
	}

	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Error("negative peak accepted")
	}

	out, err := Normalize([]float64{0, 0, 0}, 1)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range out {
		if v != 0 {
			t.Fatalf("silence scaled at %d: %v", i, v)
		}
	}
}
