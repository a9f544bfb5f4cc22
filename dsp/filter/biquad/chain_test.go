package biquad

import (
	"math"
	"testing"
)

func TestChainIdentity(t *testing.T) {
	c := NewChain([]Coefficients{Identity(), Identity(), Identity()})

	for _, x := range refInput {
		if y := c.ProcessSample(x); y != x {
			t.Fatalf("identity cascade ProcessSample(%v) = %v", x, y)
		}
	}

	if c.NumSections() != 3 || c.Order() != 6 {
		t.Fatalf("sections=%d order=%d, want 3/6", c.NumSections(), c.Order())
	}
}

func TestChainMatchesManualCascade(t *testing.T) {
	coeffs := []Coefficients{
		refCoeffs,
		{B0: 0.9, B1: -0.3, B2: 0.1, A1: -0.5, A2: 0.2},
	}

	chain := NewChain(coeffs)
	s0 := NewSection(coeffs[0])
	s1 := NewSection(coeffs[1])

	for i, x := range refInput {
		want := s1.ProcessSample(s0.ProcessSample(x))
		got := chain.ProcessSample(x)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("sample %d: chain %v, manual %v", i, got, want)
		}
	}
}

func TestChainGain(t *testing.T) {
	c := NewChain([]Coefficients{Identity()}, WithGain(0.5))

	if got := c.ProcessSample(1); got != 0.5 {
		t.Fatalf("ProcessSample(1) with gain 0.5 = %v", got)
	}
	if c.Gain() != 0.5 {
		t.Fatalf("Gain() = %v, want 0.5", c.Gain())
	}
}

func TestChainProcessBlock(t *testing.T) {
	coeffs := []Coefficients{refCoeffs, refCoeffs}

	blockChain := NewChain(coeffs)
	sampleChain := NewChain(coeffs)

	buf := append([]float64(nil), refInput...)
	blockChain.ProcessBlock(buf)

	for i, x := range refInput {
		want := sampleChain.ProcessSample(x)
		if math.Abs(buf[i]-want) > 1e-12 {
			t.Fatalf("sample %d: block %v, per-sample %v", i, buf[i], want)
		}
	}
}

func TestChainReset(t *testing.T) {
	c := NewChain([]Coefficients{refCoeffs, refCoeffs})
	for _, x := range refInput {
		c.ProcessSample(x)
	}

	c.Reset()

	for i := 0; i < 8; i++ {
		if y := c.ProcessSample(0); y != 0 {
			t.Fatalf("zero input after Reset produced %v", y)
		}
	}
}

func TestChainSetCoefficients(t *testing.T) {
	c := NewChain([]Coefficients{refCoeffs})
	c.ProcessSample(1)

	state := c.sections[0].State()
	c.SetCoefficients(0, Identity())

	if c.sections[0].State() != state {
		t.Fatal("SetCoefficients cleared section state")
	}
	if c.sections[0].Coefficients != Identity() {
		t.Fatal("SetCoefficients did not replace coefficients")
	}
}
