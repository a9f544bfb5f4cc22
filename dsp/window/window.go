// Package window generates coefficient sequences used to taper a
// fixed-length block of samples before spectral analysis or synthesis.
//
// A window is identified by a [Type]; unknown types are rejected when a
// [Generator] is constructed, not when coefficients are produced, so a
// configuration mistake surfaces as early as possible. Generation is
// deterministic: the same (type, length) pair always yields the same
// sequence, either eagerly via [Generate] or lazily via [Iter].
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeTriangle
	TypeBartlett
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeNuttall
	TypeFlatTop
)

// Cosine-sum term tables. Signs are folded into the coefficients so the
// evaluation is a plain sum of cos(k*theta) terms.
var (
	hannCoeffs           = []float64{0.5, -0.5}
	hammingCoeffs        = []float64{0.54, -0.46}
	blackmanCoeffs       = []float64{0.42, -0.5, 0.08}
	blackmanHarrisCoeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	nuttallCoeffs        = []float64{0.355768, -0.487396, 0.144232, -0.012604}
	flatTopCoeffs        = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

var typeNames = map[Type]string{
	TypeRectangular:    "rectangular",
	TypeTriangle:       "triangle",
	TypeBartlett:       "bartlett",
	TypeHann:           "hann",
	TypeHamming:        "hamming",
	TypeBlackman:       "blackman",
	TypeBlackmanHarris: "blackman-harris",
	TypeNuttall:        "nuttall",
	TypeFlatTop:        "flat-top",
}

// String returns the lowercase name of the window type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "unknown"
}

// Supported reports whether t names a known window type.
func Supported(t Type) bool {
	_, ok := typeNames[t]

	return ok
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic selects the periodic (FFT framing) form instead of the
// conventional symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generator produces coefficient sequences for one validated window
// type. It is stateless: the same generator may be reused for any
// number of lengths.
type Generator struct {
	kind Type
	cfg  config
}

// New returns a Generator for the given window type. An unknown type
// fails with [ErrUnsupportedType].
func New(kind Type, opts ...Option) (*Generator, error) {
	if !Supported(kind) {
		return nil, ErrUnsupportedType
	}

	g := &Generator{kind: kind}
	for _, opt := range opts {
		if opt != nil {
			opt(&g.cfg)
		}
	}

	return g, nil
}

// Kind returns the window type this generator produces.
func (g *Generator) Kind() Type {
	return g.kind
}

// Generate returns the window coefficients for the given length.
func (g *Generator) Generate(length int) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalAt(g.kind, i, length, g.cfg.periodic)
	}

	return out, nil
}

// Iter returns a restartable lazy iterator over the window sequence.
func (g *Generator) Iter(length int) (*Iter, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	return &Iter{kind: g.kind, length: length, periodic: g.cfg.periodic}, nil
}

// Generate returns window coefficients of the given type and length.
// It is the one-shot form of [Generator.Generate].
func Generate(kind Type, length int, opts ...Option) ([]float64, error) {
	g, err := New(kind, opts...)
	if err != nil {
		return nil, err
	}

	return g.Generate(length)
}

// Apply multiplies buf in-place by the selected window.
func Apply(kind Type, buf []float64, opts ...Option) error {
	coeffs, err := Generate(kind, len(buf), opts...)
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// ApplyCoefficients multiplies samples with precomputed coefficients
// and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with precomputed
// coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a coefficient
// sequence.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, ErrZeroLength
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errMismatchedLength
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// evalAt computes the window value at index i of a length-L sequence.
func evalAt(t Type, i, length int, periodic bool) float64 {
	switch t {
	case TypeRectangular:
		return 1
	case TypeTriangle:
		// Non-zero-ended triangle: denominator L/2 instead of (L-1)/2.
		center := float64(length-1) / 2

		return 1 - math.Abs((float64(i)-center)/(float64(length)/2))
	case TypeBartlett:
		return 1 - math.Abs(2*samplePosition(i, length, periodic)-1)
	case TypeHann:
		return cosineSum(samplePosition(i, length, periodic), hannCoeffs)
	case TypeHamming:
		return cosineSum(samplePosition(i, length, periodic), hammingCoeffs)
	case TypeBlackman:
		return cosineSum(samplePosition(i, length, periodic), blackmanCoeffs)
	case TypeBlackmanHarris:
		return cosineSum(samplePosition(i, length, periodic), blackmanHarrisCoeffs)
	case TypeNuttall:
		return cosineSum(samplePosition(i, length, periodic), nuttallCoeffs)
	case TypeFlatTop:
		return cosineSum(samplePosition(i, length, periodic), flatTopCoeffs)
	default:
		return 1
	}
}

func cosineSum(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

// samplePosition maps index i to [0, 1]. The symmetric form divides by
// length-1 so both edges are included; the periodic form divides by
// length for seamless FFT framing.
func samplePosition(i, length int, periodic bool) float64 {
	if length <= 1 {
		return 0
	}

	den := float64(length - 1)
	if periodic {
		den = float64(length)
	}

	return float64(i) / den
}
