package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// This can reduce denormal-related CPU slowdowns in hot DSP loops,
// especially in recursive state (biquad registers, envelope memory)
// where a decaying tail would otherwise linger in the denormal range.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// MinDB is the floor used by the clamped dB conversions. Values at or
// below this floor map to silence.
const MinDB = -120.0

// LinearToDBClamped converts linear amplitude to dBFS, flooring tiny and
// non-finite inputs at [MinDB] instead of returning -Inf or NaN. Meters
// and envelope read-outs use this form.
func LinearToDBClamped(linear float64) float64 {
	if linear > 1e-6 && IsFinite(linear) {
		return 20 * math.Log10(linear)
	}

	return MinDB
}

// DBToLinearClamped converts dBFS to linear amplitude, mapping values at
// or below [MinDB] (and non-finite values) to exactly zero.
func DBToLinearClamped(db float64) float64 {
	if db > MinDB && IsFinite(db) {
		return math.Pow(10, db/20)
	}

	return 0
}
