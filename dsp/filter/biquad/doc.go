// Package biquad implements second-order IIR filter sections and cascades.
//
// [Section] uses the Direct Form I realization. Its four state registers
// cost twice the memory of the transposed Direct Form II arrangement, but
// every intermediate product and sum stays bounded by the input and output
// ranges, which preserves the overflow-safety margin the form is known for.
// [TransposedSection] provides the two-register transposed Direct Form II
// realization, which minimizes the number of distinct intermediate sums and
// therefore accumulated rounding error in pure floating-point pipelines.
//
// Swapping coefficients on a running section deliberately keeps the state
// registers, so live parameter changes stay smooth at the cost of a
// possible one-sample transient. Call Reset explicitly when a clean state
// is wanted.
//
// Higher-order filters are realized as a [Chain] of sections; each section
// adds exactly one ProcessSample call per sample.
package biquad
