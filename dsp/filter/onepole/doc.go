// Package onepole implements first-order recursive filters.
//
// [OnePole] (one feedback coefficient) and [OneZero] (one feedforward
// coefficient) are the cheapest smoothing and tilting primitives; a
// OnePole configured as a lowpass is the usual parameter smoother in
// front of live coefficient changes.
package onepole
