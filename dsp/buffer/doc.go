// Package buffer provides a fixed-capacity circular sample history.
//
// A [Ring] remembers the last N written samples and offers O(1) read-back
// by integer or fractional offset from the write cursor. It is the memory
// primitive underneath every stateful component that needs access to past
// input or output (delay lines, taps, feedback paths).
//
// The capacity is fixed at construction: the hot per-sample path never
// allocates, and a Ring is never resized. Instances are not safe for
// concurrent use; each Ring is owned and driven by exactly one goroutine.
package buffer
