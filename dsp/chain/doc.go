// Package chain composes per-sample processors into signal chains.
//
// The building blocks are small: Processor is the single-sample contract
// shared by the filter, delay, and envelope packages, and Serial, Parallel,
// and Feedback combine processors structurally. On top of that sits a
// graph form: a JSON description of nodes and connections, compiled with a
// topological sort and driven one sample at a time. Node types are resolved
// through a Registry of factories, so applications can extend the node set
// without touching this package.
package chain
