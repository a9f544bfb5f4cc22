package chain

import (
	"errors"
	"fmt"
)

// ErrUnknownProcessor is returned when a node references an unregistered
// processor type.
var ErrUnknownProcessor = errors.New("unknown processor type")

// Runtime is the per-node contract: a Processor that can be reconfigured
// from graph parameters.
type Runtime interface {
	Processor
	Configure(ctx Context, params Params) error
}

// Factory builds one Runtime instance for a node.
type Factory func(ctx Context) (Runtime, error)

// Registry maps processor type names to their factories.
type Registry struct {
	factories map[string]Factory
}

var errDuplicateProcessor = errors.New("duplicate processor type")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given processor type.
func (r *Registry) Register(procType string, factory Factory) error {
	if procType == "" {
		return errors.New("empty processor type")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[procType]; exists {
		return fmt.Errorf("%w: %s", errDuplicateProcessor, procType)
	}

	r.factories[procType] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(procType string, factory Factory) {
	err := r.Register(procType, factory)
	if err != nil {
		panic("chain registry: " + err.Error())
	}
}

// Lookup returns the factory for the given processor type, or nil.
func (r *Registry) Lookup(procType string) Factory {
	return r.factories[procType]
}
