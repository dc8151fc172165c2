// Package registry provides thread-safe storage and retrieval of binding
// descriptors.
package registry

import (
	"fmt"
	"reflect"
	"sync"
)

// Descriptor is the committed record binding a dependency type to its
// resolving type, factory, constructors and lifetime. A descriptor is
// immutable once committed; re-binding the same dependency type replaces the
// whole record.
type Descriptor struct {
	// DependencyType is the contract callers request by (e.g. the Logger
	// interface, or *SqlRepo for concrete registrations). Identity key, unique
	// per registry.
	DependencyType reflect.Type

	// ResolvingType is the concrete type instantiated to satisfy the
	// dependency. Nil for factory bindings.
	ResolvingType reflect.Type

	// Factory is the zero-argument construction function for factory
	// bindings. When present it fully replaces constructor-based
	// construction. Stored opaquely to keep this package free of the parent
	// package's types.
	Factory interface{}

	// Constructors holds parsed constructor metadata in registration order.
	// Stores []*constructorInfo from the parent package.
	Constructors []interface{}

	// Lifetime is "transient", "singleton" or "scoped". The empty string
	// means the descriptor was never committed through the binder.
	Lifetime string
}

// Registry provides thread-safe storage for descriptors. It uses a map with
// reflect.Type keys for O(1) lookup performance.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[reflect.Type]*Descriptor
}

// New creates a new Registry instance.
func New() *Registry {
	return &Registry{
		descriptors: make(map[reflect.Type]*Descriptor),
	}
}

// Commit stores a descriptor in the registry. Committing a descriptor for a
// dependency type that already has one atomically replaces the prior entry;
// last write wins, silently.
//
// This method is goroutine-safe.
func (r *Registry) Commit(descriptor *Descriptor) error {
	if descriptor == nil {
		return fmt.Errorf("descriptor cannot be nil")
	}
	if descriptor.DependencyType == nil {
		return fmt.Errorf("descriptor dependency type cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.descriptors[descriptor.DependencyType] = descriptor
	return nil
}

// Get retrieves the descriptor for a dependency type. The second return value
// reports whether a descriptor was found. Pure lookup, no side effects.
//
// This method is goroutine-safe.
func (r *Registry) Get(dependencyType reflect.Type) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptor, exists := r.descriptors[dependencyType]
	return descriptor, exists
}

// Has checks if a descriptor exists for the given dependency type.
//
// This method is goroutine-safe.
func (r *Registry) Has(dependencyType reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.descriptors[dependencyType]
	return exists
}

// Types returns all dependency types with committed descriptors.
//
// This method is goroutine-safe.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]reflect.Type, 0, len(r.descriptors))
	for t := range r.descriptors {
		types = append(types, t)
	}
	return types
}

// Len returns the number of committed descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.descriptors)
}
