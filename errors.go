package ceangal

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"
)

// InvalidDependencyTypeError is returned when a bind target is neither an
// interface nor a concrete struct type.
type InvalidDependencyTypeError struct {
	Type   reflect.Type // may be nil when the token itself was nil
	Reason string
}

func (e *InvalidDependencyTypeError) Error() string {
	typeStr := "<nil>"
	if e.Type != nil {
		typeStr = e.Type.String()
	}
	return fmt.Sprintf("invalid dependency type %s: %s", typeStr, e.Reason)
}

// IncompatibleResolvingTypeError is returned when a resolving type is not
// assignable to the dependency type it is bound to.
type IncompatibleResolvingTypeError struct {
	DependencyType reflect.Type
	ResolvingType  reflect.Type
}

func (e *IncompatibleResolvingTypeError) Error() string {
	return fmt.Sprintf("resolving type %v is not assignable to dependency type %v",
		e.ResolvingType, e.DependencyType)
}

// ResolvingTypeNotConcreteError is returned when a resolving type is not an
// instantiable concrete type and no factory was supplied.
type ResolvingTypeNotConcreteError struct {
	Type reflect.Type
}

func (e *ResolvingTypeNotConcreteError) Error() string {
	typeStr := "<nil>"
	if e.Type != nil {
		typeStr = e.Type.String()
	}
	return fmt.Sprintf("resolving type %s is not a concrete type; bind a pointer to struct or supply a factory", typeStr)
}

// RegisteredTypeNotConcreteError is returned by Register when the registered
// type is not instantiable and no factory was supplied.
type RegisteredTypeNotConcreteError struct {
	Type reflect.Type
}

func (e *RegisteredTypeNotConcreteError) Error() string {
	typeStr := "<nil>"
	if e.Type != nil {
		typeStr = e.Type.String()
	}
	return fmt.Sprintf("registered type %s is not a concrete type; use RegisterFactory for interface types", typeStr)
}

// UnknownDependencyError is returned when resolution is requested for a type
// with no committed descriptor.
type UnknownDependencyError struct {
	Type reflect.Type
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("no binding committed for type %v. Did you forget to register it with Bind()?", e.Type)
}

// OutsideScopeError is returned when a scoped dependency is resolved with no
// active scope.
type OutsideScopeError struct {
	Type reflect.Type
}

func (e *OutsideScopeError) Error() string {
	return fmt.Sprintf("type %v is bound as scoped and must be resolved through a scope", e.Type)
}

// NoConstructorError is returned when a resolving type exposes no usable
// construction path: no registered constructors, no factory, and the type
// cannot be zero-constructed.
type NoConstructorError struct {
	Type reflect.Type
}

func (e *NoConstructorError) Error() string {
	return fmt.Sprintf("no constructor found for resolving type %v", e.Type)
}

// InvalidLifetimeError indicates a descriptor reached resolution with an
// undefined lifetime. This is defensive; the binder commits a descriptor only
// together with its lifetime.
type InvalidLifetimeError struct {
	Type reflect.Type
}

func (e *InvalidLifetimeError) Error() string {
	return fmt.Sprintf("descriptor for type %v has an undefined lifetime", e.Type)
}

// ConstructionError wraps any error that escaped a factory or constructor
// invocation, carrying enough context to diagnose the failing binding.
type ConstructionError struct {
	DependencyType reflect.Type
	ResolvingType  reflect.Type // nil for factory bindings
	Lifetime       Lifetime
	Cause          error
}

func (e *ConstructionError) Error() string {
	resolvingStr := "factory"
	if e.ResolvingType != nil {
		resolvingStr = e.ResolvingType.String()
	}
	return fmt.Sprintf("failed to construct %v (resolving=%s, lifetime=%s): %v",
		e.DependencyType, resolvingStr, e.Lifetime, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *ConstructionError) Unwrap() error {
	return e.Cause
}

// InvalidBindingError is returned when a binding has invalid parameters, such
// as a nil factory or a malformed constructor function.
type InvalidBindingError struct {
	Reason string
}

func (e *InvalidBindingError) Error() string {
	return fmt.Sprintf("invalid binding: %s", e.Reason)
}

// CircularDependencyError indicates a circular dependency was detected while
// walking the constructor graph.
type CircularDependencyError struct {
	Path []string
}

func (e *CircularDependencyError) Error() string {
	if len(e.Path) == 0 {
		return "circular dependency detected"
	}
	return fmt.Sprintf("circular dependency detected: %s", strings.Join(e.Path, " -> "))
}

// ScopeDisposedError is returned when a disposed scope is asked to resolve.
type ScopeDisposedError struct {
	ID uuid.UUID
}

func (e *ScopeDisposedError) Error() string {
	return fmt.Sprintf("scope %s is disposed and can no longer resolve", e.ID)
}

// ValidationError reports the problems found during container validation.
type ValidationError struct {
	Errors []error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation failed: %v", e.Errors[0])
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("validation failed with %d errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		b.WriteString(fmt.Sprintf("  %d. %v\n", i+1, err))
	}
	return b.String()
}

func (e *ValidationError) Unwrap() []error {
	return e.Errors
}
