package ceangal

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestInvalidDependencyTypeError_Message(t *testing.T) {
	err := &InvalidDependencyTypeError{Reason: "type token cannot be nil"}
	assert.Contains(t, err.Error(), "<nil>")
	assert.Contains(t, err.Error(), "type token cannot be nil")

	err = &InvalidDependencyTypeError{Type: reflect.TypeOf(42), Reason: "must be an interface or a struct"}
	assert.Contains(t, err.Error(), "int")
}

func TestIncompatibleResolvingTypeError_Message(t *testing.T) {
	err := &IncompatibleResolvingTypeError{
		DependencyType: reflect.TypeOf((*Logger)(nil)).Elem(),
		ResolvingType:  reflect.TypeOf(&SqlRepo{}),
	}
	assert.Contains(t, err.Error(), "ceangal.Logger")
	assert.Contains(t, err.Error(), "*ceangal.SqlRepo")
}

func TestUnknownDependencyError_Message(t *testing.T) {
	err := &UnknownDependencyError{Type: reflect.TypeOf((*Logger)(nil)).Elem()}
	assert.Contains(t, err.Error(), "ceangal.Logger")
	assert.Contains(t, err.Error(), "no binding committed")
}

func TestOutsideScopeError_Message(t *testing.T) {
	err := &OutsideScopeError{Type: reflect.TypeOf((*Repo)(nil)).Elem()}
	assert.Contains(t, err.Error(), "scoped")
}

func TestNoConstructorError_Message(t *testing.T) {
	err := &NoConstructorError{Type: reflect.TypeOf((*Widget)(nil)).Elem()}
	assert.Contains(t, err.Error(), "no constructor found")
}

func TestConstructionError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ConstructionError{
		DependencyType: reflect.TypeOf((*Logger)(nil)).Elem(),
		ResolvingType:  reflect.TypeOf(&ConsoleLogger{}),
		Lifetime:       LifetimeSingleton,
		Cause:          cause,
	}

	assert.Contains(t, err.Error(), "ceangal.Logger")
	assert.Contains(t, err.Error(), "*ceangal.ConsoleLogger")
	assert.Contains(t, err.Error(), "singleton")
	assert.Contains(t, err.Error(), "boom")
	assert.True(t, errors.Is(err, cause))
}

func TestConstructionError_FactoryBinding(t *testing.T) {
	err := &ConstructionError{
		DependencyType: reflect.TypeOf((*Logger)(nil)).Elem(),
		Lifetime:       LifetimeTransient,
		Cause:          errors.New("factory failed"),
	}
	assert.Contains(t, err.Error(), "resolving=factory")
}

func TestCircularDependencyError_Message(t *testing.T) {
	err := &CircularDependencyError{}
	assert.Equal(t, "circular dependency detected", err.Error())

	err = &CircularDependencyError{Path: []string{"A", "B", "A"}}
	assert.Contains(t, err.Error(), "A -> B -> A")
}

func TestScopeDisposedError_Message(t *testing.T) {
	id := uuid.New()
	err := &ScopeDisposedError{ID: id}
	assert.Contains(t, err.Error(), id.String())
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{}
	assert.Equal(t, "validation failed", err.Error())

	err = &ValidationError{Errors: []error{errors.New("one")}}
	assert.Contains(t, err.Error(), "one")

	err = &ValidationError{Errors: []error{errors.New("one"), errors.New("two")}}
	assert.Contains(t, err.Error(), "2 errors")
	assert.Contains(t, err.Error(), "two")
}

func TestValidationError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &ValidationError{Errors: []error{inner}}
	assert.True(t, errors.Is(err, inner))
}

func TestInvalidLifetimeError_Message(t *testing.T) {
	err := &InvalidLifetimeError{Type: reflect.TypeOf((*Logger)(nil)).Elem()}
	assert.Contains(t, err.Error(), "undefined lifetime")
}
