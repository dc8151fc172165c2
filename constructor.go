package ceangal

import (
	"fmt"
	"reflect"
)

// ConstructorFunc represents a constructor function type.
// Supported signatures:
//   - func() *T
//   - func() (*T, error)
//   - func(Dep1) *T
//   - func(Dep1, Dep2, ...) (*T, error)
//
// Parameters may be interface types or pointer-to-struct types; each is
// resolved recursively from the container.
type ConstructorFunc interface{}

// constructorInfo holds metadata about a constructor function.
type constructorInfo struct {
	fn           reflect.Value
	fnType       reflect.Type
	paramTypes   []reflect.Type
	returnsError bool
	returnType   reflect.Type
	numParams    int
}

// parseConstructor analyzes a constructor function and extracts metadata.
func parseConstructor(constructor ConstructorFunc) (*constructorInfo, error) {
	if constructor == nil {
		return nil, fmt.Errorf("constructor cannot be nil")
	}

	fnValue := reflect.ValueOf(constructor)
	fnType := fnValue.Type()

	if fnType.Kind() != reflect.Func {
		return nil, fmt.Errorf("constructor must be a function, got %v", fnType.Kind())
	}

	// Validate return values
	numOut := fnType.NumOut()
	if numOut == 0 || numOut > 2 {
		return nil, fmt.Errorf("constructor must return (*T) or (*T, error), got %d return values", numOut)
	}

	// First return value must be a pointer to the constructed instance
	returnType := fnType.Out(0)
	if returnType.Kind() != reflect.Ptr {
		return nil, fmt.Errorf("constructor must return a pointer, got %v", returnType.Kind())
	}

	// Check if second return is error
	returnsError := false
	if numOut == 2 {
		errorInterface := reflect.TypeOf((*error)(nil)).Elem()
		if !fnType.Out(1).Implements(errorInterface) {
			return nil, fmt.Errorf("constructor's second return value must be error, got %v", fnType.Out(1))
		}
		returnsError = true
	}

	// Extract parameter types
	numParams := fnType.NumIn()
	paramTypes := make([]reflect.Type, numParams)
	for i := 0; i < numParams; i++ {
		paramTypes[i] = fnType.In(i)
	}

	return &constructorInfo{
		fn:           fnValue,
		fnType:       fnType,
		paramTypes:   paramTypes,
		returnsError: returnsError,
		returnType:   returnType,
		numParams:    numParams,
	}, nil
}

// parseConstructors parses a slice of constructor functions, preserving their
// registration order. The order matters: it breaks ties when several
// constructors share the maximum parameter count.
func parseConstructors(constructors []ConstructorFunc) ([]*constructorInfo, error) {
	infos := make([]*constructorInfo, 0, len(constructors))
	for i, ctor := range constructors {
		info, err := parseConstructor(ctor)
		if err != nil {
			return nil, fmt.Errorf("constructor %d: %w", i, err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// selectConstructor picks the constructor with the greatest parameter count.
// When several constructors tie for the maximum, the first registered wins;
// registration order is fixed, so the choice is deterministic. Returns nil
// for an empty list.
func selectConstructor(infos []*constructorInfo) *constructorInfo {
	var selected *constructorInfo
	for _, info := range infos {
		if selected == nil || info.numParams > selected.numParams {
			selected = info
		}
	}
	return selected
}

// descriptorConstructors unpacks the opaque constructor slice stored on a
// registry descriptor.
func descriptorConstructors(stored []interface{}) []*constructorInfo {
	infos := make([]*constructorInfo, 0, len(stored))
	for _, s := range stored {
		if info, ok := s.(*constructorInfo); ok {
			infos = append(infos, info)
		}
	}
	return infos
}
