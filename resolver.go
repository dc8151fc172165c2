package ceangal

import (
	"fmt"
	"reflect"

	"github.com/toutaio/toutago-ceangal-container/registry"
)

// resolveType is the single recursive entry point of the resolution engine.
// Given a dependency type and an optional active scope it produces a fully
// constructed instance, resolving nested constructor parameters by recursive
// self-invocation. The path carries the types already being resolved on this
// call stack for circular dependency detection.
//
// No lock is held while recursing: the singleton cache and scope cache guard
// only the check and commit of their slots.
func (c *Container) resolveType(dependencyType reflect.Type, scope *Scope, path []reflect.Type) (interface{}, error) {
	descriptor, exists := c.registry.Get(dependencyType)
	if !exists {
		return nil, &UnknownDependencyError{Type: dependencyType}
	}

	for _, visited := range path {
		if visited == dependencyType {
			return nil, &CircularDependencyError{Path: typeNames(append(path, dependencyType))}
		}
	}
	path = append(path, dependencyType)

	switch Lifetime(descriptor.Lifetime) {
	case LifetimeTransient:
		return c.construct(descriptor, scope, path)

	case LifetimeSingleton:
		return c.singletons.getOrCreate(dependencyType, func() (interface{}, error) {
			return c.construct(descriptor, scope, path)
		})

	case LifetimeScoped:
		if scope == nil {
			return nil, &OutsideScopeError{Type: dependencyType}
		}
		return scope.getOrCreate(dependencyType, func() (interface{}, error) {
			return c.construct(descriptor, scope, path)
		})

	default:
		// Defensive: the binder commits a descriptor only together with its
		// lifetime, so this should be unreachable.
		return nil, &InvalidLifetimeError{Type: dependencyType}
	}
}

// construct determines the construction path for a descriptor and runs it:
// the factory when one is present, otherwise the richest registered
// constructor with recursively resolved parameters, otherwise zero-value
// construction of the resolving type. Every error escaping construction is
// wrapped as a ConstructionError carrying the failing binding's context.
func (c *Container) construct(descriptor *registry.Descriptor, scope *Scope, path []reflect.Type) (interface{}, error) {
	instance, err := c.createInstance(descriptor, scope, path)
	if err != nil {
		return nil, c.wrapConstruction(descriptor, err)
	}

	if initializable, ok := instance.(Initializable); ok {
		if err := initializable.Initialize(); err != nil {
			return nil, c.wrapConstruction(descriptor, fmt.Errorf("initialization failed: %w", err))
		}
	}

	return instance, nil
}

func (c *Container) createInstance(descriptor *registry.Descriptor, scope *Scope, path []reflect.Type) (interface{}, error) {
	// Factory bindings are opaque: invoke directly, no parameter resolution.
	if descriptor.Factory != nil {
		factory, ok := descriptor.Factory.(FactoryFunc)
		if !ok {
			return nil, fmt.Errorf("stored factory has unexpected type %T", descriptor.Factory)
		}
		instance, err := callGuarded(func() (interface{}, error) {
			return factory()
		})
		if err != nil {
			return nil, err
		}
		if instance == nil || !assignableTo(reflect.TypeOf(instance), descriptor.DependencyType) {
			return nil, fmt.Errorf("factory produced %T, which does not satisfy %v", instance, descriptor.DependencyType)
		}
		return instance, nil
	}

	if infos := descriptorConstructors(descriptor.Constructors); len(infos) > 0 {
		info := selectConstructor(infos)
		return c.invokeConstructor(info, scope, path)
	}

	// No constructors registered: fall back to zero-value construction of the
	// pointer-to-struct resolving type.
	if !isConcrete(descriptor.ResolvingType) {
		return nil, &NoConstructorError{Type: descriptor.ResolvingType}
	}
	return reflect.New(descriptor.ResolvingType.Elem()).Interface(), nil
}

// invokeConstructor calls a constructor with recursively resolved
// dependencies. The same scope reference is propagated to every parameter so
// that scoped dependencies shared by sibling parameters collapse to one
// instance.
func (c *Container) invokeConstructor(info *constructorInfo, scope *Scope, path []reflect.Type) (interface{}, error) {
	params := make([]reflect.Value, info.numParams)
	for i, paramType := range info.paramTypes {
		resolved, err := c.resolveType(paramType, scope, path)
		if err != nil {
			return nil, fmt.Errorf("resolving constructor parameter %d (%v): %w", i, paramType, err)
		}
		params[i] = reflect.ValueOf(resolved)
	}

	return callGuarded(func() (interface{}, error) {
		results := info.fn.Call(params)
		if info.returnsError {
			if errValue := results[1]; !errValue.IsNil() {
				return nil, errValue.Interface().(error)
			}
		}
		return results[0].Interface(), nil
	})
}

// callGuarded runs user construction code, converting a panic into an error
// so it can be wrapped and propagated instead of unwinding through the
// resolver.
func callGuarded(fn func() (interface{}, error)) (instance interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during construction: %v", r)
		}
	}()
	return fn()
}

func (c *Container) wrapConstruction(descriptor *registry.Descriptor, cause error) error {
	return &ConstructionError{
		DependencyType: descriptor.DependencyType,
		ResolvingType:  descriptor.ResolvingType,
		Lifetime:       Lifetime(descriptor.Lifetime),
		Cause:          cause,
	}
}

func typeNames(types []reflect.Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}
