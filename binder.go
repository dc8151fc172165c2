package ceangal

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/toutaio/toutago-ceangal-container/registry"
)

// typeFromToken extracts the dependency type from a type token. Tokens follow
// the (*T)(nil) convention: a pointer to an interface keys on the interface
// type, a pointer to a struct keys on the pointer type itself (instances of
// concrete types are pointers, so assignability checks stay honest).
func typeFromToken(token interface{}) (reflect.Type, error) {
	if token == nil {
		return nil, &InvalidDependencyTypeError{Reason: "type token cannot be nil; use a (*T)(nil) token"}
	}

	t := reflect.TypeOf(token)
	if t.Kind() != reflect.Ptr {
		return nil, &InvalidDependencyTypeError{Type: t, Reason: "type token must be a pointer, like (*T)(nil)"}
	}

	switch t.Elem().Kind() {
	case reflect.Interface:
		return t.Elem(), nil
	case reflect.Struct:
		return t, nil
	default:
		return nil, &InvalidDependencyTypeError{Type: t, Reason: "dependency type must be an interface or a struct"}
	}
}

// isConcrete reports whether a dependency type is instantiable without a
// factory: a pointer to struct.
func isConcrete(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct
}

// assignableTo reports whether instances of resolvingType satisfy
// dependencyType.
func assignableTo(resolvingType, dependencyType reflect.Type) bool {
	if dependencyType.Kind() == reflect.Interface {
		return resolvingType.Implements(dependencyType)
	}
	return resolvingType.AssignableTo(dependencyType)
}

// Binder is the first stage of the fluent binding chain, produced by
// Container.Bind. Validation errors are carried through the chain and
// surface when the lifetime is committed.
type Binder struct {
	container      *Container
	dependencyType reflect.Type
	err            error
}

// To sets the concrete resolving type for the dependency, with optional
// constructor functions. The resolving token must be a pointer to struct
// assignable to the dependency type. Constructors are kept in registration
// order; resolution selects the one with the most parameters, first
// registered winning ties. With no constructors, instances are
// zero-constructed via reflection.
//
// Example:
//
//	container.Bind((*Logger)(nil)).To((*ConsoleLogger)(nil), NewConsoleLogger).AsSingleton()
func (b *Binder) To(resolvingToken interface{}, constructors ...ConstructorFunc) *LifetimeBinder {
	if b.err != nil {
		return &LifetimeBinder{container: b.container, err: b.err}
	}

	resolvingType, err := typeFromToken(resolvingToken)
	if err != nil {
		return &LifetimeBinder{container: b.container, err: &ResolvingTypeNotConcreteError{Type: reflect.TypeOf(resolvingToken)}}
	}
	if !isConcrete(resolvingType) {
		return &LifetimeBinder{container: b.container, err: &ResolvingTypeNotConcreteError{Type: resolvingType}}
	}
	if !assignableTo(resolvingType, b.dependencyType) {
		return &LifetimeBinder{container: b.container, err: &IncompatibleResolvingTypeError{
			DependencyType: b.dependencyType,
			ResolvingType:  resolvingType,
		}}
	}

	infos, err := parseConstructors(constructors)
	if err != nil {
		return &LifetimeBinder{container: b.container, err: &InvalidBindingError{Reason: err.Error()}}
	}
	for _, info := range infos {
		if !assignableTo(info.returnType, b.dependencyType) {
			return &LifetimeBinder{container: b.container, err: &IncompatibleResolvingTypeError{
				DependencyType: b.dependencyType,
				ResolvingType:  info.returnType,
			}}
		}
	}

	stored := make([]interface{}, len(infos))
	for i, info := range infos {
		stored[i] = info
	}

	return &LifetimeBinder{
		container: b.container,
		descriptor: &registry.Descriptor{
			DependencyType: b.dependencyType,
			ResolvingType:  resolvingType,
			Constructors:   stored,
		},
	}
}

// ToFactory binds the dependency to a zero-argument factory function. The
// factory fully replaces constructor-based construction; no parameter
// resolution is attempted, it is responsible for wiring its own result.
func (b *Binder) ToFactory(factory FactoryFunc) *LifetimeBinder {
	if b.err != nil {
		return &LifetimeBinder{container: b.container, err: b.err}
	}
	if factory == nil {
		return &LifetimeBinder{container: b.container, err: &InvalidBindingError{Reason: "factory cannot be nil"}}
	}

	return &LifetimeBinder{
		container: b.container,
		descriptor: &registry.Descriptor{
			DependencyType: b.dependencyType,
			Factory:        factory,
		},
	}
}

// LifetimeBinder is the final stage of the fluent chain. Setting the lifetime
// is the act of committing the descriptor into the registry; until then the
// binding does not exist.
type LifetimeBinder struct {
	container  *Container
	descriptor *registry.Descriptor
	err        error
}

// AsTransient commits the binding with the transient lifetime.
func (lb *LifetimeBinder) AsTransient() error {
	return lb.commit(LifetimeTransient)
}

// AsSingleton commits the binding with the singleton lifetime.
func (lb *LifetimeBinder) AsSingleton() error {
	return lb.commit(LifetimeSingleton)
}

// AsScoped commits the binding with the scoped lifetime.
func (lb *LifetimeBinder) AsScoped() error {
	return lb.commit(LifetimeScoped)
}

// commit stamps the lifetime onto the descriptor and stores it in the
// registry, atomically replacing any prior descriptor for the same
// dependency type.
func (lb *LifetimeBinder) commit(lifetime Lifetime) error {
	if lb.err != nil {
		return lb.err
	}

	lb.descriptor.Lifetime = string(lifetime)
	if err := lb.container.registry.Commit(lb.descriptor); err != nil {
		return err
	}

	lb.container.logger.Debug("binding committed",
		zap.Stringer("dependency", lb.descriptor.DependencyType),
		zap.String("lifetime", lifetime.String()),
	)
	return nil
}
