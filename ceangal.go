package ceangal

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/toutaio/toutago-ceangal-container/registry"
)

// Container is the facade composing the registry, the scope manager and the
// resolver. Multiple goroutines may use one container concurrently.
type Container struct {
	registry   *registry.Registry
	singletons *singletonCache
	scopes     *scopeManager
	providers  []*providerEntry
	logger     *zap.Logger
}

// New creates a new container. Options can be provided to configure its
// behavior.
//
// Example:
//
//	container := ceangal.New()
//	// or with options:
//	container := ceangal.New(ceangal.WithLogger(logger))
func New(options ...Option) *Container {
	c := &Container{
		registry:   registry.New(),
		singletons: newSingletonCache(),
		scopes:     newScopeManager(),
		logger:     zap.NewNop(),
	}

	for _, opt := range options {
		if err := opt(c); err != nil {
			panic(fmt.Sprintf("failed to apply option: %v", err))
		}
	}

	return c
}

// Bind starts the fluent binding chain for a dependency type. The token
// follows the (*T)(nil) convention: an interface pointer binds the interface,
// a struct pointer binds the pointer type. The binding takes effect only when
// one of the AsTransient/AsSingleton/AsScoped terminators commits it;
// committing a type that is already bound silently replaces the prior
// binding.
//
// Example:
//
//	err := container.Bind((*Logger)(nil)).To((*ConsoleLogger)(nil), NewConsoleLogger).AsSingleton()
func (c *Container) Bind(dependencyToken interface{}) *Binder {
	dependencyType, err := typeFromToken(dependencyToken)
	return &Binder{container: c, dependencyType: dependencyType, err: err}
}

// Register is shorthand for binding a concrete type to itself:
// Register(t, ctors...) is equivalent to Bind(t).To(t, ctors...). The token
// must be a pointer to struct; interface types can only be registered through
// RegisterFactory.
//
// Example:
//
//	err := container.Register((*SqlRepo)(nil), NewSqlRepo).AsSingleton()
func (c *Container) Register(concreteToken interface{}, constructors ...ConstructorFunc) *LifetimeBinder {
	concreteType, err := typeFromToken(concreteToken)
	if err != nil || !isConcrete(concreteType) {
		return &LifetimeBinder{container: c, err: &RegisteredTypeNotConcreteError{Type: concreteType}}
	}
	return c.Bind(concreteToken).To(concreteToken, constructors...)
}

// RegisterFactory registers a dependency type resolved through a factory.
// Unlike Register, interface tokens are allowed here because the factory
// carries the construction recipe.
func (c *Container) RegisterFactory(dependencyToken interface{}, factory FactoryFunc) *LifetimeBinder {
	return c.Bind(dependencyToken).ToFactory(factory)
}

// Descriptor returns the committed descriptor for a dependency type, if any.
// Pure lookup, no side effects.
func (c *Container) Descriptor(dependencyToken interface{}) (*registry.Descriptor, bool) {
	dependencyType, err := typeFromToken(dependencyToken)
	if err != nil {
		return nil, false
	}
	return c.registry.Get(dependencyType)
}

// Resolve produces a fully constructed instance for the dependency type.
// Valid for transient and singleton bindings; scoped bindings resolved at
// container level fail with OutsideScopeError — use Scope.Resolve instead.
//
// Example:
//
//	instance, err := container.Resolve((*Logger)(nil))
//	logger := instance.(Logger)
func (c *Container) Resolve(dependencyToken interface{}) (interface{}, error) {
	dependencyType, err := typeFromToken(dependencyToken)
	if err != nil {
		return nil, err
	}
	return c.resolveType(dependencyType, nil, nil)
}

// MustResolve is like Resolve but panics on error.
func (c *Container) MustResolve(dependencyToken interface{}) interface{} {
	instance, err := c.Resolve(dependencyToken)
	if err != nil {
		panic(err)
	}
	return instance
}

// CreateScope opens a new scope with a fresh unique id and registers it with
// the container's scope set. The caller owns the scope and must dispose it;
// Dispose is idempotent.
func (c *Container) CreateScope() *Scope {
	s := newScope(c)
	c.scopes.add(s)
	c.logger.Debug("scope created", zap.String("scope", s.id.String()))
	return s
}

// OpenScopes returns the number of currently open scopes.
func (c *Container) OpenScopes() int {
	return c.scopes.len()
}

// Validate walks every committed descriptor and reports constructor
// parameters that have no binding of their own. Factory bindings are opaque
// and skipped. Returns a ValidationError aggregating all problems, or nil.
func (c *Container) Validate() error {
	var errs []error
	for _, dependencyType := range c.registry.Types() {
		descriptor, exists := c.registry.Get(dependencyType)
		if !exists || descriptor.Factory != nil {
			continue
		}
		infos := descriptorConstructors(descriptor.Constructors)
		info := selectConstructor(infos)
		if info == nil {
			continue
		}
		for i, paramType := range info.paramTypes {
			if !c.registry.Has(paramType) {
				errs = append(errs, fmt.Errorf("constructor parameter %d (%v) of %v has no binding",
					i, paramType, dependencyType))
			}
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Close shuts the container down: all open scopes are disposed, then
// singleton instances implementing Disposable are disposed.
func (c *Container) Close() error {
	var err error
	for _, s := range c.scopes.all() {
		err = multierr.Append(err, s.Dispose())
	}
	for _, instance := range c.singletons.createdInstances() {
		if disposable, ok := instance.(Disposable); ok {
			err = multierr.Append(err, disposable.Dispose())
		}
	}
	c.logger.Debug("container closed")
	return err
}
