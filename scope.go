package ceangal

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Disposable represents a service that requires cleanup. Scoped instances
// implementing this interface have Dispose called when their scope is
// disposed. Transient instances are never tracked and never disposed.
//
// Example:
//
//	type DatabaseConnection struct{}
//	func (d *DatabaseConnection) Dispose() error {
//	    return d.connection.Close()
//	}
type Disposable interface {
	Dispose() error
}

// Initializable represents a service that requires initialization. Instances
// implementing this interface have Initialize called after construction.
type Initializable interface {
	Initialize() error
}

// Scope is a bounded unit of instance sharing for scoped dependencies. Scoped
// bindings create one instance per scope, allowing for request-scoped or
// transaction-scoped dependencies. Scopes are fully independent of each
// other: no shared cache, no parent/child relationship.
//
// Example:
//
//	scope := container.CreateScope()
//	defer scope.Dispose()
//
//	uow, err := scope.Resolve((*UnitOfWork)(nil))
type Scope struct {
	id            uuid.UUID
	container     *Container
	instances     map[reflect.Type]interface{}
	creationOrder []interface{} // disposal happens in reverse of this order
	disposed      bool
	mu            sync.RWMutex
}

// newScope creates a new scope owned by the given container.
func newScope(container *Container) *Scope {
	return &Scope{
		id:        uuid.New(),
		container: container,
		instances: make(map[reflect.Type]interface{}),
	}
}

// ID returns the scope's unique identity. It is generated at creation and is
// the scope's externally visible handle for the life of the owning container.
func (s *Scope) ID() uuid.UUID {
	return s.id
}

// Resolve resolves an instance within this scope. Valid for transient,
// singleton and scoped bindings alike: scoped instances are cached in this
// scope, singletons are shared with the container, transients are always
// fresh. Returns ScopeDisposedError after Dispose.
func (s *Scope) Resolve(dependencyToken interface{}) (interface{}, error) {
	s.mu.RLock()
	disposed := s.disposed
	s.mu.RUnlock()
	if disposed {
		return nil, &ScopeDisposedError{ID: s.id}
	}

	dependencyType, err := typeFromToken(dependencyToken)
	if err != nil {
		return nil, err
	}
	return s.container.resolveType(dependencyType, s, nil)
}

// MustResolve is like Resolve but panics on error.
func (s *Scope) MustResolve(dependencyToken interface{}) interface{} {
	instance, err := s.Resolve(dependencyToken)
	if err != nil {
		panic(err)
	}
	return instance
}

// getOrCreate returns the cached instance for a scoped dependency, or
// constructs one. The scope lock guards only the check and the commit of the
// cache slot; construct runs unlocked so that recursive resolution through
// the same scope cannot deadlock. If two goroutines race to construct the
// same type, the first stored instance wins and the loser's is discarded.
func (s *Scope) getOrCreate(dependencyType reflect.Type, construct func() (interface{}, error)) (interface{}, error) {
	s.mu.RLock()
	if s.disposed {
		s.mu.RUnlock()
		return nil, &ScopeDisposedError{ID: s.id}
	}
	instance, exists := s.instances[dependencyType]
	s.mu.RUnlock()
	if exists {
		return instance, nil
	}

	created, err := construct()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil, &ScopeDisposedError{ID: s.id}
	}
	if existing, exists := s.instances[dependencyType]; exists {
		s.mu.Unlock()
		return existing, nil
	}
	s.instances[dependencyType] = created
	s.creationOrder = append(s.creationOrder, created)
	s.mu.Unlock()

	return created, nil
}

// Dispose releases the scope: its cache is cleared, it is removed from the
// container's active scope set, and cached instances implementing Disposable
// are disposed in reverse creation order (dependents before dependencies).
// Dispose is idempotent; a second call is a no-op and returns nil.
func (s *Scope) Dispose() error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil
	}
	s.disposed = true
	order := s.creationOrder
	s.instances = make(map[reflect.Type]interface{})
	s.creationOrder = nil
	s.mu.Unlock()

	s.container.scopes.remove(s.id)
	s.container.logger.Debug("scope disposed", zap.String("scope", s.id.String()))

	// User code runs outside the scope lock.
	var err error
	for i := len(order) - 1; i >= 0; i-- {
		if disposable, ok := order[i].(Disposable); ok {
			err = multierr.Append(err, disposable.Dispose())
		}
	}
	return err
}

// scopeManager tracks all currently open scopes of a container, keyed by
// scope id. Entries are added on creation and removed exactly once, from
// Scope.Dispose.
type scopeManager struct {
	mu     sync.RWMutex
	scopes map[uuid.UUID]*Scope
}

func newScopeManager() *scopeManager {
	return &scopeManager{
		scopes: make(map[uuid.UUID]*Scope),
	}
}

func (m *scopeManager) add(s *Scope) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scopes[s.id] = s
}

func (m *scopeManager) remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.scopes, id)
}

func (m *scopeManager) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.scopes)
}

// all returns a snapshot of the open scopes.
func (m *scopeManager) all() []*Scope {
	m.mu.RLock()
	defer m.mu.RUnlock()
	scopes := make([]*Scope, 0, len(m.scopes))
	for _, s := range m.scopes {
		scopes = append(scopes, s)
	}
	return scopes
}
