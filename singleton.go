package ceangal

import (
	"reflect"
	"sync"
)

// singletonInstance holds a singleton value and ensures it's created only once.
type singletonInstance struct {
	value   interface{}
	err     error
	created bool
	once    sync.Once
}

// singletonCache manages singleton instances with thread-safe lazy
// initialization. Instances are shared across all callers and all scopes for
// the lifetime of the container.
type singletonCache struct {
	instances map[reflect.Type]*singletonInstance
	mu        sync.RWMutex
}

// newSingletonCache creates a new singleton cache.
func newSingletonCache() *singletonCache {
	return &singletonCache{
		instances: make(map[reflect.Type]*singletonInstance),
	}
}

// getOrCreate retrieves an existing singleton or creates it using the provided
// construct function. The function is called exactly once per dependency type,
// even under concurrent access; losers of the race observe the stored value.
// The cache lock is never held while construct runs, so recursive resolution
// of nested dependencies cannot deadlock.
//
// This method is goroutine-safe.
func (sc *singletonCache) getOrCreate(dependencyType reflect.Type, construct func() (interface{}, error)) (interface{}, error) {
	// Fast path: check if instance exists (read lock)
	sc.mu.RLock()
	instance, exists := sc.instances[dependencyType]
	sc.mu.RUnlock()

	if !exists {
		// Slow path: create instance holder (write lock)
		sc.mu.Lock()
		// Double-check after acquiring write lock (another goroutine might have created it)
		instance, exists = sc.instances[dependencyType]
		if !exists {
			instance = &singletonInstance{}
			sc.instances[dependencyType] = instance
		}
		sc.mu.Unlock()
	}

	// sync.Once ensures construct is called exactly once
	instance.once.Do(func() {
		instance.value, instance.err = construct()
		instance.created = instance.err == nil
	})

	return instance.value, instance.err
}

// createdInstances returns the singleton values that were successfully
// constructed. Used by Container.Close to dispose singletons.
func (sc *singletonCache) createdInstances() []interface{} {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	values := make([]interface{}, 0, len(sc.instances))
	for _, instance := range sc.instances {
		// A no-op Do establishes visibility of the first call's effects
		// without constructing anything.
		instance.once.Do(func() {})
		if instance.created {
			values = append(values, instance.value)
		}
	}
	return values
}
