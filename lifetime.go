package ceangal

// Lifetime represents the lifecycle strategy for a bound dependency.
type Lifetime string

const (
	// LifetimeUndefined is the zero value. A descriptor with an undefined
	// lifetime has not been committed and cannot be resolved.
	LifetimeUndefined Lifetime = ""

	// LifetimeTransient creates a new instance on every resolution.
	LifetimeTransient Lifetime = "transient"

	// LifetimeSingleton creates a single instance that is reused for all
	// resolutions. The instance is created lazily on first resolution using
	// sync.Once for thread safety.
	LifetimeSingleton Lifetime = "singleton"

	// LifetimeScoped creates one instance per scope. Each scope maintains its
	// own instance cache, isolated from other scopes. Scoped bindings can only
	// be resolved through a Scope.
	LifetimeScoped Lifetime = "scoped"
)

// String returns the string representation of the lifetime.
func (l Lifetime) String() string {
	if l == LifetimeUndefined {
		return "undefined"
	}
	return string(l)
}

// FactoryFunc is a caller-supplied construction function that bypasses
// constructor scanning entirely. The factory takes no arguments; it is
// responsible for producing a fully wired instance, typically by closing over
// whatever it needs (including the container itself).
//
// Example:
//
//	widget := &Widget{Size: 42}
//	container.Bind((*Widget)(nil)).ToFactory(func() (interface{}, error) {
//	    return widget, nil
//	}).AsSingleton()
type FactoryFunc func() (interface{}, error)
