// Package ceangal provides a constructor-injection dependency resolution
// engine for Go.
//
// Ceangal (Irish: "binding" or "tie") builds fully-wired object graphs on
// demand from a registry of dependency-type to construction-recipe bindings,
// honoring transient, singleton and scoped lifetimes and recursively
// resolving every constructor dependency of every resolved object.
//
// # Features
//
//   - Fluent Bind().To().AsLifetime() registration
//   - Three lifetimes: transient, singleton, scoped
//   - Constructor injection with recursive parameter resolution
//   - Multi-constructor disambiguation (richest constructor wins)
//   - Factory bindings that bypass constructor scanning
//   - Isolated scopes with unique identities and idempotent disposal
//   - Circular dependency detection
//   - Thread-safe registration and resolution
//
// # Quick start
//
// Create a container and commit bindings:
//
//	container := ceangal.New()
//	container.Bind((*Logger)(nil)).To((*ConsoleLogger)(nil)).AsSingleton()
//
//	instance, err := container.Resolve((*Logger)(nil))
//	logger := instance.(Logger)
//
// # Lifetimes
//
// Transient yields a new instance on every resolution:
//
//	container.Bind((*Service)(nil)).To((*MyService)(nil), NewMyService).AsTransient()
//
// Singleton shares a single lazily created instance:
//
//	container.Bind((*Cache)(nil)).To((*MemoryCache)(nil)).AsSingleton()
//
// Scoped yields one instance per scope; resolving a scoped binding from the
// container itself fails with OutsideScopeError:
//
//	scope := container.CreateScope()
//	defer scope.Dispose()
//	repo, err := scope.Resolve((*Repo)(nil))
//
// # Constructor injection
//
// Constructors are plain functions returning a pointer, optionally with an
// error. Their parameters are resolved recursively from the container, the
// same scope reference flowing through the whole graph:
//
//	func NewServiceImpl(repo Repo, logger Logger) *ServiceImpl { ... }
//
//	container.Bind((*Service)(nil)).To((*ServiceImpl)(nil), NewServiceImpl).AsTransient()
//
// When several constructors are registered, the one with the greatest
// parameter count is selected; the first registered wins ties.
//
// # Re-binding
//
// Committing a binding for an already-bound dependency type replaces the
// prior binding silently; subsequent resolutions use only the newest one.
package ceangal
