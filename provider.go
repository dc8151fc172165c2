package ceangal

import "fmt"

// ServiceProvider is the interface implemented by service providers. Service
// providers encapsulate related binding registrations so a composition root
// can be split into modules.
//
// Example:
//
//	type LoggingProvider struct{}
//
//	func (p *LoggingProvider) Register(container *Container) error {
//	    return container.Bind((*Logger)(nil)).To((*ConsoleLogger)(nil)).AsSingleton()
//	}
type ServiceProvider interface {
	Register(container *Container) error
}

// BootableProvider is an optional interface for providers that need a boot
// phase. Boot is called after all providers have been registered, when
// BootProviders is invoked.
type BootableProvider interface {
	ServiceProvider
	Boot(container *Container) error
}

// DeferredProvider is an optional interface for providers that should be
// registered conditionally. ShouldRegister is consulted before Register.
type DeferredProvider interface {
	ServiceProvider
	ShouldRegister(container *Container) bool
}

// providerEntry tracks a registered provider.
type providerEntry struct {
	provider ServiceProvider
	booted   bool
}

// RegisterProvider registers a service provider with the container. The
// provider's Register method is called immediately (unless it is a
// DeferredProvider that declines). If the provider implements
// BootableProvider, its Boot method runs when BootProviders is invoked.
func (c *Container) RegisterProvider(provider ServiceProvider) error {
	if provider == nil {
		return fmt.Errorf("provider cannot be nil")
	}

	if deferred, ok := provider.(DeferredProvider); ok {
		if !deferred.ShouldRegister(c) {
			return nil
		}
	}

	if err := provider.Register(c); err != nil {
		return fmt.Errorf("provider registration failed: %w", err)
	}

	c.providers = append(c.providers, &providerEntry{provider: provider})
	return nil
}

// BootProviders runs the boot phase of every registered BootableProvider, in
// registration order. Each provider is booted at most once; calling
// BootProviders again only boots providers registered since the last call.
func (c *Container) BootProviders() error {
	for _, entry := range c.providers {
		if entry.booted {
			continue
		}
		if bootable, ok := entry.provider.(BootableProvider); ok {
			if err := bootable.Boot(c); err != nil {
				return fmt.Errorf("provider boot failed: %w", err)
			}
		}
		entry.booted = true
	}
	return nil
}
