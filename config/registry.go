package config

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Factory constructs a provider of a registered contract.
type Factory func() (any, error)

// Registration is one named entry of a Registry.
type Registration struct {
	Name    string
	Factory Factory
}

// Scope is the visibility boundary queried during discovery.
// Registrations returns the providers of contract in registry-defined order.
type Scope interface {
	Registrations(contract reflect.Type) ([]Registration, error)
}

// ScopeFunc adapts a function to the Scope interface.
type ScopeFunc func(contract reflect.Type) ([]Registration, error)

// Registrations calls f(contract).
func (f ScopeFunc) Registrations(contract reflect.Type) ([]Registration, error) {
	return f(contract)
}

// Registry maps contract types to ordered provider factories.
// It is populated at process initialization and is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type][]Registration
}

// DefaultRegistry is the ambient scope used by Bootstrap.
//
//nolint:gochecknoglobals // process-wide registration table, populated from init functions.
var DefaultRegistry = NewRegistry()

// DefaultScope is the explicit "use the ambient scope" sentinel for BootstrapIn.
//
//nolint:gochecknoglobals // sentinel value.
var DefaultScope Scope

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[reflect.Type][]Registration),
	}
}

// Register appends factory under name for contract. Names are unique per contract.
func (r *Registry) Register(contract reflect.Type, name string, factory Factory) error {
	if contract == nil {
		return invalidArgument("contract type must not be nil")
	}

	if name == "" {
		return invalidArgument("provider name must not be empty")
	}

	if factory == nil {
		return invalidArgument("factory for provider %q must not be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[reflect.Type][]Registration)
	}

	for _, existing := range r.entries[contract] {
		if existing.Name == name {
			return invalidArgument("provider %q already registered for %s", name, contract)
		}
	}

	r.entries[contract] = append(r.entries[contract], Registration{Name: name, Factory: factory})

	return nil
}

// RegisterLoader registers a Loader factory under name.
func RegisterLoader(registry *Registry, name string, factory func() (Loader, error)) error {
	if factory == nil {
		return invalidArgument("factory for provider %q must not be nil", name)
	}

	return registry.Register(LoaderType, name, func() (any, error) {
		return factory()
	})
}

// MustRegisterLoader is like RegisterLoader but panics on error. Intended for init functions.
func MustRegisterLoader(registry *Registry, name string, factory func() (Loader, error)) {
	err := RegisterLoader(registry, name, factory)
	if err != nil {
		panic(fmt.Sprintf("registering loader %q: %v", name, err))
	}
}

// Registrations returns a copy of the registrations for contract, in registration order.
func (r *Registry) Registrations(contract reflect.Type) ([]Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries[contract]), nil
}

// Names returns the registered provider names for contract.
func (r *Registry) Names(contract reflect.Type) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries[contract]))
	for _, entry := range r.entries[contract] {
		names = append(names, entry.Name)
	}

	return names
}

// Restrict returns a Scope that only sees the named registrations.
// Order still follows the registry.
func (r *Registry) Restrict(names ...string) Scope {
	allowed := slices.Clone(names)

	return ScopeFunc(func(contract reflect.Type) ([]Registration, error) {
		all, err := r.Registrations(contract)
		if err != nil {
			return nil, err
		}

		return slices.DeleteFunc(all, func(entry Registration) bool {
			return !slices.Contains(allowed, entry.Name)
		}), nil
	})
}
