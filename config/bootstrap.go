package config

import (
	"fmt"
	"log/slog"
	"sync"
)

// Bootstrap locates a Loader in DefaultRegistry. See BootstrapIn.
func Bootstrap() (Loader, error) {
	return BootstrapIn(DefaultScope)
}

// BootstrapIn locates the first Loader registered in scope and runs its self-check.
// A nil scope means DefaultRegistry.
//
// The discovered provider is asked to resolve a Loader at the root path. Absent keeps
// the discovered provider, a Present Loader replaces it, and a failure is returned as is.
// An empty scope fails with KindDiscovery wrapping ErrNoProvider.
func BootstrapIn(scope Scope) (Loader, error) {
	if scope == nil {
		scope = DefaultRegistry
	}

	primordial, name, err := discover(scope)
	if err != nil {
		return nil, err
	}

	return selfCheck(primordial, name)
}

func discover(scope Scope) (Loader, string, error) {
	slog.Debug("discovering configuration loader")

	registrations, err := scope.Registrations(LoaderType)
	if err != nil {
		return nil, "", NewError(KindDiscovery, "querying scope", err)
	}

	if len(registrations) == 0 {
		return nil, "", NewError(KindDiscovery, "", ErrNoProvider)
	}

	first := registrations[0]

	if first.Factory == nil {
		return nil, "", NewError(KindDiscovery, fmt.Sprintf("provider %q has no factory", first.Name), nil)
	}

	instance, err := first.Factory()
	if err != nil {
		return nil, "", NewError(KindDiscovery, fmt.Sprintf("instantiating provider %q", first.Name), err)
	}

	loader, ok := instance.(Loader)
	if !ok || isNil(instance) {
		return nil, "", NewError(KindDiscovery, fmt.Sprintf("provider %q produced %T, not a loader", first.Name, instance), nil)
	}

	return loader, first.Name, nil
}

func selfCheck(primordial Loader, name string) (Loader, error) {
	slog.Debug("self-checking configuration loader", slog.String("provider", name))

	outcome := Resolve[Loader](primordial, Root())

	switch outcome.Kind() {
	case OutcomeAbsent:
		slog.Debug("keeping primordial configuration loader",
			slog.String("provider", name), slog.String("reason", outcome.Err().Error()))

		return primordial, nil
	case OutcomePresent:
		delegate := outcome.Value()

		slog.Debug("configuration loader substituted",
			slog.String("provider", name), slog.String("delegate", fmt.Sprintf("%T", delegate)))

		return delegate, nil
	default:
		return nil, outcome.Err()
	}
}

// Bootstrapper runs the bootstrap procedure at most once and caches the result.
// Independent Bootstrappers share no state.
type Bootstrapper struct {
	scope Scope
	once  func() (Loader, error)
}

// NewBootstrapper creates a Bootstrapper for scope. A nil scope means DefaultRegistry.
func NewBootstrapper(scope Scope) *Bootstrapper {
	b := &Bootstrapper{scope: scope}
	b.once = sync.OnceValues(func() (Loader, error) {
		return BootstrapIn(b.scope)
	})

	return b
}

// Loader returns the bootstrapped Loader, running discovery on first use.
// Every call returns the same handle or the same error.
func (b *Bootstrapper) Loader() (Loader, error) {
	return b.once()
}
