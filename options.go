package hjarta

import (
	"io"

	"github.com/0xalexb/hjarta-config/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules      []fx.Option
	LogLevel     string
	Scope        config.Scope
	Bootstrapper *config.Bootstrapper
	Output       io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application, overriding the level
// resolved from the "logging" configuration section.
// Valid levels are: "debug", "info", "warn", "error".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithScope sets the discovery scope used to bootstrap the configuration loader.
// Without it, config.DefaultRegistry is used.
func WithScope(scope config.Scope) Option {
	return func(opts *Options) {
		opts.Scope = scope
	}
}

// WithBootstrapper shares an existing Bootstrapper, so several apps use one loader handle.
// It takes precedence over WithScope.
func WithBootstrapper(bootstrapper *config.Bootstrapper) Option {
	return func(opts *Options) {
		opts.Bootstrapper = bootstrapper
	}
}

// WithOutput sets where the application logger writes. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.Output = w
	}
}
