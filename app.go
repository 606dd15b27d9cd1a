package hjarta

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for an application using Fx, with a
// bootstrapped config.Loader available to every module.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
// Configuration bootstrap errors are reported by Start.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	bootstrapper := options.Bootstrapper
	if bootstrapper == nil {
		bootstrapper = config.NewBootstrapper(options.Scope)
	}

	loader, err := bootstrapper.Loader()
	if err != nil {
		return fx.New(fx.NopLogger, fx.Error(fmt.Errorf("bootstrapping configuration: %w", err)))
	}

	logCfg, err := resolveLogging(loader, options.LogLevel)
	if err != nil {
		return fx.New(fx.NopLogger, fx.Error(err))
	}

	output := options.Output
	if output == nil {
		output = os.Stderr
	}

	logger := logging.NewLogger(logCfg, output)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logCfg),
		fx.Supply(logger),
		fx.Supply(fx.Annotate(loader, fx.As(new(config.Loader)))),
		fx.Options(options.Modules...),
	)
}

// resolveLogging reads the logging section. Absence means defaults; a level
// given through WithLogLevel wins over the document.
func resolveLogging(loader config.Loader, level string) (logging.Config, error) {
	outcome := config.Resolve[*logging.Config](loader, logging.Path)

	var logCfg logging.Config

	switch outcome.Kind() {
	case config.OutcomePresent:
		logCfg = *outcome.Value()
	case config.OutcomeAbsent:
		logCfg.SetDefaults()
	default:
		return logging.Config{}, fmt.Errorf("resolving %q: %w", logging.Path, outcome.Err())
	}

	if level != "" {
		logCfg.Level = level
	}

	return logCfg, nil
}

// ProvideConfig makes a *T, resolved at the colon-separated path, available to the Fx graph.
// An absent or invalid section fails application start.
func ProvideConfig[T any](path string) fx.Option {
	parsed, err := config.ParsePath(path)
	if err != nil {
		return fx.Error(fmt.Errorf("config path %q: %w", path, err))
	}

	return fx.Provide(config.Provider[T](parsed))
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
