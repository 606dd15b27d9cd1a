package document

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/provider/cached"
)

// DelegateFunc builds the Loader that replaces a document loader after bootstrap.
type DelegateFunc func(primordial *Loader, settings Settings) (config.Loader, error)

// Option configures a Loader.
type Option func(*Loader)

// WithName sets the name used in log records and error messages.
func WithName(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.name = name
		}
	}
}

// WithDelegate overrides how the delegate is built when the document has a bootstrap section.
func WithDelegate(delegate DelegateFunc) Option {
	return func(l *Loader) {
		if delegate != nil {
			l.delegate = delegate
		}
	}
}

// Loader resolves configuration objects from a single document.
// Every Load fetches and parses the document, so a changing DataFetcher is
// reflected on the next call.
type Loader struct {
	name     string
	fetcher  config.DataFetcher
	parser   config.Parser
	delegate DelegateFunc
}

// New creates a document Loader reading through fetcher and parser.
func New(fetcher config.DataFetcher, parser config.Parser, opts ...Option) (*Loader, error) {
	if fetcher == nil {
		return nil, config.NewError(config.KindInvalidArgument, "data fetcher must not be nil", nil)
	}

	if parser == nil {
		return nil, config.NewError(config.KindInvalidArgument, "parser must not be nil", nil)
	}

	loader := &Loader{
		name:     "document",
		fetcher:  fetcher,
		parser:   parser,
		delegate: CachedDelegate,
	}

	for _, apply := range opts {
		apply(loader)
	}

	return loader, nil
}

// CachedDelegate wraps the primordial loader in a cache with the configured TTL.
func CachedDelegate(primordial *Loader, settings Settings) (config.Loader, error) {
	return cached.New(primordial, settings.TTL()), nil
}

// Name returns the loader's name.
func (l *Loader) Name() string {
	return l.name
}

// Close releases the fetcher when it holds resources, such as a file watcher.
func (l *Loader) Close() error {
	closer, ok := l.fetcher.(io.Closer)
	if !ok {
		return nil
	}

	err := closer.Close()
	if err != nil {
		return fmt.Errorf("%s: closing fetcher: %w", l.name, err)
	}

	return nil
}

// Load resolves target at path.
//
// A request for config.LoaderType is the bootstrap self-check; see Settings.
// Other targets must pass CheckTarget. Missing sections and empty documents are
// Absent. Fetch, parse, and validation errors are failures.
func (l *Loader) Load(path config.Path, target reflect.Type) config.Outcome[any] {
	err := config.CheckArguments(l, target)
	if err != nil {
		return config.Failed[any](err)
	}

	if target == config.LoaderType {
		return l.selfCheck()
	}

	err = CheckTarget(target)
	if err != nil {
		return config.Failed[any](err)
	}

	data, err := l.fetcher.Fetch()
	if err != nil {
		return config.Failf[any](config.KindFailure, err, "%s: fetching data", l.name)
	}

	holder, result := allocate(target)

	err = l.parser.Parse(data, holder.Interface(), path)
	if err != nil {
		if isAbsence(err) {
			return config.Absent[any](fmt.Sprintf("%s: nothing at %q", l.name, path))
		}

		return config.Failf[any](config.KindFailure, err, "%s: parsing %q", l.name, path)
	}

	err = finish(holder.Interface(), path)
	if err != nil {
		return config.Failf[any](config.KindFailure, err, "%s: %q", l.name, path)
	}

	return config.Found(result.Interface())
}

func (l *Loader) selfCheck() config.Outcome[any] {
	data, err := l.fetcher.Fetch()
	if err != nil {
		return config.Failf[any](config.KindFailure, err, "%s: fetching data", l.name)
	}

	settings := &Settings{}

	err = l.parser.Parse(data, settings, SettingsPath)
	if err != nil {
		if isAbsence(err) {
			return config.Absent[any](fmt.Sprintf("%s: no %q section", l.name, SettingsPath))
		}

		return config.Failf[any](config.KindFailure, err, "%s: parsing %q", l.name, SettingsPath)
	}

	err = finish(settings, SettingsPath)
	if err != nil {
		return config.Failf[any](config.KindFailure, err, "%s: %q", l.name, SettingsPath)
	}

	delegate, err := l.delegate(l, *settings)
	if err != nil {
		return config.Failf[any](config.KindFailure, err, "%s: building delegate", l.name)
	}

	slog.Debug("document loader delegating", slog.String("name", l.name), slog.String("cache_ttl", settings.CacheTTL))

	return config.Found[any](delegate)
}

// CheckTarget reports whether target is a loadable configuration type:
// a struct, a pointer to a struct, or a map keyed by strings.
// Only the type is inspected; nothing is constructed.
func CheckTarget(target reflect.Type) error {
	if target == nil {
		return config.NewError(config.KindInvalidArgument, "target type must not be nil", nil)
	}

	switch target.Kind() {
	case reflect.Struct:
		return nil
	case reflect.Pointer:
		if target.Elem().Kind() == reflect.Struct {
			return nil
		}
	case reflect.Map:
		if target.Key().Kind() == reflect.String {
			return nil
		}
	default:
	}

	return config.NewError(config.KindInvalidTargetType,
		fmt.Sprintf("%s is not a struct, pointer to struct, or string-keyed map", target), nil)
}

// allocate returns a pointer to decode into and the value to hand back to the caller.
func allocate(target reflect.Type) (reflect.Value, reflect.Value) {
	if target.Kind() == reflect.Pointer {
		holder := reflect.New(target.Elem())

		return holder, holder
	}

	holder := reflect.New(target)

	return holder, holder.Elem()
}

// finish applies defaults and validation, in that order.
func finish(target any, path config.Path) error {
	targetDefaulter, isDefaulter := target.(config.Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			slog.Info("defaults applied", slog.String("path", path.String()))
		}
	}

	targetValidatable, isValidatable := target.(config.Validator)
	if isValidatable {
		err := targetValidatable.Validate()
		if err != nil {
			return fmt.Errorf("validating error: %w", err)
		}
	}

	return nil
}

func isAbsence(err error) bool {
	return errors.Is(err, config.ErrPathNotFound) || errors.Is(err, config.ErrEmptyData)
}
