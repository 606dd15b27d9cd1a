package autoload

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/fetcher/file"
	"github.com/0xalexb/hjarta-config/config/fetcher/watch"
	tomlparser "github.com/0xalexb/hjarta-config/config/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/config/provider/cached"
	"github.com/0xalexb/hjarta-config/config/provider/document"
)

// Name is the registration name used in config.DefaultRegistry.
const Name = "document"

// Environment variables read by the registered factory.
const (
	EnvFile  = "HJARTA_CONFIG_FILE"
	EnvWatch = "HJARTA_CONFIG_WATCH"
)

// DefaultFile is used when EnvFile is unset.
const DefaultFile = "config.yaml"

// ErrUnsupportedFormat is returned for a file extension with no parser.
var ErrUnsupportedFormat = errors.New("unsupported configuration format")

// Settings selects the document the factory loads.
type Settings struct {
	File  string
	Watch bool
}

//nolint:gochecknoinits // static registration of the default provider.
func init() {
	config.MustRegisterLoader(config.DefaultRegistry, Name, Factory(SettingsFromEnv))
}

// SettingsFromEnv reads EnvFile and EnvWatch.
func SettingsFromEnv() (Settings, error) {
	settings := Settings{File: os.Getenv(EnvFile)}
	if settings.File == "" {
		settings.File = DefaultFile
	}

	raw := os.Getenv(EnvWatch)
	if raw != "" {
		watchEnabled, err := strconv.ParseBool(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("parsing %s=%q: %w", EnvWatch, raw, err)
		}

		settings.Watch = watchEnabled
	}

	return settings, nil
}

// Factory returns a loader factory that builds a document loader from the settings source.
// With Watch set, the document is followed on disk and a cached delegate is flushed on every reload.
// Watched documents are shared: repeated calls for the same file return the same loader and
// start no new watcher until that loader is closed.
func Factory(source func() (Settings, error)) func() (config.Loader, error) {
	watched := &watchSet{entries: make(map[string]*watchEntry)}

	return func() (config.Loader, error) {
		settings, err := source()
		if err != nil {
			return nil, err
		}

		parser, err := ParserFor(settings.File)
		if err != nil {
			return nil, err
		}

		if settings.Watch {
			loader, watchErr := watched.loader(settings.File, parser)
			if watchErr != nil {
				return nil, watchErr
			}

			return loader, nil
		}

		fetcher, err := file.NewFetcher(settings.File)()
		if err != nil {
			return nil, err
		}

		slog.Debug("configuration document registered", slog.String("file", settings.File))

		return document.New(fetcher, parser, document.WithName(filepath.Base(settings.File)))
	}
}

type watchEntry struct {
	fetcher *watch.Fetcher
	loader  *document.Loader

	mu       sync.Mutex
	delegate *cached.Loader
}

// invalidateOnReload hands out one cached delegate per watched document, flushed on every reload.
func (e *watchEntry) invalidateOnReload(primordial *document.Loader, settings document.Settings) (config.Loader, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.delegate == nil {
		e.delegate = cached.New(primordial, settings.TTL())
		e.fetcher.OnReload(e.delegate.Invalidate)
	}

	return e.delegate, nil
}

type watchSet struct {
	mu      sync.Mutex
	entries map[string]*watchEntry
}

func (w *watchSet) loader(fpath string, parser config.Parser) (*document.Loader, error) {
	key := filepath.Clean(fpath)

	w.mu.Lock()
	defer w.mu.Unlock()

	if entry, ok := w.entries[key]; ok && !entry.fetcher.Closed() {
		return entry.loader, nil
	}

	fetcher, err := watch.NewFetcher(fpath)()
	if err != nil {
		return nil, err
	}

	entry := &watchEntry{fetcher: fetcher}

	entry.loader, err = document.New(fetcher, parser,
		document.WithName(filepath.Base(fpath)),
		document.WithDelegate(entry.invalidateOnReload),
	)
	if err != nil {
		_ = fetcher.Close()

		return nil, err
	}

	w.entries[key] = entry

	slog.Debug("configuration document registered", slog.String("file", fpath), slog.Bool("watch", true))

	return entry.loader, nil
}

// ParserFor picks a parser from the file extension.
//
//nolint:ireturn // the parser is chosen at runtime.
func ParserFor(path string) (config.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlparser.NewParser(), nil
	case ".toml":
		return tomlparser.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
