package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/0xalexb/hjarta-config/config/fetcher/file"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the Fetcher waits after the last change event before re-reading.
const DefaultDebounce = 50 * time.Millisecond

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithDebounce sets the quiet period between a change event and the re-read.
func WithDebounce(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.debounce = d
		}
	}
}

// Fetcher implements config.DataFetcher for a file that may change while the process runs.
// The file is read at construction and re-read after every write or create event on it.
// A failed re-read keeps the previous contents.
type Fetcher struct {
	filepath string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	done     chan struct{}

	mu        sync.RWMutex
	data      []byte
	listeners []func()

	timerMu sync.Mutex
	timer   *time.Timer

	closeOnce sync.Once
}

// NewFetcher returns a constructor that reads fpath and starts watching its directory.
// Callers must Close the Fetcher to release the watcher.
func NewFetcher(fpath string, opts ...Option) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath, data, err := file.Read(fpath)
		if err != nil {
			return nil, err
		}

		fsw, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
		}

		dir := filepath.Dir(cleanPath)

		err = fsw.Add(dir)
		if err != nil {
			_ = fsw.Close()

			return nil, fmt.Errorf("watching directory %s: %w", dir, err)
		}

		fetcher := &Fetcher{
			filepath: cleanPath,
			debounce: DefaultDebounce,
			watcher:  fsw,
			done:     make(chan struct{}),
			data:     data,
		}

		for _, apply := range opts {
			apply(fetcher)
		}

		go fetcher.loop()

		return fetcher, nil
	}
}

// Path returns the watched file path.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the most recently read contents.
func (f *Fetcher) Fetch() ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return slices.Clone(f.data), nil
}

// OnReload registers fn to be called after each successful re-read.
func (f *Fetcher) OnReload(fn func()) {
	if fn == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.listeners = append(f.listeners, fn)
}

// Close stops watching. It is safe to call more than once.
func (f *Fetcher) Close() error {
	var err error

	f.closeOnce.Do(func() {
		close(f.done)

		f.timerMu.Lock()
		if f.timer != nil {
			f.timer.Stop()
		}
		f.timerMu.Unlock()

		err = f.watcher.Close()
	})

	return err
}

// Closed reports whether Close has been called.
func (f *Fetcher) Closed() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *Fetcher) loop() {
	for {
		select {
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}

			if f.isRelevantEvent(event) {
				f.schedule()
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}

			slog.Error("configuration watcher error", slog.String("path", f.filepath), slog.Any("error", err))
		case <-f.done:
			return
		}
	}
}

func (f *Fetcher) isRelevantEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != f.filepath {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (f *Fetcher) schedule() {
	f.timerMu.Lock()
	defer f.timerMu.Unlock()

	if f.timer == nil {
		f.timer = time.AfterFunc(f.debounce, f.reload)

		return
	}

	f.timer.Reset(f.debounce)
}

func (f *Fetcher) reload() {
	select {
	case <-f.done:
		return
	default:
	}

	_, data, err := file.Read(f.filepath)
	if err != nil {
		slog.Error("configuration reload failed, keeping previous contents",
			slog.String("path", f.filepath), slog.Any("error", err))

		return
	}

	f.mu.Lock()
	f.data = data
	listeners := slices.Clone(f.listeners)
	f.mu.Unlock()

	slog.Info("configuration reloaded", slog.String("path", f.filepath), slog.Int("bytes", len(data)))

	for _, listener := range listeners {
		listener()
	}
}
