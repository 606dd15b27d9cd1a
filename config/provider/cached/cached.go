package cached

import (
	"io"
	"log/slog"
	"reflect"
	"strconv"
	"sync"
	"time"

	"github.com/0xalexb/hjarta-config/config"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL applies when New is given a non-positive ttl.
const DefaultTTL = 30 * time.Second

// Loader memoises the Present and Absent outcomes of another Loader.
// Failures are never cached, so a transient error is retried by the next caller.
// Cached values are shared between callers and must not be mutated.
type Loader struct {
	next  config.Loader
	ttl   time.Duration
	cache *gocache.Cache

	mu      sync.Mutex
	typeIDs map[reflect.Type]int
}

// New wraps next. Entries expire after ttl.
func New(next config.Loader, ttl time.Duration) *Loader {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Loader{
		next:    next,
		ttl:     ttl,
		cache:   gocache.New(ttl, 2*ttl),
		typeIDs: make(map[reflect.Type]int),
	}
}

// TTL returns the entry lifetime.
func (l *Loader) TTL() time.Duration {
	return l.ttl
}

// Next returns the wrapped Loader.
func (l *Loader) Next() config.Loader {
	return l.next
}

// Load returns a cached outcome for (path, target) or asks the wrapped Loader.
// Self-check requests bypass the cache.
func (l *Loader) Load(path config.Path, target reflect.Type) config.Outcome[any] {
	err := config.CheckArguments(l, target)
	if err != nil {
		return config.Failed[any](err)
	}

	err = config.CheckArguments(l.next, target)
	if err != nil {
		return config.Failed[any](err)
	}

	if target == config.LoaderType {
		return l.next.Load(path, target)
	}

	key := path.String() + "|" + l.typeKey(target)

	if value, found := l.cache.Get(key); found {
		outcome, ok := value.(config.Outcome[any])
		if ok {
			slog.Debug("configuration cache hit", slog.String("key", key))

			return outcome
		}

		slog.Error("wrong type assertion when getting value", slog.String("key", key))
	}

	outcome := l.next.Load(path, target)
	if !outcome.IsFailed() {
		l.cache.SetDefault(key, outcome)
	}

	return outcome
}

// Invalidate drops every cached outcome.
func (l *Loader) Invalidate() {
	l.cache.Flush()
}

// Close drops cached outcomes and closes the wrapped Loader when it is an io.Closer.
func (l *Loader) Close() error {
	l.cache.Flush()

	closer, ok := l.next.(io.Closer)
	if !ok {
		return nil
	}

	return closer.Close()
}

// Len returns the number of cached outcomes, including expired ones not yet evicted.
func (l *Loader) Len() int {
	return l.cache.ItemCount()
}

// typeKey distinguishes types that share a printed name.
func (l *Loader) typeKey(target reflect.Type) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	id, ok := l.typeIDs[target]
	if !ok {
		id = len(l.typeIDs)
		l.typeIDs[target] = id
	}

	return strconv.Itoa(id) + ":" + target.String()
}
