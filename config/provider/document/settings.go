package document

import (
	"errors"
	"fmt"
	"time"

	"github.com/0xalexb/hjarta-config/config"
)

// DefaultCacheTTL is used when the bootstrap section omits cache_ttl.
const DefaultCacheTTL = "30s"

// ErrInvalidCacheTTL is returned when cache_ttl is not a positive duration.
var ErrInvalidCacheTTL = errors.New("cache_ttl must be a positive duration")

// SettingsPath is the reserved section a document reads during the bootstrap self-check.
//
//nolint:gochecknoglobals // fixed reserved path.
var SettingsPath = config.MustPath("bootstrap")

// Settings is the bootstrap section of a document. Its presence asks the
// document loader to hand over to a delegate.
//
//	bootstrap:
//	  cache_ttl: 1m
type Settings struct {
	CacheTTL string `yaml:"cache_ttl" toml:"cache_ttl"`
}

// SetDefaults fills in CacheTTL.
func (s *Settings) SetDefaults() bool {
	if s.CacheTTL == "" {
		s.CacheTTL = DefaultCacheTTL

		return true
	}

	return false
}

// Validate checks that CacheTTL parses to a positive duration.
func (s *Settings) Validate() error {
	ttl, err := time.ParseDuration(s.CacheTTL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCacheTTL, err)
	}

	if ttl <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCacheTTL, s.CacheTTL)
	}

	return nil
}

// TTL returns the parsed CacheTTL, or zero if it does not parse.
func (s Settings) TTL() time.Duration {
	ttl, err := time.ParseDuration(s.CacheTTL)
	if err != nil {
		return 0
	}

	return ttl
}
