package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-config/config"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ErrUnknownFormat is returned when Config.Format is neither json nor text.
var ErrUnknownFormat = errors.New("unknown log format")

// ErrUnknownLevel is returned when Config.Level is set to an unrecognised level.
var ErrUnknownLevel = errors.New("unknown log level")

// Path is where the logger configuration lives in a configuration document.
//
//nolint:gochecknoglobals // fixed configuration location.
var Path = config.MustPath("logging")

// Config holds configuration for the logger. It can be resolved through a config.Loader at Path.
type Config struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// SetDefaults fills an empty Format with json.
func (c *Config) SetDefaults() bool {
	if c.Format == "" {
		c.Format = FormatJSON

		return true
	}

	return false
}

// Validate rejects unknown formats and levels. An empty level is allowed and means INFO.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", FormatJSON, FormatText:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}

	if c.Level != "" {
		if _, ok := levels[strings.ToUpper(c.Level)]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownLevel, c.Level)
		}
	}

	return nil
}

//nolint:gochecknoglobals // lookup table.
var levels = map[string]slog.Level{
	"DEBUG":   slog.LevelDebug,
	"INFO":    slog.LevelInfo,
	"WARN":    slog.LevelWarn,
	"WARNING": slog.LevelWarn,
	"ERROR":   slog.LevelError,
}

// NewLogger creates a new slog.Logger writing to w.
// The level defaults to INFO if invalid or empty; the format defaults to JSON.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(cfg.Level),
		ReplaceAttr: nil,
	}

	if strings.EqualFold(cfg.Format, FormatText) {
		return slog.New(slog.NewTextHandler(w, options))
	}

	return slog.New(slog.NewJSONHandler(w, options))
}

func parseLevel(level string) slog.Level {
	parsed, ok := levels[strings.ToUpper(level)]
	if !ok {
		return slog.LevelInfo
	}

	return parsed
}
