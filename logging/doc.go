// Package logging builds the process logger on log/slog.
// Its Config is itself a configuration class, resolved from the "logging" section.
package logging
