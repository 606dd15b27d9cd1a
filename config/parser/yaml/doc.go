// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for efficient path navigation. The parser converts
// config.Path segments (e.g., [api permissions]) to YAML path format
// (e.g., "$.api.permissions") internally.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var cfg Config
//	err := parser.Parse(data, &cfg, config.MustPath("api", "permissions"))
//
// Errors:
//   - Empty or whitespace-only data returns config.ErrEmptyData
//   - A missing key returns an error wrapping config.ErrPathNotFound
package yaml
