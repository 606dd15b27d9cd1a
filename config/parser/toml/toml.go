package toml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-config/config"

	"github.com/BurntSushi/toml"
)

// ErrNotTable is returned when a path descends through a key that is not a table.
var ErrNotTable = errors.New("not a table")

// Parser implements config.Parser interface for TOML data.
// Nested tables are walked through toml.Primitive so only the selected
// section is decoded into the target.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses TOML data and decodes the section at path into the target.
// The root path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path config.Path) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return config.ErrEmptyData
	}

	if path.IsRoot() {
		_, err := toml.Decode(string(data), target)
		if err != nil {
			return fmt.Errorf("decode error: %w", err)
		}

		return nil
	}

	var table map[string]toml.Primitive

	meta, err := toml.Decode(string(data), &table)
	if err != nil {
		return fmt.Errorf("decode error: %w", err)
	}

	segments := path.Segments()

	for i, segment := range segments {
		primitive, found := table[segment]
		if !found {
			return fmt.Errorf("%w: %s", config.ErrPathNotFound, path)
		}

		if i == len(segments)-1 {
			err = meta.PrimitiveDecode(primitive, target)
			if err != nil {
				return fmt.Errorf("reading path %q: %w", path, err)
			}

			return nil
		}

		var node any

		err = meta.PrimitiveDecode(primitive, &node)
		if err != nil {
			return fmt.Errorf("reading path %q: %w", path, err)
		}

		if _, isTable := node.(map[string]any); !isTable {
			return fmt.Errorf("%w: path %q: key %q holds %T", ErrNotTable, path, segment, node)
		}

		table = nil

		err = meta.PrimitiveDecode(primitive, &table)
		if err != nil {
			return fmt.Errorf("reading path %q: %w", path, err)
		}
	}

	return nil
}
