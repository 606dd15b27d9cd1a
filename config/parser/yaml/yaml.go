package yaml

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/0xalexb/hjarta-config/config"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	goccyparser "github.com/goccy/go-yaml/parser"
)

// Parser implements config.Parser interface for YAML data.
// It uses goccy/go-yaml PathString for efficient path navigation.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses YAML data and unmarshals the section at path into the target.
// The root path parses the entire document.
func (p *Parser) Parse(data []byte, target any, path config.Path) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return config.ErrEmptyData
	}

	if path.IsRoot() {
		return parseRoot(data, target)
	}

	yamlPath := convertToYAMLPath(path)

	pathObj, err := yaml.PathString(yamlPath)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if isKeyNotFoundError(err) {
			return fmt.Errorf("%w: %s", config.ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	// An explicit null is a key with nothing under it.
	if isNull(node) {
		return fmt.Errorf("%w: %s is null", config.ErrPathNotFound, path)
	}

	err = yaml.Unmarshal([]byte(node.String()), target)
	if err != nil {
		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

func parseRoot(data []byte, target any) error {
	file, err := goccyparser.ParseBytes(data, 0)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	if !slices.ContainsFunc(file.Docs, func(doc *ast.DocumentNode) bool { return !isNull(doc.Body) }) {
		return config.ErrEmptyData
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

func isNull(node ast.Node) bool {
	return node == nil || node.Type() == ast.NullType
}

// convertToYAMLPath converts a config.Path to goccy/go-yaml PathString format.
// Examples:
//   - [key] -> "$.key"
//   - [api permissions] -> "$.api.permissions"
func convertToYAMLPath(path config.Path) string {
	return "$." + strings.Join(path.Segments(), ".")
}

// isKeyNotFoundError checks if the error indicates a key was not found.
func isKeyNotFoundError(err error) bool {
	return yaml.IsNotFoundNodeError(err)
}
