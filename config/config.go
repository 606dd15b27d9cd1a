package config

import (
	"fmt"
	"reflect"
)

// Loader resolves configuration objects by path and target type.
//
// Implementations must never return a Present outcome holding nil, must be
// idempotent in the classification of their outcomes, and must be safe for
// concurrent use. The payload of a Present outcome may vary between calls.
type Loader interface {
	Load(path Path, target reflect.Type) Outcome[any]
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path Path, target reflect.Type) Outcome[any]

// Load calls f(path, target).
func (f LoaderFunc) Load(path Path, target reflect.Type) Outcome[any] {
	return f(path, target)
}

// LoaderType is the type identity of Loader, used for discovery and the bootstrap self-check.
//
//nolint:gochecknoglobals // type identity of the contract.
var LoaderType = reflect.TypeFor[Loader]()

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter selects a section within the configuration data; the root
// path means the entire document. Implementations return an error wrapping
// ErrPathNotFound when the section does not exist and ErrEmptyData for empty input.
type Parser interface {
	Parse(data []byte, target any, path Path) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// CheckArguments fails with KindInvalidArgument when loader or target is nil.
func CheckArguments(loader Loader, target reflect.Type) error {
	if loader == nil || isNil(loader) {
		return invalidArgument("loader must not be nil")
	}

	if target == nil {
		return invalidArgument("target type must not be nil")
	}

	return nil
}

// Resolve loads a T at path from loader.
func Resolve[T any](loader Loader, path Path) Outcome[T] {
	target := reflect.TypeFor[T]()

	err := CheckArguments(loader, target)
	if err != nil {
		return Failed[T](err)
	}

	return Convert[T](loader.Load(path, target))
}

// Provider returns an Fx-friendly constructor that resolves a *T at path.
// Absence is reported as an error wrapping ErrAbsent.
func Provider[T any](path Path) func(Loader) (*T, error) {
	return func(loader Loader) (*T, error) {
		value, err := Resolve[*T](loader, path).Get()
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", path, err)
		}

		return value, nil
	}
}
