package config

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// KindFailure is a sound request that could not be satisfied (I/O, malformed source, validation).
	KindFailure Kind = iota
	// KindAbsent means the request was sound but resolved to nothing.
	KindAbsent
	// KindInvalidArgument is a programming error in the caller's input.
	KindInvalidArgument
	// KindInvalidTargetType means the target type is not loadable by the provider.
	KindInvalidTargetType
	// KindDiscovery means no usable provider could be located.
	KindDiscovery
)

// Sentinels matched by errors.Is against any *Error of the corresponding Kind.
var (
	ErrFailure           = errors.New("configuration failure")
	ErrAbsent            = errors.New("configuration absent")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidTargetType = errors.New("invalid configuration type")
	ErrDiscovery         = errors.New("provider discovery failed")
)

// ErrNoProvider is the cause of a discovery failure when the scope holds no registration.
var ErrNoProvider = errors.New("no provider registered")

// ErrPathNotFound is returned by a Parser when the path does not exist in the document.
var ErrPathNotFound = errors.New("path not found")

// ErrEmptyData is returned by a Parser when the input data is empty.
var ErrEmptyData = errors.New("empty data")

func (k Kind) String() string {
	switch k {
	case KindFailure:
		return "failure"
	case KindAbsent:
		return "absent"
	case KindInvalidArgument:
		return "invalid argument"
	case KindInvalidTargetType:
		return "invalid target type"
	case KindDiscovery:
		return "discovery"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindAbsent:
		return ErrAbsent
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindInvalidTargetType:
		return ErrInvalidTargetType
	case KindDiscovery:
		return ErrDiscovery
	default:
		return ErrFailure
	}
}

// Error is the structured error carried by non-Present outcomes and bootstrap failures.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// NewError builds an *Error. Cause may be nil.
func NewError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}

	if e.Cause != nil {
		return fmt.Sprintf("config: %s: %v", msg, e.Cause)
	}

	return "config: " + msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Cause
}

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}

	return target == e.Kind.sentinel()
}

// KindOf returns the Kind of the first *Error in err's chain.
// Errors that carry no *Error are classified as KindFailure.
func KindOf(err error) Kind {
	var cfgErr *Error
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind
	}

	return KindFailure
}

func invalidArgument(format string, args ...any) *Error {
	return NewError(KindInvalidArgument, fmt.Sprintf(format, args...), nil)
}
