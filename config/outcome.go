package config

import (
	"errors"
	"fmt"
	"reflect"
)

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind int

const (
	// OutcomePresent holds a non-nil value.
	OutcomePresent OutcomeKind = iota + 1
	// OutcomeAbsent means the path resolved to nothing.
	OutcomeAbsent
	// OutcomeFailed holds an *Error.
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomePresent:
		return "present"
	case OutcomeAbsent:
		return "absent"
	case OutcomeFailed:
		return "failed"
	default:
		return "invalid"
	}
}

// Outcome is the result of a resolution: exactly one of Present, Absent or Failed.
// The zero Outcome is treated as Failed.
type Outcome[T any] struct {
	kind  OutcomeKind
	value T
	err   *Error
}

// Found returns a Present outcome. A nil value yields a Failed outcome instead,
// since no nil value is a valid result.
func Found[T any](value T) Outcome[T] {
	if isNil(value) {
		return Outcome[T]{kind: OutcomeFailed, err: NewError(KindFailure, "provider returned a nil value", nil)}
	}

	return Outcome[T]{kind: OutcomePresent, value: value}
}

// Absent returns an Absent outcome carrying a diagnostic message.
func Absent[T any](message string) Outcome[T] {
	return Outcome[T]{kind: OutcomeAbsent, err: NewError(KindAbsent, message, nil)}
}

// Failed returns a Failed outcome. A *Error in err's chain keeps its Kind,
// except KindAbsent which is recorded as KindFailure. Plain errors become KindFailure.
func Failed[T any](err error) Outcome[T] {
	if err == nil {
		return Outcome[T]{kind: OutcomeFailed, err: NewError(KindFailure, "failed without a cause", nil)}
	}

	var cfgErr *Error
	if errors.As(err, &cfgErr) {
		if cfgErr.Kind == KindAbsent {
			return Outcome[T]{kind: OutcomeFailed, err: NewError(KindFailure, cfgErr.Message, cfgErr.Cause)}
		}

		if cfgErr == err {
			return Outcome[T]{kind: OutcomeFailed, err: cfgErr}
		}

		return Outcome[T]{kind: OutcomeFailed, err: NewError(cfgErr.Kind, cfgErr.Kind.String(), err)}
	}

	return Outcome[T]{kind: OutcomeFailed, err: NewError(KindFailure, "", err)}
}

// Failf returns a Failed outcome of the given kind.
func Failf[T any](kind Kind, cause error, format string, args ...any) Outcome[T] {
	if kind == KindAbsent {
		kind = KindFailure
	}

	return Outcome[T]{kind: OutcomeFailed, err: NewError(kind, fmt.Sprintf(format, args...), cause)}
}

// Kind returns the variant tag.
func (o Outcome[T]) Kind() OutcomeKind {
	if o.kind == 0 {
		return OutcomeFailed
	}

	return o.kind
}

// IsPresent reports whether o holds a value.
func (o Outcome[T]) IsPresent() bool { return o.kind == OutcomePresent }

// IsAbsent reports whether o is Absent.
func (o Outcome[T]) IsAbsent() bool { return o.kind == OutcomeAbsent }

// IsFailed reports whether o is Failed.
func (o Outcome[T]) IsFailed() bool { return o.Kind() == OutcomeFailed }

// Value returns the held value, or the zero T when o is not Present.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns nil for Present, a KindAbsent *Error for Absent, and the failure otherwise.
func (o Outcome[T]) Err() error {
	switch o.Kind() {
	case OutcomePresent:
		return nil
	case OutcomeAbsent:
		return o.err
	default:
		if o.err == nil {
			return NewError(KindFailure, "uninitialised outcome", nil)
		}

		return o.err
	}
}

// Get returns the value and Err in the usual Go pair form.
func (o Outcome[T]) Get() (T, error) {
	return o.value, o.Err()
}

func (o Outcome[T]) String() string {
	switch o.Kind() {
	case OutcomePresent:
		return fmt.Sprintf("present(%T)", o.value)
	case OutcomeAbsent:
		return "absent"
	default:
		return fmt.Sprintf("failed(%v)", o.Err())
	}
}

// Convert re-types a Present payload held as any. A payload that is not a T fails.
func Convert[T any](o Outcome[any]) Outcome[T] {
	switch o.Kind() {
	case OutcomePresent:
		value, ok := o.value.(T)
		if !ok {
			return Failf[T](KindFailure, nil, "provider returned %T, want %s", o.value, reflect.TypeFor[T]())
		}

		return Found(value)
	case OutcomeAbsent:
		return Outcome[T]{kind: OutcomeAbsent, err: o.err}
	default:
		return Outcome[T]{kind: OutcomeFailed, err: o.err}
	}
}

// Erase widens a typed outcome to Outcome[any].
func Erase[T any](o Outcome[T]) Outcome[any] {
	if o.IsPresent() {
		return Outcome[any]{kind: OutcomePresent, value: o.value}
	}

	return Outcome[any]{kind: o.Kind(), err: o.err}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
