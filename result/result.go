// Package result provides Result, a success-or-failure value, and helpers to
// capture failures and combine several fallible computations.
//
// A Result holds exactly one of a success value of type T or a non-nil
// error. Slot order follows Go's (value, err) convention: Unpack returns the
// value first and the error second.
//
//	r := result.RunAndCapture(func() (Config, error) { return load(path) })
//	cfg, err := r.Unpack()
//
// Multiple folds a sequence of Results of different types, returning the first
// failure or the last success.
package result

import (
	"errors"
)

var (
	// ErrNilError is stored when Err is called with a nil error, so that a
	// failed Result never has an empty error slot.
	ErrNilError = errors.New("result: nil error")

	// ErrNoResults is the failure Multiple returns for an empty input.
	ErrNoResults = errors.New("result: no results")

	// ErrTypeMismatch is the failure Multiple returns when the last success
	// does not hold the requested type.
	ErrTypeMismatch = errors.New("result: type mismatch")
)

// Result is either a success holding a T or a failure holding an error.
// The zero value is a success holding the zero T.
type Result[T any] struct {
	value T
	err   error
}

// Outcome is the type-erased view of a Result, letting Results of different
// success types be inspected together.
type Outcome interface {
	IsErr() bool
	Err() error
	Any() any
}

var _ Outcome = Result[int]{}

// Ok returns a success holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err returns a failure holding err. A nil err is replaced by ErrNilError.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilError
	}
	return Result[T]{err: err}
}

// IsOk reports whether r is a success.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether r is a failure.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Value returns the success value, or the zero T for a failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the failure, or nil for a success.
func (r Result[T]) Err() error { return r.err }

// Any returns the success value as any, or nil for a failure.
func (r Result[T]) Any() any {
	if r.err != nil {
		return nil
	}
	return r.value
}

// Unpack returns both slots, value first.
func (r Result[T]) Unpack() (T, error) { return r.value, r.err }

// ValueOr returns the success value, or def for a failure.
func (r Result[T]) ValueOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}
