package result

import (
	"fmt"
	"reflect"
)

// Multiple folds results left to right. The first failure is returned as is,
// even if later results are failures too. If every result is a success, the
// last one's value is returned. An empty input fails with ErrNoResults; a
// last success that does not hold a T fails with ErrTypeMismatch; a nil
// last value counts as a T only when T can be nil.
//
// All results are already evaluated; Multiple only decides which one wins.
// Use Multiple2..Multiple5 to have the compiler check the last type.
func Multiple[T any](results ...Outcome) Result[T] {
	if len(results) == 0 {
		return Err[T](ErrNoResults)
	}
	for i, r := range results {
		if r == nil {
			return Err[T](fmt.Errorf("%w at position %d", ErrNilError, i))
		}
		if r.IsErr() {
			return Err[T](r.Err())
		}
	}

	last := results[len(results)-1]
	if typed, ok := last.(Result[T]); ok {
		return Ok(typed.value)
	}
	raw := last.Any()
	if raw == nil && nillable[T]() {
		var zero T
		return Ok(zero)
	}
	v, ok := raw.(T)
	if !ok {
		return Err[T](fmt.Errorf("%w: last result holds %T, want %s", ErrTypeMismatch, raw, reflect.TypeFor[T]()))
	}
	return Ok(v)
}

// nillable reports whether nil is a valid T.
func nillable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// Multiple2 is Multiple for two results.
func Multiple2[A, B any](a Result[A], b Result[B]) Result[B] {
	return Multiple[B](a, b)
}

// Multiple3 is Multiple for three results.
func Multiple3[A, B, C any](a Result[A], b Result[B], c Result[C]) Result[C] {
	return Multiple[C](a, b, c)
}

// Multiple4 is Multiple for four results.
func Multiple4[A, B, C, D any](a Result[A], b Result[B], c Result[C], d Result[D]) Result[D] {
	return Multiple[D](a, b, c, d)
}

// Multiple5 is Multiple for five results.
func Multiple5[A, B, C, D, E any](a Result[A], b Result[B], c Result[C], d Result[D], e Result[E]) Result[E] {
	return Multiple[E](a, b, c, d, e)
}
