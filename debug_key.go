// debug_key.go — optional, type-safe access to debug values.
//
// DebugKey complements the plain string/any API (WithDebug, Debug): declare
// a key once with its Go type and use it to both attach and read values.
//
// Usage
//
//	var (
//	    KeyOrderID = bettererror.Key[int64]("orderId")
//	    KeyTenant  = bettererror.Key[string]("tenant")
//	)
//
//	err := bettererror.New("charge failed", KeyOrderID.Option(1042))
//	id, ok := KeyOrderID.Get(err) // 1042, true
//
// Caveats
//   - Get relies on a type assertion; the stored dynamic type must match T
//     exactly.
//   - Get reads the raw debugs of the first *BaseError in the error chain; it
//     does not see injected keys such as errorId or stack entries.
package bettererror

import (
	"fmt"
)

// DebugKey is a debug key bound to a value type.
type DebugKey[T any] struct {
	key string
}

// Key constructs a DebugKey[T] for key.
func Key[T any](key string) DebugKey[T] {
	return DebugKey[T]{key: key}
}

// Name returns the underlying string key.
func (k DebugKey[T]) Name() string { return k.key }

// Option attaches (key = val) at construction.
func (k DebugKey[T]) Option(val T) Option {
	return WithDebug(k.key, val)
}

// Get returns the typed value stored under the key on the first *BaseError
// in err's chain. It returns (zero, false) if there is no such error, the key
// is absent, or the value has a different dynamic type.
func (k DebugKey[T]) Get(err error) (T, bool) {
	var zero T
	be, ok := As(err)
	if !ok {
		return zero, false
	}
	v, ok := be.Debug(k.key)
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet is Get that panics when the value is missing or mistyped.
//
// Intended for test code, or where absence is a programming error.
func (k DebugKey[T]) MustGet(err error) T {
	var zero T
	be, ok := As(err)
	if !ok {
		panic(fmt.Errorf("bettererror.DebugKey[%T](%q): no BaseError in chain", zero, k.key))
	}
	v, ok := be.Debug(k.key)
	if !ok {
		panic(fmt.Errorf("bettererror.DebugKey[%T](%q): debug missing", zero, k.key))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("bettererror.DebugKey[%T](%q): wrong dynamic type (%T)", zero, k.key, v))
	}
	return tv
}
