package result

import (
	"context"
	"errors"
	"fmt"

	"github.com/xgx-io/xgx-better-error/internal/coerce"
)

// RunAndCapture invokes fn once on the calling goroutine. A returned error
// becomes a failure as is; a panic is recovered and converted with
// AnyToError. RunAndCapture itself never panics, even for a nil fn.
func RunAndCapture[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Err[T](AnyToError(r))
		}
	}()

	v, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// Capture is RunAndCapture for functions that only fail by panicking.
func Capture[T any](fn func() T) Result[T] {
	return RunAndCapture(func() (T, error) {
		return fn(), nil
	})
}

// RunAndCaptureContext is RunAndCapture for context-aware functions. If ctx
// is already done, fn is not invoked and the context's error is returned.
func RunAndCaptureContext[T any](ctx context.Context, fn func(context.Context) (T, error)) Result[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Err[T](err)
	}
	return RunAndCapture(func() (T, error) {
		return fn(ctx)
	})
}

// AnyToError converts a recovered or otherwise untyped value into an error:
//   - an error is returned unchanged (same identity)
//   - a string becomes an error with that message
//   - a number becomes an error whose message is its decimal text
//   - anything else becomes an error whose message is its JSON encoding, or
//     a description of its type if it cannot be encoded
func AnyToError(v any) error {
	switch x := v.(type) {
	case error:
		return x
	case string:
		return errors.New(x)
	}
	if n, ok := coerce.Number(v); ok {
		return errors.New(n)
	}
	if s, err := coerce.JSON(v); err == nil {
		return errors.New(s)
	}
	return fmt.Errorf("unserializable value of type %T", v)
}
