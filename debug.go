// debug.go — flattening an error and its causal chain into one debug map.
//
// Merge order (later writes win on key collisions):
//  1. errorId (identity or "no_id"), when enabled
//  2. the error's own debugs, unprefixed
//  3. stack entries, when enabled
//  4. the original error's contribution, keys prefixed "originalError - "
//
// Caller keys that collide with reserved keys are overwritten silently.
package bettererror

import (
	"fmt"
)

// DebugOptions is the resolved configuration of a debug rendering.
// DefaultDebugOptions enables everything.
type DebugOptions struct {
	// ID injects errorId.
	ID bool
	// Stack merges the error's stack entries.
	Stack bool
	// StackFormat is passed to Stack.
	StackFormat StackFormat
	// OriginalErrorDebugs merges an enriched original error's full debug map.
	OriginalErrorDebugs bool
	// OriginalErrorOptions, when set, is used for the original error's
	// rendering instead of these options.
	OriginalErrorOptions *DebugOptions
	// OriginalErrorStack merges the original error's stack when its debugs
	// are not merged, and always for foreign errors that carry a stack.
	OriginalErrorStack bool
}

// DefaultDebugOptions returns options with every flag enabled and the split
// stack format.
func DefaultDebugOptions() DebugOptions {
	return DebugOptions{
		ID:                  true,
		Stack:               true,
		StackFormat:         StackFormatSplit,
		OriginalErrorDebugs: true,
		OriginalErrorStack:  true,
	}
}

// DebugOption adjusts DebugOptions starting from DefaultDebugOptions.
type DebugOption func(*DebugOptions)

// ResolveDebugOptions applies opts on top of DefaultDebugOptions.
func ResolveDebugOptions(opts ...DebugOption) DebugOptions {
	o := DefaultDebugOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// WithoutID omits errorId.
func WithoutID() DebugOption { return func(o *DebugOptions) { o.ID = false } }

// WithoutStack omits the error's own stack entries.
func WithoutStack() DebugOption { return func(o *DebugOptions) { o.Stack = false } }

// WithStackFormat sets the stack format.
func WithStackFormat(f StackFormat) DebugOption {
	return func(o *DebugOptions) { o.StackFormat = f }
}

// WithoutOriginalErrorDebugs stops recursion into an enriched original error.
// Its stack is still merged unless WithoutOriginalErrorStack is also given.
func WithoutOriginalErrorDebugs() DebugOption {
	return func(o *DebugOptions) {
		o.OriginalErrorDebugs = false
		o.OriginalErrorOptions = nil
	}
}

// WithOriginalErrorOptions renders an enriched original error with its own
// options, resolved against the defaults.
func WithOriginalErrorOptions(opts ...DebugOption) DebugOption {
	return func(o *DebugOptions) {
		nested := ResolveDebugOptions(opts...)
		o.OriginalErrorDebugs = true
		o.OriginalErrorOptions = &nested
	}
}

// WithoutOriginalErrorStack omits the original error's stack.
func WithoutOriginalErrorStack() DebugOption {
	return func(o *DebugOptions) { o.OriginalErrorStack = false }
}

// DebugsObject materializes the error's debug map with opts applied on top of
// DefaultDebugOptions. The result is a fresh map owned by the caller.
func (e *BaseError) DebugsObject(opts ...DebugOption) *Debugs {
	return e.DebugsObjectWith(ResolveDebugOptions(opts...))
}

// DebugsObjectWith materializes the debug map using resolved options.
func (e *BaseError) DebugsObjectWith(o DebugOptions) *Debugs {
	out := NewMap[any](e.debugs.Len() + 8)

	if o.ID {
		id := e.ID()
		if id == "" {
			id = NoID
		}
		out.Set(KeyErrorID, id)
	}

	mergeInto(out, e.debugs, "")

	if o.Stack {
		mergeInto(out, e.Stack(o.StackFormat), "")
	}

	if e.original != nil {
		e.mergeOriginal(out, o)
	}
	return out
}

// mergeOriginal adds the original error's contribution. An enriched original
// error is rendered recursively; the chain terminates because the original
// error is fixed at construction, so a BaseError can never reach itself.
func (e *BaseError) mergeOriginal(out *Debugs, o DebugOptions) {
	if pred, ok := e.original.(Enriched); ok {
		out.Set(KeyOriginalError, pred.FullMessage())
		switch {
		case o.OriginalErrorDebugs:
			nested := o
			if o.OriginalErrorOptions != nil {
				nested = *o.OriginalErrorOptions
			}
			mergeInto(out, pred.DebugsObjectWith(nested), OriginalErrorPrefix)
		case o.OriginalErrorStack:
			mergeInto(out, pred.Stack(o.StackFormat), OriginalErrorPrefix)
		}
		return
	}

	out.Set(KeyOriginalError, describeForeign(e.original))
	if !o.OriginalErrorStack {
		return
	}
	if st, ok := e.original.(StackTracer); ok {
		if raw := st.StackTrace(); raw != "" {
			mergeInto(out, e.Stack(o.StackFormat, raw), OriginalErrorPrefix)
		}
	}
}

// describeForeign renders a non-enriched error as "{name}: {error}", where
// name is the error's Name() if it has one, else its dynamic type.
func describeForeign(err error) string {
	name := fmt.Sprintf("%T", err)
	if n, ok := err.(named); ok && n.Name() != "" {
		name = n.Name()
	}
	return name + ": " + err.Error()
}

// DebugString is DebugsObject with every value passed through Stringify.
func (e *BaseError) DebugString(opts ...DebugOption) *DebugStrings {
	return e.DebugStringWith(ResolveDebugOptions(opts...))
}

// DebugStringWith is DebugString with resolved options.
func (e *BaseError) DebugStringWith(o DebugOptions) *DebugStrings {
	debugs := e.DebugsObjectWith(o)
	out := NewMap[string](debugs.Len())
	for k, v := range debugs.All() {
		out.Set(k, Stringify(v))
	}
	return out
}

// Stack formats stack text. The text is raw[0] when given and non-empty,
// otherwise the error's own StackTrace.
func (e *BaseError) Stack(format StackFormat, raw ...string) *DebugStrings {
	text := ""
	if len(raw) > 0 {
		text = raw[0]
	}
	if text == "" {
		text = e.StackTrace()
	}
	return formatStack(format, text)
}
