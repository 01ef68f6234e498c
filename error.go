// Package bettererror defines an enriched error value for application code.
// An enriched error carries a name, a message, an optional identity, a causal
// predecessor and an open set of debug key/values, and can flatten all of it
// into one ordered debug map for logs and diagnostics.
//
// Design tenets:
//   - Interop-first: BaseError unwraps to its original error, so errors.Is/As
//     observe the full causal chain.
//   - Explicit construction: nothing in this package creates or raises an
//     enriched error on the caller's behalf.
//   - Deterministic output: debug maps keep insertion order and a fixed merge
//     order (errorId, own debugs, stack, original error).
//   - Minimal policy: rendering for zap/logr lives in the debuglog package.
package bettererror

// Enriched is the capability the debug aggregation checks for when it meets
// an original error. Anything that implements it (BaseError, or a type that
// embeds *BaseError) has its own debugs merged recursively; any other error
// only contributes a summary line and, when available, its stack.
type Enriched interface {
	error

	// Name is the classification label, "baseError" unless overridden.
	Name() string

	// FullMessage returns "{name}: {message}".
	FullMessage() string

	// DebugsObjectWith materializes the debug map using resolved options.
	DebugsObjectWith(DebugOptions) *Debugs

	// Stack formats stack text per format. The optional raw argument
	// replaces the error's own captured stack text.
	Stack(format StackFormat, raw ...string) *DebugStrings
}

// StackTracer is implemented by foreign errors that carry stack text in the
// same "header line, then one frame per line" shape BaseError produces.
type StackTracer interface {
	StackTrace() string
}

// named is implemented by foreign errors that expose a classification name.
type named interface {
	Name() string
}

var (
	_ Enriched    = (*BaseError)(nil)
	_ StackTracer = (*BaseError)(nil)
)
