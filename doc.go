// doc.go — package documentation for better-error
//
// Package bettererror provides BaseError, an error value that carries
// structured diagnostic context alongside the usual message:
//   - a name (classification label, "baseError" by default)
//   - an optional identity (custom, or a generated UUID v4)
//   - an optional original error (the cause), shared by reference
//   - an ordered set of debug key/values
//   - the stack of the construction site
//
// # Construction
//
//	err := bettererror.New("charge failed",
//	    bettererror.WithName("paymentError"),
//	    bettererror.WithOriginalError(cause),
//	    bettererror.WithDebug("orderId", 1042),
//	    bettererror.WithAutoGenerateID(),
//	)
//
// FromOptions accepts the same settings as a record (ErrorOptions). Identity
// resolution: a custom id wins, otherwise WithAutoGenerateID generates one,
// otherwise the error has none. The identity is the only field that can change
// after construction (SetID, GenerateID).
//
// # Debug Output
//
// DebugsObject flattens the error into one ordered map. Merge order, later
// writes winning on collisions:
//
//	+---+----------------------------+-----------------------------------+
//	| # | Entries                    | Controlled by                     |
//	+---+----------------------------+-----------------------------------+
//	| 1 | errorId (id or "no_id")    | WithoutID                         |
//	| 2 | the error's own debugs     | always                            |
//	| 3 | stack1..N / stack          | WithoutStack, WithStackFormat     |
//	| 4 | originalError + prefixed   | WithoutOriginalErrorDebugs,       |
//	|   | "originalError - " entries | WithOriginalErrorOptions,         |
//	|   |                            | WithoutOriginalErrorStack         |
//	+---+----------------------------+-----------------------------------+
//
// An enriched original error contributes its full debug map, recursively, with
// every key prefixed; a foreign error contributes "{type}: {message}" and, if
// it implements StackTracer, its stack. DebugString renders every value with
// Stringify. Options can also be loaded from YAML with ParseDebugConfig.
//
// # Stack Text
//
// The stack is captured with runtime.Callers when the error is built and
// rendered as text: a "{name}: {message}" header line followed by one
// "    at function (file:line)" line per frame. Stack(StackFormatSplit) drops
// the header and emits stack1..N, each trimmed; Stack(StackFormatDefault)
// returns the text under a single "stack" key.
//
// # Interop
//
//   - errors.Is/As traverse BaseError via Unwrap (the original error).
//   - As, IsEnriched, NameOf and IDOf query the chain; Chain and Root walk it.
//   - Wrap and From adapt foreign errors.
//   - %+v prints the full message followed by the DebugString entries.
//
// Rendering for zap and logr lives in the debuglog package; the Result type
// lives in the result package. Neither is required to use this package.
package bettererror
