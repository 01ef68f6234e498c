// format.go — fmt.Formatter for BaseError.
//
// Behavior:
//
//	%s, %v → Error() ("{name}: {message}")
//	%q     → quoted Error()
//	%+v    → verbose, multi-line:
//	           baseError: connection refused
//	             errorId="no_id"
//	             host="db-1"
//	             stack1="at main.dial (/src/main.go:12)"
//	             originalError="*net.OpError: dial tcp: refused"
//
// The verbose body is DebugString() with default options, so it follows the
// same merge order and coercion rules as the structured output.
package bettererror

import (
	"fmt"
	"io"
	"strconv"
)

// Format implements fmt.Formatter.
func (e *BaseError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = io.WriteString(s, strconv.Quote(e.Error()))
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func formatVerbose(w io.Writer, e *BaseError) {
	_, _ = io.WriteString(w, e.FullMessage())
	for k, v := range e.DebugString().All() {
		_, _ = fmt.Fprintf(w, "\n  %s=%s", k, v)
	}
}
