// stack.go — stack capture at construction and stack text formatting.
//
// Capture uses runtime.Callers + runtime.CallersFrames, which resolves inlined
// frames correctly. Frames are rendered on demand into stack text:
//
//	baseError: connection refused
//	    at github.com/acme/api.(*Client).Do (/src/api/client.go:88)
//	    at main.main (/src/main.go:14)
//
// The first line is the header and repeats FullMessage, so the split format
// drops it.
package bettererror

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// StackFormat selects how Stack renders stack text.
type StackFormat string

const (
	// StackFormatDefault renders the whole text under a single "stack" key.
	StackFormatDefault StackFormat = "default"
	// StackFormatSplit renders one "stack{N}" key per frame line, header excluded.
	StackFormatSplit StackFormat = "split"
)

// Valid reports whether f is one of the known formats.
func (f StackFormat) Valid() bool {
	return f == StackFormatDefault || f == StackFormatSplit
}

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string
}

// Frames is a captured stack, most recent call first.
type Frames []Frame

// defaultMaxDepth bounds how many frames a construction captures.
const defaultMaxDepth = 64

// captureStackDefault captures a stack skipping 'skip' frames above its
// caller, bounded by defaultMaxDepth. With skip == 0 the first frame is the
// function that called captureStackDefault.
func captureStackDefault(skip int) Frames {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames. The +3 skips runtime.Callers,
// captureStack and captureStackDefault.
func captureStack(skip, maxDepth int) Frames {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Frames, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// render produces stack text: header on the first line, then one
// "    at fn (file:line)" line per frame. No frames yields "".
func (fs Frames) render(header string) string {
	if len(fs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(header)
	for _, fr := range fs {
		_, _ = fmt.Fprintf(&b, "\n    at %s (%s:%d)", fr.Function, fr.File, fr.Line)
	}
	return b.String()
}

// formatStack turns stack text into a debug map. Empty text gives an empty
// map; StackFormatDefault keeps the text whole; anything else splits it.
func formatStack(format StackFormat, text string) *DebugStrings {
	if text == "" {
		return NewMap[string](0)
	}
	if format == StackFormatDefault {
		out := NewMap[string](1)
		out.Set(KeyStack, text)
		return out
	}

	lines := strings.Split(text, "\n")[1:]
	out := NewMap[string](len(lines))
	for i, line := range lines {
		out.Set(KeyStack+strconv.Itoa(i+1), strings.TrimSpace(line))
	}
	return out
}
