// construct.go — BaseError, its construction options and identity.
//
// Scope:
//   - One concrete enriched error type, BaseError, built by New / FromOptions.
//   - Everything except the identity is fixed at construction; the identity
//     can be replaced with SetID or GenerateID.
//   - The stack is captured once, at the construction site.
package bettererror

import (
	"sync"

	"github.com/google/uuid"

	"github.com/xgx-io/xgx-better-error/internal/coerce"
)

// BaseError is an error enriched with a name, an optional identity, an
// optional original error and an ordered set of debug values.
//
// A BaseError must be used through a pointer and must not be copied.
type BaseError struct {
	name     string
	message  string
	original error
	debugs   *Debugs
	frames   Frames

	mu sync.RWMutex
	id string
}

// ErrorOptions is the record form of the construction options.
type ErrorOptions struct {
	// Message is required; an empty message becomes "unknown error".
	Message string
	// Name defaults to DefaultName.
	Name string
	// OriginalError is the error that caused this one.
	OriginalError error
	// Debugs are copied key by key; values are shared, not deep-copied.
	Debugs map[string]any
	// AutoGenerateID assigns a random UUID v4 unless CustomID is set.
	AutoGenerateID bool
	// CustomID is used as the identity when non-empty. An empty CustomID is
	// the same as none, so AutoGenerateID still applies.
	CustomID string
}

// Option configures a BaseError during New.
type Option func(*config)

type config struct {
	name        string
	original    error
	debugs      *Debugs
	autoID      bool
	customID    string
	hasCustomID bool
}

// WithName overrides the error name. An empty name keeps DefaultName.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithOriginalError records the error that caused this one. A nil or typed
// nil error is ignored.
func WithOriginalError(err error) Option {
	return func(c *config) {
		if coerce.IsNil(err) {
			c.original = nil
			return
		}
		c.original = err
	}
}

// WithDebugs copies every entry of debugs into the error's debug map. Go map
// order is unspecified, so entries from a single WithDebugs call are added in
// sorted key order; use WithDebug for an explicit order.
func WithDebugs(debugs map[string]any) Option {
	return func(c *config) {
		for _, k := range sortedKeys(debugs) {
			c.debugs.Set(k, debugs[k])
		}
	}
}

// WithDebug adds a single debug entry.
func WithDebug(key string, val any) Option {
	return func(c *config) { c.debugs.Set(key, val) }
}

// WithAutoGenerateID assigns a random UUID v4 identity unless a custom id is
// also supplied.
func WithAutoGenerateID() Option {
	return func(c *config) { c.autoID = true }
}

// WithCustomID sets the identity. It takes precedence over
// WithAutoGenerateID regardless of option order. An empty id counts as no
// custom id.
func WithCustomID(id string) Option {
	return func(c *config) {
		c.customID = id
		c.hasCustomID = id != ""
	}
}

// New creates a BaseError with the given message and captures the stack of
// the caller.
//
// Example:
//
//	err := bettererror.New("payment declined",
//	    bettererror.WithName("paymentError"),
//	    bettererror.WithOriginalError(cause),
//	    bettererror.WithDebug("orderId", 1042),
//	    bettererror.WithAutoGenerateID(),
//	)
func New(message string, opts ...Option) *BaseError {
	return build(message, opts, 1)
}

// FromOptions creates a BaseError from the record form of the options.
func FromOptions(o ErrorOptions) *BaseError {
	opts := []Option{
		WithName(o.Name),
		WithOriginalError(o.OriginalError),
		WithDebugs(o.Debugs),
		WithCustomID(o.CustomID),
	}
	if o.AutoGenerateID {
		opts = append(opts, WithAutoGenerateID())
	}
	return build(o.Message, opts, 1)
}

// build applies opts and captures the stack skipping 'skip' frames above
// build itself.
func build(message string, opts []Option, skip int) *BaseError {
	c := config{name: DefaultName, debugs: NewMap[any](0)}
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	if message == "" {
		message = defaultMessage
	}

	e := &BaseError{
		name:     c.name,
		message:  message,
		original: c.original,
		debugs:   c.debugs,
		frames:   captureStackDefault(skip + 1),
	}
	switch {
	case c.hasCustomID:
		e.id = c.customID
	case c.autoID:
		e.id = newID()
	}
	return e
}

func newID() string { return uuid.New().String() }

// Error returns FullMessage.
func (e *BaseError) Error() string { return e.FullMessage() }

// Unwrap returns the original error so errors.Is/As walk the causal chain.
func (e *BaseError) Unwrap() error { return e.original }

// Name returns the classification label.
func (e *BaseError) Name() string { return e.name }

// Message returns the message the error was constructed with.
func (e *BaseError) Message() string { return e.message }

// FullMessage returns "{name}: {message}".
func (e *BaseError) FullMessage() string { return e.name + ": " + e.message }

// OriginalError returns the error that caused this one, or nil.
func (e *BaseError) OriginalError() error { return e.original }

// ID returns the identity, or "" when none is set.
func (e *BaseError) ID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.id
}

// HasID reports whether an identity is set.
func (e *BaseError) HasID() bool { return e.ID() != "" }

// SetID replaces the identity.
func (e *BaseError) SetID(id string) {
	e.mu.Lock()
	e.id = id
	e.mu.Unlock()
}

// GenerateID assigns a fresh random UUID v4, overwriting any existing
// identity, and returns the receiver for chaining.
func (e *BaseError) GenerateID() *BaseError {
	e.SetID(newID())
	return e
}

// Debug returns the raw debug value the error was constructed with.
func (e *BaseError) Debug(key string) (any, bool) { return e.debugs.Get(key) }

// Debugs returns a copy of the raw debug map, without any injected keys.
func (e *BaseError) Debugs() *Debugs { return e.debugs.Clone() }

// Frames returns the stack captured at construction.
func (e *BaseError) Frames() Frames {
	out := make(Frames, len(e.frames))
	copy(out, e.frames)
	return out
}

// StackTrace returns the stack text: the FullMessage header followed by one
// line per frame. It is "" when no frames were captured.
func (e *BaseError) StackTrace() string { return e.frames.render(e.FullMessage()) }
