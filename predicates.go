// predicates.go — capability checks over an error's causal chain.
//
// All helpers use errors.As, so they see through fmt.Errorf("%w") wrappers
// and errors.Join as well as BaseError's own Unwrap.
package bettererror

import (
	"errors"
)

// As returns the first *BaseError in err's chain.
func As(err error) (*BaseError, bool) {
	if err == nil {
		return nil, false
	}
	var be *BaseError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsEnriched reports whether err, or anything it wraps, implements Enriched.
func IsEnriched(err error) bool {
	if err == nil {
		return false
	}
	var en Enriched
	return errors.As(err, &en)
}

// NameOf returns the name of the first enriched error in err's chain, or ""
// if there is none.
func NameOf(err error) string {
	if err == nil {
		return ""
	}
	var en Enriched
	if errors.As(err, &en) {
		return en.Name()
	}
	return ""
}

// IDOf returns the first identity found along err's causal chain, or "".
func IDOf(err error) string {
	for _, link := range Chain(err) {
		if be, ok := link.(*BaseError); ok && be.HasID() {
			return be.ID()
		}
	}
	return ""
}
