// unwrap.go — traversal of the causal chain formed by Unwrap() error.
//
// The chain of BaseErrors is acyclic by construction (the original error is
// fixed when the error is built), but foreign wrappers are not under our
// control, so traversal keeps a seen-set and a depth cap.
//
// The seen-set is keyed by pointer identity, never by the error value: a
// comparable struct type can still hold an unhashable value in an interface
// field, and hashing it panics. Non-pointer errors are not recorded and are
// bounded by maxChainDepth.
package bettererror

import (
	"reflect"
)

// maxChainDepth bounds traversal against runaway foreign wrappers.
const maxChainDepth = 64

type singleUnwrapper interface{ Unwrap() error }

type seenKey struct {
	ptr uintptr
	typ reflect.Type
}

// markSeen returns true if err was newly marked, false if already seen.
func markSeen(err error, seen map[seenKey]struct{}) bool {
	rv := reflect.ValueOf(err)
	if rv.Kind() != reflect.Pointer {
		return true
	}
	key := seenKey{ptr: rv.Pointer(), typ: rv.Type()}
	if _, ok := seen[key]; ok {
		return false
	}
	seen[key] = struct{}{}
	return true
}

// Chain returns err followed by each error reached through Unwrap() error,
// stopping at the first error that does not wrap anything, at a repeated
// error, or after maxChainDepth links. Multi-error joins are leaves here.
func Chain(err error) []error {
	if err == nil {
		return nil
	}
	seen := make(map[seenKey]struct{}, 4)

	out := make([]error, 0, 4)
	for cur := err; cur != nil && len(out) < maxChainDepth; {
		if !markSeen(cur, seen) {
			break
		}
		out = append(out, cur)
		u, ok := cur.(singleUnwrapper)
		if !ok {
			break
		}
		cur = u.Unwrap()
	}
	return out
}

// Walk calls visit for each link of Chain(err) in order until visit returns
// false.
func Walk(err error, visit func(error) bool) {
	if visit == nil {
		return
	}
	for _, link := range Chain(err) {
		if !visit(link) {
			return
		}
	}
}

// Root returns the last link of err's chain: the error that started it all.
func Root(err error) error {
	links := Chain(err)
	if len(links) == 0 {
		return nil
	}
	return links[len(links)-1]
}
