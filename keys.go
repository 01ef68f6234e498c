// keys.go — reserved debug keys and construction defaults.
//
// Conventions (documented, not enforced):
//   - Caller debug keys are free-form strings; nothing stops a caller from
//     using a reserved key. A caller "errorId" replaces the injected one,
//     while stack and original error entries are written after the caller's
//     debugs and replace theirs.
//   - Keys injected for an original error are prefixed with OriginalErrorPrefix.
package bettererror

import "strings"

// Construction defaults.
const (
	// DefaultName is the name of an error constructed without WithName.
	DefaultName = "baseError"

	// defaultMessage replaces an empty message so Error() is never blank.
	defaultMessage = "unknown error"
)

// Keys injected by DebugsObject.
const (
	KeyErrorID       = "errorId"
	KeyOriginalError = "originalError"
	KeyStack         = "stack"

	// NoID is the errorId value used when the error has no identity.
	NoID = "no_id"

	// OriginalErrorPrefix prefixes every key contributed by an original error.
	OriginalErrorPrefix = KeyOriginalError + " - "
)

// IsReserved reports whether key is one the aggregation step may overwrite:
// errorId, originalError, stack, stack{N}, or anything under the
// original error prefix.
func IsReserved(key string) bool {
	switch key {
	case KeyErrorID, KeyOriginalError, KeyStack:
		return true
	}
	if strings.HasPrefix(key, OriginalErrorPrefix) {
		return true
	}
	n, ok := strings.CutPrefix(key, KeyStack)
	if !ok || n == "" {
		return false
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
