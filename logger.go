package bettererror

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nopLogger = zap.NewNop()
	pkgLogger atomic.Pointer[zap.Logger]
)

// SetLogger installs the logger used to report values Stringify could not
// render. Passing nil restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	pkgLogger.Store(l)
}

func logger() *zap.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return nopLogger
}
