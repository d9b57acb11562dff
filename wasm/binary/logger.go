package binary

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's diagnostic logger. It uses a no-op logger
// by default. Diagnostics are a side channel: they never abort a decode.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's diagnostic logger. This must be
// called before any decode operations.
func SetLogger(l *zap.Logger) {
	logger = l
}
