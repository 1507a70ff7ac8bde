package svgnorm

import (
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// loggerPtr stores the active logger. It is swapped atomically so that
// SetLogger can race with normalization running on other goroutines.
var loggerPtr atomic.Pointer[log.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

func newNopLogger() *log.Logger {
	return log.New(io.Discard)
}

// SetLogger sets the logger used for data quality warnings. The package
// is silent until SetLogger is called; passing nil silences it again.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *log.Logger {
	return loggerPtr.Load()
}
