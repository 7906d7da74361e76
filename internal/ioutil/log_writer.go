// Package ioutil provides I/O utilities built on top of
// go.abhg.dev/io/ioutil, adapting its printf-shaped writer to this
// module's charmbracelet/log logger.
package ioutil

import (
	"io"

	"github.com/charmbracelet/log"
	upstream "go.abhg.dev/io/ioutil"
)

// LogWriter builds and returns an io.Writer that
// writes messages to the given logger.
// If the logger is nil, a no-op writer is returned.
//
// The done function must be called when the writer is no longer needed.
// It will flush any buffered text to the logger.
//
// The returned writer is not thread-safe.
func LogWriter(logger *log.Logger, lvl log.Level) (w io.Writer, done func()) {
	if logger == nil {
		return io.Discard, func() {}
	}

	var printf func(string, ...any)
	switch lvl {
	case log.DebugLevel:
		printf = logger.Debugf
	case log.InfoLevel:
		printf = logger.Infof
	case log.WarnLevel:
		printf = logger.Warnf
	case log.ErrorLevel:
		printf = logger.Errorf
	default:
		panic("unsupported log level")
	}

	return upstream.PrintfWriter(printf, "")
}

// TestLogWriter builds and returns an io.Writer that writes messages to
// the given test logger (satisfied by *testing.T/B via its Logf
// method).
// The returned writer is not thread-safe.
func TestLogWriter(t upstream.TestLogger, prefix string) (w io.Writer) {
	w, flush := upstream.PrintfWriter(t.Logf, prefix)
	t.Cleanup(flush)
	return w
}
