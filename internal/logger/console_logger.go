// internal/logger/console_logger.go

package logger

import (
	"io"
	"os"
)

// ConsoleLogger writes formatted records to standard output through its own
// sink actor, so concurrent submitters never interleave within a record.
type ConsoleLogger struct {
	name string
	sink *consoleSink
}

// NewConsoleLogger creates a console logger writing to stdout.
func NewConsoleLogger(name string) *ConsoleLogger {
	return newConsoleLoggerTo(name, os.Stdout)
}

// newConsoleLoggerTo allows tests (and the Supervisor) to redirect output.
func newConsoleLoggerTo(name string, w io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		name: name,
		sink: newConsoleSink(w),
	}
}

// Submit enqueues the message on the console sink and returns immediately.
func (l *ConsoleLogger) Submit(msg Message) {
	l.sink.submit(envelope{name: l.name, msg: msg})
}

// Name returns the logger name.
func (l *ConsoleLogger) Name() string {
	return l.name
}

// Ensure ConsoleLogger implements the Logger interface.
var _ Logger = (*ConsoleLogger)(nil)
