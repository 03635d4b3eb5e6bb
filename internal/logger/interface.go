// internal/logger/interface.go

package logger

// Logger is the capability surface shared by all log destinations.
// Each logger kind (console, file, multi) implements this interface.
type Logger interface {
	// Submit hands a message over for eventual, asynchronous processing.
	// It never blocks on the physical write and never reports an error
	// back to the caller; submission is fire-and-forget.
	Submit(msg Message)

	// Name returns the logger name stamped on every formatted record.
	Name() string
}
