// internal/logger/multi_logger.go

package logger

// MultiLogger fans a submitted message out to an ordered list of child
// loggers. Forwarding is synchronous over the children but each child's own
// submission is asynchronous, so Submit returns once every child has
// accepted the message into its mailbox, not once it has been processed.
type MultiLogger struct {
	name     string
	children []Logger
}

// NewMultiLogger creates a MultiLogger forwarding to the given children in
// the given order.
func NewMultiLogger(name string, children ...Logger) *MultiLogger {
	return &MultiLogger{name: name, children: children}
}

// Submit forwards the message to every child in list order. Each forward is
// independent; a nil child is skipped and does not prevent delivery to the
// remaining children.
func (m *MultiLogger) Submit(msg Message) {
	for _, child := range m.children {
		if child == nil {
			continue
		}
		child.Submit(msg)
	}
}

// Name returns the logger name.
func (m *MultiLogger) Name() string {
	return m.name
}

// Ensure MultiLogger implements the Logger interface.
var _ Logger = (*MultiLogger)(nil)
