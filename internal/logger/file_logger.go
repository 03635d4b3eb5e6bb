// internal/logger/file_logger.go

package logger

// FileLogger appends formatted records to a file. The underlying sink actor
// and open file handle come from the Registry and are shared with every
// other FileLogger targeting the same path; only the name is per-instance.
type FileLogger struct {
	name string
	sink *fileSink
}

// NewFileLogger creates a file logger for the given path. The sink is taken
// from the registry, opening the file on first use of the path.
func NewFileLogger(name, path string, registry *Registry) (*FileLogger, error) {
	sink, err := registry.GetOrCreate(path)
	if err != nil {
		return nil, err
	}
	return &FileLogger{name: name, sink: sink}, nil
}

// Submit enqueues the message on the shared file sink and returns
// immediately. Write failures surface on the Supervisor's console, never
// here.
func (l *FileLogger) Submit(msg Message) {
	l.sink.submit(envelope{name: l.name, msg: msg})
}

// Name returns the logger name.
func (l *FileLogger) Name() string {
	return l.name
}

// Ensure FileLogger implements the Logger interface.
var _ Logger = (*FileLogger)(nil)
