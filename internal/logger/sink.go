// internal/logger/sink.go

package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/ajez/logtide/internal/actor"
)

// envelope pairs a message with the name of the logger that submitted it.
// Sinks are shared between logger instances (one file sink serves every
// logger targeting its path), so the name travels with the message and
// formatting happens inside the sink actor.
type envelope struct {
	name string
	msg  Message
}

// consoleSink serializes writes to an output stream, normally stdout.
// Write failures have no reporting path and are dropped.
type consoleSink struct {
	a *actor.Actor[envelope]
}

func newConsoleSink(w io.Writer) *consoleSink {
	s := &consoleSink{}
	s.a = actor.New(func(e envelope) error {
		_, err := io.WriteString(w, Format(e.name, e.msg))
		return err
	})
	return s
}

func (s *consoleSink) submit(e envelope) {
	s.a.Post(e)
}

// fileSink serializes appends to a single open file handle. The handle is
// opened once, in append mode, when the sink is created and stays open for
// the life of the process. Write failures are forwarded to the Supervisor;
// the sink keeps processing subsequent messages.
type fileSink struct {
	path   string
	writer io.Writer
	a      *actor.Actor[envelope]
}

func newFileSink(path string, sup *Supervisor) (*fileSink, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return newFileSinkWriter(path, file, sup), nil
}

// newFileSinkWriter builds a file sink around an already-open writer.
// Split from newFileSink so tests can inject a failing writer.
func newFileSinkWriter(path string, w io.Writer, sup *Supervisor) *fileSink {
	s := &fileSink{path: path, writer: w}
	s.a = actor.New(func(e envelope) error {
		if _, err := io.WriteString(s.writer, Format(e.name, e.msg)); err != nil {
			return fmt.Errorf("failed to write log line to %s: %w", path, err)
		}
		return nil
	})
	if sup != nil {
		s.a.OnError(sup.Report)
	}
	return s
}

func (s *fileSink) submit(e envelope) {
	s.a.Post(e)
}
