// internal/logger/supervisor.go

package logger

import (
	"io"
	"os"

	"github.com/ajez/logtide/internal/actor"
)

// SupervisorLoggerName is the synthetic logger name stamped on records the
// Supervisor writes about other sinks' failures.
const SupervisorLoggerName = "logtide"

// Supervisor is a long-lived actor that receives failures from file sinks
// and reports them on a console sink of its own. A file sink cannot safely
// log its own write failure into the file it just failed to write, so every
// file sink is created with the process's Supervisor as its error target.
//
// One Supervisor is created per process and outlives all file sinks. It is
// never restarted; a failure while reporting is dropped (the console path
// has no error reporting, same as any console sink).
type Supervisor struct {
	a       *actor.Actor[error]
	console *ConsoleLogger
}

// NewSupervisor creates a supervisor reporting to stdout.
func NewSupervisor() *Supervisor {
	return newSupervisorTo(os.Stdout)
}

// newSupervisorTo allows tests to capture the supervisor's console output.
func newSupervisorTo(w io.Writer) *Supervisor {
	s := &Supervisor{
		console: newConsoleLoggerTo(SupervisorLoggerName, w),
	}
	s.a = actor.New(func(err error) error {
		s.console.Submit(NewError("log sink failure", err))
		return nil
	})
	return s
}

// Report enqueues a failure for rendering on the supervisor's console.
// Fire-and-forget, safe for concurrent use; signature matches the actor
// runtime's error handler.
func (s *Supervisor) Report(err error) {
	s.a.Post(err)
}
