// internal/logger/message.go

package logger

import (
	"fmt"
	"strings"
)

// Level defines the available logging levels
type Level int

const (
	// Log levels
	DEBUG Level = 20
	INFO  Level = 30
	WARN  Level = 40
	ERROR Level = 50
	FATAL Level = 60
)

// Level to string mapping
var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// LevelNameToLevel maps string level names to level values
var LevelNameToLevel = map[string]Level{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
	"FATAL": FATAL,
}

// String returns the display name of the level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a level name (any case) to a Level.
func ParseLevel(name string) (Level, error) {
	level, ok := LevelNameToLevel[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("invalid log level: %s", name)
	}
	return level, nil
}

// Message is a single leveled log message. It is immutable once constructed
// and consumed exactly once by the sink that formats it. Err is carried only
// by ERROR and FATAL messages.
type Message struct {
	Level Level
	Text  string
	Err   error
}

// NewDebug creates a DEBUG message.
func NewDebug(text string) Message {
	return Message{Level: DEBUG, Text: text}
}

// NewInfo creates an INFO message.
func NewInfo(text string) Message {
	return Message{Level: INFO, Text: text}
}

// NewWarn creates a WARN message.
func NewWarn(text string) Message {
	return Message{Level: WARN, Text: text}
}

// NewError creates an ERROR message carrying the failure that caused it.
func NewError(text string, err error) Message {
	return Message{Level: ERROR, Text: text, Err: err}
}

// NewFatal creates a FATAL message carrying the failure that caused it.
func NewFatal(text string, err error) Message {
	return Message{Level: FATAL, Text: text, Err: err}
}
