// internal/logger/format.go

package logger

import (
	"fmt"
	"time"
)

// timestampLayout is the layout used for every formatted record.
const timestampLayout = "2006-01-02T15:04:05Z07:00"

// Format renders a message as display text:
//
//	<timestamp> [<LEVEL>] [<loggerName>] : <message>\n
//
// ERROR and FATAL messages carrying a failure get an additional line:
//
//	EXCEPTION: <failure>\n
//
// Messages are assumed to be single-line; no escaping is performed.
func Format(loggerName string, msg Message) string {
	now := time.Now().Format(timestampLayout)
	line := fmt.Sprintf("%s [%s] [%s] : %s\n", now, msg.Level, loggerName, msg.Text)
	if msg.Err != nil && (msg.Level == ERROR || msg.Level == FATAL) {
		line += fmt.Sprintf("EXCEPTION: %v\n", msg.Err)
	}
	return line
}
