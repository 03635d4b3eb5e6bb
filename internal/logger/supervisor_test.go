package logger

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupervisor_ReportRendersErrorRecordOnConsole(t *testing.T) {
	console := &syncBuffer{}
	sup := newSupervisorTo(console)

	sup.Report(errors.New("permission denied"))

	require.Eventually(t, func() bool {
		return len(console.lines()) >= 2
	}, 5*time.Second, 5*time.Millisecond)

	lines := console.lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[ERROR]")
	assert.Contains(t, lines[0], "["+SupervisorLoggerName+"]")
	assert.Contains(t, lines[0], "log sink failure")
	assert.True(t, strings.HasPrefix(lines[1], "EXCEPTION:"), "got %q", lines[1])
	assert.Contains(t, lines[1], "permission denied")
}

func TestSupervisor_ReportsEveryFailureOnce(t *testing.T) {
	console := &syncBuffer{}
	sup := newSupervisorTo(console)

	const count = 50
	for i := 0; i < count; i++ {
		sup.Report(fmt.Errorf("failure %d", i))
	}

	// Two lines per error record.
	require.Eventually(t, func() bool {
		return len(console.lines()) == 2*count
	}, 5*time.Second, 5*time.Millisecond)

	lines := console.lines()
	for i := 0; i < count; i++ {
		want := fmt.Sprintf("EXCEPTION: failure %d", i)
		if lines[2*i+1] != want {
			t.Fatalf("Record %d: expected %q, got %q", i, want, lines[2*i+1])
		}
	}
}
