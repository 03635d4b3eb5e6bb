package logger

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// syncBuffer is a goroutine-safe bytes.Buffer for capturing sink output.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// lines returns the complete lines written so far.
func (b *syncBuffer) lines() []string {
	s := b.String()
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestConsoleLogger_SubmitWritesFormattedRecord(t *testing.T) {
	buf := &syncBuffer{}
	lgr := newConsoleLoggerTo("svc", buf)

	lgr.Submit(NewInfo("hello"))

	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "hello")
	}, 5*time.Second, 5*time.Millisecond)

	out := buf.String()
	for _, want := range []string{"[INFO]", "[svc]", "hello"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got: %q", want, out)
		}
	}
}

func TestConsoleLogger_ConcurrentProducersNoInterleaving(t *testing.T) {
	buf := &syncBuffer{}
	lgr := newConsoleLoggerTo("svc", buf)

	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				lgr.Submit(NewInfo(fmt.Sprintf("p%d-m%d", p, i)))
			}
		}(p)
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return len(buf.lines()) == producers*perProducer
	}, 5*time.Second, 5*time.Millisecond)

	// Every line must be one complete, well-formed record.
	seen := make(map[string]bool)
	for _, line := range buf.lines() {
		if !strings.Contains(line, "[INFO]") || !strings.Contains(line, "[svc]") {
			t.Fatalf("Garbled record: %q", line)
		}
		key := line[strings.LastIndex(line, " ")+1:]
		if seen[key] {
			t.Fatalf("Duplicate record for message %q", key)
		}
		seen[key] = true
	}
	if len(seen) != producers*perProducer {
		t.Fatalf("Expected %d distinct records, got %d", producers*perProducer, len(seen))
	}
}

func TestConsoleLogger_PerProducerOrderPreserved(t *testing.T) {
	buf := &syncBuffer{}
	lgr := newConsoleLoggerTo("svc", buf)

	const count = 500
	for i := 0; i < count; i++ {
		lgr.Submit(NewInfo(fmt.Sprintf("m%06d", i)))
	}

	require.Eventually(t, func() bool {
		return len(buf.lines()) == count
	}, 5*time.Second, 5*time.Millisecond)

	for i, line := range buf.lines() {
		want := fmt.Sprintf("m%06d", i)
		if !strings.Contains(line, want) {
			t.Fatalf("Record %d out of order: expected %q in %q", i, want, line)
		}
	}
}

func TestConsoleLogger_Name(t *testing.T) {
	lgr := newConsoleLoggerTo("api", &syncBuffer{})
	if lgr.Name() != "api" {
		t.Errorf("Expected name 'api', got %q", lgr.Name())
	}
}
