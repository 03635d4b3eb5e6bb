package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder notes every submission across a set of fake children so forward
// order can be asserted.
type recorder struct {
	mu    sync.Mutex
	order []string
}

// fakeLogger records submissions synchronously.
type fakeLogger struct {
	name string
	rec  *recorder
	msgs []Message
}

func (f *fakeLogger) Submit(msg Message) {
	f.rec.mu.Lock()
	defer f.rec.mu.Unlock()
	f.rec.order = append(f.rec.order, f.name)
	f.msgs = append(f.msgs, msg)
}

func (f *fakeLogger) Name() string { return f.name }

func TestMultiLogger_ForwardsToEveryChildInOrder(t *testing.T) {
	rec := &recorder{}
	a := &fakeLogger{name: "A", rec: rec}
	b := &fakeLogger{name: "B", rec: rec}
	c := &fakeLogger{name: "C", rec: rec}

	multi := NewMultiLogger("svc", a, b, c)
	multi.Submit(NewInfo("hello"))

	require.Equal(t, []string{"A", "B", "C"}, rec.order)
	for _, child := range []*fakeLogger{a, b, c} {
		require.Lenf(t, child.msgs, 1, "child %s", child.name)
		assert.Equal(t, "hello", child.msgs[0].Text)
	}
}

func TestMultiLogger_NilChildDoesNotStopForwarding(t *testing.T) {
	rec := &recorder{}
	a := &fakeLogger{name: "A", rec: rec}
	c := &fakeLogger{name: "C", rec: rec}

	multi := NewMultiLogger("svc", a, nil, c)
	multi.Submit(NewWarn("careful"))

	assert.Equal(t, []string{"A", "C"}, rec.order)
}

func TestMultiLogger_EachSubmitForwardsOnce(t *testing.T) {
	rec := &recorder{}
	a := &fakeLogger{name: "A", rec: rec}
	b := &fakeLogger{name: "B", rec: rec}

	multi := NewMultiLogger("svc", a, b)
	multi.Submit(NewInfo("one"))
	multi.Submit(NewInfo("two"))

	assert.Equal(t, []string{"A", "B", "A", "B"}, rec.order)
	assert.Len(t, a.msgs, 2)
	assert.Len(t, b.msgs, 2)
}

func TestMultiLogger_Name(t *testing.T) {
	multi := NewMultiLogger("composite")
	assert.Equal(t, "composite", multi.Name())
}
