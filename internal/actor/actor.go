// internal/actor/actor.go

package actor

import (
	"fmt"
	"sync"
)

// Actor is a single-consumer, multi-producer mailbox. Any number of
// goroutines may Post concurrently; messages are processed one at a time,
// in arrival order, on a dedicated worker goroutine.
//
// The mailbox is unbounded: Post never blocks, regardless of how far the
// worker has fallen behind.
type Actor[T any] struct {
	mu      sync.Mutex
	queue   []T
	wake    chan struct{}
	process func(T) error
	errFn   func(error)
}

// New creates an actor around the given processing step and starts its
// worker loop immediately.
func New[T any](process func(T) error) *Actor[T] {
	if process == nil {
		panic("actor: process function cannot be nil")
	}
	a := &Actor[T]{
		wake:    make(chan struct{}, 1),
		process: process,
	}
	go a.loop()
	return a
}

// Post enqueues a message for eventual processing and returns immediately.
// There is no acknowledgment; once posted, a message will eventually be
// handed to the processing step.
func (a *Actor[T]) Post(msg T) {
	a.mu.Lock()
	a.queue = append(a.queue, msg)
	a.mu.Unlock()

	// Coalesced wakeup; the worker drains the whole queue per signal.
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// OnError registers a handler invoked whenever the processing step fails
// for a message. Failures are per-message: the worker keeps processing
// subsequent messages. Without a handler, failures are dropped.
func (a *Actor[T]) OnError(handler func(error)) {
	a.mu.Lock()
	a.errFn = handler
	a.mu.Unlock()
}

// Pending returns the number of messages waiting in the mailbox. It does
// not count a message currently being processed.
func (a *Actor[T]) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.queue)
}

func (a *Actor[T]) loop() {
	for range a.wake {
		for {
			a.mu.Lock()
			if len(a.queue) == 0 {
				a.queue = nil
				a.mu.Unlock()
				break
			}
			msg := a.queue[0]
			a.queue = a.queue[1:]
			a.mu.Unlock()

			a.dispatch(msg)
		}
	}
}

// dispatch runs the processing step for one message, converting a panic
// into a reported error so the worker loop survives it.
func (a *Actor[T]) dispatch(msg T) {
	defer func() {
		if r := recover(); r != nil {
			a.report(fmt.Errorf("panic while processing message: %v", r))
		}
	}()
	if err := a.process(msg); err != nil {
		a.report(err)
	}
}

func (a *Actor[T]) report(err error) {
	a.mu.Lock()
	handler := a.errFn
	a.mu.Unlock()
	if handler != nil {
		handler(err)
	}
}
