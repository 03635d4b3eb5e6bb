// internal/logger/registry.go

package logger

import (
	"path/filepath"
	"sync"
)

// Registry maps file paths to their dedicated file sink actors, guaranteeing
// a single writer and a single open handle per path no matter how many
// logger instances target it. Sinks are created lazily on first request and
// live until process exit; there is no close.
//
// The registry is an explicit, lifetime-scoped object rather than package
// state; the owner (normally the Manager) decides how widely to share it.
type Registry struct {
	mu         sync.Mutex
	sinks      map[string]*fileSink
	supervisor *Supervisor
}

// NewRegistry creates an empty registry. File sinks created through it
// report their write failures to the given supervisor.
func NewRegistry(supervisor *Supervisor) *Registry {
	return &Registry{
		sinks:      make(map[string]*fileSink),
		supervisor: supervisor,
	}
}

// GetOrCreate returns the sink for the given path, opening the file and
// starting the actor on first use. Idempotent per path: concurrent and
// repeated calls with the same path yield the same sink and never a second
// open handle.
func (r *Registry) GetOrCreate(path string) (*fileSink, error) {
	key := filepath.Clean(path)

	r.mu.Lock()
	defer r.mu.Unlock()

	if sink, ok := r.sinks[key]; ok {
		return sink, nil
	}

	sink, err := newFileSink(key, r.supervisor)
	if err != nil {
		return nil, err
	}
	r.sinks[key] = sink
	return sink, nil
}

// Len returns the number of open sinks.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sinks)
}
