// internal/logger/manager.go

package logger

import (
	"fmt"
	"sync"

	"github.com/ajez/logtide/internal/config"
)

// Manager holds the configured log destinations and builds Logger instances
// for them. It owns the file sink Registry and shares the process
// Supervisor with every file sink it creates.
type Manager struct {
	mu         sync.RWMutex
	dests      map[string]config.Destination
	registry   *Registry
	supervisor *Supervisor
	appLogger  *AppLogger
}

// NewManager creates a manager whose file sinks report failures to the
// given supervisor.
func NewManager(supervisor *Supervisor) *Manager {
	return &Manager{
		dests:      make(map[string]config.Destination),
		registry:   NewRegistry(supervisor),
		supervisor: supervisor,
		appLogger:  GetAppLogger(),
	}
}

// InitDestinations registers the enabled destinations from the
// configuration. File destinations are opened eagerly so that unusable
// paths surface at startup instead of on first log.
func (m *Manager) InitDestinations(destinations []config.Destination) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dests = make(map[string]config.Destination)

	var initErrors []error
	for _, dest := range destinations {
		if !dest.Enabled {
			continue
		}

		var err error
		switch dest.Type {
		case "console":
			// Nothing to open; console loggers are built per name.
		case "file":
			_, err = m.registry.GetOrCreate(dest.Path)
		default:
			err = fmt.Errorf("unsupported destination type: %s", dest.Type)
		}

		if err != nil {
			m.appLogger.Error("Failed to initialize log destination '%s' (type: %s): %v", dest.Name, dest.Type, err)
			initErrors = append(initErrors, fmt.Errorf("dest '%s': %w", dest.Name, err))
			continue
		}

		m.dests[dest.Name] = dest
		m.appLogger.Info("Initialized log destination '%s' (type: %s)", dest.Name, dest.Type)
	}

	if len(initErrors) > 0 {
		return fmt.Errorf("failed to initialize some destinations: %v", initErrors)
	}
	return nil
}

// NewLogger builds a Logger writing to the named destination under the
// given logger name. File destinations share one sink per path through the
// registry; console destinations get their own sink per logger name.
func (m *Manager) NewLogger(loggerName, destName string) (Logger, error) {
	m.mu.RLock()
	dest, ok := m.dests[destName]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown log destination: %s", destName)
	}

	switch dest.Type {
	case "console":
		return NewConsoleLogger(loggerName), nil
	case "file":
		return NewFileLogger(loggerName, dest.Path, m.registry)
	default:
		return nil, fmt.Errorf("unsupported destination type: %s", dest.Type)
	}
}

// Names returns the names of all registered destinations.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.dests))
	for name := range m.dests {
		names = append(names, name)
	}
	return names
}
