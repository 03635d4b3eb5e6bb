package logger

import (
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/ajez/logtide/internal/config"
)

// Reusing helper from file_logger_test.go
func tempLogFilePathManager(t *testing.T, pattern string) string {
	t.Helper()
	tmpDir := t.TempDir()
	return filepath.Join(tmpDir, pattern)
}

func TestManager_InitDestinations(t *testing.T) {
	tests := []struct {
		name            string
		destCfgs        []config.Destination
		expectInitError bool
		expectedNames   []string
	}{
		{
			name:            "No destinations",
			destCfgs:        []config.Destination{},
			expectInitError: false,
			expectedNames:   []string{},
		},
		{
			name: "One valid file destination",
			destCfgs: []config.Destination{
				{Name: "file1", Type: "file", Enabled: true, Path: tempLogFilePathManager(t, "file1.log")},
			},
			expectInitError: false,
			expectedNames:   []string{"file1"},
		},
		{
			name: "Console and file",
			destCfgs: []config.Destination{
				{Name: "stdout", Type: "console", Enabled: true},
				{Name: "file1", Type: "file", Enabled: true, Path: tempLogFilePathManager(t, "file1.log")},
			},
			expectInitError: false,
			expectedNames:   []string{"file1", "stdout"},
		},
		{
			name: "Disabled destinations are skipped",
			destCfgs: []config.Destination{
				{Name: "stdout", Type: "console", Enabled: true},
				{Name: "off", Type: "file", Enabled: false, Path: tempLogFilePathManager(t, "off.log")},
			},
			expectInitError: false,
			expectedNames:   []string{"stdout"},
		},
		{
			name: "Unsupported type",
			destCfgs: []config.Destination{
				{Name: "bad", Type: "syslog", Enabled: true},
			},
			expectInitError: true,
			expectedNames:   []string{},
		},
		{
			name: "Unusable file path",
			destCfgs: []config.Destination{
				{Name: "bad-path", Type: "file", Enabled: true, Path: filepath.Join(t.TempDir(), "no-dir", "x.log")},
			},
			expectInitError: true,
			expectedNames:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(NewSupervisor())
			err := m.InitDestinations(tt.destCfgs)

			if tt.expectInitError && err == nil {
				t.Fatal("Expected an init error, got nil")
			}
			if !tt.expectInitError && err != nil {
				t.Fatalf("Unexpected init error: %v", err)
			}

			names := m.Names()
			sort.Strings(names)
			if len(names) != len(tt.expectedNames) || (len(names) > 0 && !reflect.DeepEqual(names, tt.expectedNames)) {
				t.Errorf("Expected destinations %v, got %v", tt.expectedNames, names)
			}
		})
	}
}

func TestManager_NewLogger(t *testing.T) {
	path := tempLogFilePathManager(t, "shared.log")

	m := NewManager(NewSupervisor())
	err := m.InitDestinations([]config.Destination{
		{Name: "stdout", Type: "console", Enabled: true},
		{Name: "app-file", Type: "file", Enabled: true, Path: path},
		{Name: "same-file", Type: "file", Enabled: true, Path: path},
	})
	if err != nil {
		t.Fatalf("InitDestinations failed: %v", err)
	}

	console, err := m.NewLogger("svc", "stdout")
	if err != nil {
		t.Fatalf("NewLogger(console) failed: %v", err)
	}
	if _, ok := console.(*ConsoleLogger); !ok {
		t.Errorf("Expected *ConsoleLogger, got %T", console)
	}

	file1, err := m.NewLogger("svc", "app-file")
	if err != nil {
		t.Fatalf("NewLogger(file) failed: %v", err)
	}
	file2, err := m.NewLogger("other", "same-file")
	if err != nil {
		t.Fatalf("NewLogger(file) failed: %v", err)
	}

	// Two destinations on one path share the sink.
	f1, ok := file1.(*FileLogger)
	if !ok {
		t.Fatalf("Expected *FileLogger, got %T", file1)
	}
	f2 := file2.(*FileLogger)
	if f1.sink != f2.sink {
		t.Error("Expected file destinations with the same path to share one sink")
	}
	if m.registry.Len() != 1 {
		t.Errorf("Expected one open sink, got %d", m.registry.Len())
	}

	if _, err := m.NewLogger("svc", "nope"); err == nil {
		t.Error("Expected an error for an unknown destination")
	}
}
