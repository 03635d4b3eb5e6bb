package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Destination represents a single log destination.
type Destination struct {
	Name    string `yaml:"name" validate:"required"` // Mandatory, unique identifier
	Type    string `yaml:"type" validate:"required,oneof=console file"`
	Enabled bool   `yaml:"enabled"`

	// File specific
	Path string `yaml:"path,omitempty"` // Mandatory for type: file
}

// Rule maps logger names (glob pattern) to an ordered destination list.
type Rule struct {
	Logger       string   `yaml:"logger" validate:"required"`
	Destinations []string `yaml:"destinations" validate:"required,min=1"`
}

// Config represents the application configuration
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port" validate:"gt=0,lte=65535"`
		Mode string `yaml:"mode" validate:"oneof=release debug"`

		RequestLimits struct {
			MaxBodySize int `yaml:"max_body_size"` // bytes, 0 = unlimited
			RateLimit   int `yaml:"rate_limit"`    // requests per minute, 0 = disabled
		} `yaml:"request_limits"`
	} `yaml:"server"`

	AppLog struct {
		Level string `yaml:"level"`
	} `yaml:"app_log"`

	Destinations []Destination `yaml:"destinations" validate:"dive"`
	Rules        []Rule        `yaml:"rules" validate:"dive"`

	// DefaultDestinations receive messages whose logger name matches no rule.
	DefaultDestinations []string `yaml:"default_destinations"`
}

// LoadConfig reads, parses and validates the configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	// Defaults before unmarshalling. They only apply to fields absent from
	// the file; an explicit zero value (e.g. port: 0) overrides them and
	// must pass validation on its own.
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.Mode = "release"
	cfg.AppLog.Level = "WARN"

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file '%s': %w", path, err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// validateConfig performs struct-tag validation plus the cross checks the
// tags cannot express (uniqueness, references).
func validateConfig(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return err
	}

	// Destination names must be unique; file destinations need a path.
	// The enabled flag is kept so references can be checked against it.
	destEnabled := make(map[string]bool, len(cfg.Destinations))
	for i, dest := range cfg.Destinations {
		if _, seen := destEnabled[dest.Name]; seen {
			return fmt.Errorf("destination %d: duplicate destination name '%s'", i, dest.Name)
		}
		destEnabled[dest.Name] = dest.Enabled

		if dest.Type == "file" && dest.Path == "" {
			return fmt.Errorf("destination '%s': file destination requires a path", dest.Name)
		}
	}

	// Every destination referenced by a rule must exist and be enabled;
	// the Manager never builds loggers for disabled destinations, so a
	// reference to one would only fail later, at resolution time. Rule
	// patterns must compile so that a config the validator accepts is a
	// config the daemon can start with.
	for i, rule := range cfg.Rules {
		if _, err := glob.Compile(rule.Logger); err != nil {
			return fmt.Errorf("rule %d: invalid logger glob pattern '%s': %w", i, rule.Logger, err)
		}
		for _, name := range rule.Destinations {
			enabled, ok := destEnabled[name]
			if !ok {
				return fmt.Errorf("rule %d ('%s'): unknown destination '%s'", i, rule.Logger, name)
			}
			if !enabled {
				return fmt.Errorf("rule %d ('%s'): destination '%s' is disabled", i, rule.Logger, name)
			}
		}
	}
	for _, name := range cfg.DefaultDestinations {
		enabled, ok := destEnabled[name]
		if !ok {
			return fmt.Errorf("default_destinations: unknown destination '%s'", name)
		}
		if !enabled {
			return fmt.Errorf("default_destinations: destination '%s' is disabled", name)
		}
	}

	return nil
}

// ValidateConfig validates an already-loaded configuration. Exposed for the
// config-validator command.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}
	return validateConfig(cfg)
}
