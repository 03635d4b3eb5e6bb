package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ajez/logtide/internal/config"
)

func main() {
	// Parse command line flags
	flag.Parse()

	// Get config path from arguments
	if len(flag.Args()) < 1 {
		fmt.Println("Error: Config file path is required")
		fmt.Println("Usage: config-validator <config-file>")
		os.Exit(1)
	}
	configPath := flag.Args()[0]

	// Load and validate configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Perform additional validation
	if err := validateConfig(cfg); err != nil {
		fmt.Printf("Validation error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration is valid!")
}

func validateConfig(cfg *config.Config) error {
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	// Beyond structural validation, require something to actually log to.
	hasEnabledDestination := false
	for _, dest := range cfg.Destinations {
		if dest.Enabled {
			hasEnabledDestination = true
			break
		}
	}
	if !hasEnabledDestination {
		return fmt.Errorf("at least one destination must be enabled")
	}

	if len(cfg.Rules) == 0 && len(cfg.DefaultDestinations) == 0 {
		return fmt.Errorf("no rules and no default_destinations; every message would be unroutable")
	}

	return nil
}
