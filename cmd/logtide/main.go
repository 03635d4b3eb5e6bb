package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ajez/logtide/internal/config"
	"github.com/ajez/logtide/internal/logger"
	"github.com/ajez/logtide/internal/rules"
	"github.com/ajez/logtide/internal/server"
	"github.com/ajez/logtide/internal/version"
)

func main() {
	// --- Configuration --- //
	configPath := flag.String("config", "config/config.yaml", "Path to the configuration file")
	testConfigShort := flag.Bool("t", false, "Test configuration and exit (nginx style)")
	testConfigLong := flag.Bool("test", false, "Test configuration and exit (nginx style)")
	showVersion := flag.Bool("version", false, "Show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.VersionInfo())
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("[CRITICAL] Failed to load configuration from '%s': %v\n", *configPath, err)
		os.Exit(1)
	}

	if *testConfigShort || *testConfigLong {
		// Validation already happened inside LoadConfig
		fmt.Printf("Configuration '%s' is valid.\n", *configPath)
		os.Exit(0)
	}

	// Initialize application logger
	appLogger := logger.GetAppLogger()
	if err := appLogger.SetLogLevelFromString(cfg.AppLog.Level); err != nil {
		fmt.Printf("[WARN] Invalid log level '%s', using default: %v\n", cfg.AppLog.Level, err)
	}

	// Log the version at startup
	appLogger.Warn("%s", version.VersionInfo())

	// --- Dependency Initialization --- //

	// The supervisor outlives every file sink; file write failures end up
	// on its console.
	supervisor := logger.NewSupervisor()

	loggerManager := logger.NewManager(supervisor)
	if err := loggerManager.InitDestinations(cfg.Destinations); err != nil {
		appLogger.Fatal("Failed to initialize one or more destinations: %v. Exiting.", err)
	}

	resolver, err := rules.NewResolver(cfg, loggerManager)
	if err != nil {
		appLogger.Fatal("Failed to initialize logger resolver: %v", err)
	}

	// --- Server Setup --- //

	srv := server.NewServer(server.Dependencies{
		Config:    cfg,
		Resolver:  resolver,
		AppLogger: appLogger,
	})

	// Start server in a goroutine so that it doesn't block.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Server error: %v", err)
		}
	}()

	// --- Graceful Shutdown --- //

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Received shutdown signal.")

	// Give in-flight requests a moment to finish. Sink mailboxes are not
	// drained; messages still queued at exit may be lost.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Warn("Server forced to shutdown: %v", err)
	}

	appLogger.Info("logtide shut down gracefully.")
}
