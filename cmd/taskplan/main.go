// Package main implements the taskplan console demo: it wires the task
// store, scheduler, and event broadcaster together and walks through the
// ordering strategies and the notification fan-out.
package main

import (
	"fmt"
	"log"

	"github.com/taskplan/taskplan/internal/config"
	"github.com/taskplan/taskplan/internal/platform/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up structured logging using the configured log level
	appLogger := logger.Setup(cfg.Log)
	appLogger.Info("configuration loaded",
		"log_level", cfg.Log.Level,
		"strategy", cfg.Scheduler.Strategy)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.runDemo(); err != nil {
		log.Fatalf("Demo run failed: %v", err)
	}

	fmt.Println("taskplan demo complete")
}
