package main

import (
	"fmt"
	"log/slog"

	"github.com/taskplan/taskplan/internal/config"
	"github.com/taskplan/taskplan/internal/events"
	"github.com/taskplan/taskplan/internal/platform/memstore"
	"github.com/taskplan/taskplan/internal/scheduler"
	"github.com/taskplan/taskplan/internal/service/notify"
	"github.com/taskplan/taskplan/internal/store"
)

// application holds the shared application dependencies so the demo can be
// driven from one place.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	taskStore store.TaskStore

	// Scheduling
	scheduler *scheduler.Scheduler

	// Event system
	broadcaster *events.InMemoryBroadcaster
	mail        *notify.MailListener
	stats       *notify.StatsListener
}

// newApplication creates a new application instance with all dependencies
// initialized: an in-memory task store, a scheduler running the configured
// default strategy, and a broadcaster with the built-in listeners attached.
// A plain constructor is all the wiring this system needs.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	// Initialize stores
	app.taskStore = memstore.NewMemoryTaskStore(logger)

	// Initialize the scheduler with the configured default strategy
	strategy, err := scheduler.ForName(cfg.Scheduler.Strategy)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ordering strategy: %w", err)
	}
	app.scheduler = scheduler.NewScheduler(strategy, logger)

	// Initialize the event system and attach the built-in listeners
	app.broadcaster = events.NewInMemoryBroadcaster(logger)
	app.mail = notify.NewMailListener(logger)
	app.stats = notify.NewStatsListener()

	app.broadcaster.Attach(notify.NewLogListener(logger))
	app.broadcaster.Attach(app.mail)
	app.broadcaster.Attach(app.stats)
	app.broadcaster.Attach(notify.NewAlertListener(logger, cfg.Alerts.LargePaymentThreshold))

	logger.Info("application initialized successfully",
		"strategy", app.scheduler.StrategyName())
	return app, nil
}
