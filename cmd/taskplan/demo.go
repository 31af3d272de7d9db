package main

import (
	"fmt"
	"time"

	"github.com/taskplan/taskplan/internal/domain"
	"github.com/taskplan/taskplan/internal/scheduler"
)

// runDemo walks through the two halves of the system: scheduling a small
// task set under each ordering strategy, then broadcasting a sequence of
// domain events to the attached listeners.
func (app *application) runDemo() error {
	if err := app.runSchedulingDemo(); err != nil {
		return err
	}
	return app.runEventDemo()
}

func (app *application) runSchedulingDemo() error {
	fmt.Println("--- Scheduling ---")

	thirty := 30 * time.Minute
	five := 5 * time.Minute

	seeds := []struct {
		name     string
		priority int
		deadline *time.Duration
	}{
		{"Low", 0, &thirty},
		{"High", 10, nil},
		{"Medium", 5, &five},
	}

	for _, seed := range seeds {
		task, err := domain.NewTask(seed.name, seed.priority, seed.deadline)
		if err != nil {
			return fmt.Errorf("failed to create task %q: %w", seed.name, err)
		}
		if err := app.taskStore.Add(task); err != nil {
			return fmt.Errorf("failed to store task %q: %w", seed.name, err)
		}
	}

	// Run the same snapshot through every strategy.
	for _, name := range []string{
		scheduler.StrategyNameArrival,
		scheduler.StrategyNamePriority,
		scheduler.StrategyNameDeadline,
	} {
		strategy, err := scheduler.ForName(name)
		if err != nil {
			return err
		}
		app.scheduler.ReplaceStrategy(strategy)

		ordered := app.scheduler.Schedule(app.taskStore.GetAll())
		fmt.Printf("%s:", name)
		for _, task := range ordered {
			fmt.Printf(" %s", task.Name)
		}
		fmt.Println()
	}

	return nil
}

func (app *application) runEventDemo() error {
	fmt.Println("--- Events ---")

	emissions := []struct {
		kind    domain.EventType
		subject string
		data    map[string]any
	}{
		{domain.EventUserRegistered, "user_001", map[string]any{"email": "alice@example.com"}},
		{domain.EventUserLogin, "user_001", map[string]any{"ip": "192.168.1.1"}},
		{domain.EventOrderPlaced, "user_001", map[string]any{"order_id": "ORD123", "items": 3}},
		{domain.EventPaymentReceived, "user_001", map[string]any{"amount": 1500, "method": "credit_card"}},
		{domain.EventErrorOccurred, "system", map[string]any{"severity": "high", "message": "database connection failed"}},
	}

	for _, e := range emissions {
		if err := app.broadcaster.Emit(e.kind, e.subject, e.data); err != nil {
			return fmt.Errorf("failed to emit %s: %w", e.kind, err)
		}
	}

	// The detached mail listener sees none of the remaining events.
	app.broadcaster.Detach(app.mail)
	if err := app.broadcaster.Emit(domain.EventUserLogin, "user_002", map[string]any{"ip": "192.168.1.2"}); err != nil {
		return err
	}

	fmt.Println("event counts:")
	for kind, count := range app.stats.Report() {
		fmt.Printf("  %s: %d\n", kind, count)
	}

	return nil
}
