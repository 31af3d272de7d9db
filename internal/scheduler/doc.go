// Package scheduler contains the task-ordering engine: a family of
// interchangeable ordering strategies and the Scheduler that binds one of
// them to a snapshot of tasks. Strategies are pure functions over their
// input; every variant yields a stable, deterministic total order.
package scheduler
