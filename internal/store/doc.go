// Package store defines interfaces for task storage operations.
// These interfaces abstract the underlying storage mechanism from
// the application's core logic, allowing the scheduling rules to remain
// independent of how task records are held.
package store
