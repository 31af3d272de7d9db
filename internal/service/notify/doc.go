// Package notify provides the built-in event listeners: structured event
// logging, mail notifications for important events, per-kind statistics,
// and alerting on critical conditions. Each listener does exactly one job
// and is attached to a Broadcaster at composition time.
package notify
