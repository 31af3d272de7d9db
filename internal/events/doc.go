// Package events implements synchronous, in-process event broadcasting.
// Components emit domain events through a Broadcaster, which fans each one
// out to every attached listener in attachment order. Delivery is
// fire-and-forget and best-effort; nothing is persisted or retried.
package events
