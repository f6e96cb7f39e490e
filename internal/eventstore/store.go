// Package eventstore persists the event stream of past builds so the
// history command can answer "what happened last time" without re-running
// anything. Recording is best-effort: a broken store must never fail a
// build.
package eventstore

import (
	"context"
	"time"
)

// Event is one persisted build event.
type Event struct {
	ID        int64
	BuildID   string
	Type      string
	Timestamp time.Time
	Payload   []byte
	Metadata  map[string]string
}

// BuildSummary is the per-build projection served to the history command.
type BuildSummary struct {
	BuildID    string
	Project    string
	Profile    string
	StartedAt  time.Time
	DurationMS int64
	ExitCode   int
	ErrorCount int
	Finished   bool
}

// Store persists and retrieves build events.
type Store interface {
	// Append adds a new event to the store.
	Append(ctx context.Context, buildID, eventType string, payload []byte, metadata map[string]string) error

	// EventsForBuild retrieves all events of one build in append order.
	EventsForBuild(ctx context.Context, buildID string) ([]Event, error)

	// RecentBuilds summarizes the n most recently started builds,
	// newest first.
	RecentBuilds(ctx context.Context, n int) ([]BuildSummary, error)

	// Close closes the store and releases resources.
	Close() error
}
