// Package storage provides event-sourced persistence and the staged views
// validators run against.
//
// Key Components:
//   - EventStore: wraps the event log with database-aware operations
//   - State: committed state derived by deterministic event replay
//   - StagedView: one statement's uncommitted changes overlaid on State
//
// Architecture:
//   - Event-Sourced: all changes are stored as immutable events
//   - Commit Point: an event is appended only after the statement's
//     validators return a clean verdict, so an aborted statement leaves
//     both the log and the derived state untouched
//   - Isolated Views: StagedView shows a mutating statement its own
//     proposed state and nothing from other in-flight statements
//
// Key Responsibilities:
//   - Recording schema and row events in the append-only log
//   - Replaying events to reconstruct committed state at startup
//   - Serving table scans in deterministic (row ID) order
//
// The storage package works with the eventlog package for durability and
// is used by the database package, which owns the statement lifecycle.
package storage
