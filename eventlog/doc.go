// Package eventlog provides an append-only event log for durable storage.
//
// The eventlog package stores every database event in a persistent,
// append-only file of newline-delimited JSON. Each event carries a
// sequential ID, a timestamp, a transaction ID grouping the events of one
// statement, and a SHA256 checksum for integrity verification.
//
// Key Features:
//   - Append-Only: events are never modified, only appended
//   - Integrity Checking: checksums are verified on every read
//   - Atomic Writes: events are written and fsynced one at a time
//   - Typed Payloads: payloads decode into per-event-type structs
//
// Event Types:
//   - TABLE_CREATED: table schema creation
//   - COLUMN_ADDED: column added to an existing table
//   - RELATIONSHIP_CREATED: cross-table spatial constraint declared
//   - ROW_INSERTED / ROW_UPDATED / ROW_DELETED: row mutations
//
// The integrity engine depends on one property of this log: nothing is
// appended for a statement until its validation verdict is clean. An
// aborted statement therefore leaves the log, and so the replayed state,
// exactly as it was.
package eventlog
