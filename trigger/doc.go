// Package trigger attaches topological validators to tables and runs them
// on every completed mutating statement.
//
// The Dispatcher is the orchestration layer between the schema classifier
// and the validators:
//
//	schema change -> classify -> attach (idempotent) -> hold attachment table
//	statement completes -> run attached validators -> commit or abort
//
// Attachment is keyed by the explicit (table, class, column) identity,
// extended with the relationship name for cross-table constraints, so
// re-deriving an attachment for an already-governed column is a no-op,
// never a duplicate hook. Classes with no registered validator are
// skipped silently, leaving room for future classes.
//
// Dispatch fires at statement granularity (once per insert/update/delete
// statement, not per row) and is synchronous: it runs on the path
// completing the statement and blocks it until every attached validator
// has answered. Attachment order across independent classes is
// insignificant since each inspects disjoint columns. The first detected
// violation aborts the statement with a *rules.ViolationError; the caller
// must then discard the statement's staged effects in full.
package trigger
