// Package index provides hash-based equality indexes for primary key and
// unique column lookups.
//
// Indexes are in-memory only and rebuilt from state when a database is
// opened. They serve the host's PK/unique checks and indexed SELECTs; the
// topological validators do not use them: whole-extent scanning is the
// integrity engine's correctness-first baseline.
package index
