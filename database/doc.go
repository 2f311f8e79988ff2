// Package database provides the high-level database surface and owns the
// statement lifecycle the integrity engine hangs off of.
//
// Every mutating statement follows the same path:
//
//	Proposed -> stage changes -> run attached validators -> Committed | Aborted
//
// The staging step builds a StagedView: the committed state with this one
// statement's changes overlaid. Validators inspect that view, so they see
// exactly the state the database would be in if the statement committed.
// Nothing is appended to the event log until the verdict is clean, which
// makes abort trivially atomic: a rejected statement simply never
// happened, and pre-statement state is preserved exactly. There is no
// partial-success state.
//
// A single exclusive mutex serializes mutating statements end to end.
// This is the deliberate answer to the snapshot-validation race: two
// concurrent statements that each satisfy an invariant alone but violate
// it together (two mutually intersecting isolines, say) cannot both
// commit, because the second one validates against a state that already
// includes the first. Validation of a large table can be slow, and the
// lock is held for its whole duration, an accepted cost of
// correctness-first design.
//
// Key Responsibilities:
//   - CreateTable / AddColumn / CreateRelationship: schema-change events,
//     each followed by (re-)classification and validator attachment
//   - Insert / Update / Delete: staged, validated, event-sourced mutations
//   - Select: reads over committed state, with PK/unique index shortcuts
//   - Rebuilding state, attachments, and indexes when reopening a data dir
package database
