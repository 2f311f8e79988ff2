package storage

import (
	"fmt"
	"sort"

	"geodb/eventlog"
)

// State is the current committed database state, derived by replaying the
// event log. It is owned by the database layer and mutated only after a
// statement's validation verdict is clean.
type State struct {
	tables map[string]map[int64]Row
}

// NewState creates an empty state
func NewState() *State {
	return &State{tables: make(map[string]map[int64]Row)}
}

// EnsureTable registers a table in the state
func (s *State) EnsureTable(table string) {
	if _, exists := s.tables[table]; !exists {
		s.tables[table] = make(map[int64]Row)
	}
}

// HasTable reports whether the state knows the table
func (s *State) HasTable(table string) bool {
	_, exists := s.tables[table]
	return exists
}

// Rows returns the active rows of a table in row-ID order
func (s *State) Rows(table string) ([]RowWithID, error) {
	rows, exists := s.tables[table]
	if !exists {
		return nil, fmt.Errorf("table '%s' does not exist", table)
	}
	out := make([]RowWithID, 0, len(rows))
	for id, row := range rows {
		out = append(out, RowWithID{ID: id, Row: row})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Row returns a single row by ID
func (s *State) Row(table string, rowID int64) (Row, bool) {
	rows, exists := s.tables[table]
	if !exists {
		return nil, false
	}
	row, ok := rows[rowID]
	return row, ok
}

// ApplyInsert adds a row to the committed state
func (s *State) ApplyInsert(table string, rowID int64, row Row) {
	s.EnsureTable(table)
	s.tables[table][rowID] = row
}

// ApplyUpdate merges changed columns into an existing row
func (s *State) ApplyUpdate(table string, rowID int64, changes Row) {
	s.EnsureTable(table)
	row, exists := s.tables[table][rowID]
	if !exists {
		row = make(Row)
	}
	next := row.Clone()
	for k, v := range changes {
		next[k] = v
	}
	s.tables[table][rowID] = next
}

// ApplyDelete removes a row from the committed state
func (s *State) ApplyDelete(table string, rowID int64) {
	if rows, exists := s.tables[table]; exists {
		delete(rows, rowID)
	}
}

// MaxRowID returns the highest row ID ever observed for a table
func (s *State) MaxRowID(table string) int64 {
	var max int64
	for id := range s.tables[table] {
		if id > max {
			max = id
		}
	}
	return max
}

// StateFromEvents rebuilds state by replaying the event log in order.
// Replay is deterministic: the same log always yields the same state.
func StateFromEvents(events []*eventlog.Event) (*State, error) {
	s := NewState()
	for _, e := range events {
		switch e.Type {
		case eventlog.TableCreated:
			var p eventlog.TableCreatedPayload
			if err := e.DecodePayload(&p); err != nil {
				return nil, fmt.Errorf("replay event %d: %w", e.ID, err)
			}
			s.EnsureTable(p.Table.Name)

		case eventlog.RowInserted:
			var p eventlog.RowInsertedPayload
			if err := e.DecodePayload(&p); err != nil {
				return nil, fmt.Errorf("replay event %d: %w", e.ID, err)
			}
			s.ApplyInsert(p.TableName, p.RowID, Row(p.Data))

		case eventlog.RowUpdated:
			var p eventlog.RowUpdatedPayload
			if err := e.DecodePayload(&p); err != nil {
				return nil, fmt.Errorf("replay event %d: %w", e.ID, err)
			}
			s.ApplyUpdate(p.TableName, p.RowID, Row(p.Changes))

		case eventlog.RowDeleted:
			var p eventlog.RowDeletedPayload
			if err := e.DecodePayload(&p); err != nil {
				return nil, fmt.Errorf("replay event %d: %w", e.ID, err)
			}
			s.ApplyDelete(p.TableName, p.RowID)

		case eventlog.ColumnAdded, eventlog.RelationshipCreated:
			// Schema metadata lives in the catalog; nothing to replay here
		}
	}
	return s, nil
}
