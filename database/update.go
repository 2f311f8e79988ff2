package database

import (
	"fmt"

	"github.com/google/uuid"

	"geodb/parser"
	"geodb/storage"
	"geodb/trigger"
)

// Update updates matching rows in a table. The whole statement is staged
// and validated as one unit (statement granularity, not row granularity)
// and commits all of its row events under a single transaction ID, or none.
func (db *Database) Update(tableName string, setColumn string, setValue interface{}, where *parser.WhereClause) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	table, err := db.catalog.GetTable(tableName)
	if err != nil {
		return 0, err
	}
	col, exists := table.Column(setColumn)
	if !exists {
		return 0, fmt.Errorf("column '%s' does not exist in table '%s'", setColumn, tableName)
	}
	if err := validateValue(col, setValue); err != nil {
		return 0, err
	}

	rows, err := db.state.Rows(tableName)
	if err != nil {
		return 0, err
	}

	view := storage.NewStagedView(db.state, tableName)
	var touched []storage.RowWithID
	for _, r := range rows {
		if !matchesWhere(r.Row, where) {
			continue
		}
		updated := r.Row.Clone()
		updated[setColumn] = setValue
		view.StageUpdate(r.ID, updated)
		touched = append(touched, storage.RowWithID{ID: r.ID, Row: r.Row})
	}
	if len(touched) == 0 {
		return 0, nil
	}

	if err := db.dispatcher.StatementCompleted(view, tableName, trigger.StatementUpdate); err != nil {
		return 0, err
	}

	txID := uuid.NewString()
	for _, r := range touched {
		changes := storage.Row{setColumn: setValue}
		old := storage.Row{setColumn: r.Row[setColumn]}
		if _, err := db.eventStore.RecordRowUpdated(tableName, r.ID, changes, old, txID); err != nil {
			return 0, err
		}
		db.state.ApplyUpdate(tableName, r.ID, changes)

		if idx, indexed := db.indexes[tableName][setColumn]; indexed {
			idx.Remove(r.Row[setColumn], r.ID)
			idx.Add(setValue, r.ID)
		}
	}
	return len(touched), nil
}

// matchesWhere reports whether a row satisfies the WHERE clause (nil
// matches everything)
func matchesWhere(row storage.Row, where *parser.WhereClause) bool {
	if where == nil {
		return true
	}
	val, exists := row[where.Column]
	return exists && valuesEqual(val, where.Value)
}
