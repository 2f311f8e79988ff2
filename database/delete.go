package database

import (
	"github.com/google/uuid"

	"geodb/parser"
	"geodb/storage"
	"geodb/trigger"
)

// Delete deletes matching rows from a table. Deletions are validated like
// every other mutation: removing a row can break a cross-table invariant
// (a node referenced by arcs, the only contained row of a container), and
// such a statement is rejected whole.
func (db *Database) Delete(tableName string, where *parser.WhereClause) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.catalog.GetTable(tableName); err != nil {
		return 0, err
	}
	rows, err := db.state.Rows(tableName)
	if err != nil {
		return 0, err
	}

	view := storage.NewStagedView(db.state, tableName)
	var doomed []storage.RowWithID
	for _, r := range rows {
		if matchesWhere(r.Row, where) {
			view.StageDelete(r.ID)
			doomed = append(doomed, r)
		}
	}
	if len(doomed) == 0 {
		return 0, nil
	}

	if err := db.dispatcher.StatementCompleted(view, tableName, trigger.StatementDelete); err != nil {
		return 0, err
	}

	txID := uuid.NewString()
	for _, r := range doomed {
		if _, err := db.eventStore.RecordRowDeleted(tableName, r.ID, r.Row, txID); err != nil {
			return 0, err
		}
		db.state.ApplyDelete(tableName, r.ID)

		for colName, idx := range db.indexes[tableName] {
			if val, exists := r.Row[colName]; exists {
				idx.Remove(val, r.ID)
			}
		}
	}
	return len(doomed), nil
}
