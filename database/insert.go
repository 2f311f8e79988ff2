package database

import (
	"fmt"

	"github.com/google/uuid"

	"geodb/storage"
	"geodb/trigger"
)

// Insert inserts a row into a table. The insert is staged, every attached
// validator runs against the staged view, and only a clean verdict
// reaches the event log: a rejected insert leaves no trace.
func (db *Database) Insert(tableName string, row storage.Row) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	table, err := db.catalog.GetTable(tableName)
	if err != nil {
		return 0, err
	}
	if err := validateRow(table, row); err != nil {
		return 0, err
	}

	// Primary key uniqueness
	if table.PrimaryKey != "" {
		if idx, exists := db.indexes[tableName][table.PrimaryKey]; exists {
			if idx.Exists(row[table.PrimaryKey]) {
				return 0, fmt.Errorf("primary key violation: duplicate value '%v'", row[table.PrimaryKey])
			}
		}
	}

	// Unique constraints
	for _, col := range table.Columns {
		if col.Unique && !col.PrimaryKey {
			if idx, exists := db.indexes[tableName][col.Name]; exists {
				if idx.Exists(row[col.Name]) {
					return 0, fmt.Errorf("unique constraint violation on column '%s'", col.Name)
				}
			}
		}
	}

	rowID := db.nextRowIDFor(tableName)

	view := storage.NewStagedView(db.state, tableName)
	view.StageInsert(rowID, row)
	if err := db.dispatcher.StatementCompleted(view, tableName, trigger.StatementInsert); err != nil {
		return 0, err
	}

	if _, err := db.eventStore.RecordRowInserted(tableName, rowID, row, uuid.NewString()); err != nil {
		return 0, err
	}

	db.state.ApplyInsert(tableName, rowID, row)
	db.nextRowID[tableName] = rowID + 1

	for colName, idx := range db.indexes[tableName] {
		if val, exists := row[colName]; exists {
			idx.Add(val, rowID)
		}
	}
	return rowID, nil
}

func (db *Database) nextRowIDFor(tableName string) int64 {
	id := db.nextRowID[tableName]
	if id == 0 {
		id = db.state.MaxRowID(tableName) + 1
	}
	return id
}
