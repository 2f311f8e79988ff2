package database

import (
	"geodb/index"
)

// rebuildAllIndexes reconstructs PK/unique indexes from current state
func (db *Database) rebuildAllIndexes() {
	for _, table := range db.catalog.Tables() {
		db.indexes[table.Name] = make(map[string]*index.Index)
		rows, err := db.state.Rows(table.Name)
		if err != nil {
			continue
		}
		for _, col := range table.Columns {
			if !col.PrimaryKey && !col.Unique {
				continue
			}
			idx := index.New(col.Name)
			idx.Rebuild(rows)
			db.indexes[table.Name][col.Name] = idx
		}
	}
}
