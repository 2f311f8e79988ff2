package database

import (
	"geodb/parser"
	"geodb/storage"
)

// Select retrieves rows from a table, optionally filtered by a WHERE
// clause. Reads see committed state only; they never trigger validation.
func (db *Database) Select(tableName string, where *parser.WhereClause) ([]storage.Row, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.state.Rows(tableName)
	if err != nil {
		return nil, err
	}

	// Indexed equality lookups skip the scan
	if where != nil {
		if idx, exists := db.indexes[tableName][where.Column]; exists {
			ids, found := idx.Lookup(where.Value)
			if !found {
				return []storage.Row{}, nil
			}
			out := make([]storage.Row, 0, len(ids))
			for _, id := range ids {
				if row, ok := db.state.Row(tableName, id); ok {
					out = append(out, row)
				}
			}
			return out, nil
		}
	}

	out := make([]storage.Row, 0, len(rows))
	for _, r := range rows {
		if matchesWhere(r.Row, where) {
			out = append(out, r.Row)
		}
	}
	return out, nil
}
