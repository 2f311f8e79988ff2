package database

import (
	"fmt"

	"github.com/google/uuid"

	"geodb/index"
	"geodb/schema"
)

// CreateTable creates a new table and attaches validators to every
// classified geometry column
func (db *Database) CreateTable(tableName string, columns []schema.Column) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	table, err := db.catalog.CreateTable(tableName, columns)
	if err != nil {
		return err
	}
	if _, err := db.eventStore.RecordTableCreated(*table, uuid.NewString()); err != nil {
		return err
	}

	db.state.EnsureTable(tableName)
	db.nextRowID[tableName] = 1
	db.dispatcher.TableChanged(table)

	db.indexes[tableName] = make(map[string]*index.Index)
	for _, col := range columns {
		if col.PrimaryKey || col.Unique {
			db.indexes[tableName][col.Name] = index.New(col.Name)
		}
	}
	return nil
}

// AddColumn appends a column to an existing table and re-runs
// classification over the altered schema.
//
// A geometry column may only be added to an empty table: rows inserted
// under the old schema have no value for it, and the attached validator
// would reject every subsequent statement.
func (db *Database) AddColumn(tableName string, column schema.Column) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if column.Type == schema.TypeGeometry {
		rows, err := db.state.Rows(tableName)
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			return fmt.Errorf("cannot add geometry column '%s' to non-empty table '%s'", column.Name, tableName)
		}
	}

	table, err := db.catalog.AddColumn(tableName, column)
	if err != nil {
		return err
	}
	if _, err := db.eventStore.RecordColumnAdded(tableName, column, uuid.NewString()); err != nil {
		return err
	}

	db.dispatcher.TableChanged(table)

	if column.PrimaryKey || column.Unique {
		if db.indexes[tableName] == nil {
			db.indexes[tableName] = make(map[string]*index.Index)
		}
		db.indexes[tableName][column.Name] = index.New(column.Name)
	}
	return nil
}

// CreateRelationship declares a cross-table spatial constraint and
// attaches its validator to both tables. Enforcement begins with the next
// mutating statement on either table.
func (db *Database) CreateRelationship(rel schema.Relationship) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := schema.ParseRelationshipKind(string(rel.Kind)); err != nil {
		return err
	}
	if err := db.catalog.CreateRelationship(rel); err != nil {
		return err
	}
	if _, err := db.eventStore.RecordRelationshipCreated(rel, uuid.NewString()); err != nil {
		return err
	}
	return db.dispatcher.AttachRelationship(rel)
}

// GetTable retrieves a table schema
func (db *Database) GetTable(tableName string) (*schema.Table, error) {
	return db.catalog.GetTable(tableName)
}

// Tables lists all table schemas
func (db *Database) Tables() []*schema.Table {
	return db.catalog.Tables()
}

// Relationships lists all declared spatial relationships
func (db *Database) Relationships() []schema.Relationship {
	return db.catalog.Relationships()
}
