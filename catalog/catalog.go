package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"geodb/schema"
)

// Catalog manages table schemas and spatial relationship declarations
type Catalog struct {
	tables        map[string]*schema.Table
	relationships map[string]*schema.Relationship
	dataDir       string
}

// contents is the on-disk shape of the catalog
type contents struct {
	Tables        map[string]*schema.Table        `json:"tables"`
	Relationships map[string]*schema.Relationship `json:"relationships,omitempty"`
}

// New creates a catalog, loading any persisted state from dataDir
func New(dataDir string) (*Catalog, error) {
	c := &Catalog{
		tables:        make(map[string]*schema.Table),
		relationships: make(map[string]*schema.Relationship),
		dataDir:       dataDir,
	}

	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) catalogFile() string {
	return filepath.Join(c.dataDir, "_catalog.json")
}

// load loads persisted schemas from disk
func (c *Catalog) load() error {
	path := c.catalogFile()

	// Missing catalog means a fresh database
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var stored contents
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("corrupt catalog: %w", err)
	}

	if stored.Tables != nil {
		c.tables = stored.Tables
	}
	if stored.Relationships != nil {
		c.relationships = stored.Relationships
	}
	return nil
}

// save persists schemas to disk
func (c *Catalog) save() error {
	data, err := json.MarshalIndent(contents{
		Tables:        c.tables,
		Relationships: c.relationships,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.catalogFile(), data, 0644)
}

// CreateTable creates a new table
func (c *Catalog) CreateTable(tableName string, columns []schema.Column) (*schema.Table, error) {
	if _, exists := c.tables[tableName]; exists {
		return nil, fmt.Errorf("table '%s' already exists", tableName)
	}

	table := &schema.Table{Name: tableName, Columns: columns}
	for _, col := range columns {
		if col.PrimaryKey {
			table.PrimaryKey = col.Name
			break
		}
	}

	c.tables[tableName] = table
	if err := c.save(); err != nil {
		delete(c.tables, tableName)
		return nil, err
	}
	return table, nil
}

// AddColumn appends a column to an existing table (the 'alter'
// schema-change kind). Existing column definitions never change: a
// geometry column's domain is immutable once assigned.
func (c *Catalog) AddColumn(tableName string, column schema.Column) (*schema.Table, error) {
	table, exists := c.tables[tableName]
	if !exists {
		return nil, fmt.Errorf("table '%s' does not exist", tableName)
	}
	if _, dup := table.Column(column.Name); dup {
		return nil, fmt.Errorf("column '%s' already exists in table '%s'", column.Name, tableName)
	}

	table.Columns = append(table.Columns, column)
	if err := c.save(); err != nil {
		table.Columns = table.Columns[:len(table.Columns)-1]
		return nil, err
	}
	return table, nil
}

// CreateRelationship declares a cross-table spatial constraint. Both
// tables and geometry columns must already exist.
func (c *Catalog) CreateRelationship(rel schema.Relationship) error {
	if _, exists := c.relationships[rel.Name]; exists {
		return fmt.Errorf("relationship '%s' already exists", rel.Name)
	}
	for _, ref := range []struct{ table, column string }{
		{rel.PrimaryTable, rel.PrimaryColumn},
		{rel.SecondaryTable, rel.SecondaryColumn},
	} {
		table, exists := c.tables[ref.table]
		if !exists {
			return fmt.Errorf("table '%s' does not exist", ref.table)
		}
		col, exists := table.Column(ref.column)
		if !exists {
			return fmt.Errorf("column '%s' does not exist in table '%s'", ref.column, ref.table)
		}
		if col.Type != schema.TypeGeometry {
			return fmt.Errorf("column '%s.%s' is not a geometry column", ref.table, ref.column)
		}
	}

	stored := rel
	c.relationships[rel.Name] = &stored
	if err := c.save(); err != nil {
		delete(c.relationships, rel.Name)
		return err
	}
	return nil
}

// GetTable retrieves a table schema
func (c *Catalog) GetTable(tableName string) (*schema.Table, error) {
	table, exists := c.tables[tableName]
	if !exists {
		return nil, fmt.Errorf("table '%s' does not exist", tableName)
	}
	return table, nil
}

// TableExists checks if a table exists
func (c *Catalog) TableExists(tableName string) bool {
	_, exists := c.tables[tableName]
	return exists
}

// Tables returns every table schema
func (c *Catalog) Tables() []*schema.Table {
	out := make([]*schema.Table, 0, len(c.tables))
	for _, t := range c.tables {
		out = append(out, t)
	}
	return out
}

// Relationships returns every declared spatial relationship
func (c *Catalog) Relationships() []schema.Relationship {
	out := make([]schema.Relationship, 0, len(c.relationships))
	for _, r := range c.relationships {
		out = append(out, *r)
	}
	return out
}
