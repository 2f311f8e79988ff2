package schema

// ColumnType represents supported data types
type ColumnType string

const (
	TypeInt      ColumnType = "INT"
	TypeText     ColumnType = "TEXT"
	TypeBool     ColumnType = "BOOL"
	TypeGeometry ColumnType = "GEOMETRY"
)

// Column defines a table column.
//
// Geometry columns carry the declared OMT-G domain (e.g. "ISOLINE", "TIN")
// in Domain; the classifier maps it to a conceptual class. A column's
// domain is immutable after creation.
type Column struct {
	Name       string     `json:"name"`
	Type       ColumnType `json:"type"`
	Domain     string     `json:"domain,omitempty"`
	PrimaryKey bool       `json:"primary_key,omitempty"`
	Unique     bool       `json:"unique,omitempty"`
}

// Table holds table metadata
type Table struct {
	Name       string   `json:"name"`
	Columns    []Column `json:"columns"`
	PrimaryKey string   `json:"primary_key,omitempty"`
}

// Column returns the named column, if present
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}
