package database

import (
	"fmt"

	"geodb/geom"
	"geodb/schema"
	"geodb/storage"
)

// validateRow validates a row against the table schema. Geometry values
// must parse: null, empty, and malformed geometry is rejected at write
// time rather than stored and tripped over during validation.
func validateRow(table *schema.Table, row storage.Row) error {
	for _, col := range table.Columns {
		val, exists := row[col.Name]
		if !exists {
			return fmt.Errorf("missing column: %s", col.Name)
		}
		if err := validateValue(&col, val); err != nil {
			return err
		}
	}

	if len(row) != len(table.Columns) {
		return fmt.Errorf("row has extra columns")
	}
	return nil
}

func validateValue(col *schema.Column, val interface{}) error {
	switch col.Type {
	case schema.TypeInt:
		switch val.(type) {
		case float64, int, int64: // JSON numbers arrive as float64
		default:
			return fmt.Errorf("column '%s' expects INT", col.Name)
		}
	case schema.TypeText:
		if _, ok := val.(string); !ok {
			return fmt.Errorf("column '%s' expects TEXT", col.Name)
		}
	case schema.TypeBool:
		if _, ok := val.(bool); !ok {
			return fmt.Errorf("column '%s' expects BOOL", col.Name)
		}
	case schema.TypeGeometry:
		text, ok := val.(string)
		if !ok {
			return fmt.Errorf("column '%s' expects geometry as WKT text", col.Name)
		}
		if _, err := geom.ParseWKT(text); err != nil {
			return fmt.Errorf("column '%s': %w", col.Name, err)
		}
	}
	return nil
}

// valuesEqual compares values the way the storage layer round-trips them
func valuesEqual(a, b interface{}) bool {
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}
