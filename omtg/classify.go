package omtg

import (
	"geodb/schema"
)

// GeometryColumn classifies exactly one geometry column of a table.
// The class never changes after assignment.
type GeometryColumn struct {
	Table  string
	Column string
	Class  Class
}

// Classify inspects a table's column metadata and returns one
// GeometryColumn per geometry column whose declared domain names a known
// conceptual class. Columns with unrecognized domains are reported in
// skipped so the caller can log them; they are never an error.
//
// Classification is a pure metadata walk: no geometry is scanned, and the
// result is the same on every re-run for an unchanged table, so it is safe
// to invoke on every schema-change event.
func Classify(table *schema.Table) (cols []GeometryColumn, skipped []string) {
	for _, col := range table.Columns {
		if col.Type != schema.TypeGeometry {
			continue
		}
		// A bare GEOMETRY column carries no domain: it is deliberately
		// unclassified and attaches no constraints.
		if col.Domain == "" {
			continue
		}
		class, ok := ParseClass(col.Domain)
		if !ok {
			skipped = append(skipped, col.Name)
			continue
		}
		cols = append(cols, GeometryColumn{
			Table:  table.Name,
			Column: col.Name,
			Class:  class,
		})
	}
	return cols, skipped
}
