// Package schema provides type definitions for database schemas.
//
// The schema package defines the data structures used throughout the
// database to represent tables, columns, and spatial relationships. It
// provides type-safe definitions for column types, primary keys, and the
// declared OMT-G domains of geometry columns.
//
// Key Types:
//   - ColumnType: supported data types (INT, TEXT, BOOL, GEOMETRY)
//   - Column: column definition with name, type, constraints, and the
//     declared spatial domain for geometry columns
//   - Table: table metadata including name, columns, and primary key
//   - Relationship: a declared cross-table spatial constraint
//     (CONTAINMENT or ARCNODE) between two geometry columns
//
// A geometry column's domain names the conceptual class of the phenomena
// it stores (ISOLINE, PLANAR_SUBDIVISION, TIN, SAMPLE, ...). The omtg
// package owns the mapping from domain names to conceptual classes; this
// package only carries the declaration.
//
// Usage Example:
//
//	columns := []schema.Column{
//		{Name: "id", Type: schema.TypeInt, PrimaryKey: true},
//		{Name: "elev", Type: schema.TypeInt},
//		{Name: "shape", Type: schema.TypeGeometry, Domain: "ISOLINE"},
//	}
//	table := &schema.Table{Name: "contours", Columns: columns, PrimaryKey: "id"}
//
// The schema package is used by virtually all other packages in the
// system. It is the foundation for catalog management, classification,
// and constraint attachment.
package schema
