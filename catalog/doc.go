// Package catalog manages persisted schema metadata: table definitions
// and spatial relationship declarations.
//
// The catalog is the durable side of the attachment machinery. Validator
// hooks themselves live in process memory; what persists is the metadata
// they are derived from, and classification re-runs deterministically over
// it on every load. That keeps attachment idempotent across restarts
// without storing hook identifiers.
//
// Key Responsibilities:
//   - Creating tables and appending columns (schema-change events)
//   - Declaring cross-table spatial relationships after validating that
//     both endpoints are existing geometry columns
//   - Persisting everything as a single JSON document in the data dir
//
// Geometry column domains are immutable once assigned: the catalog offers
// no operation that alters an existing column.
package catalog
