// Package omtg defines the closed taxonomy of OMT-G conceptual classes and
// the schema classifier that assigns them to geometry columns.
//
// OMT-G is a conceptual spatial data model: each class of geographic
// phenomena (isolines, planar subdivisions, TINs, point samples, networks)
// carries its own topological integrity rules. This package owns only the
// taxonomy and the classification step; the rules package owns the
// validators, and the trigger package owns their attachment.
//
// Key Types:
//   - Class: tagged-variant enumeration over the fixed class set
//   - GeometryColumn: (table, column, class), the classifier's output
//
// Classification inspects declared column domains only. Unrecognized
// domains are skipped, not rejected, so catalogs written by newer versions
// stay loadable.
package omtg
