// Package rules implements the topological integrity validators and the
// fixed rule catalog that maps each OMT-G conceptual class to one of them.
//
// A validator receives the table and column(s) it governs (the Binding),
// an isolated View of the mutating statement's proposed state, and the
// geometry Predicates contract. It returns the violations it found; any
// violation aborts the triggering statement.
//
// Catalog (one rule per class, fixed):
//   - Isoline: no two rows' geometries may intersect at all
//   - PlanarSubdivision: row pairs are disjoint or touching, never
//     overlapping in area
//   - TIN: planar-subdivision topology plus triangular cells
//   - Sample: no two rows intersect (stricter than touching)
//   - Containment (cross-table): every container row contains at least
//     one contained row
//   - ArcNodeNetwork (cross-table): arc endpoints coincide with nodes,
//     and arcs never leave a node unreferenced
//
// Validators scan the full governed extent pairwise. That is the
// correctness-first baseline: slow on large tables, but it can never miss
// a true violation. A predicate evaluation failure (malformed geometry)
// is returned as an error, not a violation, and aborts the statement.
package rules
