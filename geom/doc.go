// Package geom provides geometry values and the topological predicates the
// integrity engine is built on.
//
// Geometries are parsed from a WKT subset (POINT, LINESTRING, single-ring
// POLYGON) and held as immutable coordinate slices. The Provider evaluates
// the binary and structural predicates consumed by the validators:
//
//   - Disjoint: no shared point at all
//   - Intersects: at least one shared point
//   - Touches: shared boundary points, no shared interior
//   - Contains: boundary-inclusive containment (covers)
//   - VertexCount: number of distinct vertices
//
// Key Responsibilities:
//   - Parsing and formatting WKT geometry literals
//   - Rejecting null, empty, and malformed geometry at parse time
//   - Evaluating pairwise predicates with plain computational geometry
//     (orientation tests, ray casting, segment intersection)
//
// Usage Example:
//
//	g1, err := geom.ParseWKT("POLYGON ((0 0, 2 0, 2 2, 0 2))")
//	g2, err := geom.ParseWKT("POLYGON ((1 1, 3 1, 3 3, 1 3))")
//	p := geom.NewProvider()
//	overlap, err := p.Intersects(g1, g2) // true
//
// Predicate evaluation never guesses: malformed input yields an error, and
// callers abort the enclosing statement since correctness cannot be
// asserted on unevaluable geometry.
package geom
