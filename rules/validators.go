package rules

import (
	"fmt"
)

// Rule names surfaced in violation reports
const (
	RuleIsoline           = "isolines_disjoint"
	RulePlanarSubdivision = "planar_subdivision_no_overlap"
	RuleTINTopology       = "tin_no_overlap"
	RuleTINTriangles      = "tin_triangular_cells"
	RuleSample            = "samples_distinct"
	RuleContainment       = "containment"
	RuleArcEndpoints      = "arc_endpoints_on_nodes"
	RuleNodesReferenced   = "nodes_referenced_by_arcs"
)

// ValidateIsolines asserts that no two isolines share any point: every
// unordered row pair must be fully disjoint.
func ValidateIsolines(view View, b Binding, p Predicates) ([]Violation, error) {
	rows, err := geometries(view, b.Table, b.Column)
	if err != nil {
		return nil, err
	}

	var violations []Violation
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			dis, err := p.Disjoint(rows[i].G, rows[j].G)
			if err != nil {
				return nil, err
			}
			if !dis {
				violations = append(violations, Violation{
					Rule: RuleIsoline,
					Detail: fmt.Sprintf("isolines %d and %d of %s.%s intersect",
						rows[i].ID, rows[j].ID, b.Table, b.Column),
				})
			}
		}
	}
	return violations, nil
}

// ValidatePlanarSubdivision asserts that polygons of a planar subdivision
// share boundary only: every row pair is either disjoint or touching.
func ValidatePlanarSubdivision(view View, b Binding, p Predicates) ([]Violation, error) {
	return validateNoAreaOverlap(view, b, p, RulePlanarSubdivision)
}

// ValidateTIN asserts planar-subdivision topology plus triangular cells:
// every polygon must have exactly 3 vertices.
func ValidateTIN(view View, b Binding, p Predicates) ([]Violation, error) {
	violations, err := validateNoAreaOverlap(view, b, p, RuleTINTopology)
	if err != nil {
		return nil, err
	}

	rows, err := geometries(view, b.Table, b.Column)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		n, err := p.VertexCount(r.G)
		if err != nil {
			return nil, err
		}
		if n != 3 {
			violations = append(violations, Violation{
				Rule: RuleTINTriangles,
				Detail: fmt.Sprintf("row %d of %s.%s has %d vertices, a TIN cell must be a triangle",
					r.ID, b.Table, b.Column, n),
			})
		}
	}
	return violations, nil
}

func validateNoAreaOverlap(view View, b Binding, p Predicates, rule string) ([]Violation, error) {
	rows, err := geometries(view, b.Table, b.Column)
	if err != nil {
		return nil, err
	}

	var violations []Violation
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			dis, err := p.Disjoint(rows[i].G, rows[j].G)
			if err != nil {
				return nil, err
			}
			if dis {
				continue
			}
			touch, err := p.Touches(rows[i].G, rows[j].G)
			if err != nil {
				return nil, err
			}
			if !touch {
				violations = append(violations, Violation{
					Rule: rule,
					Detail: fmt.Sprintf("polygons %d and %d of %s.%s overlap in area",
						rows[i].ID, rows[j].ID, b.Table, b.Column),
				})
			}
		}
	}
	return violations, nil
}

// ValidateSamples asserts that sample geometries never coincide: any
// intersection at all between two rows is a violation, stricter than a
// mere touching check.
func ValidateSamples(view View, b Binding, p Predicates) ([]Violation, error) {
	rows, err := geometries(view, b.Table, b.Column)
	if err != nil {
		return nil, err
	}

	var violations []Violation
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			hit, err := p.Intersects(rows[i].G, rows[j].G)
			if err != nil {
				return nil, err
			}
			if hit {
				violations = append(violations, Violation{
					Rule: RuleSample,
					Detail: fmt.Sprintf("samples %d and %d of %s.%s coincide",
						rows[i].ID, rows[j].ID, b.Table, b.Column),
				})
			}
		}
	}
	return violations, nil
}
