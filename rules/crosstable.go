package rules

import (
	"fmt"

	"geodb/geom"
)

// ValidateContainment asserts the directional containment relationship:
// every row of the container (primary) table must contain at least one row
// of the contained (secondary) table. Containment is boundary-inclusive.
func ValidateContainment(view View, b Binding, p Predicates) ([]Violation, error) {
	containers, err := geometries(view, b.Table, b.Column)
	if err != nil {
		return nil, err
	}
	contained, err := geometries(view, b.SecondaryTable, b.SecondaryColumn)
	if err != nil {
		return nil, err
	}

	var violations []Violation
	for _, c := range containers {
		found := false
		for _, inner := range contained {
			ok, err := p.Contains(c.G, inner.G)
			if err != nil {
				return nil, err
			}
			if ok {
				found = true
				break
			}
		}
		if !found {
			violations = append(violations, Violation{
				Rule: RuleContainment,
				Detail: fmt.Sprintf("row %d of %s.%s contains no row of %s.%s",
					c.ID, b.Table, b.Column, b.SecondaryTable, b.SecondaryColumn),
			})
		}
	}
	return violations, nil
}

// ValidateArcNodeNetwork asserts referential coincidence between arcs and
// nodes when the arc (primary) table mutates: every endpoint of every arc
// must coincide with a node (secondary), and no arc mutation may leave a
// node unreferenced.
func ValidateArcNodeNetwork(view View, b Binding, p Predicates) ([]Violation, error) {
	violations, referenced, nodes, err := checkArcEndpoints(view, b)
	if err != nil {
		return nil, err
	}

	for _, node := range nodes {
		if !referenced[node.ID] {
			violations = append(violations, Violation{
				Rule: RuleNodesReferenced,
				Detail: fmt.Sprintf("node %d of %s.%s is referenced by no arc in %s.%s",
					node.ID, b.SecondaryTable, b.SecondaryColumn, b.Table, b.Column),
			})
		}
	}
	return violations, nil
}

// ValidateArcEndpoints is the node-side half of the arc-node constraint:
// a mutation of the node (secondary) table must not leave any arc endpoint
// dangling. It deliberately omits the unreferenced-node check so that a
// node may be inserted before the arcs that will reference it.
func ValidateArcEndpoints(view View, b Binding, p Predicates) ([]Violation, error) {
	violations, _, _, err := checkArcEndpoints(view, b)
	return violations, err
}

func checkArcEndpoints(view View, b Binding) ([]Violation, map[int64]bool, []rowGeom, error) {
	arcs, err := geometries(view, b.Table, b.Column)
	if err != nil {
		return nil, nil, nil, err
	}
	nodes, err := geometries(view, b.SecondaryTable, b.SecondaryColumn)
	if err != nil {
		return nil, nil, nil, err
	}

	var violations []Violation
	referenced := make(map[int64]bool, len(nodes))

	for _, arc := range arcs {
		if arc.G.Kind != geom.KindLine {
			return nil, nil, nil, fmt.Errorf("row %d of %s.%s: arc must be a LINESTRING, got %s",
				arc.ID, b.Table, b.Column, arc.G.Kind)
		}
		for _, end := range []geom.Point{arc.G.Coords[0], arc.G.Coords[len(arc.G.Coords)-1]} {
			matched := false
			for _, node := range nodes {
				if node.G.Kind == geom.KindPoint && node.G.Coords[0] == end {
					referenced[node.ID] = true
					matched = true
				}
			}
			if !matched {
				violations = append(violations, Violation{
					Rule: RuleArcEndpoints,
					Detail: fmt.Sprintf("arc %d of %s.%s has endpoint (%g %g) with no coincident node in %s.%s",
						arc.ID, b.Table, b.Column, end.X, end.Y, b.SecondaryTable, b.SecondaryColumn),
				})
			}
		}
	}
	return violations, referenced, nodes, nil
}
