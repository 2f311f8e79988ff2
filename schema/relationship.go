package schema

import "fmt"

// RelationshipKind identifies a cross-table spatial constraint
type RelationshipKind string

const (
	// KindContainment: every row of the primary (container) table must
	// contain at least one row of the secondary (contained) table
	KindContainment RelationshipKind = "CONTAINMENT"
	// KindArcNode: every segment endpoint in the primary (arc) table must
	// coincide with a row of the secondary (node) table, and every node
	// must be referenced by at least one arc
	KindArcNode RelationshipKind = "ARCNODE"
)

// Relationship declares a directional spatial constraint between a
// geometry column of a primary table and one of a secondary table
type Relationship struct {
	Name            string           `json:"name"`
	Kind            RelationshipKind `json:"kind"`
	PrimaryTable    string           `json:"primary_table"`
	PrimaryColumn   string           `json:"primary_column"`
	SecondaryTable  string           `json:"secondary_table"`
	SecondaryColumn string           `json:"secondary_column"`
}

// ParseRelationshipKind maps a declared kind to its enum value
func ParseRelationshipKind(s string) (RelationshipKind, error) {
	switch RelationshipKind(s) {
	case KindContainment:
		return KindContainment, nil
	case KindArcNode:
		return KindArcNode, nil
	default:
		return "", fmt.Errorf("unknown relationship kind %q", s)
	}
}
