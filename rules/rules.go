package rules

import (
	"fmt"

	"geodb/geom"
	"geodb/omtg"
	"geodb/storage"
)

// IntegrityViolationCode is the stable error code every constraint
// violation carries
const IntegrityViolationCode = "IntegrityViolation"

// View is the isolated snapshot a validator inspects: the mutating
// statement's own proposed state, table by table
type View interface {
	Rows(table string) ([]storage.RowWithID, error)
}

// Predicates is the geometry predicate contract the validators consume
type Predicates interface {
	Disjoint(a, b geom.Geometry) (bool, error)
	Touches(a, b geom.Geometry) (bool, error)
	Intersects(a, b geom.Geometry) (bool, error)
	Contains(a, b geom.Geometry) (bool, error)
	VertexCount(g geom.Geometry) (int, error)
}

// Binding scopes a validator to the column(s) it governs. Secondary
// fields are set only for cross-table classes.
type Binding struct {
	Class           omtg.Class
	Table           string
	Column          string
	SecondaryTable  string
	SecondaryColumn string
}

// Violation reports one failed invariant. Violations are ephemeral: they
// exist only to abort the triggering statement with a useful message.
type Violation struct {
	Rule   string
	Detail string
}

// Validator asserts one topological invariant over a view. It returns the
// violations it found, or an error if a predicate could not be evaluated
// (which is fatal to the statement, since correctness cannot be asserted
// on unevaluable input).
type Validator func(view View, b Binding, p Predicates) ([]Violation, error)

// ViolationError is the error a rejected statement surfaces
type ViolationError struct {
	Code   string
	Rule   string
	Detail string
}

// Error implements the error interface
func (e *ViolationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Rule, e.Detail)
}

// NewViolationError wraps the first of a validator's violations
func NewViolationError(v Violation) *ViolationError {
	return &ViolationError{Code: IntegrityViolationCode, Rule: v.Rule, Detail: v.Detail}
}

// Registry maps each conceptual class to its validator. One rule per
// class, fixed for the life of the process.
type Registry struct {
	validators map[omtg.Class]Validator
}

// NewRegistry builds the rule catalog. Classes absent from the catalog
// (Tesselation, Uniline, Biline, and the plain geometry classes) have no
// validator yet; attachment for them is silently skipped.
func NewRegistry() *Registry {
	return &Registry{
		validators: map[omtg.Class]Validator{
			omtg.ClassIsoline:           ValidateIsolines,
			omtg.ClassPlanarSubdivision: ValidatePlanarSubdivision,
			omtg.ClassTIN:               ValidateTIN,
			omtg.ClassSample:            ValidateSamples,
			omtg.ClassContainment:       ValidateContainment,
			omtg.ClassArcNodeNetwork:    ValidateArcNodeNetwork,
		},
	}
}

// Lookup returns the validator registered for a class, if any
func (r *Registry) Lookup(c omtg.Class) (Validator, bool) {
	v, ok := r.validators[c]
	return v, ok
}

// rowGeom pairs a row ID with its parsed geometry
type rowGeom struct {
	ID int64
	G  geom.Geometry
}

// geometries loads and parses the geometry column of every row in a
// table. A row whose geometry fails to parse aborts validation: the
// invariant cannot be asserted over unevaluable input.
func geometries(view View, table, column string) ([]rowGeom, error) {
	rows, err := view.Rows(table)
	if err != nil {
		return nil, err
	}

	out := make([]rowGeom, 0, len(rows))
	for _, r := range rows {
		raw, exists := r.Row[column]
		if !exists || raw == nil {
			return nil, fmt.Errorf("row %d of %s: missing geometry in column %q", r.ID, table, column)
		}
		text, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("row %d of %s: geometry column %q holds %T, not text", r.ID, table, column, raw)
		}
		g, err := geom.ParseWKT(text)
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", r.ID, table, err)
		}
		out = append(out, rowGeom{ID: r.ID, G: g})
	}
	return out, nil
}
