package trigger

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geodb/geom"
	"geodb/omtg"
	"geodb/rules"
	"geodb/schema"
	"geodb/storage"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newDispatcher() *Dispatcher {
	return NewDispatcher(rules.NewRegistry(), geom.NewProvider(), quietLogger())
}

type tableView map[string][]storage.RowWithID

func (v tableView) Rows(table string) ([]storage.RowWithID, error) {
	return v[table], nil
}

func TestAttachmentIsIdempotent(t *testing.T) {
	d := newDispatcher()

	id1, ok := d.EnsureAttached("contours", omtg.ClassIsoline, "shape")
	require.True(t, ok)
	require.NotEmpty(t, id1)

	id2, ok := d.EnsureAttached("contours", omtg.ClassIsoline, "shape")
	require.True(t, ok)
	assert.Equal(t, id1, id2, "re-attachment must return the existing hook")
	assert.Equal(t, 1, d.HookCount("contours"))
}

func TestAttachmentSkipsUnsupportedClasses(t *testing.T) {
	d := newDispatcher()

	_, ok := d.EnsureAttached("mosaics", omtg.ClassTesselation, "shape")
	assert.False(t, ok)
	assert.Equal(t, 0, d.HookCount("mosaics"))

	_, ok = d.EnsureAttached("routes", omtg.ClassBiline, "path")
	assert.False(t, ok)
}

func TestTableChangedClassifiesAndAttaches(t *testing.T) {
	d := newDispatcher()
	table := &schema.Table{
		Name: "contours",
		Columns: []schema.Column{
			{Name: "id", Type: schema.TypeInt, PrimaryKey: true},
			{Name: "shape", Type: schema.TypeGeometry, Domain: "ISOLINE"},
			{Name: "aura", Type: schema.TypeGeometry, Domain: "NIMBUS"},
		},
	}

	d.TableChanged(table)
	assert.Equal(t, 1, d.HookCount("contours"))

	// Re-running the schema-change event must not duplicate hooks
	d.TableChanged(table)
	assert.Equal(t, 1, d.HookCount("contours"))
}

func TestStatementCompletedAbortsOnViolation(t *testing.T) {
	d := newDispatcher()
	d.EnsureAttached("contours", omtg.ClassIsoline, "shape")

	clean := tableView{"contours": {
		{ID: 1, Row: storage.Row{"shape": "LINESTRING (0 0, 1 0)"}},
		{ID: 2, Row: storage.Row{"shape": "LINESTRING (0 1, 1 1)"}},
	}}
	require.NoError(t, d.StatementCompleted(clean, "contours", StatementInsert))

	crossing := tableView{"contours": {
		{ID: 1, Row: storage.Row{"shape": "LINESTRING (0 0, 2 2)"}},
		{ID: 2, Row: storage.Row{"shape": "LINESTRING (0 2, 2 0)"}},
	}}
	err := d.StatementCompleted(crossing, "contours", StatementInsert)
	require.Error(t, err)

	var violation *rules.ViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, rules.IntegrityViolationCode, violation.Code)
	assert.Equal(t, rules.RuleIsoline, violation.Rule)
}

func TestStatementCompletedIgnoresUnattachedTables(t *testing.T) {
	d := newDispatcher()
	view := tableView{"plain": {{ID: 1, Row: storage.Row{"n": 1.0}}}}
	assert.NoError(t, d.StatementCompleted(view, "plain", StatementInsert))
}

func TestPredicateFailureIsFatal(t *testing.T) {
	d := newDispatcher()
	d.EnsureAttached("contours", omtg.ClassIsoline, "shape")

	bad := tableView{"contours": {
		{ID: 1, Row: storage.Row{"shape": "LINESTRING (0 0, 1 1)"}},
		{ID: 2, Row: storage.Row{"shape": "not geometry"}},
	}}
	err := d.StatementCompleted(bad, "contours", StatementInsert)
	require.Error(t, err)

	var violation *rules.ViolationError
	assert.False(t, errors.As(err, &violation), "predicate failures are not violations")
}

func TestAttachRelationshipBindsBothTables(t *testing.T) {
	d := newDispatcher()
	rel := schema.Relationship{
		Name:            "net",
		Kind:            schema.KindArcNode,
		PrimaryTable:    "arcs",
		PrimaryColumn:   "path",
		SecondaryTable:  "nodes",
		SecondaryColumn: "site",
	}
	require.NoError(t, d.AttachRelationship(rel))
	assert.Equal(t, 1, d.HookCount("arcs"))
	assert.Equal(t, 1, d.HookCount("nodes"))

	// Node first, then arc: node-side insert passes with an orphan node
	nodeOnly := tableView{
		"arcs":  nil,
		"nodes": {{ID: 1, Row: storage.Row{"site": "POINT (0 0)"}}},
	}
	assert.NoError(t, d.StatementCompleted(nodeOnly, "nodes", StatementInsert))

	// Arc with a dangling endpoint is rejected
	dangling := tableView{
		"arcs":  {{ID: 1, Row: storage.Row{"path": "LINESTRING (0 0, 9 9)"}}},
		"nodes": {{ID: 1, Row: storage.Row{"site": "POINT (0 0)"}}},
	}
	err := d.StatementCompleted(dangling, "arcs", StatementInsert)
	var violation *rules.ViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, rules.RuleArcEndpoints, violation.Rule)

	require.NoError(t, d.AttachRelationship(rel))
	assert.Equal(t, 1, d.HookCount("arcs"), "relationship re-attachment is a no-op")
}

func TestDistinctRelationshipsOverSameColumnsBothAttach(t *testing.T) {
	d := newDispatcher()

	first := schema.Relationship{
		Name:            "lots_in_blocks",
		Kind:            schema.KindContainment,
		PrimaryTable:    "blocks",
		PrimaryColumn:   "shape",
		SecondaryTable:  "lots",
		SecondaryColumn: "shape",
	}
	require.NoError(t, d.AttachRelationship(first))
	assert.Equal(t, 1, d.HookCount("blocks"))

	// Same primary (table, class, column), different secondary: a distinct
	// constraint that must be enforced alongside the first
	second := first
	second.Name = "parks_in_blocks"
	second.SecondaryTable = "parks"
	require.NoError(t, d.AttachRelationship(second))
	assert.Equal(t, 2, d.HookCount("blocks"))
	assert.Equal(t, 1, d.HookCount("parks"))

	// A block containing a lot but no park violates only the second
	view := tableView{
		"blocks": {{ID: 1, Row: storage.Row{"shape": "POLYGON ((0 0, 4 0, 4 4, 0 4))"}}},
		"lots":   {{ID: 1, Row: storage.Row{"shape": "POLYGON ((1 1, 2 1, 2 2, 1 2))"}}},
		"parks":  nil,
	}
	err := d.StatementCompleted(view, "blocks", StatementInsert)
	var violation *rules.ViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, rules.RuleContainment, violation.Rule)
	assert.Contains(t, violation.Detail, "parks")

	// Re-declaring either relationship is still a no-op
	require.NoError(t, d.AttachRelationship(second))
	assert.Equal(t, 2, d.HookCount("blocks"))
}
