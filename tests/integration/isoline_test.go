package integration

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geodb/rules"
	"geodb/tests"
)

// Isolines must be pairwise disjoint. A statement that breaks the invariant
// is rejected and leaves the table untouched.
func TestIsolineInsertDisjointAccepted(t *testing.T) {
	tdb := tests.NewTestDB(t)
	tdb.CreateSpatialTable("contours", "shape", "ISOLINE")

	tdb.MustInsertGeometry("contours", "shape", 1, "LINESTRING (0 0, 1 0, 2 0)")
	tdb.MustInsertGeometry("contours", "shape", 2, "LINESTRING (0 1, 1 1, 2 1)")

	assert.Equal(t, 2, tdb.RowCount("contours"))
}

func TestIsolineInsertCrossingRejected(t *testing.T) {
	tdb := tests.NewTestDB(t)
	tdb.CreateSpatialTable("contours", "shape", "ISOLINE")

	tdb.MustInsertGeometry("contours", "shape", 1, "LINESTRING (0 0, 2 2)")

	err := tdb.InsertGeometry("contours", "shape", 2, "LINESTRING (0 2, 2 0)")
	require.Error(t, err)

	var verr *rules.ViolationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, rules.IntegrityViolationCode, verr.Code)
	assert.Equal(t, rules.RuleIsoline, verr.Rule)

	// rejected statement leaves no trace
	assert.Equal(t, 1, tdb.RowCount("contours"))
}

func TestIsolineTouchingRejected(t *testing.T) {
	tdb := tests.NewTestDB(t)
	tdb.CreateSpatialTable("contours", "shape", "ISOLINE")

	tdb.MustInsertGeometry("contours", "shape", 1, "LINESTRING (0 0, 1 1)")

	// sharing a single endpoint is still not disjoint
	err := tdb.InsertGeometry("contours", "shape", 2, "LINESTRING (1 1, 2 0)")
	require.Error(t, err)
	assert.Equal(t, 1, tdb.RowCount("contours"))
}

func TestIsolineUpdateRevalidates(t *testing.T) {
	tdb := tests.NewTestDB(t)
	tdb.CreateSpatialTable("contours", "shape", "ISOLINE")

	tdb.MustInsertGeometry("contours", "shape", 1, "LINESTRING (0 0, 2 0)")
	tdb.MustInsertGeometry("contours", "shape", 2, "LINESTRING (0 1, 2 1)")

	// moving the second contour onto the first must be rejected
	_, err := tdb.DB.Update("contours", "shape", "LINESTRING (0 0, 2 0)", whereID(2))
	require.Error(t, err)

	var verr *rules.ViolationError
	require.True(t, errors.As(err, &verr))

	// a legal move still works
	n, err := tdb.DB.Update("contours", "shape", "LINESTRING (0 2, 2 2)", whereID(2))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMalformedGeometryRejectedAtWrite(t *testing.T) {
	tdb := tests.NewTestDB(t)
	tdb.CreateSpatialTable("contours", "shape", "ISOLINE")

	err := tdb.InsertGeometry("contours", "shape", 1, "LINESTRING (0 0)")
	require.Error(t, err)

	err = tdb.InsertGeometry("contours", "shape", 1, "not wkt at all")
	require.Error(t, err)

	assert.Equal(t, 0, tdb.RowCount("contours"))
}
