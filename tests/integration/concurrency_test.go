package integration

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geodb/rules"
	"geodb/tests"
)

// Two racing statements whose geometries conflict with each other: the
// database serializes them, so exactly one commits and the other is rejected
// against the state the winner left behind.
func TestConflictingConcurrentInsertsExactlyOneCommits(t *testing.T) {
	tdb := tests.NewTestDB(t)
	tdb.CreateSpatialTable("contours", "shape", "ISOLINE")

	results := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		results[0] = tdb.InsertGeometry("contours", "shape", 1, "LINESTRING (0 0, 2 2)")
	}()
	go func() {
		defer wg.Done()
		results[1] = tdb.InsertGeometry("contours", "shape", 2, "LINESTRING (0 2, 2 0)")
	}()
	wg.Wait()

	var committed, rejected int
	for _, err := range results {
		if err == nil {
			committed++
			continue
		}
		var verr *rules.ViolationError
		require.True(t, errors.As(err, &verr), "unexpected error kind: %v", err)
		rejected++
	}

	assert.Equal(t, 1, committed)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 1, tdb.RowCount("contours"))
}

// Disjoint concurrent inserts all commit.
func TestDisjointConcurrentInsertsAllCommit(t *testing.T) {
	tdb := tests.NewTestDB(t)
	tdb.CreateSpatialTable("contours", "shape", "ISOLINE")

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wkt := fmt.Sprintf("LINESTRING (0 %d, 2 %d)", i*10, i*10)
			errs[i] = tdb.InsertGeometry("contours", "shape", i+1, wkt)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "insert %d", i)
	}
	assert.Equal(t, n, tdb.RowCount("contours"))
}
