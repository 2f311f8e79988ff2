package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) Geometry {
	t.Helper()
	g, err := ParseWKT(text)
	require.NoError(t, err)
	return g
}

func TestOverlappingSquares(t *testing.T) {
	p := NewProvider()
	a := mustParse(t, "POLYGON ((0 0, 2 0, 2 2, 0 2))")
	b := mustParse(t, "POLYGON ((1 1, 3 1, 3 3, 1 3))")

	hit, err := p.Intersects(a, b)
	require.NoError(t, err)
	assert.True(t, hit)

	touch, err := p.Touches(a, b)
	require.NoError(t, err)
	assert.False(t, touch, "area overlap is not a touch")

	dis, err := p.Disjoint(a, b)
	require.NoError(t, err)
	assert.False(t, dis)
}

func TestEdgeSharingSquaresTouch(t *testing.T) {
	p := NewProvider()
	a := mustParse(t, "POLYGON ((0 0, 2 0, 2 2, 0 2))")
	b := mustParse(t, "POLYGON ((2 0, 4 0, 4 2, 2 2))")

	hit, err := p.Intersects(a, b)
	require.NoError(t, err)
	assert.True(t, hit)

	touch, err := p.Touches(a, b)
	require.NoError(t, err)
	assert.True(t, touch)
}

func TestIdenticalSquaresOverlap(t *testing.T) {
	p := NewProvider()
	a := mustParse(t, "POLYGON ((0 0, 2 0, 2 2, 0 2))")
	b := mustParse(t, "POLYGON ((0 0, 2 0, 2 2, 0 2))")

	touch, err := p.Touches(a, b)
	require.NoError(t, err)
	assert.False(t, touch, "coincident polygons share interior")
}

func TestIdenticalNonConvexPolygonsOverlap(t *testing.T) {
	p := NewProvider()
	// C-shaped ring: its vertex centroid falls in the notch, outside the
	// polygon, so only a true interior probe detects the shared area
	cShape := "POLYGON ((0 0, 3 0, 3 1, 1 1, 1 2, 3 2, 3 3, 0 3, 0 0))"
	a := mustParse(t, cShape)
	b := mustParse(t, cShape)

	touch, err := p.Touches(a, b)
	require.NoError(t, err)
	assert.False(t, touch, "coincident non-convex polygons share interior")

	hit, err := p.Intersects(a, b)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestInteriorPoint(t *testing.T) {
	cases := []struct {
		name string
		wkt  string
	}{
		{"square", "POLYGON ((0 0, 2 0, 2 2, 0 2))"},
		{"triangle", "POLYGON ((0 0, 4 0, 0 4))"},
		{"c shape", "POLYGON ((0 0, 3 0, 3 1, 1 1, 1 2, 3 2, 3 3, 0 3, 0 0))"},
		{"u shape", "POLYGON ((0 0, 5 0, 5 5, 4 5, 4 1, 1 1, 1 5, 0 5, 0 0))"},
		{"spike", "POLYGON ((0 0, 10 0, 10 1, 1 1, 5 4, 0 4))"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.wkt)
			p := interiorPoint(g.Coords)
			assert.Equal(t, locInside, locateInRing(p, g.Coords),
				"interior point %v must lie strictly inside", p)
		})
	}
}

func TestNestedSquares(t *testing.T) {
	p := NewProvider()
	outer := mustParse(t, "POLYGON ((0 0, 10 0, 10 10, 0 10))")
	inner := mustParse(t, "POLYGON ((2 2, 4 2, 4 4, 2 4))")

	hit, err := p.Intersects(outer, inner)
	require.NoError(t, err)
	assert.True(t, hit)

	touch, err := p.Touches(outer, inner)
	require.NoError(t, err)
	assert.False(t, touch)

	in, err := p.Contains(outer, inner)
	require.NoError(t, err)
	assert.True(t, in)

	in, err = p.Contains(inner, outer)
	require.NoError(t, err)
	assert.False(t, in)
}

func TestDisjointSquares(t *testing.T) {
	p := NewProvider()
	a := mustParse(t, "POLYGON ((0 0, 1 0, 1 1, 0 1))")
	b := mustParse(t, "POLYGON ((5 5, 6 5, 6 6, 5 6))")

	dis, err := p.Disjoint(a, b)
	require.NoError(t, err)
	assert.True(t, dis)
}

func TestPointPolygon(t *testing.T) {
	p := NewProvider()
	poly := mustParse(t, "POLYGON ((0 0, 4 0, 4 4, 0 4))")

	inside := mustParse(t, "POINT (2 2)")
	boundary := mustParse(t, "POINT (4 2)")
	outside := mustParse(t, "POINT (9 9)")

	hit, err := p.Intersects(poly, inside)
	require.NoError(t, err)
	assert.True(t, hit)

	in, err := p.Contains(poly, inside)
	require.NoError(t, err)
	assert.True(t, in)

	in, err = p.Contains(poly, boundary)
	require.NoError(t, err)
	assert.True(t, in, "contains is boundary-inclusive")

	touch, err := p.Touches(poly, boundary)
	require.NoError(t, err)
	assert.True(t, touch)

	dis, err := p.Disjoint(poly, outside)
	require.NoError(t, err)
	assert.True(t, dis)
}

func TestLines(t *testing.T) {
	p := NewProvider()

	crossA := mustParse(t, "LINESTRING (0 0, 2 2)")
	crossB := mustParse(t, "LINESTRING (0 2, 2 0)")
	hit, err := p.Intersects(crossA, crossB)
	require.NoError(t, err)
	assert.True(t, hit)
	touch, err := p.Touches(crossA, crossB)
	require.NoError(t, err)
	assert.False(t, touch, "interior crossing is not a touch")

	chainA := mustParse(t, "LINESTRING (0 0, 1 1)")
	chainB := mustParse(t, "LINESTRING (1 1, 2 0)")
	touch, err = p.Touches(chainA, chainB)
	require.NoError(t, err)
	assert.True(t, touch)

	overlapA := mustParse(t, "LINESTRING (0 0, 2 0)")
	overlapB := mustParse(t, "LINESTRING (1 0, 3 0)")
	touch, err = p.Touches(overlapA, overlapB)
	require.NoError(t, err)
	assert.False(t, touch, "collinear overlap shares interior")

	far := mustParse(t, "LINESTRING (10 10, 11 11)")
	dis, err := p.Disjoint(crossA, far)
	require.NoError(t, err)
	assert.True(t, dis)
}

func TestCoincidentPoints(t *testing.T) {
	p := NewProvider()
	a := mustParse(t, "POINT (3 3)")
	b := mustParse(t, "POINT (3 3)")
	c := mustParse(t, "POINT (4 4)")

	hit, err := p.Intersects(a, b)
	require.NoError(t, err)
	assert.True(t, hit)

	touch, err := p.Touches(a, b)
	require.NoError(t, err)
	assert.False(t, touch)

	dis, err := p.Disjoint(a, c)
	require.NoError(t, err)
	assert.True(t, dis)
}

func TestVertexCount(t *testing.T) {
	p := NewProvider()

	tri := mustParse(t, "POLYGON ((0 0, 1 0, 0 1))")
	n, err := p.VertexCount(tri)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	quad := mustParse(t, "POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))")
	n, err = p.VertexCount(quad)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestMalformedGeometryErrors(t *testing.T) {
	p := NewProvider()
	good := mustParse(t, "POINT (0 0)")
	bad := Geometry{Kind: KindPolygon}

	_, err := p.Intersects(good, bad)
	assert.Error(t, err)

	_, err = p.VertexCount(bad)
	assert.Error(t, err)
}
