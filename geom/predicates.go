package geom

import (
	"fmt"
)

// Provider evaluates topological predicates over geometry values.
//
// Predicates follow the usual set-theoretic definitions: Intersects is any
// shared point, Touches is shared boundary points without shared interior,
// Contains is boundary-inclusive (covers). Every predicate returns an error
// for malformed input rather than guessing; callers treat that as fatal.
type Provider struct{}

// NewProvider creates a predicate provider
func NewProvider() *Provider {
	return &Provider{}
}

// Disjoint reports whether a and b share no point at all
func (pr *Provider) Disjoint(a, b Geometry) (bool, error) {
	hit, err := pr.Intersects(a, b)
	if err != nil {
		return false, err
	}
	return !hit, nil
}

// Intersects reports whether a and b share at least one point
func (pr *Provider) Intersects(a, b Geometry) (bool, error) {
	if err := checkPair(a, b); err != nil {
		return false, err
	}

	// Normalize so the "smaller" kind comes first
	if a.Kind > b.Kind {
		a, b = b, a
	}

	switch {
	case a.Kind == KindPoint && b.Kind == KindPoint:
		return a.Coords[0] == b.Coords[0], nil

	case a.Kind == KindPoint && b.Kind == KindLine:
		return pointOnLine(a.Coords[0], b.Coords), nil

	case a.Kind == KindPoint && b.Kind == KindPolygon:
		return locateInRing(a.Coords[0], b.Coords) != locOutside, nil

	case a.Kind == KindLine && b.Kind == KindLine:
		return anySegmentContact(segments(a), segments(b)), nil

	case a.Kind == KindLine && b.Kind == KindPolygon:
		if anySegmentContact(segments(a), segments(b)) {
			return true, nil
		}
		return locateInRing(a.Coords[0], b.Coords) != locOutside, nil

	default: // polygon / polygon
		if anySegmentContact(segments(a), segments(b)) {
			return true, nil
		}
		if anyVertexInside(a.Coords, b.Coords) || anyVertexInside(b.Coords, a.Coords) {
			return true, nil
		}
		return false, nil
	}
}

// Touches reports whether a and b share boundary points but no interior
func (pr *Provider) Touches(a, b Geometry) (bool, error) {
	hit, err := pr.Intersects(a, b)
	if err != nil {
		return false, err
	}
	if !hit {
		return false, nil
	}

	if a.Kind > b.Kind {
		a, b = b, a
	}

	switch {
	case a.Kind == KindPoint && b.Kind == KindPoint:
		// Points have no boundary; coincident points overlap, they
		// never merely touch
		return false, nil

	case a.Kind == KindPoint && b.Kind == KindLine:
		p := a.Coords[0]
		return p == b.Coords[0] || p == b.Coords[len(b.Coords)-1], nil

	case a.Kind == KindPoint && b.Kind == KindPolygon:
		return locateInRing(a.Coords[0], b.Coords) == locBoundary, nil

	case a.Kind == KindLine && b.Kind == KindLine:
		return lineContactAtEndpointsOnly(a, b), nil

	case a.Kind == KindLine && b.Kind == KindPolygon:
		return !lineReachesPolygonInterior(a, b), nil

	default: // polygon / polygon
		overlap, err := pr.interiorsOverlap(a, b)
		if err != nil {
			return false, err
		}
		return !overlap, nil
	}
}

// Contains reports whether a covers b: every point of b lies inside a or
// on its boundary. Only areal containers are supported; lines and points
// cover only geometry of their own kind that they fully include.
func (pr *Provider) Contains(a, b Geometry) (bool, error) {
	if err := checkPair(a, b); err != nil {
		return false, err
	}

	switch a.Kind {
	case KindPoint:
		return b.Kind == KindPoint && a.Coords[0] == b.Coords[0], nil

	case KindLine:
		if b.Kind != KindPoint {
			return false, nil
		}
		return pointOnLine(b.Coords[0], a.Coords), nil

	case KindPolygon:
		return polygonCovers(a.Coords, b), nil

	default:
		return false, fmt.Errorf("contains: unsupported geometry kind %v", a.Kind)
	}
}

// VertexCount returns the number of distinct vertices of g
func (pr *Provider) VertexCount(g Geometry) (int, error) {
	if len(g.Coords) == 0 {
		return 0, fmt.Errorf("malformed geometry: no coordinates")
	}
	return g.VertexCount(), nil
}

// interiorsOverlap reports whether two polygons share interior area
func (pr *Provider) interiorsOverlap(a, b Geometry) (bool, error) {
	if a.Kind != KindPolygon || b.Kind != KindPolygon {
		return false, fmt.Errorf("interior overlap requires two polygons")
	}

	segsA, segsB := segments(a), segments(b)
	for _, sa := range segsA {
		for _, sb := range segsB {
			if segmentsProperCross(sa[0], sa[1], sb[0], sb[1]) {
				return true, nil
			}
		}
	}
	if anyStrictlyInside(a.Coords, b.Coords) || anyStrictlyInside(b.Coords, a.Coords) {
		return true, nil
	}
	// Coincident or nested rings never put a vertex strictly inside the
	// other ring; probe a guaranteed interior point of each. A vertex
	// centroid is not good enough here: for a non-convex ring it can fall
	// outside the polygon.
	if locateInRing(interiorPoint(a.Coords), b.Coords) == locInside ||
		locateInRing(interiorPoint(b.Coords), a.Coords) == locInside {
		return true, nil
	}
	if anyMidpointStrictlyInside(segsA, b.Coords) || anyMidpointStrictlyInside(segsB, a.Coords) {
		return true, nil
	}
	return false, nil
}

func checkPair(a, b Geometry) error {
	if len(a.Coords) == 0 || len(b.Coords) == 0 {
		return fmt.Errorf("malformed geometry: no coordinates")
	}
	return nil
}

// segment is an ordered vertex pair
type segment [2]Point

// segments returns the edges of a line or polygon ring (point: none)
func segments(g Geometry) []segment {
	switch g.Kind {
	case KindLine:
		segs := make([]segment, 0, len(g.Coords)-1)
		for i := 0; i+1 < len(g.Coords); i++ {
			segs = append(segs, segment{g.Coords[i], g.Coords[i+1]})
		}
		return segs
	case KindPolygon:
		n := len(g.Coords)
		segs := make([]segment, 0, n)
		for i := 0; i < n; i++ {
			segs = append(segs, segment{g.Coords[i], g.Coords[(i+1)%n]})
		}
		return segs
	default:
		return nil
	}
}

func anySegmentContact(as, bs []segment) bool {
	for _, sa := range as {
		for _, sb := range bs {
			if segmentsIntersect(sa[0], sa[1], sb[0], sb[1]) {
				return true
			}
		}
	}
	return false
}

// orient is the signed area of triangle abc: >0 counter-clockwise,
// <0 clockwise, 0 collinear
func orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegmentBox reports whether collinear point p lies within the bounding
// box of segment ab
func onSegmentBox(p, a, b Point) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

// pointOnSegment reports whether p lies on segment ab (endpoints included)
func pointOnSegment(p, a, b Point) bool {
	return orient(a, b, p) == 0 && onSegmentBox(p, a, b)
}

// segmentsIntersect reports whether segments p1p2 and q1q2 share any point
func segmentsIntersect(p1, p2, q1, q2 Point) bool {
	o1 := orient(p1, p2, q1)
	o2 := orient(p1, p2, q2)
	o3 := orient(q1, q2, p1)
	o4 := orient(q1, q2, p2)

	if ((o1 > 0) != (o2 > 0)) && ((o3 > 0) != (o4 > 0)) && o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0 {
		return true
	}
	if o1 == 0 && onSegmentBox(q1, p1, p2) {
		return true
	}
	if o2 == 0 && onSegmentBox(q2, p1, p2) {
		return true
	}
	if o3 == 0 && onSegmentBox(p1, q1, q2) {
		return true
	}
	if o4 == 0 && onSegmentBox(p2, q1, q2) {
		return true
	}
	return false
}

// segmentsProperCross reports whether the segments cross at a single
// interior point of both
func segmentsProperCross(p1, p2, q1, q2 Point) bool {
	o1 := orient(p1, p2, q1)
	o2 := orient(p1, p2, q2)
	o3 := orient(q1, q2, p1)
	o4 := orient(q1, q2, p2)
	return o1*o2 < 0 && o3*o4 < 0
}

// collinearInteriorOverlap reports whether two collinear segments share
// more than a single point
func collinearInteriorOverlap(p1, p2, q1, q2 Point) bool {
	if orient(p1, p2, q1) != 0 || orient(p1, p2, q2) != 0 {
		return false
	}
	// Project onto the dominant axis and compare extents
	axis := func(p Point) float64 {
		if abs(p2.X-p1.X) >= abs(p2.Y-p1.Y) {
			return p.X
		}
		return p.Y
	}
	lo1, hi1 := minMax(axis(p1), axis(p2))
	lo2, hi2 := minMax(axis(q1), axis(q2))
	return min(hi1, hi2) > max(lo1, lo2)
}

const (
	locOutside = iota
	locBoundary
	locInside
)

// locateInRing classifies p against the polygon ring via ray casting
func locateInRing(p Point, ring []Point) int {
	n := len(ring)
	for i := 0; i < n; i++ {
		if pointOnSegment(p, ring[i], ring[(i+1)%n]) {
			return locBoundary
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := ring[i], ring[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			xCross := (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	if inside {
		return locInside
	}
	return locOutside
}

func pointOnLine(p Point, line []Point) bool {
	for i := 0; i+1 < len(line); i++ {
		if pointOnSegment(p, line[i], line[i+1]) {
			return true
		}
	}
	return false
}

func anyVertexInside(pts, ring []Point) bool {
	for _, p := range pts {
		if locateInRing(p, ring) != locOutside {
			return true
		}
	}
	return false
}

func anyStrictlyInside(pts, ring []Point) bool {
	for _, p := range pts {
		if locateInRing(p, ring) == locInside {
			return true
		}
	}
	return false
}

func anyMidpointStrictlyInside(segs []segment, ring []Point) bool {
	for _, s := range segs {
		mid := Point{X: (s[0].X + s[1].X) / 2, Y: (s[0].Y + s[1].Y) / 2}
		if locateInRing(mid, ring) == locInside {
			return true
		}
	}
	return false
}

// pointInTriangle reports whether p lies strictly inside triangle abc
func pointInTriangle(p, a, b, c Point) bool {
	d1 := orient(a, b, p)
	d2 := orient(b, c, p)
	d3 := orient(c, a, p)
	return (d1 > 0 && d2 > 0 && d3 > 0) || (d1 < 0 && d2 < 0 && d3 < 0)
}

// interiorPoint returns a point strictly inside the ring. The lowest (then
// leftmost) vertex v is always convex. If no other vertex lies inside the
// ear triangle at v, the ear's centroid is interior; otherwise the midpoint
// of v and the intruding vertex farthest from the ear's base is. Any edge
// entering the ear must end at a vertex inside it, so the region between v
// and that deepest vertex is clear.
func interiorPoint(ring []Point) Point {
	n := len(ring)
	k := 0
	for i := 1; i < n; i++ {
		if ring[i].Y < ring[k].Y || (ring[i].Y == ring[k].Y && ring[i].X < ring[k].X) {
			k = i
		}
	}
	a, v, b := ring[(k+n-1)%n], ring[k], ring[(k+1)%n]

	var deepest Point
	var depth float64
	found := false
	for _, q := range ring {
		if q == a || q == v || q == b || !pointInTriangle(q, a, v, b) {
			continue
		}
		if d := abs(orient(a, b, q)); !found || d > depth {
			deepest, depth, found = q, d, true
		}
	}
	if found {
		return Point{X: (v.X + deepest.X) / 2, Y: (v.Y + deepest.Y) / 2}
	}
	return Point{X: (a.X + v.X + b.X) / 3, Y: (a.Y + v.Y + b.Y) / 3}
}

// lineContactAtEndpointsOnly reports whether two intersecting lines meet
// only at points involving an endpoint of at least one of them
func lineContactAtEndpointsOnly(a, b Geometry) bool {
	for _, sa := range segments(a) {
		for _, sb := range segments(b) {
			if segmentsProperCross(sa[0], sa[1], sb[0], sb[1]) {
				return false
			}
			if collinearInteriorOverlap(sa[0], sa[1], sb[0], sb[1]) {
				return false
			}
		}
	}
	aEnds := [2]Point{a.Coords[0], a.Coords[len(a.Coords)-1]}
	bEnds := [2]Point{b.Coords[0], b.Coords[len(b.Coords)-1]}

	// Any contact point between interior vertices of both lines means the
	// interiors intersect
	for _, va := range a.Coords[1 : len(a.Coords)-1] {
		if pointOnLine(va, b.Coords) && va != bEnds[0] && va != bEnds[1] {
			return false
		}
	}
	for _, vb := range b.Coords[1 : len(b.Coords)-1] {
		if pointOnLine(vb, a.Coords) && vb != aEnds[0] && vb != aEnds[1] {
			return false
		}
	}
	return true
}

// lineReachesPolygonInterior reports whether any part of line a lies
// strictly inside polygon b
func lineReachesPolygonInterior(a, b Geometry) bool {
	if anyStrictlyInside(a.Coords, b.Coords) {
		return true
	}
	for _, sa := range segments(a) {
		for _, sb := range segments(b) {
			if segmentsProperCross(sa[0], sa[1], sb[0], sb[1]) {
				return true
			}
		}
	}
	return anyMidpointStrictlyInside(segments(a), b.Coords)
}

// polygonCovers reports whether the ring covers geometry b entirely
// (boundary included)
func polygonCovers(ring []Point, b Geometry) bool {
	for _, p := range b.Coords {
		if locateInRing(p, ring) == locOutside {
			return false
		}
	}
	cover := Geometry{Kind: KindPolygon, Coords: ring}
	for _, sb := range segments(b) {
		for _, sc := range segments(cover) {
			if segmentsProperCross(sb[0], sb[1], sc[0], sc[1]) {
				return false
			}
		}
		mid := Point{X: (sb[0].X + sb[1].X) / 2, Y: (sb[0].Y + sb[1].Y) / 2}
		if locateInRing(mid, ring) == locOutside {
			return false
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
