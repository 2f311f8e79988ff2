package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the shape of a geometry value
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindPolygon
)

// String returns the WKT tag for a kind
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "POINT"
	case KindLine:
		return "LINESTRING"
	case KindPolygon:
		return "POLYGON"
	default:
		return "UNKNOWN"
	}
}

// Point is a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry is an immutable geometry value.
//
// Coords holds the point itself, the line's vertices, or the polygon's
// ring. Polygon rings are stored open: the closing vertex is normalized
// away on parse and re-added when formatting WKT.
type Geometry struct {
	Kind   Kind
	Coords []Point
}

// VertexCount returns the number of distinct vertices
func (g Geometry) VertexCount() int {
	return len(g.Coords)
}

// WKT formats the geometry as well-known text
func (g Geometry) WKT() string {
	var sb strings.Builder
	sb.WriteString(g.Kind.String())
	sb.WriteString(" (")
	switch g.Kind {
	case KindPolygon:
		sb.WriteString("(")
		writeCoords(&sb, g.Coords)
		// Close the ring
		sb.WriteString(", ")
		writePoint(&sb, g.Coords[0])
		sb.WriteString(")")
	default:
		writeCoords(&sb, g.Coords)
	}
	sb.WriteString(")")
	return sb.String()
}

func writeCoords(sb *strings.Builder, pts []Point) {
	for i, p := range pts {
		if i > 0 {
			sb.WriteString(", ")
		}
		writePoint(sb, p)
	}
}

func writePoint(sb *strings.Builder, p Point) {
	sb.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
	sb.WriteString(" ")
	sb.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
}

// ParseWKT parses a WKT string into a Geometry.
//
// Supported forms:
//
//	POINT (x y)
//	LINESTRING (x y, x y, ...)
//	POLYGON ((x y, x y, x y, ...))
//
// Null, empty, and malformed input is an error: geometry values are
// rejected at write time, never stored and resolved later.
func ParseWKT(text string) (Geometry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Geometry{}, fmt.Errorf("empty geometry")
	}

	upper := strings.ToUpper(text)
	switch {
	case strings.HasPrefix(upper, "POINT"):
		return parsePoint(text[len("POINT"):])
	case strings.HasPrefix(upper, "LINESTRING"):
		return parseLineString(text[len("LINESTRING"):])
	case strings.HasPrefix(upper, "POLYGON"):
		return parsePolygon(text[len("POLYGON"):])
	default:
		return Geometry{}, fmt.Errorf("unsupported geometry type in %q", text)
	}
}

func parsePoint(body string) (Geometry, error) {
	inner, err := unwrap(body)
	if err != nil {
		return Geometry{}, fmt.Errorf("invalid POINT: %w", err)
	}
	p, err := parseCoord(inner)
	if err != nil {
		return Geometry{}, fmt.Errorf("invalid POINT: %w", err)
	}
	return Geometry{Kind: KindPoint, Coords: []Point{p}}, nil
}

func parseLineString(body string) (Geometry, error) {
	inner, err := unwrap(body)
	if err != nil {
		return Geometry{}, fmt.Errorf("invalid LINESTRING: %w", err)
	}
	pts, err := parseCoordList(inner)
	if err != nil {
		return Geometry{}, fmt.Errorf("invalid LINESTRING: %w", err)
	}
	if len(pts) < 2 {
		return Geometry{}, fmt.Errorf("LINESTRING needs at least 2 points, got %d", len(pts))
	}
	return Geometry{Kind: KindLine, Coords: pts}, nil
}

func parsePolygon(body string) (Geometry, error) {
	outer, err := unwrap(body)
	if err != nil {
		return Geometry{}, fmt.Errorf("invalid POLYGON: %w", err)
	}
	ring, err := unwrap(outer)
	if err != nil {
		return Geometry{}, fmt.Errorf("invalid POLYGON ring: %w", err)
	}
	pts, err := parseCoordList(ring)
	if err != nil {
		return Geometry{}, fmt.Errorf("invalid POLYGON ring: %w", err)
	}

	// Accept closed or open rings; store open
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return Geometry{}, fmt.Errorf("POLYGON needs at least 3 distinct vertices, got %d", len(pts))
	}
	return Geometry{Kind: KindPolygon, Coords: pts}, nil
}

// unwrap strips one balanced layer of parentheses
func unwrap(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return "", fmt.Errorf("expected parenthesized body, got %q", s)
	}
	return s[1 : len(s)-1], nil
}

func parseCoordList(s string) ([]Point, error) {
	parts := strings.Split(s, ",")
	pts := make([]Point, 0, len(parts))
	for _, part := range parts {
		p, err := parseCoord(part)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func parseCoord(s string) (Point, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("expected 'x y' pair, got %q", s)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Point{}, fmt.Errorf("bad x coordinate %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("bad y coordinate %q", fields[1])
	}
	return Point{X: x, Y: y}, nil
}
