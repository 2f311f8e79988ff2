package omtg

// Class is a conceptual class from the OMT-G spatial model.
//
// The set is closed: dispatch over it is by tagged value, never by string
// comparison, so an unsupported class shows up at compile time rather
// than as a silent catalog mismatch.
type Class int

const (
	ClassUnknown Class = iota
	ClassPolygon
	ClassLine
	ClassPoint
	ClassNode
	ClassIsoline
	ClassPlanarSubdivision
	ClassTIN
	ClassTesselation
	ClassSample
	ClassUniline
	ClassBiline

	// Cross-table classes; bound by relationship declarations rather
	// than by a single column's domain
	ClassContainment
	ClassArcNodeNetwork
)

var classNames = map[Class]string{
	ClassPolygon:           "POLYGON",
	ClassLine:              "LINE",
	ClassPoint:             "POINT",
	ClassNode:              "NODE",
	ClassIsoline:           "ISOLINE",
	ClassPlanarSubdivision: "PLANAR_SUBDIVISION",
	ClassTIN:               "TIN",
	ClassTesselation:       "TESSELATION",
	ClassSample:            "SAMPLE",
	ClassUniline:           "UNILINE",
	ClassBiline:            "BILINE",
	ClassContainment:       "CONTAINMENT",
	ClassArcNodeNetwork:    "ARC_NODE_NETWORK",
}

var classByDomain = func() map[string]Class {
	m := make(map[string]Class, len(classNames))
	for c, name := range classNames {
		m[name] = c
	}
	return m
}()

// String returns the declared domain name of the class
func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseClass maps a declared column domain to its conceptual class.
// Unrecognized domains return ok=false; callers skip the column, keeping
// the taxonomy forward-compatible with future classes.
func ParseClass(domain string) (Class, bool) {
	c, ok := classByDomain[domain]
	return c, ok
}
