package omtg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geodb/schema"
)

func TestParseClass(t *testing.T) {
	c, ok := ParseClass("ISOLINE")
	require.True(t, ok)
	assert.Equal(t, ClassIsoline, c)

	c, ok = ParseClass("PLANAR_SUBDIVISION")
	require.True(t, ok)
	assert.Equal(t, ClassPlanarSubdivision, c)

	_, ok = ParseClass("VORONOI")
	assert.False(t, ok)

	_, ok = ParseClass("isoline")
	assert.False(t, ok, "domains are case-sensitive upper-case tags")
}

func TestClassifySkipsUnrecognizedDomains(t *testing.T) {
	table := &schema.Table{
		Name: "contours",
		Columns: []schema.Column{
			{Name: "id", Type: schema.TypeInt, PrimaryKey: true},
			{Name: "shape", Type: schema.TypeGeometry, Domain: "ISOLINE"},
			{Name: "extra", Type: schema.TypeGeometry, Domain: "HOLOGRAM"},
			{Name: "label", Type: schema.TypeText},
		},
	}

	cols, skipped := Classify(table)
	require.Len(t, cols, 1)
	assert.Equal(t, GeometryColumn{Table: "contours", Column: "shape", Class: ClassIsoline}, cols[0])
	assert.Equal(t, []string{"extra"}, skipped)
}

func TestClassifyIgnoresBareGeometryColumns(t *testing.T) {
	table := &schema.Table{
		Name: "sketches",
		Columns: []schema.Column{
			{Name: "id", Type: schema.TypeInt, PrimaryKey: true},
			{Name: "outline", Type: schema.TypeGeometry},
			{Name: "shape", Type: schema.TypeGeometry, Domain: "SAMPLE"},
			{Name: "note", Type: schema.TypeText, Domain: "SAMPLE"},
		},
	}

	cols, skipped := Classify(table)
	require.Len(t, cols, 1)
	assert.Equal(t, "shape", cols[0].Column)
	assert.Empty(t, skipped, "a domainless geometry column is unclassified, not unrecognized")
}

func TestClassifyIsRepeatable(t *testing.T) {
	table := &schema.Table{
		Name: "cells",
		Columns: []schema.Column{
			{Name: "shape", Type: schema.TypeGeometry, Domain: "TIN"},
		},
	}

	first, _ := Classify(table)
	second, _ := Classify(table)
	assert.Equal(t, first, second)
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "TIN", ClassTIN.String())
	assert.Equal(t, "ARC_NODE_NETWORK", ClassArcNodeNetwork.String())
	assert.Equal(t, "UNKNOWN", ClassUnknown.String())
}
