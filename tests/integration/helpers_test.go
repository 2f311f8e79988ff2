package integration

import (
	"geodb/parser"
	"geodb/schema"
)

func whereID(id int) *parser.WhereClause {
	return &parser.WhereClause{Column: "id", Value: float64(id)}
}

func geometryColumn(name, domain string) schema.Column {
	return schema.Column{Name: name, Type: schema.TypeGeometry, Domain: domain}
}
