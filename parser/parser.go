package parser

import (
	"fmt"
	"regexp"
	"strings"

	"geodb/omtg"
	"geodb/schema"
)

// WhereClause represents a simple WHERE condition
type WhereClause struct {
	Column string
	Value  interface{}
}

// ParsedStatement represents a parsed SQL statement
type ParsedStatement struct {
	Type         string // CREATE_TABLE, CREATE_RELATIONSHIP, INSERT, SELECT, UPDATE, DELETE
	TableName    string
	Columns      []schema.Column
	Values       []interface{}
	Where        *WhereClause
	SetColumn    string
	SetValue     interface{}
	Relationship *schema.Relationship
}

// Parser handles SQL parsing
type Parser struct{}

// New creates a new parser
func New() *Parser {
	return &Parser{}
}

// Parse parses a SQL statement
func (p *Parser) Parse(sql string) (*ParsedStatement, error) {
	sql = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(sql), ";"))
	sqlUpper := strings.ToUpper(sql)

	switch {
	case strings.HasPrefix(sqlUpper, "CREATE TABLE"):
		return p.parseCreateTable(sql)
	case strings.HasPrefix(sqlUpper, "CREATE RELATIONSHIP"):
		return p.parseCreateRelationship(sql)
	case strings.HasPrefix(sqlUpper, "INSERT INTO"):
		return p.parseInsert(sql)
	case strings.HasPrefix(sqlUpper, "SELECT"):
		return p.parseSelect(sql)
	case strings.HasPrefix(sqlUpper, "DELETE FROM"):
		return p.parseDelete(sql)
	case strings.HasPrefix(sqlUpper, "UPDATE"):
		return p.parseUpdate(sql)
	}

	return nil, fmt.Errorf("unsupported SQL command")
}

func (p *Parser) parseCreateTable(sql string) (*ParsedStatement, error) {
	// CREATE TABLE contours (id INT PRIMARY KEY, elev INT, shape ISOLINE)
	re := regexp.MustCompile(`(?is)^CREATE TABLE\s+(\w+)\s*\((.*)\)$`)
	matches := re.FindStringSubmatch(sql)
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid CREATE TABLE syntax")
	}

	tableName := matches[1]
	var columns []schema.Column
	for _, colDef := range strings.Split(matches[2], ",") {
		parts := strings.Fields(strings.TrimSpace(colDef))
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid column definition: %s", colDef)
		}

		col := schema.Column{Name: parts[0]}
		typeToken := strings.ToUpper(parts[1])
		if _, isDomain := omtg.ParseClass(typeToken); isDomain {
			// An OMT-G domain in type position declares a geometry
			// column of that conceptual class
			col.Type = schema.TypeGeometry
			col.Domain = typeToken
		} else {
			col.Type = schema.ColumnType(typeToken)
		}

		for i := 2; i < len(parts); i++ {
			switch strings.ToUpper(parts[i]) {
			case "PRIMARY":
				if i+1 < len(parts) && strings.ToUpper(parts[i+1]) == "KEY" {
					col.PrimaryKey = true
					i++
				}
			case "UNIQUE":
				col.Unique = true
			}
		}
		columns = append(columns, col)
	}

	return &ParsedStatement{
		Type:      "CREATE_TABLE",
		TableName: tableName,
		Columns:   columns,
	}, nil
}

func (p *Parser) parseCreateRelationship(sql string) (*ParsedStatement, error) {
	// CREATE RELATIONSHIP lots_in_blocks CONTAINMENT blocks.shape lots.shape
	re := regexp.MustCompile(`(?i)^CREATE RELATIONSHIP\s+(\w+)\s+(\w+)\s+(\w+)\.(\w+)\s+(\w+)\.(\w+)$`)
	matches := re.FindStringSubmatch(sql)
	if len(matches) != 7 {
		return nil, fmt.Errorf("invalid CREATE RELATIONSHIP syntax")
	}

	kind, err := schema.ParseRelationshipKind(strings.ToUpper(matches[2]))
	if err != nil {
		return nil, err
	}

	return &ParsedStatement{
		Type: "CREATE_RELATIONSHIP",
		Relationship: &schema.Relationship{
			Name:            matches[1],
			Kind:            kind,
			PrimaryTable:    matches[3],
			PrimaryColumn:   matches[4],
			SecondaryTable:  matches[5],
			SecondaryColumn: matches[6],
		},
	}, nil
}

func (p *Parser) parseInsert(sql string) (*ParsedStatement, error) {
	// INSERT INTO contours VALUES (1, 100, 'LINESTRING (0 0, 1 1)')
	re := regexp.MustCompile(`(?is)^INSERT INTO\s+(\w+)\s+VALUES\s*\((.*)\)$`)
	matches := re.FindStringSubmatch(sql)
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid INSERT syntax")
	}

	values, err := parseValues(matches[2])
	if err != nil {
		return nil, err
	}

	return &ParsedStatement{
		Type:      "INSERT",
		TableName: matches[1],
		Values:    values,
	}, nil
}

func (p *Parser) parseSelect(sql string) (*ParsedStatement, error) {
	// SELECT * FROM contours [WHERE col = value]
	re := regexp.MustCompile(`(?is)^SELECT\s+\*\s+FROM\s+(\w+)(?:\s+WHERE\s+(\w+)\s*=\s*(.+))?$`)
	matches := re.FindStringSubmatch(sql)
	if len(matches) < 2 {
		return nil, fmt.Errorf("invalid SELECT syntax")
	}

	var where *WhereClause
	if len(matches) == 4 && matches[2] != "" {
		where = &WhereClause{Column: matches[2], Value: parseValue(matches[3])}
	}

	return &ParsedStatement{
		Type:      "SELECT",
		TableName: matches[1],
		Where:     where,
	}, nil
}

func (p *Parser) parseDelete(sql string) (*ParsedStatement, error) {
	// DELETE FROM contours WHERE id = 1
	re := regexp.MustCompile(`(?is)^DELETE FROM\s+(\w+)\s+WHERE\s+(\w+)\s*=\s*(.+)$`)
	matches := re.FindStringSubmatch(sql)
	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid DELETE syntax (WHERE required)")
	}

	return &ParsedStatement{
		Type:      "DELETE",
		TableName: matches[1],
		Where:     &WhereClause{Column: matches[2], Value: parseValue(matches[3])},
	}, nil
}

func (p *Parser) parseUpdate(sql string) (*ParsedStatement, error) {
	// UPDATE contours SET elev = 120 WHERE id = 1
	re := regexp.MustCompile(`(?is)^UPDATE\s+(\w+)\s+SET\s+(\w+)\s*=\s*(.+?)\s+WHERE\s+(\w+)\s*=\s*(.+)$`)
	matches := re.FindStringSubmatch(sql)
	if len(matches) != 6 {
		return nil, fmt.Errorf("invalid UPDATE syntax")
	}

	return &ParsedStatement{
		Type:      "UPDATE",
		TableName: matches[1],
		SetColumn: matches[2],
		SetValue:  parseValue(matches[3]),
		Where:     &WhereClause{Column: matches[4], Value: parseValue(matches[5])},
	}, nil
}
