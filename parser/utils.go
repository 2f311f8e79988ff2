package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// parseValues splits a VALUES body on top-level commas. Commas inside
// quoted strings (geometry literals contain them) and inside parentheses
// do not split.
func parseValues(body string) ([]interface{}, error) {
	var values []interface{}
	var current strings.Builder
	depth := 0
	var quote byte

	flush := func() {
		values = append(values, parseValue(current.String()))
		current.Reset()
	}

	for i := 0; i < len(body); i++ {
		ch := body[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
			current.WriteByte(ch)
		case ch == '\'' || ch == '"':
			quote = ch
			current.WriteByte(ch)
		case ch == '(':
			depth++
			current.WriteByte(ch)
		case ch == ')':
			depth--
			current.WriteByte(ch)
		case ch == ',' && depth == 0:
			flush()
		default:
			current.WriteByte(ch)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated string literal")
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses in VALUES")
	}
	if strings.TrimSpace(current.String()) != "" || len(values) > 0 {
		flush()
	}
	return values, nil
}

// parseValue parses a single literal
func parseValue(str string) interface{} {
	str = strings.TrimSpace(str)

	// String (quoted)
	if len(str) >= 2 &&
		((strings.HasPrefix(str, "'") && strings.HasSuffix(str, "'")) ||
			(strings.HasPrefix(str, "\"") && strings.HasSuffix(str, "\""))) {
		return str[1 : len(str)-1]
	}

	// Bool
	if strings.EqualFold(str, "true") {
		return true
	}
	if strings.EqualFold(str, "false") {
		return false
	}

	// Number
	if val, err := strconv.ParseFloat(str, 64); err == nil {
		return val
	}

	// Default: string
	return str
}
