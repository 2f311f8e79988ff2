package storage

// Row represents a database row (map of column name to value)
type Row map[string]interface{}

// RowWithID pairs a row with its ID
type RowWithID struct {
	ID  int64
	Row Row
}

// Clone returns a shallow copy of the row
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
