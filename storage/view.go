package storage

// StagedView overlays one uncommitted statement's changes on the committed
// state. Validators run against this view, so they observe exactly what the
// database would look like if the statement committed, and nothing of any
// other in-flight work.
type StagedView struct {
	base    *State
	table   string
	added   []RowWithID
	updated map[int64]Row
	removed map[int64]bool
}

// NewStagedView creates a view staging changes against one table
func NewStagedView(base *State, table string) *StagedView {
	return &StagedView{
		base:    base,
		table:   table,
		updated: make(map[int64]Row),
		removed: make(map[int64]bool),
	}
}

// StageInsert adds an uncommitted row to the view
func (v *StagedView) StageInsert(rowID int64, row Row) {
	v.added = append(v.added, RowWithID{ID: rowID, Row: row})
}

// StageUpdate replaces an existing row in the view
func (v *StagedView) StageUpdate(rowID int64, row Row) {
	v.updated[rowID] = row
}

// StageDelete hides an existing row from the view
func (v *StagedView) StageDelete(rowID int64) {
	v.removed[rowID] = true
}

// Rows returns the rows of a table as the staged statement would leave
// them. Tables other than the staged one are served unchanged from the
// committed state, which is what cross-table validators need.
func (v *StagedView) Rows(table string) ([]RowWithID, error) {
	committed, err := v.base.Rows(table)
	if err != nil {
		return nil, err
	}
	if table != v.table {
		return committed, nil
	}

	out := make([]RowWithID, 0, len(committed)+len(v.added))
	for _, r := range committed {
		if v.removed[r.ID] {
			continue
		}
		if updated, ok := v.updated[r.ID]; ok {
			out = append(out, RowWithID{ID: r.ID, Row: updated})
			continue
		}
		out = append(out, r)
	}
	out = append(out, v.added...)
	return out, nil
}
