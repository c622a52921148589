package model

import "strings"

// Table represents a reconstructed table as an ordered sequence of rows of
// cell strings. Rows are ragged: cell-to-column correspondence across rows
// is not computed or guaranteed.
type Table struct {
	Rows [][]string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// AppendRow adds a new empty row and returns its index.
func (t *Table) AppendRow() int {
	t.Rows = append(t.Rows, nil)
	return len(t.Rows) - 1
}

// AppendCell appends a cell to the last row. It panics if the table has no
// rows; callers must AppendRow first.
func (t *Table) AppendCell(text string) {
	t.Rows[len(t.Rows)-1] = append(t.Rows[len(t.Rows)-1], text)
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// MaxColumns returns the length of the longest row.
func (t *Table) MaxColumns() int {
	max := 0
	for _, row := range t.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// CellCount returns the total number of cells across all rows.
func (t *Table) CellCount() int {
	n := 0
	for _, row := range t.Rows {
		n += len(row)
	}
	return n
}

// Cell returns the cell at the given row and column, or "" when the row is
// shorter than col+1. Out-of-range rows also return "".
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// GetText renders the table as tab-separated lines, mostly for debugging.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}
