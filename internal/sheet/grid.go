package sheet

import (
	"strings"
	"unicode"
)

// Cell is a single spreadsheet cell. Present distinguishes a missing cell
// from one that holds a value: blank cells in the source file are treated
// as missing, never as the empty string.
type Cell struct {
	Value   string
	Present bool
}

// Grid is a read-only view of one sheet: a header row followed by data rows.
// Data rows are 0-indexed from the first row below the header.
type Grid struct {
	headers []string
	rows    [][]Cell
}

// FromStrings builds a Grid from raw string rows. Empty strings become
// missing cells, matching how blank cells read from a workbook behave.
func FromStrings(headers []string, rows [][]string) *Grid {
	g := &Grid{headers: headers}
	for _, r := range rows {
		cells := make([]Cell, len(r))
		for i, v := range r {
			if v != "" {
				cells[i] = Cell{Value: v, Present: true}
			}
		}
		g.rows = append(g.rows, cells)
	}
	return g
}

// NumRows returns the number of data rows.
func (g *Grid) NumRows() int { return len(g.rows) }

// Headers returns the header row in column order.
func (g *Grid) Headers() []string { return g.headers }

// Col returns the index of the column whose header exactly matches name.
func (g *Grid) Col(name string) (int, bool) {
	for i, h := range g.headers {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// ColFold is Col with case-insensitive matching.
func (g *Grid) ColFold(name string) (int, bool) {
	for i, h := range g.headers {
		if strings.EqualFold(h, name) {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the cell at (row, col). Positions outside the grid are
// reported as missing.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g.rows) || col < 0 {
		return Cell{}
	}
	r := g.rows[row]
	if col >= len(r) {
		return Cell{}
	}
	return r[col]
}

// String returns the cell's value at (row, col), or "" when missing.
func (g *Grid) String(row, col int) string {
	return g.Cell(row, col).Value
}

// Get returns the cell in the named column of the given row. It reports
// false when the column does not exist or the cell is missing.
func (g *Grid) Get(row int, name string) (string, bool) {
	col, ok := g.Col(name)
	if !ok {
		return "", false
	}
	c := g.Cell(row, col)
	return c.Value, c.Present
}

// normalizeValue trims surrounding whitespace from a raw cell value.
func normalizeValue(s string) string {
	return strings.TrimFunc(s, unicode.IsSpace)
}
