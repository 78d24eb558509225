package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Book wraps an open .xlsx workbook. Reads go through Grid; writes address
// data rows by (row, col) in Grid coordinates, so row 0 writes to the first
// row below the header.
type Book struct {
	f    *excelize.File
	name string // sheet name
}

// Open opens the workbook at path and selects its first sheet.
func Open(path string) (*Book, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	name := f.GetSheetName(0)
	if name == "" {
		f.Close()
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	return &Book{f: f, name: name}, nil
}

// Grid reads the whole sheet into a Grid. The first row becomes the header.
func (b *Book) Grid() (*Grid, error) {
	rows, err := b.f.GetRows(b.name)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", b.name, err)
	}
	if len(rows) == 0 {
		return FromStrings(nil, nil), nil
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = normalizeValue(h)
	}
	data := make([][]string, 0, len(rows)-1)
	for _, r := range rows[1:] {
		row := make([]string, len(r))
		for i, v := range r {
			row[i] = normalizeValue(v)
		}
		data = append(data, row)
	}
	return FromStrings(headers, data), nil
}

// Set writes a value into the data cell at (row, col).
func (b *Book) Set(row, col int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+2)
	if err != nil {
		return err
	}
	return b.f.SetCellValue(b.name, cell, value)
}

// SaveAs writes the workbook to a new file.
func (b *Book) SaveAs(path string) error {
	if err := b.f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

// Close releases the underlying file.
func (b *Book) Close() error { return b.f.Close() }

// Load opens the workbook at path and reads its first sheet into a Grid.
func Load(path string) (*Grid, error) {
	b, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer b.Close()
	return b.Grid()
}
