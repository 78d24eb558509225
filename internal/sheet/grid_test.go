package sheet

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// TestGridAccess verifies column lookup, cell presence, and out-of-range
// reads.
func TestGridAccess(t *testing.T) {
	g := FromStrings(
		[]string{"EXERCISE NAME", "VIDEO STATUS", "Category"},
		[][]string{
			{"Back Squat", "1", "Strength"},
			{"Push Up", "", "Bodyweight"},
			{"Short row"},
		},
	)

	if g.NumRows() != 3 {
		t.Fatalf("rows = %d, want 3", g.NumRows())
	}

	col, ok := g.Col("VIDEO STATUS")
	if !ok || col != 1 {
		t.Errorf("Col = %d/%v", col, ok)
	}
	if _, ok := g.Col("video status"); ok {
		t.Error("Col should be exact-match")
	}
	if col, ok := g.ColFold("video status"); !ok || col != 1 {
		t.Errorf("ColFold = %d/%v", col, ok)
	}

	if v, ok := g.Get(0, "Category"); !ok || v != "Strength" {
		t.Errorf("Get = %q/%v", v, ok)
	}

	// Blank cells are missing, not empty strings.
	c := g.Cell(1, 1)
	if c.Present {
		t.Errorf("blank cell reported present: %+v", c)
	}

	// Rows shorter than the header read as missing, as do positions
	// outside the grid.
	if g.Cell(2, 2).Present {
		t.Error("short-row cell should be missing")
	}
	if g.Cell(99, 0).Present || g.Cell(0, 99).Present {
		t.Error("out-of-range cells should be missing")
	}
	if g.String(1, 1) != "" {
		t.Errorf("String for missing cell = %q", g.String(1, 1))
	}
}

// TestBookRoundTrip verifies a workbook written with excelize reads back
// through Grid with trimmed values, and Set targets data-row coordinates.
func TestBookRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "library.xlsx")

	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)
	cells := map[string]any{
		"A1": "EXERCISE NAME", "B1": "VIDEO STATUS",
		"A2": "  Back Squat  ", "B2": 1,
		"A3": "Push Up",
	}
	for cell, v := range cells {
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	book, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer book.Close()

	g, err := book.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if g.Headers()[0] != "EXERCISE NAME" {
		t.Errorf("headers = %v", g.Headers())
	}
	if v, _ := g.Get(0, "EXERCISE NAME"); v != "Back Squat" {
		t.Errorf("value = %q, want trimmed Back Squat", v)
	}
	if g.Cell(1, 1).Present {
		t.Error("B3 should be missing")
	}

	// Write into Push Up's status cell and read the file back.
	if err := book.Set(1, 1, 2); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "out.xlsx")
	if err := book.SaveAs(outPath); err != nil {
		t.Fatal(err)
	}

	g2, err := Load(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := g2.Get(1, "VIDEO STATUS"); !ok || v != "2" {
		t.Errorf("written status = %q/%v, want 2", v, ok)
	}
}
