package extract

import (
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/record"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/sheet"
)

// libraryAnchor marks the row below which flat exercise rows begin. It
// appears both as a header and as a literal cell in the first column.
const libraryAnchor = "EXERCISE NAME"

// LibraryRows extracts the flat exercise-library rows: everything below the
// anchor row until the first row whose name cell is missing. Rows whose
// video status does not match any requested sentinel are dropped by the
// callers, not here, so one scan serves the add, update, and translate
// paths.
func LibraryRows(g *sheet.Grid) ([]record.ExerciseRow, error) {
	start := -1
	for row := 0; row < g.NumRows(); row++ {
		if g.String(row, 0) == libraryAnchor {
			start = row + 1
			break
		}
	}
	if start < 0 {
		return nil, &StructureError{Class: "library", Msg: "anchor row " + libraryAnchor + " not found in the first column"}
	}

	flagStart := tagFlagStart(g)

	var rows []record.ExerciseRow
	for row := start; row < g.NumRows(); row++ {
		if !g.Cell(row, 0).Present {
			break
		}
		r := record.ExerciseRow{
			Row:          row,
			Name:         readCol(g, row, "EXERCISE NAME"),
			VideoStatus:  cellIntByName(g, row, "VIDEO STATUS"),
			Modality:     readCol(g, row, "Modality"),
			Instructions: readCol(g, row, "Instructions"),
			VideoLink:    readCol(g, row, "Video link"),
			MuscleGroups: []string{
				readCol(g, row, "Muscle group"),
				readCol(g, row, "Muscle group 2"),
				readCol(g, row, "Muscle group 3"),
			},
			MovementPatterns: []string{
				readCol(g, row, "Movement pattern 1"),
				readCol(g, row, "Movement pattern 2"),
				readCol(g, row, "Movement pattern 3"),
			},
			TrackingFields: readCol(g, row, "Tracking fields"),
		}
		// Category keeps missing distinct from empty: the compiler preserves
		// the raw label for display and only defaults the id.
		r.Category = readCol(g, row, "Category")

		if flagStart >= 0 {
			headers := g.Headers()
			for col := flagStart; col < len(headers); col++ {
				c := g.Cell(row, col)
				r.TagFlags = append(r.TagFlags, record.TagFlag{
					Column:  headers[col],
					Value:   c.Value,
					Present: c.Present,
				})
			}
		}

		rows = append(rows, r)
	}
	return rows, nil
}

// FilterByStatus keeps only the rows whose video status equals want.
func FilterByStatus(rows []record.ExerciseRow, want int) []record.ExerciseRow {
	var out []record.ExerciseRow
	for _, r := range rows {
		if r.VideoStatus == want {
			out = append(out, r)
		}
	}
	return out
}

// tagFlagStart returns the first tag column: the one after "Video link".
func tagFlagStart(g *sheet.Grid) int {
	if col, ok := g.Col("Video link"); ok {
		return col + 1
	}
	return -1
}

func readCol(g *sheet.Grid, row int, name string) string {
	v, _ := g.Get(row, name)
	return v
}

func cellIntByName(g *sheet.Grid, row int, name string) int {
	col, ok := g.Col(name)
	if !ok {
		return 0
	}
	return cellInt(g, row, col)
}
