// Package export pulls the remote exercise library back into a spreadsheet
// template, one row per exercise.
package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/everfit"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/sheet"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/vocab"
)

// exportedStatus marks exported rows so a later sync pass will not re-add
// them unchanged.
const exportedStatus = 2

// Exporter writes the remote library into a blank template sheet.
type Exporter struct {
	client *everfit.Client
	token  string
	log    *slog.Logger
}

// New creates an Exporter.
func New(client *everfit.Client, token string, log *slog.Logger) *Exporter {
	return &Exporter{client: client, token: token, log: log}
}

// Run fetches the catalog plus per-exercise detail and writes every record
// into the template at templatePath, saving the result to outPath.
// Exercises whose detail cannot be fetched are skipped and reported.
func (e *Exporter) Run(templatePath, outPath string) error {
	book, err := sheet.Open(templatePath)
	if err != nil {
		return err
	}
	defer book.Close()

	g, err := book.Grid()
	if err != nil {
		return err
	}

	startRow, err := anchorRow(g)
	if err != nil {
		return err
	}

	catalog, err := e.client.FetchExerciseCatalog(e.token)
	if err != nil {
		return err
	}
	e.log.Info("fetched exercise catalog", "exercises", len(catalog))

	row := startRow
	// Walk the catalog newest-last so the sheet reads oldest-first.
	for i := len(catalog) - 1; i >= 0; i-- {
		raw, err := e.client.FetchExerciseDetail(e.token, catalog[i].ID)
		if err != nil {
			e.log.Warn("skipping exercise, detail fetch failed", "exercise", catalog[i].Title, "error", err)
			continue
		}
		var detail everfit.ExerciseDetail
		if err := json.Unmarshal(raw, &detail); err != nil {
			e.log.Warn("skipping exercise, detail unreadable", "exercise", catalog[i].Title, "error", err)
			continue
		}

		if err := writeRow(book, g, row, detail); err != nil {
			return fmt.Errorf("writing row for %q: %w", detail.Title, err)
		}
		e.log.Info("exported exercise", "exercise", detail.Title)
		row++
	}

	return book.SaveAs(outPath)
}

// anchorRow finds the data row holding the library anchor; exported rows
// start right below it.
func anchorRow(g *sheet.Grid) (int, error) {
	for row := 0; row < g.NumRows(); row++ {
		if g.String(row, 0) == "EXERCISE NAME" {
			return row + 1, nil
		}
	}
	return 0, fmt.Errorf("anchor row EXERCISE NAME not found in template")
}

// skillOrEquipment names the tag columns that carry free text on input;
// they are left blank on export rather than filled with sentinels.
var skillOrEquipment = map[string]bool{
	"SKILL NAME 1": true,
	"SKILL NAME 2": true,
	"SKILL NAME 3": true,
	"EQUIPMENT 1":  true,
	"EQUIPMENT 2":  true,
	"EQUIPMENT 3":  true,
	"EQUIPMENT 4":  true,
}

// writeRow projects one detail record into the template's columns. Named
// columns are matched case-insensitively; the columns after "Video link"
// get 0/1 tag sentinels.
func writeRow(book *sheet.Book, g *sheet.Grid, row int, detail everfit.ExerciseDetail) error {
	values := RowValues(detail)
	for name, v := range values {
		col, ok := g.ColFold(name)
		if !ok {
			continue
		}
		if err := book.Set(row, col, v); err != nil {
			return err
		}
	}

	videoLinkCol, ok := g.Col("Video link")
	if !ok {
		return nil
	}
	tagNames := make([]string, 0, len(detail.Tags))
	for _, t := range detail.Tags {
		tagNames = append(tagNames, t.Name)
	}
	headers := g.Headers()
	for col := videoLinkCol + 1; col < len(headers); col++ {
		var v any
		switch {
		case skillOrEquipment[headers[col]]:
			v = ""
		case TagSentinel(tagNames, headers[col]):
			v = 1
		default:
			v = 0
		}
		if err := book.Set(row, col, v); err != nil {
			return err
		}
	}
	return nil
}

// RowValues maps one detail record to the named template columns.
func RowValues(detail everfit.ExerciseDetail) map[string]any {
	hasDescription := 0
	if len(detail.Instructions) > 0 {
		hasDescription = 1
	}

	modality := ""
	if detail.Modality != nil {
		modality = detail.Modality.Title
	}

	values := map[string]any{
		"EXERCISE NAME":   detail.Title,
		"VIDEO STATUS":    exportedStatus,
		"Description":     hasDescription,
		"Modality":        modality,
		"Category":        detail.CategoryTypeName,
		"Tracking fields": trackingFieldList(detail.Fields),
		"Instructions":    strings.Join(detail.Instructions, "\n"),
		"Video link":      detail.VideoLink,
	}

	muscleCols := []string{"Muscle group", "Muscle group 2", "Muscle group 3"}
	for i, name := range muscleCols {
		v := ""
		if i < len(detail.MuscleGroups) {
			v = detail.MuscleGroups[i].MuscleGroup.Title
		}
		values[name] = v
	}

	patternCols := []string{"Movement pattern 1", "Movement pattern 2", "Movement pattern 3"}
	for i, name := range patternCols {
		v := ""
		if i < len(detail.MovementPatterns) {
			v = detail.MovementPatterns[i].MovementPattern.Title
		}
		values[name] = v
	}

	return values
}

// trackingFieldList renders the detail's field ids back to display labels,
// dropping the mandatory trailing Rest field that compilation appended.
func trackingFieldList(fields []string) string {
	if len(fields) == 0 {
		return ""
	}
	userFields := fields
	if fields[len(fields)-1] == vocab.RestFieldID {
		userFields = fields[:len(fields)-1]
	}
	labels := make([]string, 0, len(userFields))
	for _, id := range userFields {
		label, ok := vocab.TrackingFieldLabel(id)
		if !ok {
			label = "Unknown"
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, ", ")
}

// TagSentinel reports whether any of the exercise's tag names matches the
// column, case-insensitively.
func TagSentinel(tagNames []string, column string) bool {
	for _, t := range tagNames {
		if strings.EqualFold(t, column) {
			return true
		}
	}
	return false
}
