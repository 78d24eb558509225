package record

// ExerciseRow is one flat exercise-library row from the sheet.
type ExerciseRow struct {
	Row              int // data-row index in the grid, for write-back
	Name             string
	VideoStatus      int
	Category         string // raw label; empty when the cell is missing
	Modality         string
	MuscleGroups     []string // up to 3, positional, may contain empties
	MovementPatterns []string // up to 3, positional, may contain empties
	TrackingFields   string   // raw comma-separated labels
	Instructions     string
	VideoLink        string
	TagFlags         []TagFlag // sheet column order, everything after "Video link"
}

// TagFlag is one raw tag column value. Most columns are 0/1 flags whose
// column name becomes the tag; the skill and equipment columns carry the
// tag name as their value.
type TagFlag struct {
	Column  string
	Value   string
	Present bool
}

// tagValueColumns are the flag columns whose cell value, not column name,
// is the requested tag.
var tagValueColumns = map[string]bool{
	"SKILL NAME 1": true,
	"SKILL NAME 2": true,
	"SKILL NAME 3": true,
	"EQUIPMENT 1":  true,
	"EQUIPMENT 2":  true,
	"EQUIPMENT 3":  true,
	"EQUIPMENT 4":  true,
}

// ValueColumn reports whether the flag's column carries a literal tag name.
func (f TagFlag) ValueColumn() bool { return tagValueColumns[f.Column] }

// RequestedTags flattens the row's tag columns into an ordered list of
// requested tag names. Flag columns contribute their column name when
// truthy; skill and equipment columns contribute their literal value.
func (r ExerciseRow) RequestedTags() []string {
	var names []string
	for _, f := range r.TagFlags {
		if !f.Present || f.Value == "" || f.Value == "0" {
			continue
		}
		if f.ValueColumn() {
			names = append(names, f.Value)
		} else {
			names = append(names, f.Column)
		}
	}
	return names
}
