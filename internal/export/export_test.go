package export

import (
	"testing"

	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/everfit"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/vocab"
)

// TestRowValues verifies one detail record projects back into the sheet's
// named columns.
func TestRowValues(t *testing.T) {
	detail := everfit.ExerciseDetail{
		Title:            "Back Squat",
		Instructions:     []string{"Brace.", "Squat."},
		Modality:         &everfit.TitledRef{Title: "Strength"},
		CategoryTypeName: "Strength",
		VideoLink:        "https://vid.example/squat",
		Fields: []string{
			"5cd912bb19ae01d22ea7600b", // reps
			"5cd912bb19ae01d22ea7600d", // weight
			vocab.RestFieldID,
		},
		MuscleGroups: []everfit.MuscleGroupDetail{
			{MuscleGroup: everfit.TitledRef{Title: "Quads"}},
			{MuscleGroup: everfit.TitledRef{Title: "Glutes"}},
		},
		MovementPatterns: []everfit.MovementPatternDetail{
			{MovementPattern: everfit.TitledRef{Title: "Lower Body Push"}},
		},
	}

	values := RowValues(detail)

	if values["EXERCISE NAME"] != "Back Squat" {
		t.Errorf("name = %v", values["EXERCISE NAME"])
	}
	if values["VIDEO STATUS"] != exportedStatus {
		t.Errorf("status = %v, want %d", values["VIDEO STATUS"], exportedStatus)
	}
	if values["Description"] != 1 {
		t.Errorf("description flag = %v, want 1", values["Description"])
	}
	if values["Modality"] != "Strength" {
		t.Errorf("modality = %v", values["Modality"])
	}
	if values["Instructions"] != "Brace.\nSquat." {
		t.Errorf("instructions = %v", values["Instructions"])
	}
	if values["Tracking fields"] != "Reps, Weight" {
		t.Errorf("tracking fields = %v", values["Tracking fields"])
	}
	if values["Muscle group"] != "Quads" || values["Muscle group 2"] != "Glutes" || values["Muscle group 3"] != "" {
		t.Errorf("muscle columns = %v / %v / %v",
			values["Muscle group"], values["Muscle group 2"], values["Muscle group 3"])
	}
	if values["Movement pattern 1"] != "Lower Body Push" || values["Movement pattern 2"] != "" {
		t.Errorf("pattern columns = %v / %v",
			values["Movement pattern 1"], values["Movement pattern 2"])
	}
}

// TestRowValuesEmptyDetail verifies a bare record produces blanks, a zero
// description flag, and no tracking labels.
func TestRowValuesEmptyDetail(t *testing.T) {
	values := RowValues(everfit.ExerciseDetail{Title: "Mystery Move"})

	if values["Description"] != 0 {
		t.Errorf("description flag = %v, want 0", values["Description"])
	}
	if values["Modality"] != "" {
		t.Errorf("modality = %v, want blank", values["Modality"])
	}
	if values["Tracking fields"] != "" {
		t.Errorf("tracking fields = %v, want blank", values["Tracking fields"])
	}
}

// TestTrackingFieldList verifies rest stripping, label casing, and the
// Unknown fallback for ids outside the vocabulary.
func TestTrackingFieldList(t *testing.T) {
	got := trackingFieldList([]string{
		"5cd912bb19ae01d22ea7600b", // reps
		"not-a-real-id",
		vocab.RestFieldID,
	})
	if got != "Reps, Unknown" {
		t.Errorf("list = %q, want \"Reps, Unknown\"", got)
	}

	// Rest alone renders as no user fields.
	if got := trackingFieldList([]string{vocab.RestFieldID}); got != "" {
		t.Errorf("rest-only list = %q, want empty", got)
	}
}

// TestTagSentinel verifies the case-insensitive column match.
func TestTagSentinel(t *testing.T) {
	tags := []string{"Balance", "explosive"}

	if !TagSentinel(tags, "BALANCE") {
		t.Error("BALANCE should match Balance")
	}
	if !TagSentinel(tags, "Explosive") {
		t.Error("Explosive should match explosive")
	}
	if TagSentinel(tags, "Unilateral") {
		t.Error("Unilateral should not match")
	}
}
