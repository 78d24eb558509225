package vocab

import (
	"errors"
	"testing"
)

// TestCategoryID verifies the forgiving category lookup: known labels
// resolve regardless of casing and spacing, everything else falls back to
// strength.
func TestCategoryID(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Strength", StrengthCategoryID},
		{"strength", StrengthCategoryID},
		{"Distance (Long)", "5cd912c319ae01d22ea76014"},
		{"distance(long)", "5cd912c319ae01d22ea76014"},
		{"Bodyweight", "5cd912c319ae01d22ea76013"},
		{"", StrengthCategoryID},
		{"Yoga", StrengthCategoryID},
	}
	for _, c := range cases {
		if got := CategoryID(c.label); got != c.want {
			t.Errorf("CategoryID(%q) = %s, want %s", c.label, got, c.want)
		}
	}
}

// TestModalityID verifies spacing-insensitive resolution and the strict
// failure on unknown labels.
func TestModalityID(t *testing.T) {
	id, err := ModalityID("Myofascial Release")
	if err != nil {
		t.Fatal(err)
	}
	if id != "66013e83b117d35345209b05" {
		t.Errorf("id=%s", id)
	}

	id2, err := ModalityID("myofascialrelease")
	if err != nil {
		t.Fatal(err)
	}
	if id2 != id {
		t.Errorf("spacing variants resolved differently: %s vs %s", id, id2)
	}

	_, err = ModalityID("Pilates")
	var unknown *UnknownValueError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownValueError, got %v", err)
	}
	if unknown.Kind != "modality" || unknown.Value != "Pilates" {
		t.Errorf("error = %+v", unknown)
	}
}

// TestMovementPatternID covers the slash and ampersand labels that
// normalization must keep intact.
func TestMovementPatternID(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Lower Body Hinge", "66013f2fb117d35345209b11"},
		{"Core Flexion / Extension", "66013f2fb117d35345209b08"},
		{"Carry / Gait", "66013f2fb117d35345209b0f"},
		{"UPPER BODY VERTICAL PULL", "66013f2fb117d35345209b0c"},
	}
	for _, c := range cases {
		got, err := MovementPatternID(c.label)
		if err != nil {
			t.Errorf("MovementPatternID(%q): %v", c.label, err)
			continue
		}
		if got != c.want {
			t.Errorf("MovementPatternID(%q) = %s, want %s", c.label, got, c.want)
		}
	}

	if _, err := MovementPatternID("Crawling"); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

// TestMuscleGroupID verifies a representative sample plus strictness.
func TestMuscleGroupID(t *testing.T) {
	got, err := MuscleGroupID("Hip & Groin")
	if err != nil {
		t.Fatal(err)
	}
	if got != "66013f86b117d35345209b1d" {
		t.Errorf("id=%s", got)
	}

	got, err = MuscleGroupID("Full Body")
	if err != nil {
		t.Fatal(err)
	}
	if got != "6606b1fdc2e0a672bf06273a" {
		t.Errorf("id=%s", got)
	}

	_, err = MuscleGroupID("Neck Flexors")
	var unknown *UnknownValueError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownValueError, got %v", err)
	}
}

// TestTrackingFieldRoundTrip verifies label-to-id resolution and the
// capitalized reverse lookup used by the exporter.
func TestTrackingFieldRoundTrip(t *testing.T) {
	id, err := TrackingFieldID("% 1RM")
	if err != nil {
		t.Fatal(err)
	}
	if id != "5cd912bb19ae01d22ea7600c" {
		t.Errorf("id=%s", id)
	}

	label, ok := TrackingFieldLabel("5cd912bb19ae01d22ea7600b")
	if !ok {
		t.Fatal("reps id should reverse-resolve")
	}
	if label != "Reps" {
		t.Errorf("label=%q, want Reps", label)
	}

	if _, ok := TrackingFieldLabel(RestFieldID); ok {
		t.Error("rest id has no sheet label")
	}
}
