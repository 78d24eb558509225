package everfit

import "encoding/json"

// ExercisePayload is the request body for creating or updating an
// exercise-library entry.
type ExercisePayload struct {
	Author           string               `json:"author"`
	AuthorName       string               `json:"author_name"`
	Title            string               `json:"title"`
	Instructions     []string             `json:"instructions"`
	Fields           []string             `json:"fields"`
	Link             string               `json:"link"`
	Modality         string               `json:"modality"`
	Preview300       string               `json:"preview_300"`
	Share            int                  `json:"share"`
	Picture          []string             `json:"picture"`
	ThumbnailURL     string               `json:"thumbnail_url"`
	Video            string               `json:"video"`
	VideoLink        string               `json:"videoLink"`
	CategoryType     string               `json:"category_type"`
	CategoryTypeName string               `json:"category_type_name"`
	MovementPatterns []MovementPatternRef `json:"movement_patterns,omitempty"`
	MuscleGroups     []MuscleGroupRef     `json:"muscle_groups,omitempty"`
	Tags             []string             `json:"tags"`
}

// MovementPatternRef links a payload to a movement-pattern id.
type MovementPatternRef struct {
	IsPrimary       bool   `json:"is_primary"`
	MovementPattern string `json:"movement_pattern"`
}

// MuscleGroupRef links a payload to a muscle-group id.
type MuscleGroupRef struct {
	IsPrimary   bool   `json:"is_primary"`
	MuscleGroup string `json:"muscle_group"`
}

// WorkoutPayload is the request body for creating a workout.
type WorkoutPayload struct {
	Author          string           `json:"author"`
	ConversionID    *string          `json:"conversion_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Timezone        string           `json:"timezone"`
	IsGeneratedByAI bool             `json:"is_generated_by_ai"`
	Sections        []SectionPayload `json:"sections"`
	Share           int              `json:"share"`
	Tags            []string         `json:"tags"`
}

// SectionPayload is one workout section on the wire. Time is the empty
// string except for amrap sections, which publish their duration in seconds.
type SectionPayload struct {
	Attachments []string          `json:"attachments"`
	Exercises   []SupersetPayload `json:"exercises"`
	Format      string            `json:"format"`
	Note        string            `json:"note"`
	Time        any               `json:"time"`
	Round       int               `json:"round,omitempty"`
	Title       string            `json:"title"`
	Type        string            `json:"type"`
}

// SupersetPayload wraps a group of exercises performed back-to-back.
type SupersetPayload struct {
	Supersets []WorkoutExercise `json:"supersets"`
}

// WorkoutExercise is one exercise entry inside a superset. ExerciseInstance
// embeds the full detail record fetched from the library.
type WorkoutExercise struct {
	Alternatives     []string             `json:"alternatives"`
	EachSide         bool                 `json:"each_side"`
	Exercise         string               `json:"exercise"`
	ExerciseInstance json.RawMessage      `json:"exercise_instance"`
	Note             string               `json:"note"`
	Tempo            string               `json:"tempo"`
	TrainingSets     []TrainingSetPayload `json:"training_sets"`
}

// SetValue wraps a scalar set field the way the platform expects it.
type SetValue struct {
	Value string `json:"value"`
}

// TrainingSetPayload carries only the fields the section's format calls
// for; an unrecognized format produces a set with no fields at all.
type TrainingSetPayload struct {
	Reps     *SetValue `json:"reps,omitempty"`
	Duration *SetValue `json:"duration,omitempty"`
	Rest     *SetValue `json:"rest,omitempty"`
}

// CatalogExercise is one entry of the remote exercise catalog.
type CatalogExercise struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// Tag is one entry of the remote tag catalog.
type Tag struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// ExerciseDetail is the subset of a library detail record the export path
// projects back into sheet columns. Workout compilation embeds the raw
// detail JSON instead, so unknown fields survive the round trip.
type ExerciseDetail struct {
	Title            string                  `json:"title"`
	Instructions     []string                `json:"instructions"`
	Modality         *TitledRef              `json:"modality"`
	MuscleGroups     []MuscleGroupDetail     `json:"muscle_groups"`
	MovementPatterns []MovementPatternDetail `json:"movement_patterns"`
	CategoryTypeName string                  `json:"category_type_name"`
	Fields           []string                `json:"fields"`
	VideoLink        string                  `json:"videoLink"`
	Tags             []Tag                   `json:"tags"`
}

// TitledRef is a reference whose display title is all we need.
type TitledRef struct {
	Title string `json:"title"`
}

// MuscleGroupDetail nests a muscle group the way detail records do.
type MuscleGroupDetail struct {
	MuscleGroup TitledRef `json:"muscle_group"`
}

// MovementPatternDetail nests a movement pattern the way detail records do.
type MovementPatternDetail struct {
	MovementPattern TitledRef `json:"movement_pattern"`
}
