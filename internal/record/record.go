// Package record holds the in-memory record trees extracted from a sheet.
// Trees are built once per run and read-only afterwards; payload compilation
// projects them into wire shapes without mutating them.
package record

import "strings"

// ReadyStatus is the sentinel marking a workout row complete and ready to sync.
const ReadyStatus = 1

// Format is a section's execution style. It decides which training-set
// fields apply when the section is compiled.
type Format string

const (
	FormatRegular  Format = "regular"
	FormatInterval Format = "interval"
	FormatEMOM     Format = "emom"
	FormatAMRAP    Format = "amrap"
	FormatTimed    Format = "timed"
	FormatForTime  Format = "for_time"
)

// ParseFormat normalizes a raw format label: trimmed, lowercased, spaces
// to underscores ("For Time" -> for_time). Unknown labels are kept; they
// compile to sets with no fields rather than failing the whole tree.
func ParseFormat(s string) Format {
	return Format(SnakeCase(s))
}

// SnakeCase converts a free-text section type to snake_case:
// "Warm Up" -> "warm_up".
func SnakeCase(s string) string {
	parts := strings.Split(strings.TrimSpace(s), " ")
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, "_")
}

// Workout is one extracted workout block.
type Workout struct {
	Status      int
	Title       string
	Description string
	NumSections int
	Sections    []Section
}

// Ready reports whether the workout should be synced.
func (w Workout) Ready() bool { return w.Status == ReadyStatus }

// Section is one block of a workout.
type Section struct {
	Name         string
	Format       Format
	Type         string // snake_cased free text
	Note         string
	Duration     string
	NumSupersets int
	Supersets    []Superset

	// Format-specific extras. The sheet does not carry them, so they hold
	// their defaults until a future sheet revision adds columns for them.
	AMRAPMinutes int // amrap only
	TimedRounds  int // timed only
}

// Superset groups exercises performed back-to-back with no rest between
// group members.
type Superset struct {
	NumExercises int
	Exercises    []Exercise
}

// Exercise is one exercise inside a superset.
type Exercise struct {
	Name     string
	Note     string
	Tempo    string
	EachSide bool
	NumSets  int
	Sets     []TrainingSet
}

// TrainingSet holds the raw per-set values. Which of them end up in the
// payload depends on the ancestor section's format.
type TrainingSet struct {
	Reps     string
	Rest     string
	Duration string
}
