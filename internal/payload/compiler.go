// Package payload projects extracted records into the request shapes the
// coaching platform expects. The compiler never mutates the record tree.
package payload

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/everfit"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/record"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/vocab"
)

// TagReconciler resolves requested tag names to ids, creating missing tags.
type TagReconciler interface {
	Reconcile(names []string) ([]string, error)
}

// ExerciseDirectory resolves exercise titles against the remote library and
// fetches detail records for embedding in workout payloads.
type ExerciseDirectory interface {
	FindExercise(title string) (id string, ok bool, err error)
	ExerciseDetail(id string) (json.RawMessage, error)
}

// Compiler builds remote payloads from extracted records. Its collaborators
// are injected so tests can swap the remote-backed ones for fakes.
type Compiler struct {
	author     string
	authorName string
	timezone   string
	tags       TagReconciler
	directory  ExerciseDirectory
	log        *slog.Logger
}

// NewCompiler creates a compiler. tags may be nil when only workouts are
// compiled; directory may be nil when only library entries are compiled.
func NewCompiler(author, authorName, timezone string, tags TagReconciler, directory ExerciseDirectory, log *slog.Logger) *Compiler {
	return &Compiler{
		author:     author,
		authorName: authorName,
		timezone:   timezone,
		tags:       tags,
		directory:  directory,
		log:        log,
	}
}

// Exercise compiles one library row into an exercise payload.
func (c *Compiler) Exercise(row record.ExerciseRow) (everfit.ExercisePayload, error) {
	p := everfit.ExercisePayload{
		Author:       c.author,
		AuthorName:   c.authorName,
		Title:        row.Name,
		Instructions: splitInstructions(row.Instructions),
		Fields:       []string{},
		Modality:     vocab.DefaultModalityID,
		Picture:      []string{},
		VideoLink:    row.VideoLink,
		Tags:         []string{},
	}

	// Category is lenient: absent or unknown labels fall back to strength,
	// and the display name keeps whatever label (or default) was used.
	category := row.Category
	if category == "" {
		category = "strength"
	}
	p.CategoryType = vocab.CategoryID(category)
	p.CategoryTypeName = category

	// Modality is optional but strict: when present it must resolve, when
	// absent the platform default id stays untouched.
	if row.Modality != "" {
		id, err := vocab.ModalityID(row.Modality)
		if err != nil {
			return p, err
		}
		p.Modality = id
	}

	patterns, err := movementPatterns(row.MovementPatterns)
	if err != nil {
		return p, err
	}
	p.MovementPatterns = patterns

	muscles, err := muscleGroups(row.MuscleGroups)
	if err != nil {
		return p, err
	}
	p.MuscleGroups = muscles

	// Tracking fields are forgiving per item: labels that do not resolve
	// are dropped instead of failing the record. The trailing Rest field is
	// mandatory and always appended, even with zero user-supplied fields.
	for _, field := range strings.Split(row.TrackingFields, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := vocab.TrackingFieldID(field)
		if err != nil {
			c.log.Warn("dropping unrecognized tracking field", "exercise", row.Name, "field", field)
			continue
		}
		p.Fields = append(p.Fields, id)
	}
	p.Fields = append(p.Fields, vocab.RestFieldID)

	if c.tags != nil {
		ids, err := c.tags.Reconcile(row.RequestedTags())
		if err != nil {
			return p, err
		}
		if ids != nil {
			p.Tags = ids
		}
	}

	return p, nil
}

// movementPatterns resolves the positional pattern labels: the first
// non-empty entry is primary, and entries resolving to an already-seen id
// are dropped.
func movementPatterns(labels []string) ([]everfit.MovementPatternRef, error) {
	var refs []everfit.MovementPatternRef
	seen := make(map[string]bool)
	for _, label := range labels {
		if label == "" {
			continue
		}
		id, err := vocab.MovementPatternID(label)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, everfit.MovementPatternRef{
			IsPrimary:       len(refs) == 0,
			MovementPattern: id,
		})
	}
	return refs, nil
}

func muscleGroups(labels []string) ([]everfit.MuscleGroupRef, error) {
	var refs []everfit.MuscleGroupRef
	seen := make(map[string]bool)
	for _, label := range labels {
		if label == "" {
			continue
		}
		id, err := vocab.MuscleGroupID(label)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, everfit.MuscleGroupRef{
			IsPrimary:   len(refs) == 0,
			MuscleGroup: id,
		})
	}
	return refs, nil
}

// splitInstructions splits free text into lines. Blank input yields an
// empty, non-nil list; the platform rejects null instructions.
func splitInstructions(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
