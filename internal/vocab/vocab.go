// Package vocab maps human-readable exercise classification labels to the
// stable identifiers the coaching platform assigns them. The tables are
// closed: ids are platform-owned and never generated locally.
package vocab

import (
	"fmt"
	"strings"
	"unicode"
)

// UnknownValueError reports a label that does not resolve against its
// controlled vocabulary.
type UnknownValueError struct {
	Kind  string // "modality", "movement pattern", "muscle group", "tracking field"
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("%s %q not recognized", e.Kind, e.Value)
}

// Well-known ids used by the payload compiler.
const (
	// StrengthCategoryID is the fallback for absent or unrecognized categories.
	StrengthCategoryID = "5cd912c319ae01d22ea76012"

	// DefaultModalityID is the platform default kept when no modality is given.
	DefaultModalityID = "66013e83b117d35345209b07"

	// RestFieldID is the mandatory trailing tracking field on every exercise.
	RestFieldID = "5cd912bb19ae01d22ea76011"
)

var categoryIDs = map[string]string{
	"strength":        "5cd912c319ae01d22ea76012",
	"bodyweight":      "5cd912c319ae01d22ea76013",
	"timed":           "5cd912c319ae01d22ea76016",
	"distance(long)":  "5cd912c319ae01d22ea76014",
	"distance(short)": "5cd912c319ae01d22ea76015",
}

var modalityIDs = map[string]string{
	"activation":        "66013e83b117d35345209aff",
	"agility":           "66013e83b117d35345209b02",
	"cardio":            "66013e83b117d35345209afe",
	"conditioning":      "66013e83b117d35345209b00",
	"mobility":          "66013e83b117d35345209b01",
	"myofascialrelease": "66013e83b117d35345209b05",
	"power":             "66013e83b117d35345209b03",
	"strength":          "66013e83b117d35345209b04",
}

var movementPatternIDs = map[string]string{
	"carry/gait":              "66013f2fb117d35345209b0f",
	"corebracing":             "66013f2fb117d35345209b09",
	"coreflexion/extension":   "66013f2fb117d35345209b08",
	"corerotation":            "66013f2fb117d35345209b0d",
	"locomotion":              "66013f2fb117d35345209b0a",
	"lowerbodyhinge":          "66013f2fb117d35345209b11",
	"lowerbodypush":           "66013f2fb117d35345209b0b",
	"upperbodyhorizontalpull": "66013f2fb117d35345209b10",
	"upperbodyhorizontalpush": "66013f2fb117d35345209b0e",
	"upperbodyverticalpull":   "66013f2fb117d35345209b0c",
	"upperbodyverticalpush":   "66013f2fb117d35345209b12",
}

var muscleGroupIDs = map[string]string{
	"biceps":         "66013f86b117d35345209b13",
	"chest":          "66013f86b117d35345209b16",
	"core":           "662b72683492f38039adf12e",
	"forearms":       "66013f86b117d35345209b19",
	"fullbody":       "6606b1fdc2e0a672bf06273a",
	"glutes":         "66013f86b117d35345209b17",
	"hamstrings":     "66013f86b117d35345209b1a",
	"hip&groin":      "66013f86b117d35345209b1d",
	"lowerback":      "662b72683492f38039adf12f",
	"lowerbody":      "6606b228c2e0a672bf06273c",
	"lowerleg":       "66013f86b117d35345209b15",
	"midback":        "66013f86b117d35345209b1b",
	"quads":          "66013f86b117d35345209b1c",
	"shoulders":      "66013f86b117d35345209b18",
	"triceps":        "66013f86b117d35345209b1f",
	"upperback&neck": "66013f86b117d35345209b1e",
	"upperbody":      "6606b219c2e0a672bf06273b",
}

var trackingFieldIDs = map[string]string{
	"time":            "5cd912bb19ae01d22ea76006",
	"speed":           "5cd912bb19ae01d22ea76007",
	"cadence":         "5cd912bb19ae01d22ea76008",
	"distance(long)":  "5cd912bb19ae01d22ea76009",
	"distance(short)": "5cd912bb19ae01d22ea7600a",
	"reps":            "5cd912bb19ae01d22ea7600b",
	"%1rm":            "5cd912bb19ae01d22ea7600c",
	"weight":          "5cd912bb19ae01d22ea7600d",
	"rpe":             "5cd912bb19ae01d22ea7600e",
	"rir":             "62e74fe228375a001b9c9ab3",
	"heartrate":       "5cd912bb19ae01d22ea7600f",
	"%hr":             "62e74fe228375a001b9c9ab4",
	"calories":        "5cd912bb19ae01d22ea76010",
	"watts":           "60a3a8dc5055501fba769b2f",
	"rpm":             "60a3a9115055501fba76a7ae",
	"round":           "60decc9a46b851e3698d840f",
}

// trackingFieldLabels is the reverse of trackingFieldIDs, for export.
var trackingFieldLabels = func() map[string]string {
	m := make(map[string]string, len(trackingFieldIDs))
	for label, id := range trackingFieldIDs {
		m[id] = label
	}
	return m
}()

// normalize lowercases a label and strips all whitespace, so
// "Distance (Long)" and "distance(long)" resolve identically.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// CategoryID resolves a category label. Unknown or empty labels fall back
// to the strength category: every exercise must carry a category, so this
// lookup is deliberately forgiving while the others below are strict.
func CategoryID(label string) string {
	if id, ok := categoryIDs[normalize(label)]; ok {
		return id
	}
	return StrengthCategoryID
}

// ModalityID resolves a modality label.
func ModalityID(label string) (string, error) {
	if id, ok := modalityIDs[normalize(label)]; ok {
		return id, nil
	}
	return "", &UnknownValueError{Kind: "modality", Value: label}
}

// MovementPatternID resolves a movement-pattern label.
func MovementPatternID(label string) (string, error) {
	if id, ok := movementPatternIDs[normalize(label)]; ok {
		return id, nil
	}
	return "", &UnknownValueError{Kind: "movement pattern", Value: label}
}

// MuscleGroupID resolves a muscle-group label.
func MuscleGroupID(label string) (string, error) {
	if id, ok := muscleGroupIDs[normalize(label)]; ok {
		return id, nil
	}
	return "", &UnknownValueError{Kind: "muscle group", Value: label}
}

// TrackingFieldID resolves a tracking-field label.
func TrackingFieldID(label string) (string, error) {
	if id, ok := trackingFieldIDs[normalize(label)]; ok {
		return id, nil
	}
	return "", &UnknownValueError{Kind: "tracking field", Value: label}
}

// TrackingFieldLabel returns the display label for a tracking-field id,
// capitalized for the sheet ("reps" -> "Reps").
func TrackingFieldLabel(id string) (string, bool) {
	label, ok := trackingFieldLabels[id]
	if !ok {
		return "", false
	}
	return strings.ToUpper(label[:1]) + label[1:], true
}
