// Package extract locates anchor-labelled record blocks in a sheet grid and
// rebuilds the workout tree from their fixed positional offsets.
package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/record"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/sheet"
)

// Column headers naming where each anchor class lives.
const (
	colWorkouts  = "Workouts"
	colSections  = "Sections"
	colSupersets = "Supersets"
	colExercises = "Exercises"
	colSets      = "Sets"
)

// Marker labels that anchor each record block. A block's fields sit on the
// row immediately below its anchor, starting at the anchor's column.
const (
	markerWorkout  = "Status"
	markerSection  = "Section name"
	markerSuperset = "Superset num exercises"
	markerExercise = "Exercise name"
	markerSet      = "set reps" // matched as a case-insensitive substring
)

// StructureError reports that the sheet's declared counts and its anchors
// disagree: a parent asked for more children than the sheet contains. It is
// fatal for the whole file.
type StructureError struct {
	Class string
	Msg   string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("sheet structure invalid (%s): %s", e.Class, e.Msg)
}

// position is one anchor's location.
type position struct {
	row, col int
}

// anchorQueue holds one class's anchors in top-to-bottom row order. Anchors
// are consumed strictly front-to-back; a popped anchor is never revisited.
type anchorQueue struct {
	class     string
	positions []position
}

func (q *anchorQueue) pop() (position, error) {
	if len(q.positions) == 0 {
		return position{}, &StructureError{
			Class: q.class,
			Msg:   fmt.Sprintf("ran out of %s anchors before the declared count was reached", q.class),
		}
	}
	p := q.positions[0]
	q.positions = q.positions[1:]
	return p, nil
}

// scanAnchors collects every row where the named column matches the marker.
func scanAnchors(g *sheet.Grid, class, column, marker string, substring bool) (*anchorQueue, error) {
	col, ok := g.Col(column)
	if !ok {
		return nil, &StructureError{Class: class, Msg: fmt.Sprintf("column %q not found", column)}
	}
	q := &anchorQueue{class: class}
	for row := 0; row < g.NumRows(); row++ {
		c := g.Cell(row, col)
		if !c.Present {
			continue
		}
		if substring {
			if strings.Contains(strings.ToLower(c.Value), marker) {
				q.positions = append(q.positions, position{row, col})
			}
		} else if c.Value == marker {
			q.positions = append(q.positions, position{row, col})
		}
	}
	return q, nil
}

// queues bundles the five per-class anchor queues for one extraction pass.
type queues struct {
	workouts  *anchorQueue
	sections  *anchorQueue
	supersets *anchorQueue
	exercises *anchorQueue
	sets      *anchorQueue
}

func scanAll(g *sheet.Grid) (*queues, error) {
	var (
		qs  queues
		err error
	)
	if qs.workouts, err = scanAnchors(g, "workout", colWorkouts, markerWorkout, false); err != nil {
		return nil, err
	}
	if qs.sections, err = scanAnchors(g, "section", colSections, markerSection, false); err != nil {
		return nil, err
	}
	if qs.supersets, err = scanAnchors(g, "superset", colSupersets, markerSuperset, false); err != nil {
		return nil, err
	}
	if qs.exercises, err = scanAnchors(g, "exercise", colExercises, markerExercise, false); err != nil {
		return nil, err
	}
	if qs.sets, err = scanAnchors(g, "set", colSets, markerSet, true); err != nil {
		return nil, err
	}
	return &qs, nil
}

// Workouts extracts every workout tree from the grid, in sheet order.
// Workouts that are not ready are still fully extracted so that their
// children are consumed from the queues; the sync layer skips them later.
func Workouts(g *sheet.Grid) ([]record.Workout, error) {
	qs, err := scanAll(g)
	if err != nil {
		return nil, err
	}

	var workouts []record.Workout
	for len(qs.workouts.positions) > 0 {
		p, _ := qs.workouts.pop()
		w, err := readWorkout(g, p, qs)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

// readWorkout reads the four workout fields below the anchor and descends
// into exactly NumSections section blocks.
func readWorkout(g *sheet.Grid, p position, qs *queues) (record.Workout, error) {
	w := record.Workout{
		Title:       g.String(p.row+1, p.col+1),
		Description: g.String(p.row+1, p.col+2),
	}
	w.Status = cellInt(g, p.row+1, p.col)

	n, err := cellCount(g, p.row+1, p.col+3, "workout", "num sections")
	if err != nil {
		return w, err
	}
	w.NumSections = n

	for i := 0; i < w.NumSections; i++ {
		sp, err := qs.sections.pop()
		if err != nil {
			return w, err
		}
		s, err := readSection(g, sp, qs)
		if err != nil {
			return w, err
		}
		w.Sections = append(w.Sections, s)
	}
	return w, nil
}

func readSection(g *sheet.Grid, p position, qs *queues) (record.Section, error) {
	s := record.Section{
		Name:     g.String(p.row+1, p.col),
		Format:   record.ParseFormat(g.String(p.row+1, p.col+1)),
		Type:     record.SnakeCase(g.String(p.row+1, p.col+2)),
		Note:     g.String(p.row+1, p.col+3),
		Duration: g.String(p.row+1, p.col+4),
	}

	n, err := cellCount(g, p.row+1, p.col+5, "section", "num supersets")
	if err != nil {
		return s, err
	}
	s.NumSupersets = n

	for i := 0; i < s.NumSupersets; i++ {
		sp, err := qs.supersets.pop()
		if err != nil {
			return s, err
		}
		ss, err := readSuperset(g, sp, qs)
		if err != nil {
			return s, err
		}
		s.Supersets = append(s.Supersets, ss)
	}
	return s, nil
}

func readSuperset(g *sheet.Grid, p position, qs *queues) (record.Superset, error) {
	var ss record.Superset

	n, err := cellCount(g, p.row+1, p.col, "superset", "num exercises")
	if err != nil {
		return ss, err
	}
	ss.NumExercises = n

	for i := 0; i < ss.NumExercises; i++ {
		ep, err := qs.exercises.pop()
		if err != nil {
			return ss, err
		}
		e, err := readExercise(g, ep, qs)
		if err != nil {
			return ss, err
		}
		ss.Exercises = append(ss.Exercises, e)
	}
	return ss, nil
}

func readExercise(g *sheet.Grid, p position, qs *queues) (record.Exercise, error) {
	e := record.Exercise{
		Name:     g.String(p.row+1, p.col),
		Note:     g.String(p.row+1, p.col+1),
		Tempo:    g.String(p.row+1, p.col+2),
		EachSide: cellInt(g, p.row+1, p.col+3) == 1,
	}

	n, err := cellCount(g, p.row+1, p.col+4, "exercise", "num sets")
	if err != nil {
		return e, err
	}
	e.NumSets = n

	for i := 0; i < e.NumSets; i++ {
		sp, err := qs.sets.pop()
		if err != nil {
			return e, err
		}
		e.Sets = append(e.Sets, record.TrainingSet{
			Reps:     g.String(sp.row+1, sp.col),
			Rest:     g.String(sp.row+1, sp.col+1),
			Duration: g.String(sp.row+1, sp.col+2),
		})
	}
	return e, nil
}

// cellInt parses a cell as an integer, tolerating the decimal point that
// numeric cells sometimes pick up ("1.0"). Missing or unparsable cells
// yield zero.
func cellInt(g *sheet.Grid, row, col int) int {
	c := g.Cell(row, col)
	if !c.Present {
		return 0
	}
	if n, err := strconv.Atoi(c.Value); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(c.Value, 64); err == nil {
		return int(f)
	}
	return 0
}

// cellCount parses a declared child count. Counts are trusted to drive the
// descent, so a missing or malformed count is a structural failure.
func cellCount(g *sheet.Grid, row, col int, class, field string) (int, error) {
	c := g.Cell(row, col)
	if !c.Present {
		return 0, &StructureError{Class: class, Msg: fmt.Sprintf("%s missing at row %d", field, row)}
	}
	if n, err := strconv.Atoi(c.Value); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(c.Value, 64); err == nil {
		return int(f), nil
	}
	return 0, &StructureError{Class: class, Msg: fmt.Sprintf("%s %q is not a number", field, c.Value)}
}
