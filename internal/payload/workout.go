package payload

import (
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/everfit"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/record"
)

const (
	defaultAMRAPMinutes = 30
	defaultTimedRounds  = 1
)

// Workout compiles one extracted workout tree into a create-workout payload.
// Exercise titles that cannot be resolved against the remote library are
// reported and compiled with an empty id; they never abort their siblings.
func (c *Compiler) Workout(w record.Workout) (everfit.WorkoutPayload, error) {
	p := everfit.WorkoutPayload{
		Author:      c.author,
		Title:       w.Title,
		Description: w.Description,
		Timezone:    c.timezone,
		Sections:    []everfit.SectionPayload{},
		Tags:        []string{},
	}

	for _, s := range w.Sections {
		sp, err := c.section(s)
		if err != nil {
			return p, err
		}
		p.Sections = append(p.Sections, sp)
	}
	return p, nil
}

func (c *Compiler) section(s record.Section) (everfit.SectionPayload, error) {
	sp := everfit.SectionPayload{
		Attachments: []string{},
		Exercises:   []everfit.SupersetPayload{},
		Format:      string(s.Format),
		Note:        s.Note,
		Time:        "",
		Title:       s.Name,
		Type:        s.Type,
	}

	switch s.Format {
	case record.FormatAMRAP:
		minutes := s.AMRAPMinutes
		if minutes == 0 {
			minutes = defaultAMRAPMinutes
		}
		sp.Time = minutes * 60
	case record.FormatTimed:
		rounds := s.TimedRounds
		if rounds == 0 {
			rounds = defaultTimedRounds
		}
		sp.Round = rounds
	case record.FormatEMOM:
		// The platform has no native EMOM; it is published as an interval
		// section while Type keeps the emom label for the coach.
		sp.Format = string(record.FormatInterval)
	}

	for _, ss := range s.Supersets {
		group := everfit.SupersetPayload{Supersets: []everfit.WorkoutExercise{}}
		for _, e := range ss.Exercises {
			we, err := c.workoutExercise(e, s.Format)
			if err != nil {
				return sp, err
			}
			group.Supersets = append(group.Supersets, we)
		}
		sp.Exercises = append(sp.Exercises, group)
	}
	return sp, nil
}

func (c *Compiler) workoutExercise(e record.Exercise, format record.Format) (everfit.WorkoutExercise, error) {
	we := everfit.WorkoutExercise{
		Alternatives: []string{},
		EachSide:     e.EachSide,
		Note:         e.Note,
		Tempo:        e.Tempo,
		TrainingSets: trainingSets(e.Sets, format),
	}

	id, ok, err := c.directory.FindExercise(e.Name)
	if err != nil {
		// Transport failure during lookup is a skip, not an abort: the
		// exercise compiles with an empty id like a plain miss.
		c.log.Warn("exercise lookup failed", "exercise", e.Name, "error", err)
		return we, nil
	}
	if !ok {
		c.log.Warn("exercise not found in library", "exercise", e.Name)
		return we, nil
	}
	we.Exercise = id

	detail, err := c.directory.ExerciseDetail(id)
	if err != nil {
		c.log.Warn("fetching exercise detail failed", "exercise", e.Name, "error", err)
		return we, nil
	}
	we.ExerciseInstance = detail
	return we, nil
}

// trainingSets projects raw set values according to the section format.
// Unrecognized formats produce sets with no fields rather than failing the
// workout.
func trainingSets(sets []record.TrainingSet, format record.Format) []everfit.TrainingSetPayload {
	out := make([]everfit.TrainingSetPayload, 0, len(sets))
	for _, s := range sets {
		var p everfit.TrainingSetPayload
		switch format {
		case record.FormatRegular:
			p.Reps = &everfit.SetValue{Value: s.Reps}
			p.Rest = &everfit.SetValue{Value: s.Rest}
		case record.FormatInterval:
			p.Duration = &everfit.SetValue{Value: s.Duration}
			p.Rest = &everfit.SetValue{Value: s.Rest}
		case record.FormatEMOM:
			// Every minute on the minute: a 60-second slot with no rest,
			// whatever the sheet said.
			p.Reps = &everfit.SetValue{Value: s.Reps}
			p.Duration = &everfit.SetValue{Value: "60"}
			p.Rest = &everfit.SetValue{Value: "0"}
		}
		out = append(out, p)
	}
	return out
}
