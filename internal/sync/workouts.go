package sync

import (
	"log/slog"

	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/config"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/everfit"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/payload"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/record"
)

// WorkoutSync creates one remote workout per ready extracted tree.
type WorkoutSync struct {
	client *everfit.Client
	token  string
	comp   *payload.Compiler
	runLog *RunLog
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// NewWorkoutSync wires a compiler for workout trees. The exercise catalog
// behind title resolution is fetched once per run; in dry-run mode lookups
// run against an empty catalog and nothing is sent.
func NewWorkoutSync(client *everfit.Client, token string, cfg *config.Config, runLog *RunLog, dryRun bool, log *slog.Logger) (*WorkoutSync, error) {
	var dir payload.ExerciseDirectory
	if dryRun {
		dir = &remoteDirectory{}
	} else {
		var err error
		dir, err = newRemoteDirectory(client, token)
		if err != nil {
			return nil, err
		}
	}

	comp := payload.NewCompiler(cfg.Author.ID, cfg.Author.Name, cfg.Timezone, nil, dir, log)

	return &WorkoutSync{
		client: client,
		token:  token,
		comp:   comp,
		runLog: runLog,
		log:    log,
		dryRun: dryRun,
	}, nil
}

// Run processes every extracted workout. Trees that are not marked ready
// are skipped here; they already consumed their anchors during extraction,
// so siblings stay aligned.
func (s *WorkoutSync) Run(workouts []record.Workout) {
	for _, w := range workouts {
		s.stats.RowsTotal++

		if !w.Ready() {
			s.stats.Skipped++
			s.log.Info("skipping workout, not marked ready", "workout", w.Title, "status", w.Status)
			s.logOutcome(w.Title, "create", "skipped", "status not ready")
			continue
		}

		p, err := s.comp.Workout(w)
		if err != nil {
			s.recordFailure(w.Title, err)
			continue
		}

		if s.dryRun {
			s.log.Info("dry-run: would create workout", "workout", w.Title, "sections", len(p.Sections))
			s.stats.Created++
			continue
		}

		if _, err := s.client.CreateWorkout(s.token, p); err != nil {
			s.recordFailure(w.Title, err)
			continue
		}

		s.stats.Created++
		s.log.Info("created workout", "workout", w.Title)
		s.logOutcome(w.Title, "create", "ok", "")
	}
}

// Stats returns the run's counters.
func (s *WorkoutSync) Stats() Stats { return s.stats }

func (s *WorkoutSync) recordFailure(title string, err error) {
	s.stats.Failed++
	s.stats.Failures = append(s.stats.Failures, title+": "+err.Error())
	s.log.Warn("workout sync failed", "workout", title, "error", err)
	s.logOutcome(title, "create", "failed", err.Error())
}

func (s *WorkoutSync) logOutcome(title, action, outcome, detail string) {
	if err := s.runLog.Record(title, action, outcome, detail); err != nil {
		s.log.Warn("failed to write run log", "record", title, "error", err)
	}
}
