// Package sync drives the create-or-update loops against the remote
// service. Per-record failures are logged and skipped; only auth and sheet
// structure problems abort a run.
package sync

import (
	"errors"
	"log/slog"

	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/config"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/everfit"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/payload"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/record"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/tags"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/vocab"
)

// Stats tracks what a sync run did.
type Stats struct {
	RowsTotal int
	Added     int
	Updated   int
	Created   int // workouts
	Skipped   int
	Failed    int

	Failures []string
}

// ExerciseSync runs the library add and update passes.
type ExerciseSync struct {
	client *everfit.Client
	token  string
	comp   *payload.Compiler
	runLog *RunLog
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// NewExerciseSync wires a compiler for library rows: the tag catalog is
// fetched once here and reused for the whole run. In dry-run mode no
// network calls are made and tag creation hands out placeholder ids.
func NewExerciseSync(client *everfit.Client, token string, cfg *config.Config, runLog *RunLog, dryRun bool, log *slog.Logger) (*ExerciseSync, error) {
	var catalog []everfit.Tag
	creator := tags.CreatorFunc(func(name string) (string, error) {
		return client.CreateTag(token, name)
	})
	if dryRun {
		creator = tags.CreatorFunc(func(name string) (string, error) {
			return "dry-run:" + name, nil
		})
	} else {
		var err error
		catalog, err = client.FetchTagCatalog(token)
		if err != nil {
			return nil, err
		}
		log.Info("fetched tag catalog", "tags", len(catalog))
	}

	reconciler := tags.NewReconciler(catalog, creator)
	comp := payload.NewCompiler(cfg.Author.ID, cfg.Author.Name, cfg.Timezone, reconciler, nil, log)

	return &ExerciseSync{
		client: client,
		token:  token,
		comp:   comp,
		runLog: runLog,
		log:    log,
		dryRun: dryRun,
	}, nil
}

// Add creates one remote exercise per row. Rows whose payload cannot be
// compiled (unknown vocabulary labels) are skipped, not fatal.
func (s *ExerciseSync) Add(rows []record.ExerciseRow) {
	for _, row := range rows {
		s.stats.RowsTotal++

		p, err := s.comp.Exercise(row)
		if err != nil {
			s.recordFailure(row.Name, "add", err)
			continue
		}

		if s.dryRun {
			s.log.Info("dry-run: would add exercise", "exercise", row.Name)
			s.stats.Added++
			continue
		}

		if _, err := s.client.CreateExercise(s.token, p); err != nil {
			s.recordFailure(row.Name, "add", err)
			continue
		}

		s.stats.Added++
		s.log.Info("added exercise", "exercise", row.Name)
		s.logOutcome(row.Name, "add", "ok", "")
	}
}

// Update replaces existing remote exercises row by row. The catalog is
// refetched per candidate so each update sees the library as it stands;
// wasteful, but updates are rare and correctness beats a round trip.
func (s *ExerciseSync) Update(rows []record.ExerciseRow) {
	for _, row := range rows {
		s.stats.RowsTotal++

		p, err := s.comp.Exercise(row)
		if err != nil {
			s.recordFailure(row.Name, "update", err)
			continue
		}

		if s.dryRun {
			s.log.Info("dry-run: would update exercise", "exercise", row.Name)
			s.stats.Updated++
			continue
		}

		catalog, err := s.client.FetchExerciseCatalog(s.token)
		if err != nil {
			s.recordFailure(row.Name, "update", err)
			continue
		}
		id, ok := findByTitle(catalog, p.Title)
		if !ok {
			s.stats.Skipped++
			s.log.Warn("exercise not found in library, add it before updating", "exercise", row.Name)
			s.logOutcome(row.Name, "update", "skipped", "not found in library")
			continue
		}

		if _, err := s.client.UpdateExercise(s.token, id, p); err != nil {
			s.recordFailure(row.Name, "update", err)
			continue
		}

		s.stats.Updated++
		s.log.Info("updated exercise", "exercise", row.Name)
		s.logOutcome(row.Name, "update", "ok", "")
	}
}

// Stats returns the run's counters.
func (s *ExerciseSync) Stats() Stats { return s.stats }

func (s *ExerciseSync) recordFailure(name, action string, err error) {
	s.stats.Failed++
	s.stats.Failures = append(s.stats.Failures, name+": "+err.Error())

	var unknown *vocab.UnknownValueError
	if errors.As(err, &unknown) {
		s.log.Warn("skipping exercise with unrecognized label", "exercise", name, "error", err)
	} else {
		s.log.Warn("exercise sync failed", "exercise", name, "action", action, "error", err)
	}
	s.logOutcome(name, action, "failed", err.Error())
}

func (s *ExerciseSync) logOutcome(name, action, outcome, detail string) {
	if err := s.runLog.Record(name, action, outcome, detail); err != nil {
		s.log.Warn("failed to write run log", "record", name, "error", err)
	}
}
