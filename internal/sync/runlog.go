package sync

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// RunLog is a per-record audit trail in a local SQLite database. Every run
// gets a fresh run id; the log records what was attempted and how it went,
// it is never consulted to decide what to sync.
type RunLog struct {
	db    *sql.DB
	runID string
}

// OpenRunLog opens (or creates) the SQLite log at dir/sync.db and starts a
// new run.
func OpenRunLog(dir string) (*RunLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "sync.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening run log: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS sync_log (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id     TEXT NOT NULL,
		record     TEXT NOT NULL,
		action     TEXT NOT NULL,
		outcome    TEXT NOT NULL,
		detail     TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating run log table: %w", err)
	}

	return &RunLog{db: db, runID: uuid.NewString()}, nil
}

// RunID returns this run's identifier.
func (l *RunLog) RunID() string { return l.runID }

// Record appends one outcome line for the current run.
func (l *RunLog) Record(record, action, outcome, detail string) error {
	if l == nil {
		return nil
	}
	_, err := l.db.Exec(
		`INSERT INTO sync_log (run_id, record, action, outcome, detail) VALUES (?, ?, ?, ?, ?)`,
		l.runID, record, action, outcome, detail,
	)
	return err
}

// Close closes the underlying database.
func (l *RunLog) Close() error {
	if l == nil {
		return nil
	}
	return l.db.Close()
}
