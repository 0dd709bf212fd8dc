package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/litigio-labs/consulta-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/litigio-labs/consulta-cli/internal/core/domain"
	"github.com/litigio-labs/consulta-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RunStore = (*Store)(nil)

// Store is the SQLite-backed run history.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a run store at dataDir, creating the directory and
// database if needed.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "historial.db")

	// WAL mode keeps the read commands usable while a run is writing.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveRun records a finished run and its per-case outcomes in one
// transaction.
func (s *Store) SaveRun(ctx context.Context, run domain.Run, records []domain.CaseRecord) error {
	if run.ID == "" {
		return errors.New("run id must not be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, input_file, started_at, finished_at, total, succeeded, private, not_found, failed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.InputFile,
		run.StartedAt.UTC().Format(time.RFC3339), run.FinishedAt.UTC().Format(time.RFC3339),
		run.Stats.Total, run.Stats.Succeeded, run.Stats.Private, run.Stats.NotFound, run.Stats.Failed,
	)
	if err != nil {
		return fmt.Errorf("inserting run %s: %w", run.ID, err)
	}

	for i, record := range records {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_cases (run_id, position, identifier, plaintiff, defendant, court, department,
				process_type, process_class, process_subclass, last_action_date, last_action_text,
				annotations, is_private, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, i, record.Identifier, record.Plaintiff, record.Defendant, record.Court,
			record.Department, record.ProcessType, record.ProcessClass, record.ProcessSubclass,
			record.LastActionDate, record.LastActionText, record.Annotations,
			record.Private, string(record.Status),
		)
		if err != nil {
			return fmt.Errorf("inserting case %s: %w", record.Identifier, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, input_file, started_at, finished_at, total, succeeded, private, not_found, failed
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun retrieves one run with its per-case outcomes, in input order.
// A missing run is domain.ErrNotFound.
func (s *Store) GetRun(ctx context.Context, runID string) (*domain.Run, []domain.CaseRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, input_file, started_at, finished_at, total, succeeded, private, not_found, failed
		FROM runs WHERE id = ?`, runID)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("run %s: %w", runID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT identifier, plaintiff, defendant, court, department, process_type, process_class,
			process_subclass, last_action_date, last_action_text, annotations, is_private, status
		FROM run_cases WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing cases for run %s: %w", runID, err)
	}
	defer rows.Close()

	var records []domain.CaseRecord
	for rows.Next() {
		var record domain.CaseRecord
		var status string
		err := rows.Scan(
			&record.Identifier, &record.Plaintiff, &record.Defendant, &record.Court,
			&record.Department, &record.ProcessType, &record.ProcessClass, &record.ProcessSubclass,
			&record.LastActionDate, &record.LastActionText, &record.Annotations,
			&record.Private, &status,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("scanning case: %w", err)
		}
		record.Status = domain.Status(status)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return &run, records, nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (domain.Run, error) {
	var run domain.Run
	var started, finished string
	err := row.Scan(
		&run.ID, &run.InputFile, &started, &finished,
		&run.Stats.Total, &run.Stats.Succeeded, &run.Stats.Private,
		&run.Stats.NotFound, &run.Stats.Failed,
	)
	if err != nil {
		return domain.Run{}, err
	}

	if run.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
		return domain.Run{}, fmt.Errorf("parsing started_at: %w", err)
	}
	if run.FinishedAt, err = time.Parse(time.RFC3339, finished); err != nil {
		return domain.Run{}, fmt.Errorf("parsing finished_at: %w", err)
	}
	return run, nil
}

// migrate applies the embedded migrations not yet recorded in
// schema_migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		script, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(script)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
	}

	return nil
}
