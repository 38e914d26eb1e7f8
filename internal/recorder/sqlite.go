package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.WithField("path", dbPath).Info("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS simulation_runs (
			id                   TEXT PRIMARY KEY,
			timestamp            INTEGER NOT NULL,
			source               TEXT,
			step_count           INTEGER,
			start_price          REAL,
			mean_return          REAL,
			std_return           REAL,
			window_size          INTEGER,
			seed                 INTEGER,
			final_price          REAL,
			price_mean           REAL,
			moving_avg_len       INTEGER,
			prices_file          TEXT,
			prices_error         TEXT,
			moving_avg_file      TEXT,
			moving_avg_error     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON simulation_runs(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.CreatedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	p := rec.Params

	_, err := r.db.Exec(`INSERT INTO simulation_runs
		(id, timestamp, source, step_count, start_price, mean_return, std_return, window_size, seed,
		 final_price, price_mean, moving_avg_len,
		 prices_file, prices_error, moving_avg_file, moving_avg_error)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.ID, ts.UnixNano(), rec.Source,
		p.Count, p.StartPrice, p.MeanReturn, p.StdReturn, p.Window, p.Seed,
		rec.FinalPrice, rec.PriceMean, rec.MovingAverageLen,
		rec.PricesFile, rec.PricesError, rec.MovingAverageFile, rec.MovingAverageError,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", rec.ID, err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (r *SQLiteRecorder) RecentRuns(limit int) ([]RunRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(`SELECT
		id, timestamp, source, step_count, start_price, mean_return, std_return, window_size, seed,
		final_price, price_mean, moving_avg_len,
		prices_file, prices_error, moving_avg_file, moving_avg_error
		FROM simulation_runs ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var ts int64
		if err := rows.Scan(
			&rec.ID, &ts, &rec.Source,
			&rec.Params.Count, &rec.Params.StartPrice, &rec.Params.MeanReturn, &rec.Params.StdReturn,
			&rec.Params.Window, &rec.Params.Seed,
			&rec.FinalPrice, &rec.PriceMean, &rec.MovingAverageLen,
			&rec.PricesFile, &rec.PricesError, &rec.MovingAverageFile, &rec.MovingAverageError,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.CreatedAt = time.Unix(0, ts)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Info("closing sqlite recorder")
	return r.db.Close()
}
