package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS app_settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			start_ts TEXT NOT NULL,
			last_screen TEXT NOT NULL DEFAULT '',
			taps INTEGER NOT NULL DEFAULT 0,
			rejects INTEGER NOT NULL DEFAULT 0,
			resets INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS screen_visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			screen TEXT NOT NULL,
			ts TEXT NOT NULL,
			FOREIGN KEY(session_id) REFERENCES sessions(id)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	// Backfill databases created before resets were tracked.
	if _, err := s.db.ExecContext(ctx, `ALTER TABLE sessions ADD COLUMN resets INTEGER NOT NULL DEFAULT 0`); err != nil {
		msg := strings.ToLower(err.Error())
		if !strings.Contains(msg, "duplicate column name") {
			return fmt.Errorf("ensure schema alter sessions.resets: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) SaveSettings(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	for key, value := range values {
		k := strings.TrimSpace(key)
		if k == "" {
			continue
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO app_settings(key, value) VALUES(?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, k, value); err != nil {
			return err
		}
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteStore) LoadSettings(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM app_settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteStore) StartSession(ctx context.Context, sess Session) error {
	if strings.TrimSpace(sess.ID) == "" {
		return fmt.Errorf("session id is required")
	}
	start := sess.StartTS
	if start.IsZero() {
		start = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions(id, name, start_ts) VALUES(?,?,?)`,
		sess.ID,
		strings.TrimSpace(sess.Name),
		start.UTC().Format(timeLayout),
	)
	return err
}

func (s *SQLiteStore) RecordScreen(ctx context.Context, visit ScreenVisit) error {
	ts := visit.TS
	if ts.IsZero() {
		ts = time.Now()
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO screen_visits(session_id, screen, ts) VALUES(?,?,?)`,
		visit.SessionID, visit.Screen, ts.UTC().Format(timeLayout),
	); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `UPDATE sessions SET last_screen = ? WHERE id = ?`, visit.Screen, visit.SessionID)
	return err
}

func (s *SQLiteStore) UpdateSessionCounts(ctx context.Context, sessionID string, counts SessionCounts) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET taps = ?, rejects = ?, resets = ? WHERE id = ?`,
		counts.Taps, counts.Rejects, counts.Resets, sessionID,
	)
	return err
}

func (s *SQLiteStore) GetSummary(ctx context.Context) (Summary, error) {
	var out Summary
	row := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) as sessions,
			COALESCE(SUM(taps),0) as taps,
			COALESCE(SUM(rejects),0) as rejects
		FROM sessions
	`)
	if err := row.Scan(&out.Sessions, &out.Taps, &out.Rejects); err != nil {
		return Summary{}, err
	}
	row = s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT session_id) FROM screen_visits WHERE screen = 'finale'`)
	if err := row.Scan(&out.Finales); err != nil {
		return Summary{}, err
	}
	return out, nil
}

func (s *SQLiteStore) GetLastSession(ctx context.Context) (*LastSession, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, start_ts, last_screen, taps, rejects, resets
		FROM sessions
		ORDER BY start_ts DESC, rowid DESC
		LIMIT 1
	`)
	var (
		out        LastSession
		startTSRaw string
	)
	if err := row.Scan(&out.ID, &out.Name, &startTSRaw, &out.LastScreen, &out.Taps, &out.Rejects, &out.Resets); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	startTS, err := time.Parse(timeLayout, startTSRaw)
	if err != nil {
		startTS = time.Time{}
	}
	out.StartTS = startTS
	return &out, nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

var _ Store = (*SQLiteStore)(nil)
