package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillTurnSeq(db); err != nil {
		return fmt.Errorf("backfilling turn seq values: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id             TEXT PRIMARY KEY,
		phase          TEXT NOT NULL
		               CHECK(phase IN ('ANALYZING','QUESTIONING','AWAITING_ANSWER','GENERATING','COMPLETE','DEGRADED_COMPLETE')),
		context_json   TEXT NOT NULL DEFAULT '{}',
		asked_json     TEXT NOT NULL DEFAULT '[]',
		artifacts_json TEXT,
		last_score     REAL NOT NULL DEFAULT 0,
		generate_tries INTEGER NOT NULL DEFAULT 0,
		archived_at    TEXT,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_phase ON sessions(phase)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at)`,

	`CREATE TABLE IF NOT EXISTS turns (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL DEFAULT 0,
		role       TEXT NOT NULL CHECK(role IN ('user','assistant')),
		body       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id)`,
}

// migrateBackfillTurnSeq assigns sequence numbers to turns that predate the
// seq column (seq = 0), ordered by created_at then rowid within each session.
// Idempotent: skips when no rows need it.
func migrateBackfillTurnSeq(db *sql.DB) error {
	ctx := context.Background()

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM turns WHERE seq = 0`).Scan(&count); err != nil {
		return fmt.Errorf("checking turn seq: %w", err)
	}
	if count == 0 {
		return nil
	}

	rows, err := db.QueryContext(ctx, `SELECT DISTINCT session_id FROM turns WHERE seq = 0 ORDER BY session_id`)
	if err != nil {
		return fmt.Errorf("listing sessions for seq backfill: %w", err)
	}
	var sessionIDs []string
	for rows.Next() {
		var sid string
		if err := rows.Scan(&sid); err != nil {
			rows.Close()
			return fmt.Errorf("scanning session id: %w", err)
		}
		sessionIDs = append(sessionIDs, sid)
	}
	rows.Close()

	for _, sid := range sessionIDs {
		if err := backfillSessionTurnSeq(ctx, db, sid); err != nil {
			return fmt.Errorf("backfilling seq for session %s: %w", sid, err)
		}
	}
	return nil
}

func backfillSessionTurnSeq(ctx context.Context, db *sql.DB, sessionID string) error {
	rows, err := db.QueryContext(ctx,
		`SELECT id FROM turns WHERE session_id = ? ORDER BY created_at, rowid`, sessionID)
	if err != nil {
		return fmt.Errorf("listing turns: %w", err)
	}
	var turnIDs []string
	for rows.Next() {
		var tid string
		if err := rows.Scan(&tid); err != nil {
			rows.Close()
			return err
		}
		turnIDs = append(turnIDs, tid)
	}
	rows.Close()

	for i, tid := range turnIDs {
		if _, err := db.ExecContext(ctx,
			`UPDATE turns SET seq = ? WHERE id = ?`, i+1, tid); err != nil {
			return fmt.Errorf("updating turn seq: %w", err)
		}
	}
	return nil
}
