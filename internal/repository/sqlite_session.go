package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dferenc/hireflow/internal/db"
	"github.com/dferenc/hireflow/internal/domain"
)

// sessionColumns is the canonical SELECT column list for sessions.
const sessionColumns = `id, phase, context_json, asked_json, artifacts_json,
		last_score, generate_tries, archived_at, created_at, updated_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo. The connection may be
// a *sql.DB or a transaction-scoped DBTX.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	contextJSON, askedJSON, artifactsJSON, err := marshalSessionState(s)
	if err != nil {
		return err
	}

	query := `INSERT INTO sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		string(s.Phase),
		contextJSON,
		askedJSON,
		artifactsJSON,
		s.LastScore,
		s.GenerateTries,
		archivedAtValue(s),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	return r.insertTurns(ctx, s)
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := r.scanSession(row)
	if err != nil {
		return nil, err
	}

	turns, err := r.loadTurns(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Turns = turns
	return s, nil
}

func (r *SQLiteSessionRepo) Save(ctx context.Context, s *domain.Session) error {
	contextJSON, askedJSON, artifactsJSON, err := marshalSessionState(s)
	if err != nil {
		return err
	}

	// archived_at keeps its original stamp across saves; it is only set
	// when the session first becomes archived and cleared on unarchive.
	query := `UPDATE sessions SET
		phase = ?, context_json = ?, asked_json = ?, artifacts_json = ?,
		last_score = ?, generate_tries = ?,
		archived_at = CASE WHEN ? THEN COALESCE(archived_at, ?) ELSE NULL END,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(s.Phase),
		contextJSON,
		askedJSON,
		artifactsJSON,
		s.LastScore,
		s.GenerateTries,
		s.Archived,
		nowUTC(),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("session %s: %w", s.ID, ErrNotFound)
	}

	return r.insertTurns(ctx, s)
}

func (r *SQLiteSessionRepo) List(ctx context.Context, includeArchived bool) ([]SessionSummary, error) {
	query := `SELECT s.id, s.phase, s.last_score, s.archived_at, s.updated_at,
		(SELECT COUNT(*) FROM turns t WHERE t.session_id = s.id) AS turn_count
		FROM sessions s`
	if !includeArchived {
		query += ` WHERE s.archived_at IS NULL`
	}
	query += ` ORDER BY s.updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var summaries []SessionSummary
	for rows.Next() {
		var sum SessionSummary
		var phaseStr string
		var archivedAt sql.NullString
		if err := rows.Scan(&sum.ID, &phaseStr, &sum.LastScore, &archivedAt, &sum.UpdatedAt, &sum.TurnCount); err != nil {
			return nil, fmt.Errorf("scanning session summary: %w", err)
		}
		sum.Phase = domain.Phase(phaseStr)
		sum.Archived = archivedAt.Valid
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return summaries, nil
}

func (r *SQLiteSessionRepo) Archive(ctx context.Context, id string) error {
	return r.setArchived(ctx, id, nowUTC())
}

func (r *SQLiteSessionRepo) Unarchive(ctx context.Context, id string) error {
	return r.setArchived(ctx, id, nil)
}

func (r *SQLiteSessionRepo) setArchived(ctx context.Context, id string, archivedAt interface{}) error {
	query := `UPDATE sessions SET archived_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, archivedAt, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("archiving session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	// Turns cascade via the foreign key.
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

// insertTurns persists conversation turns, skipping any already stored so
// Save can be called with the full in-memory history every time.
func (r *SQLiteSessionRepo) insertTurns(ctx context.Context, s *domain.Session) error {
	query := `INSERT OR IGNORE INTO turns (id, session_id, seq, role, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	for i, t := range s.Turns {
		_, err := r.db.ExecContext(ctx, query,
			t.ID,
			s.ID,
			i+1,
			string(t.Role),
			t.Text,
			t.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting turn %s: %w", t.ID, err)
		}
	}
	return nil
}

func (r *SQLiteSessionRepo) loadTurns(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	query := `SELECT id, session_id, role, body, created_at
		FROM turns WHERE session_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing turns: %w", err)
	}
	defer rows.Close()

	var turns []domain.Turn
	for rows.Next() {
		var t domain.Turn
		var roleStr, createdAtStr string
		if err := rows.Scan(&t.ID, &t.SessionID, &roleStr, &t.Text, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}
		t.Role = domain.TurnRole(roleStr)
		t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing turn created_at: %w", err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating turns: %w", err)
	}
	return turns, nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var phaseStr, contextJSON, askedJSON, createdAtStr, updatedAtStr string
	var artifactsJSON, archivedAtStr sql.NullString

	err := row.Scan(
		&s.ID, &phaseStr, &contextJSON, &askedJSON, &artifactsJSON,
		&s.LastScore, &s.GenerateTries, &archivedAtStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	s.Phase = domain.Phase(phaseStr)
	s.Archived = archivedAtStr.Valid

	s.Context = domain.NewHiringContext()
	if err := json.Unmarshal([]byte(contextJSON), &s.Context); err != nil {
		return nil, fmt.Errorf("parsing context snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(askedJSON), &s.AskedIDs); err != nil {
		return nil, fmt.Errorf("parsing asked question ids: %w", err)
	}
	if artifactsJSON.Valid && artifactsJSON.String != "" {
		var arts domain.Artifacts
		if err := json.Unmarshal([]byte(artifactsJSON.String), &arts); err != nil {
			return nil, fmt.Errorf("parsing artifacts: %w", err)
		}
		s.Artifacts = &arts
	}

	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &s, nil
}

// marshalSessionState serializes the context, asked set, and artifacts for
// storage. Artifacts serialize to SQL NULL until generation has produced them.
func marshalSessionState(s *domain.Session) (string, string, interface{}, error) {
	contextJSON, err := json.Marshal(s.Context)
	if err != nil {
		return "", "", nil, fmt.Errorf("marshaling context: %w", err)
	}

	asked := s.AskedIDs
	if asked == nil {
		asked = []string{}
	}
	askedJSON, err := json.Marshal(asked)
	if err != nil {
		return "", "", nil, fmt.Errorf("marshaling asked ids: %w", err)
	}

	var artifactsVal interface{}
	if s.Artifacts != nil {
		artifactsJSON, err := json.Marshal(s.Artifacts)
		if err != nil {
			return "", "", nil, fmt.Errorf("marshaling artifacts: %w", err)
		}
		artifactsVal = string(artifactsJSON)
	}

	return string(contextJSON), string(askedJSON), artifactsVal, nil
}

// archivedAtValue stamps archived_at for a freshly inserted session.
// Updates go through Save, which preserves an existing stamp.
func archivedAtValue(s *domain.Session) interface{} {
	if s.Archived {
		return nowUTC()
	}
	return nil
}
