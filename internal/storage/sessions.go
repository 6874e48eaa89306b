package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/rubik2d"
)

// timeFormat is fixed-width so stored timestamps sort as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Session is one scramble-and-solve attempt.
type Session struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      *time.Time
	ScrambleText *string
	Seed         *uint64
	Solved       bool
	Notes        *string
}

// Scramble parses the session's stored scramble.
func (s *Session) Scramble() ([]rubik.Move, error) {
	if s.ScrambleText == nil {
		return nil, nil
	}
	return rubik.ParseMoves(*s.ScrambleText)
}

// Active reports whether the session has not been ended.
func (s *Session) Active() bool {
	return s.EndedAt == nil
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session and returns its ID. The scramble is stored
// as notation; seed is nil when the scramble was not drawn from a seed.
func (r *SessionRepository) Create(scramble []rubik.Move, seed *uint64, notes string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr, notesPtr *string
	if len(scramble) > 0 {
		text := rubik.FormatMoves(scramble)
		scramblePtr = &text
	}
	if notes != "" {
		notesPtr = &notes
	}
	var seedVal sql.NullInt64
	if seed != nil {
		seedVal = sql.NullInt64{Int64: int64(*seed), Valid: true}
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, scramble_text, seed, notes)
		VALUES (?, ?, ?, ?, ?)
	`, id, startedAt.Format(timeFormat), scramblePtr, seedVal, notesPtr)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as finished.
func (r *SessionRepository) End(sessionID string, solved bool) error {
	endedAt := time.Now().UTC()

	result, err := r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, solved = ?
		WHERE session_id = ?
	`, endedAt.Format(timeFormat), solved, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return nil
}

// Get retrieves a session by ID. It returns ErrNotFound for an unknown ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, scramble_text, seed, solved, notes
		FROM sessions
		WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List returns the most recent sessions first. A non-positive limit returns
// every session.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, scramble_text, seed, solved, notes
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Delete removes a session and its moves.
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString
	var seed sql.NullInt64

	if err := row.Scan(
		&s.SessionID, &startedAtStr, &endedAtStr,
		&s.ScrambleText, &seed, &s.Solved, &s.Notes,
	); err != nil {
		return nil, err
	}

	startedAt, err := time.Parse(timeFormat, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start time: %w", err)
	}
	s.StartedAt = startedAt

	if endedAtStr.Valid {
		endedAt, err := time.Parse(timeFormat, endedAtStr.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end time: %w", err)
		}
		s.EndedAt = &endedAt
	}
	if seed.Valid {
		v := uint64(seed.Int64)
		s.Seed = &v
	}

	return &s, nil
}
