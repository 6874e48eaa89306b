package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SeamusWaldron/rubik2d"
)

// Source records who issued a move.
type Source string

const (
	SourceScramble Source = "scramble"
	SourceUser     Source = "user"
	SourceSolve    Source = "solve"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Face      string
	Magnitude int
	Notation  string
	Source    Source
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Append stores moves after the session's existing ones in a single
// transaction and returns the index of the first stored move.
func (r *MoveRepository) Append(sessionID string, moves []rubik.Move, source Source) (int, error) {
	var start int
	err := r.db.Transaction(func(tx *sql.Tx) error {
		if err := tx.QueryRow(`
			SELECT COALESCE(MAX(move_index), -1) + 1 FROM moves WHERE session_id = ?
		`, sessionID).Scan(&start); err != nil {
			return fmt.Errorf("failed to get next move index: %w", err)
		}

		tsMs := time.Now().UnixMilli()
		for i, m := range moves {
			if !m.Valid() {
				return fmt.Errorf("move %d: invalid move %v", i+1, m)
			}
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, ts_ms, face, magnitude, notation, source)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, sessionID, start+i, tsMs, m.Face.String(), int(m.Magnitude), m.Notation(), string(source))
			if err != nil {
				return fmt.Errorf("failed to insert move %d: %w", start+i, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return start, nil
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, face, magnitude, notation, source
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var source string
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Face, &m.Magnitude, &m.Notation, &source); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m.Source = Source(source)
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMove converts a stored record back into a move.
func (m MoveRecord) ToMove() (rubik.Move, error) {
	face, err := rubik.ParseFace(m.Face)
	if err != nil {
		return rubik.Move{}, fmt.Errorf("move %d: %w", m.MoveIndex, err)
	}
	mv, err := rubik.NewMove(face, m.Magnitude)
	if err != nil {
		return rubik.Move{}, fmt.Errorf("move %d: %w", m.MoveIndex, err)
	}
	return mv, nil
}

// ToMoves converts records to moves, failing on the first corrupt row.
func ToMoves(records []MoveRecord) ([]rubik.Move, error) {
	moves := make([]rubik.Move, len(records))
	for i, r := range records {
		m, err := r.ToMove()
		if err != nil {
			return nil, err
		}
		moves[i] = m
	}
	return moves, nil
}

// Replay rebuilds a session's cube from a solved start by applying every
// stored move in order.
func (r *MoveRepository) Replay(sessionID string, opts ...rubik.Option) (*rubik.Cube, error) {
	records, err := r.GetBySession(sessionID)
	if err != nil {
		return nil, err
	}
	moves, err := ToMoves(records)
	if err != nil {
		return nil, err
	}

	c := rubik.New(opts...)
	if err := c.Apply(moves...); err != nil {
		return nil, fmt.Errorf("failed to replay session %s: %w", sessionID, err)
	}
	return c, nil
}
