package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/rubik2d"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "rubik.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp())
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, db.MigrateUp())
	v, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	seed := uint64(1<<63 + 7)
	scramble := []rubik.Move{rubik.R, rubik.U2, rubik.FPrime}
	id, err := sessions.Create(scramble, &seed, "practice")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	s, err := sessions.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, s.SessionID)
	assert.True(t, s.Active())
	assert.False(t, s.Solved)
	require.NotNil(t, s.Seed)
	assert.Equal(t, seed, *s.Seed)
	require.NotNil(t, s.Notes)
	assert.Equal(t, "practice", *s.Notes)

	parsed, err := s.Scramble()
	require.NoError(t, err)
	assert.Equal(t, scramble, parsed)

	require.NoError(t, sessions.End(id, true))
	s, err = sessions.Get(id)
	require.NoError(t, err)
	assert.False(t, s.Active())
	assert.True(t, s.Solved)
}

func TestSessionNotFound(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	_, err := sessions.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, sessions.End("missing", false), ErrNotFound)
}

func TestSessionList(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := sessions.Create(nil, nil, "")
		require.NoError(t, err)
		ids = append(ids, id)
	}

	all, err := sessions.List(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].SessionID, "newest first")
	assert.Nil(t, all[0].ScrambleText)
	assert.Nil(t, all[0].Seed)

	limited, err := sessions.List(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestMovesAppendAndReplay(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	scramble := rubik.NewSeededScrambler(11).Scramble(12)
	id, err := sessions.Create(scramble, nil, "")
	require.NoError(t, err)

	start, err := moves.Append(id, scramble, SourceScramble)
	require.NoError(t, err)
	assert.Equal(t, 0, start)

	start, err = moves.Append(id, []rubik.Move{rubik.R, rubik.RPrime}, SourceUser)
	require.NoError(t, err)
	assert.Equal(t, 12, start)

	n, err := moves.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	records, err := moves.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, records, 14)
	assert.Equal(t, SourceScramble, records[0].Source)
	assert.Equal(t, SourceUser, records[13].Source)
	assert.Equal(t, "R'", records[13].Notation)

	want := rubik.New()
	require.NoError(t, want.Apply(scramble...))

	got, err := moves.Replay(id)
	require.NoError(t, err)
	assert.True(t, want.SameState(got))

	_, err = moves.Append(id, rubik.Invert(scramble), SourceSolve)
	require.NoError(t, err)
	solved, err := moves.Replay(id)
	require.NoError(t, err)
	assert.True(t, solved.IsSolved())
}

func TestAppendRejectsInvalidMove(t *testing.T) {
	db := openTestDB(t)
	moves := NewMoveRepository(db)
	id, err := NewSessionRepository(db).Create(nil, nil, "")
	require.NoError(t, err)

	_, err = moves.Append(id, []rubik.Move{rubik.R, {Face: rubik.FaceTop, Magnitude: 3}}, SourceUser)
	require.Error(t, err)

	n, err := moves.Count(id)
	require.NoError(t, err)
	assert.Zero(t, n, "transaction rolled back")
}

func TestToMovesRejectsCorruptRecord(t *testing.T) {
	_, err := ToMoves([]MoveRecord{{Face: "X", Magnitude: 1}})
	assert.ErrorIs(t, err, rubik.ErrInvalidFace)

	_, err = ToMoves([]MoveRecord{{Face: "R", Magnitude: 5}})
	assert.ErrorIs(t, err, rubik.ErrInvalidMagnitude)
}

func TestDeleteCascadesMoves(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(nil, nil, "")
	require.NoError(t, err)
	_, err = moves.Append(id, []rubik.Move{rubik.U}, SourceUser)
	require.NoError(t, err)

	require.NoError(t, sessions.Delete(id))
	n, err := moves.Count(id)
	require.NoError(t, err)
	assert.Zero(t, n)
}
