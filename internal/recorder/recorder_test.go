package recorder

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/rubik2d"
	"github.com/SeamusWaldron/rubik2d/internal/storage"
)

func newTestSession(t *testing.T) (*Session, *storage.DB, *StateFile) {
	t.Helper()
	dir := t.TempDir()

	db, err := storage.Open(filepath.Join(dir, "rubik.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp())

	sf, err := NewStateFile(filepath.Join(dir, "state.json"))
	require.NoError(t, err)

	return NewSession(db, sf, nil), db, sf
}

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.json")
	sf, err := NewStateFile(path)
	require.NoError(t, err)
	assert.False(t, sf.HasActiveSession())

	require.NoError(t, sf.SetDBPath("/tmp/x.db"))
	require.NoError(t, sf.SetActiveSession("abc"))
	require.NoError(t, sf.SetLastSeed(99))

	reloaded, err := NewStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, AppState{DBPath: "/tmp/x.db", ActiveSessionID: "abc", LastSeed: 99}, reloaded.State())
	assert.True(t, reloaded.HasActiveSession())

	require.NoError(t, reloaded.ClearActiveSession())
	assert.Empty(t, reloaded.ActiveSessionID())
	assert.Equal(t, "/tmp/x.db", reloaded.DBPath())
}

func TestSessionRecordsMovesAndEndsOnSolve(t *testing.T) {
	s, db, sf := newTestSession(t)
	scramble := []rubik.Move{rubik.R, rubik.U, rubik.FPrime}

	var phases []rubik.Phase
	var solvedMoves int
	var recorded []rubik.Move
	s.SetPhaseCallback(func(p rubik.Phase) { phases = append(phases, p) })
	s.SetSolvedCallback(func(moves int) { solvedMoves = moves })
	s.SetMoveCallback(func(m rubik.Move) { recorded = append(recorded, m) })

	id, err := s.Start(scramble, nil, "")
	require.NoError(t, err)
	assert.Equal(t, StateRecording, s.State())
	assert.Equal(t, id, sf.ActiveSessionID())

	_, err = s.Start(nil, nil, "")
	assert.ErrorIs(t, err, ErrSessionInProgress)

	s.SetSource(storage.SourceSolve)
	require.NoError(t, s.Apply(rubik.Invert(scramble)...))

	assert.Equal(t, StateEnded, s.State())
	assert.Equal(t, 3, solvedMoves)
	assert.Equal(t, 3, s.MoveCount())
	assert.Equal(t, rubik.Invert(scramble), recorded)
	require.NotEmpty(t, phases)
	assert.Equal(t, rubik.PhaseSolved, phases[len(phases)-1])
	assert.False(t, sf.HasActiveSession())

	sess, err := storage.NewSessionRepository(db).Get(id)
	require.NoError(t, err)
	assert.True(t, sess.Solved)
	assert.False(t, sess.Active())

	records, err := storage.NewMoveRepository(db).GetBySession(id)
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, storage.SourceScramble, records[2].Source)
	assert.Equal(t, storage.SourceSolve, records[3].Source)

	assert.ErrorIs(t, s.Apply(rubik.R), ErrNoSession)
	assert.ErrorIs(t, s.End(), ErrNoSession)
}

func TestSessionResume(t *testing.T) {
	s, db, _ := newTestSession(t)
	scramble := rubik.NewSeededScrambler(3).Scramble(10)
	seed := uint64(3)

	id, err := s.Start(scramble, &seed, "")
	require.NoError(t, err)
	require.NoError(t, s.Apply(rubik.D, rubik.L2))
	want := s.Cube().Clone()

	resumed := NewSession(db, nil, nil)
	require.NoError(t, resumed.Resume(id))
	assert.True(t, want.SameState(resumed.Cube()))
	assert.Equal(t, id, resumed.SessionID())

	require.NoError(t, resumed.End())
	assert.Equal(t, StateEnded, resumed.State())

	sess, err := storage.NewSessionRepository(db).Get(id)
	require.NoError(t, err)
	assert.False(t, sess.Solved)

	other := NewSession(db, nil, nil)
	assert.ErrorIs(t, other.Resume(id), ErrSessionEnded)
	assert.ErrorIs(t, other.Resume("missing"), storage.ErrNotFound)
}

func TestSessionStartRejectsInvalidScramble(t *testing.T) {
	s, _, _ := newTestSession(t)
	_, err := s.Start([]rubik.Move{{Face: rubik.FaceTop, Magnitude: 0}}, nil, "")
	require.Error(t, err)
	assert.Equal(t, StateIdle, s.State())
}
