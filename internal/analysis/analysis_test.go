package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/rubik2d"
	"github.com/SeamusWaldron/rubik2d/internal/storage"
)

func records(t *testing.T, notation string, src storage.Source, startIdx int, tsStep int64) []storage.MoveRecord {
	t.Helper()
	moves, err := rubik.ParseMoves(notation)
	require.NoError(t, err)

	out := make([]storage.MoveRecord, len(moves))
	for i, m := range moves {
		out[i] = storage.MoveRecord{
			MoveIndex: startIdx + i,
			TsMs:      int64(startIdx+i) * tsStep,
			Face:      m.Face.String(),
			Magnitude: int(m.Magnitude),
			Notation:  m.Notation(),
			Source:    src,
		}
	}
	return out
}

func TestTokenRoundTrip(t *testing.T) {
	seen := map[uint8]bool{}
	for _, f := range rubik.Faces {
		for _, mag := range []rubik.Magnitude{rubik.Clockwise, rubik.CounterClockwise, rubik.Half} {
			m := rubik.Move{Face: f, Magnitude: mag}
			tok := Token(m)
			assert.Less(t, tok, uint8(18))
			assert.False(t, seen[tok])
			seen[tok] = true
			assert.Equal(t, m, MoveFromToken(tok))
		}
	}
}

func TestSummarize(t *testing.T) {
	recs := records(t, "F B", storage.SourceScramble, 0, 100)
	recs = append(recs, records(t, "R R U U' L", storage.SourceUser, 2, 1000)...)

	s, err := Summarize("abc", recs)
	require.NoError(t, err)
	assert.Equal(t, "abc", s.SessionID)
	assert.Equal(t, 5, s.TotalMoves)
	assert.Equal(t, 2, s.OptimizedMoves, "R R -> R2, U U' cancels")
	assert.InDelta(t, 0.4, s.Efficiency, 1e-9)
	assert.Equal(t, int64(4000), s.DurationMs)
	assert.InDelta(t, 1.25, s.TPSOverall, 1e-9)
	assert.Equal(t, int64(1000), s.LongestPauseMs)
	assert.Zero(t, s.PauseCountOver1500)
	assert.InDelta(t, 1000.0, s.AvgMoveDurationMs, 1e-9)
	assert.Equal(t, rubik.FaceRight, s.Profile.MostUsedFace)
	assert.Equal(t, 2, s.Profile.FaceCounts[rubik.FaceTop])
	assert.Equal(t, 1, s.Profile.FaceSequences["RU"])
}

func TestSummarizeEmpty(t *testing.T) {
	s, err := Summarize("x", nil)
	require.NoError(t, err)
	assert.Zero(t, s.TotalMoves)
	assert.Zero(t, s.Efficiency)
	assert.Zero(t, s.TPSOverall)
}

func TestPauses(t *testing.T) {
	recs := []storage.MoveRecord{{MoveIndex: 0, TsMs: 0}, {MoveIndex: 1, TsMs: 2000}, {MoveIndex: 2, TsMs: 2500}, {MoveIndex: 3, TsMs: 5000}}

	pauses := AnalyzePauses(recs, 1500)
	require.Len(t, pauses, 2)
	assert.Equal(t, PauseInfo{AfterMoveIndex: 0, DurationMs: 2000, TsMs: 0}, pauses[0])
	assert.Equal(t, 2, CountPausesOver(recs, 1500))
	assert.Equal(t, int64(2500), FindLongestPause(recs))
}

func TestMineNGrams(t *testing.T) {
	recs := records(t, "R U R' U' D R U R' U' D R U R' U'", storage.SourceUser, 0, 10)

	report, err := MineNGrams(recs, 4, 5, 3)
	require.NoError(t, err)

	top4 := report.TopNGrams[4]
	require.NotEmpty(t, top4)
	assert.Equal(t, []string{"R", "U", "R'", "U'"}, top4[0].Sequence)
	assert.Equal(t, 3, top4[0].Count)
	require.Len(t, top4[0].Occurrences, 3)
	assert.Equal(t, 5, top4[0].Occurrences[1].StartIndex)

	top5 := report.TopNGrams[5]
	require.NotEmpty(t, top5)
	assert.Equal(t, 2, top5[0].Count)
}

func TestMineNGramsNoRepeats(t *testing.T) {
	recs := records(t, "R U F", storage.SourceUser, 0, 10)
	report, err := MineNGrams(recs, 2, 4, 5)
	require.NoError(t, err)
	assert.Empty(t, report.TopNGrams)
}
