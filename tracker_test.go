package rubik

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerReportsSolve(t *testing.T) {
	c := New()
	scramble := NewSeededScrambler(4).Scramble(15)
	require.NoError(t, c.Apply(scramble...))

	tr := NewTracker(c)
	defer tr.Close()
	tr.Reset()
	start := tr.HighestSolved()
	require.Less(t, start, 20)

	var solvedAfter int
	var progress []int
	tr.SetSolvedCallback(func(moves int) { solvedAfter = moves })
	tr.SetProgressCallback(func(solved int) { progress = append(progress, solved) })

	require.NoError(t, c.Apply(Invert(c.LastPerformedMoves())...))

	assert.Equal(t, 15, solvedAfter)
	assert.Equal(t, 15, tr.MoveCount())
	assert.Equal(t, 20, tr.HighestSolved())
	require.NotEmpty(t, progress)
	assert.Equal(t, 20, progress[len(progress)-1])
	for i := 1; i < len(progress); i++ {
		assert.Greater(t, progress[i], progress[i-1], "progress is monotonic")
	}
	assert.Same(t, c, tr.Cube())
}

func TestTrackerClose(t *testing.T) {
	c := New()
	tr := NewTracker(c)
	tr.Close()

	require.NoError(t, c.Apply(R))
	assert.Zero(t, tr.MoveCount())
}

func TestTrackerPhases(t *testing.T) {
	c := New()
	require.NoError(t, c.Apply(R))

	tr := NewTracker(c)
	defer tr.Close()
	assert.Equal(t, PhaseScrambled, tr.HighestPhase())

	var phases []Phase
	tr.SetPhaseCallback(func(p Phase) { phases = append(phases, p) })

	require.NoError(t, c.Apply(RPrime))
	assert.Equal(t, []Phase{PhaseSolved}, phases)
	assert.Equal(t, PhaseSolved, tr.HighestPhase())

	require.NoError(t, c.Apply(D))
	assert.Len(t, phases, 1, "highest phase does not regress")

	tr.Reset()
	assert.Equal(t, PhaseYellowCross, tr.HighestPhase())
	require.NoError(t, c.Apply(DPrime))
	assert.Equal(t, []Phase{PhaseSolved, PhaseSolved}, phases)
}
