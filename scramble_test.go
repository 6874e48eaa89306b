package rubik

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrambleIsReproducible(t *testing.T) {
	a := NewSeededScrambler(42).Scramble(25)
	b := NewSeededScrambler(42).Scramble(25)
	assert.Equal(t, a, b)

	c := NewScrambler(rand.NewPCG(1, 2)).Scramble(25)
	d := NewScrambler(rand.NewPCG(1, 2)).Scramble(25)
	assert.Equal(t, c, d)
}

func TestScrambleRedundancyRule(t *testing.T) {
	s := NewSeededScrambler(3)
	for round := 0; round < 50; round++ {
		moves := s.Scramble(30)
		require.Len(t, moves, 30)
		for i, m := range moves {
			assert.True(t, m.Magnitude.IsQuarter(), "move %d is %s", i, m)
			if i >= 1 {
				assert.NotEqual(t, moves[i-1].Face, m.Face, "moves %d and %d share a face", i-1, i)
			}
			if i >= 2 {
				assert.NotEqual(t, moves[i-2].Face, m.Face, "moves %d and %d share a face", i-2, i)
			}
		}
		assert.Len(t, Simplify(moves), 30, "nothing folds")
	}
}

func TestScrambleLengths(t *testing.T) {
	s := NewSeededScrambler(8)
	assert.Empty(t, s.Scramble(0))
	assert.Empty(t, s.Scramble(-3))
	assert.Len(t, s.Scramble(1), 1)
	assert.Len(t, s.Scramble(2), 2)
	assert.Len(t, RandomScramble(20), 20)
}

func TestScrambleLeavesCubeUnsolved(t *testing.T) {
	c := New()
	require.NoError(t, c.Apply(NewSeededScrambler(13).Scramble(25)...))
	assert.False(t, c.IsSolved())
	assert.Len(t, c.LastPerformedMoves(), 25)
}

func TestRandomMoveCoversAllMagnitudes(t *testing.T) {
	s := NewSeededScrambler(21)
	seen := map[Magnitude]bool{}
	faces := map[Face]bool{}
	for i := 0; i < 500; i++ {
		m := s.RandomMove()
		require.True(t, m.Valid())
		seen[m.Magnitude] = true
		faces[m.Face] = true
	}
	assert.Len(t, seen, 3)
	assert.Len(t, faces, 6)

	for i := 0; i < 100; i++ {
		assert.True(t, s.RandomFace().Valid())
		assert.True(t, s.RandomQuarter().Magnitude.IsQuarter())
	}
}
