package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/rubik2d"
)

func TestPlaySolutionReportsCountPerMove(t *testing.T) {
	c := rubik.New()
	require.NoError(t, c.Apply(rubik.NewSeededScrambler(5).Scramble(10)...))

	solution := solutionFor(c)
	require.NotEmpty(t, solution)

	replay := c.Clone()
	var want []string
	for _, m := range solution {
		require.NoError(t, replay.Apply(m))
		want = append(want, fmt.Sprintf("  %-3s %2d/%d solved", m.Notation(), replay.SolvedPieces(), rubik.NumPieces))
	}

	d := rubik.NewDispatcher(c)
	defer d.Close()

	var out bytes.Buffer
	require.NoError(t, playSolution(&out, c, d, solution, 0))

	got := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, want, got)
	assert.True(t, c.IsSolved())
}
