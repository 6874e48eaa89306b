package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/rubik2d"
)

func TestRenderNetSolved(t *testing.T) {
	out := renderNet(rubik.New())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9)

	for _, color := range []string{"W", "Y", "G", "B", "R", "O"} {
		assert.Equal(t, 9, strings.Count(out, color), color)
	}
	assert.True(t, strings.HasPrefix(lines[0], strings.Repeat(" ", faceWidth)))
	assert.Contains(t, lines[0], "W")
	assert.Contains(t, lines[8], "Y")
	assert.Contains(t, lines[4], "O")
}

func TestRenderNetKeepsStickerCounts(t *testing.T) {
	c := rubik.New()
	require.NoError(t, c.Apply(rubik.NewSeededScrambler(5).Scramble(20)...))

	out := renderNet(c)
	for _, color := range []string{"W", "Y", "G", "B", "R", "O"} {
		assert.Equal(t, 9, strings.Count(out, color), color)
	}
}

func TestRenderStatus(t *testing.T) {
	c := rubik.New()
	assert.Contains(t, renderStatus(c), "SOLVED")

	require.NoError(t, c.Apply(rubik.R))
	status := renderStatus(c)
	assert.Contains(t, status, "Solved pieces: 12/20")
	assert.Contains(t, status, "Scrambled")
}

func TestRenderMoves(t *testing.T) {
	assert.Contains(t, renderMoves(nil, 5), "(none)")
	assert.Contains(t, renderMoves([]rubik.Move{rubik.R, rubik.U2}, 5), "R U2")

	out := renderMoves([]rubik.Move{rubik.R, rubik.U, rubik.F}, 2)
	assert.True(t, strings.HasPrefix(out, "... "))
	assert.Contains(t, out, "U F")
	assert.NotContains(t, out, "R")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.50s", formatDuration(1500_000_000))
	assert.Equal(t, "1:05.00", formatDuration(65_000_000_000))
}
