package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/rubik2d"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var stickerColors = map[rubik.Color]lipgloss.Color{
	rubik.Green:  lipgloss.Color("34"),
	rubik.Red:    lipgloss.Color("160"),
	rubik.White:  lipgloss.Color("255"),
	rubik.Blue:   lipgloss.Color("27"),
	rubik.Orange: lipgloss.Color("208"),
	rubik.Yellow: lipgloss.Color("226"),
}

const faceWidth = 9

func renderSticker(c rubik.Color) string {
	return lipgloss.NewStyle().
		Background(stickerColors[c]).
		Foreground(lipgloss.Color("0")).
		Render(" " + c.String() + " ")
}

func renderFace(grid [3][3]rubik.Color) string {
	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		var sb strings.Builder
		for c := 0; c < 3; c++ {
			sb.WriteString(renderSticker(grid[r][c]))
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// renderNet draws the cube as an unfolded net:
//
//	  U
//	L F R B
//	  D
func renderNet(c *rubik.Cube) string {
	indent := lipgloss.NewStyle().PaddingLeft(faceWidth)

	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		renderFace(c.FaceGrid(rubik.FaceLeft)),
		renderFace(c.FaceGrid(rubik.FaceFront)),
		renderFace(c.FaceGrid(rubik.FaceRight)),
		renderFace(c.FaceGrid(rubik.FaceBack)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		indent.Render(renderFace(c.FaceGrid(rubik.FaceTop))),
		middle,
		indent.Render(renderFace(c.FaceGrid(rubik.FaceBottom))),
	)
}

// renderStatus summarizes solved pieces and the layer-by-layer phase.
func renderStatus(c *rubik.Cube) string {
	if c.IsSolved() {
		return phaseStyle.Render("SOLVED!")
	}
	return fmt.Sprintf("Solved pieces: %d/%d (corners %d/%d, edges %d/%d)  Phase: %s",
		c.SolvedPieces(), rubik.NumPieces,
		c.SolvedCorners(), rubik.NumCorners,
		c.SolvedEdges(), rubik.NumEdges,
		phaseStyle.Render(c.Phase().DisplayName()),
	)
}

// renderMoves renders at most the last limit moves.
func renderMoves(moves []rubik.Move, limit int) string {
	if len(moves) == 0 {
		return statusStyle.Render("(none)")
	}
	prefix := ""
	if limit > 0 && len(moves) > limit {
		moves = moves[len(moves)-limit:]
		prefix = "... "
	}
	return prefix + moveStyle.Render(rubik.FormatMoves(moves))
}
