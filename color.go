package rubik

import "fmt"

// Color represents a sticker color.
type Color byte

const (
	Green  Color = 0 // Front face when solved
	Red    Color = 1 // Right face when solved
	White  Color = 2 // Top face when solved
	Blue   Color = 3 // Back face when solved
	Orange Color = 4 // Left face when solved
	Yellow Color = 5 // Bottom face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Color returns the color of face f when the cube is solved.
func (f Face) Color() Color {
	return Color(f)
}

// Colors returns the piece's sticker colors, aligned with the faces of the slot
// it currently occupies: the face colors rotated backward by the orientation.
func (p CornerPiece) Colors() [3]Color {
	faces := p.Faces()
	var out [3]Color
	for i := range out {
		out[i] = faces[mod(i-int(p.Orientation), 3)].Color()
	}
	return out
}

// Colors returns the piece's sticker colors, aligned with the faces of the slot
// it currently occupies.
func (p EdgePiece) Colors() [2]Color {
	faces := p.Faces()
	var out [2]Color
	for i := range out {
		out[i] = faces[mod(i-int(p.Orientation), 2)].Color()
	}
	return out
}

// CornerSticker is the color shown by a corner slot on one face.
type CornerSticker struct {
	Position CornerPosition
	Color    Color
}

// EdgeSticker is the color shown by an edge slot on one face.
type EdgeSticker struct {
	Position EdgePosition
	Color    Color
}

// FaceColors holds the current sticker colors of one face, in turning order.
type FaceColors struct {
	Corners [4]CornerSticker
	Edges   [4]EdgeSticker
}

// ColorsInFace returns the color every corner and edge slot of f currently
// shows on that face.
func (c *Cube) ColorsInFace(f Face) (FaceColors, error) {
	if !f.Valid() {
		return FaceColors{}, fmt.Errorf("%w: %d", ErrInvalidFace, int(f))
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var fc FaceColors
	for i, pos := range CornersIn(f) {
		fc.Corners[i] = CornerSticker{Position: pos, Color: c.cornerColor(pos, f)}
	}
	for i, pos := range EdgesIn(f) {
		fc.Edges[i] = EdgeSticker{Position: pos, Color: c.edgeColor(pos, f)}
	}
	return fc, nil
}

// Sticker returns the color at (row, col) of face f as seen in the standard
// net. Rows and columns run 0..2; the center (1, 1) is the face's own color.
func (c *Cube) Sticker(f Face, row, col int) (Color, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFace, int(f))
	}
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return 0, fmt.Errorf("%w: row %d, column %d", ErrOutOfRange, row, col)
	}

	grid := c.FaceGrid(f)
	return grid[row][col], nil
}

// FaceGrid returns the nine sticker colors of f in row-major display order.
func (c *Cube) FaceGrid(f Face) [3][3]Color {
	var grid [3][3]Color
	if !f.Valid() {
		return grid
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	grid[1][1] = f.Color()
	for i, pos := range CornerStickerOrder(f) {
		cell := cornerCells[i]
		grid[cell[0]][cell[1]] = c.cornerColor(pos, f)
	}
	for i, pos := range EdgeStickerOrder(f) {
		cell := edgeCells[i]
		grid[cell[0]][cell[1]] = c.edgeColor(pos, f)
	}
	return grid
}

// cornerColor must be called with c.mu held.
func (c *Cube) cornerColor(pos CornerPosition, f Face) Color {
	return c.corners[pos].Colors()[cornerSticker(pos, f)]
}

// edgeColor must be called with c.mu held.
func (c *Cube) edgeColor(pos EdgePosition, f Face) Color {
	return c.edges[pos].Colors()[edgeSticker(pos, f)]
}
