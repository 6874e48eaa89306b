package rubik

// Positions contained in each face, in the cyclic order a clockwise turn of
// that face walks them. Index i+1 is where the piece at index i lands after a
// clockwise quarter turn.
var (
	cornersInFace = [6][4]CornerPosition{
		FaceFront:  {TopLeftFront, TopRightFront, BottomRightFront, BottomLeftFront},
		FaceRight:  {TopRightFront, TopRightBack, BottomRightBack, BottomRightFront},
		FaceTop:    {TopRightFront, TopLeftFront, TopLeftBack, TopRightBack},
		FaceBack:   {TopRightBack, TopLeftBack, BottomLeftBack, BottomRightBack},
		FaceLeft:   {TopLeftBack, TopLeftFront, BottomLeftFront, BottomLeftBack},
		FaceBottom: {BottomRightFront, BottomRightBack, BottomLeftBack, BottomLeftFront},
	}

	edgesInFace = [6][4]EdgePosition{
		FaceFront:  {TopFront, MiddleRightFront, BottomFront, MiddleLeftFront},
		FaceRight:  {MiddleRightFront, TopRight, MiddleRightBack, BottomRight},
		FaceTop:    {TopRight, TopFront, TopLeft, TopBack},
		FaceBack:   {TopBack, MiddleLeftBack, BottomBack, MiddleRightBack},
		FaceLeft:   {BottomLeft, MiddleLeftBack, TopLeft, MiddleLeftFront},
		FaceBottom: {BottomLeft, BottomFront, BottomRight, BottomBack},
	}
)

// Faces touched by each slot. The first entry is always the top/bottom face
// for corners; the order is the sticker order of a piece that belongs there.
var (
	cornerFaces = [NumCorners][3]Face{
		TopRightFront:    {FaceTop, FaceRight, FaceFront},
		TopLeftFront:     {FaceTop, FaceFront, FaceLeft},
		TopLeftBack:      {FaceTop, FaceLeft, FaceBack},
		TopRightBack:     {FaceTop, FaceBack, FaceRight},
		BottomLeftFront:  {FaceBottom, FaceLeft, FaceFront},
		BottomRightFront: {FaceBottom, FaceFront, FaceRight},
		BottomRightBack:  {FaceBottom, FaceRight, FaceBack},
		BottomLeftBack:   {FaceBottom, FaceBack, FaceLeft},
	}

	edgeFaces = [NumEdges][2]Face{
		TopFront:         {FaceTop, FaceFront},
		TopLeft:          {FaceTop, FaceLeft},
		TopBack:          {FaceTop, FaceBack},
		TopRight:         {FaceTop, FaceRight},
		MiddleRightFront: {FaceRight, FaceFront},
		MiddleRightBack:  {FaceRight, FaceBack},
		MiddleLeftBack:   {FaceLeft, FaceBack},
		MiddleLeftFront:  {FaceLeft, FaceFront},
		BottomFront:      {FaceBottom, FaceFront},
		BottomRight:      {FaceBottom, FaceRight},
		BottomBack:       {FaceBottom, FaceBack},
		BottomLeft:       {FaceBottom, FaceLeft},
	}
)

// Row-major sticker order of each face as seen head-on in the standard net:
// corners fill (0,0) (0,2) (2,0) (2,2); edges fill (0,1) (1,0) (1,2) (2,1).
var (
	cornerStickerOrder = [6][4]CornerPosition{
		FaceFront:  {TopLeftFront, TopRightFront, BottomLeftFront, BottomRightFront},
		FaceRight:  {TopRightFront, TopRightBack, BottomRightFront, BottomRightBack},
		FaceTop:    {TopLeftBack, TopRightBack, TopLeftFront, TopRightFront},
		FaceBack:   {TopRightBack, TopLeftBack, BottomRightBack, BottomLeftBack},
		FaceLeft:   {TopLeftBack, TopLeftFront, BottomLeftBack, BottomLeftFront},
		FaceBottom: {BottomLeftFront, BottomRightFront, BottomLeftBack, BottomRightBack},
	}

	edgeStickerOrder = [6][4]EdgePosition{
		FaceFront:  {TopFront, MiddleLeftFront, MiddleRightFront, BottomFront},
		FaceRight:  {TopRight, MiddleRightFront, MiddleRightBack, BottomRight},
		FaceTop:    {TopBack, TopLeft, TopRight, TopFront},
		FaceBack:   {TopBack, MiddleRightBack, MiddleLeftBack, BottomBack},
		FaceLeft:   {TopLeft, MiddleLeftBack, MiddleLeftFront, BottomLeft},
		FaceBottom: {BottomFront, BottomLeft, BottomRight, BottomBack},
	}

	cornerCells = [4][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}}
	edgeCells   = [4][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}}
)

// The lookups below index fixed tables and expect valid arguments; check
// Face.Valid or the position's Valid first when the value comes from input.

// CornersIn returns the four corner slots of face f in turning order.
func CornersIn(f Face) [4]CornerPosition {
	return cornersInFace[f]
}

// EdgesIn returns the four edge slots of face f in turning order.
func EdgesIn(f Face) [4]EdgePosition {
	return edgesInFace[f]
}

// FacesOfCorner returns the three faces touching corner slot p.
func FacesOfCorner(p CornerPosition) [3]Face {
	return cornerFaces[p]
}

// FacesOfEdge returns the two faces touching edge slot p.
func FacesOfEdge(p EdgePosition) [2]Face {
	return edgeFaces[p]
}

// CornerStickerOrder returns the corner slots of f in row-major display order.
func CornerStickerOrder(f Face) [4]CornerPosition {
	return cornerStickerOrder[f]
}

// EdgeStickerOrder returns the edge slots of f in row-major display order.
func EdgeStickerOrder(f Face) [4]EdgePosition {
	return edgeStickerOrder[f]
}

// cornerSticker returns which of the slot's faces is f, or -1.
func cornerSticker(p CornerPosition, f Face) int {
	for i, face := range cornerFaces[p] {
		if face == f {
			return i
		}
	}
	return -1
}

// edgeSticker returns which of the slot's faces is f, or -1.
func edgeSticker(p EdgePosition, f Face) int {
	for i, face := range edgeFaces[p] {
		if face == f {
			return i
		}
	}
	return -1
}
