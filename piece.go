package rubik

// CornerPosition identifies one of the eight corner slots.
type CornerPosition int

const (
	TopRightFront    CornerPosition = 0
	TopLeftFront     CornerPosition = 1
	TopLeftBack      CornerPosition = 2
	TopRightBack     CornerPosition = 3
	BottomLeftFront  CornerPosition = 4
	BottomRightFront CornerPosition = 5
	BottomRightBack  CornerPosition = 6
	BottomLeftBack   CornerPosition = 7
)

// NumCorners is the number of corner slots on the cube.
const NumCorners = 8

// CornerPositions lists every corner slot in canonical index order.
var CornerPositions = [NumCorners]CornerPosition{
	TopRightFront, TopLeftFront, TopLeftBack, TopRightBack,
	BottomLeftFront, BottomRightFront, BottomRightBack, BottomLeftBack,
}

// Valid reports whether p is a canonical corner slot.
func (p CornerPosition) Valid() bool {
	return p >= 0 && p < NumCorners
}

func (p CornerPosition) String() string {
	switch p {
	case TopRightFront:
		return "URF"
	case TopLeftFront:
		return "ULF"
	case TopLeftBack:
		return "ULB"
	case TopRightBack:
		return "URB"
	case BottomLeftFront:
		return "DLF"
	case BottomRightFront:
		return "DRF"
	case BottomRightBack:
		return "DRB"
	case BottomLeftBack:
		return "DLB"
	default:
		return "?"
	}
}

// EdgePosition identifies one of the twelve edge slots.
type EdgePosition int

const (
	TopFront EdgePosition = 0
	TopLeft  EdgePosition = 1
	TopBack  EdgePosition = 2
	TopRight EdgePosition = 3

	MiddleRightFront EdgePosition = 4
	MiddleRightBack  EdgePosition = 5
	MiddleLeftBack   EdgePosition = 6
	MiddleLeftFront  EdgePosition = 7

	BottomFront EdgePosition = 8
	BottomRight EdgePosition = 9
	BottomBack  EdgePosition = 10
	BottomLeft  EdgePosition = 11
)

// NumEdges is the number of edge slots on the cube.
const NumEdges = 12

// EdgePositions lists every edge slot in canonical index order.
var EdgePositions = [NumEdges]EdgePosition{
	TopFront, TopLeft, TopBack, TopRight,
	MiddleRightFront, MiddleRightBack, MiddleLeftBack, MiddleLeftFront,
	BottomFront, BottomRight, BottomBack, BottomLeft,
}

// Valid reports whether p is a canonical edge slot.
func (p EdgePosition) Valid() bool {
	return p >= 0 && p < NumEdges
}

func (p EdgePosition) String() string {
	switch p {
	case TopFront:
		return "UF"
	case TopLeft:
		return "UL"
	case TopBack:
		return "UB"
	case TopRight:
		return "UR"
	case MiddleRightFront:
		return "RF"
	case MiddleRightBack:
		return "RB"
	case MiddleLeftBack:
		return "LB"
	case MiddleLeftFront:
		return "LF"
	case BottomFront:
		return "DF"
	case BottomRight:
		return "DR"
	case BottomBack:
		return "DB"
	case BottomLeft:
		return "DL"
	default:
		return "?"
	}
}

// CornerOrientation is the twist of a corner piece, an element of Z/3.
type CornerOrientation int

const (
	CornerCorrect          CornerOrientation = 0
	CornerClockwise        CornerOrientation = 1
	CornerCounterClockwise CornerOrientation = 2
)

// Add returns o + other mod 3.
func (o CornerOrientation) Add(other CornerOrientation) CornerOrientation {
	return CornerOrientation(mod(int(o)+int(other), 3))
}

func (o CornerOrientation) String() string {
	switch o {
	case CornerCorrect:
		return "correct"
	case CornerClockwise:
		return "clockwise"
	case CornerCounterClockwise:
		return "counter-clockwise"
	default:
		return "?"
	}
}

// EdgeOrientation is the flip state of an edge piece, an element of Z/2.
type EdgeOrientation int

const (
	EdgeCorrect EdgeOrientation = 0
	EdgeFlipped EdgeOrientation = 1
)

// Add returns o + other mod 2.
func (o EdgeOrientation) Add(other EdgeOrientation) EdgeOrientation {
	return EdgeOrientation(mod(int(o)+int(other), 2))
}

func (o EdgeOrientation) String() string {
	if o == EdgeFlipped {
		return "flipped"
	}
	return "correct"
}

// CornerPiece is a corner cubie. It is a plain value: copying it yields an
// independent piece with the same identity and twist.
type CornerPiece struct {
	OriginalPosition CornerPosition
	Orientation      CornerOrientation
}

// NewCornerPiece returns the untwisted piece that belongs at p.
func NewCornerPiece(p CornerPosition) CornerPiece {
	return CornerPiece{OriginalPosition: p, Orientation: CornerCorrect}
}

// Faces returns the three faces the piece's stickers belong to, in the fixed
// cyclic order of its original slot.
func (p CornerPiece) Faces() [3]Face {
	return FacesOfCorner(p.OriginalPosition)
}

// Twisted returns the piece with its orientation advanced by o.
func (p CornerPiece) Twisted(o CornerOrientation) CornerPiece {
	p.Orientation = p.Orientation.Add(o)
	return p
}

// SolvedAt reports whether the piece is home and untwisted when sitting at pos.
func (p CornerPiece) SolvedAt(pos CornerPosition) bool {
	return p.OriginalPosition == pos && p.Orientation == CornerCorrect
}

// EdgePiece is an edge cubie.
type EdgePiece struct {
	OriginalPosition EdgePosition
	Orientation      EdgeOrientation
}

// NewEdgePiece returns the unflipped piece that belongs at p.
func NewEdgePiece(p EdgePosition) EdgePiece {
	return EdgePiece{OriginalPosition: p, Orientation: EdgeCorrect}
}

// Faces returns the two faces the piece's stickers belong to.
func (p EdgePiece) Faces() [2]Face {
	return FacesOfEdge(p.OriginalPosition)
}

// Flipped returns the piece with its orientation advanced by one.
func (p EdgePiece) Flipped() EdgePiece {
	p.Orientation = p.Orientation.Add(EdgeFlipped)
	return p
}

// SolvedAt reports whether the piece is home and unflipped when sitting at pos.
func (p EdgePiece) SolvedAt(pos EdgePosition) bool {
	return p.OriginalPosition == pos && p.Orientation == EdgeCorrect
}

// mod is the non-negative remainder of a / n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
