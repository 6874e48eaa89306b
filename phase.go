package rubik

// Phase is a stage of the layer-by-layer method, solving the white (top)
// layer first. Phases are ordered, so they compare with < and >.
type Phase int

const (
	// PhaseScrambled means the white cross is not complete.
	PhaseScrambled Phase = iota

	// PhaseWhiteCross means the four top edges are home and unflipped.
	PhaseWhiteCross

	// PhaseFirstLayer means the four top corners are also home and untwisted.
	PhaseFirstLayer

	// PhaseSecondLayer means the four middle edges are solved as well.
	PhaseSecondLayer

	// PhaseYellowCross means every bottom edge shows yellow on the bottom
	// face. The edges may still be permuted.
	PhaseYellowCross

	// PhaseYellowCorners means every bottom corner sits in its home slot,
	// possibly twisted.
	PhaseYellowCorners

	// PhaseYellowOriented means every bottom corner is home and untwisted.
	PhaseYellowOriented

	// PhaseSolved means all twenty pieces are solved.
	PhaseSolved
)

func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseYellowCross:
		return "yellow_cross"
	case PhaseYellowCorners:
		return "yellow_corners"
	case PhaseYellowOriented:
		return "yellow_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer"
	case PhaseYellowCross:
		return "Yellow Cross"
	case PhaseYellowCorners:
		return "Yellow Corners"
	case PhaseYellowOriented:
		return "Yellow Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

var (
	topEdges      = [4]EdgePosition{TopFront, TopLeft, TopBack, TopRight}
	middleEdges   = [4]EdgePosition{MiddleRightFront, MiddleRightBack, MiddleLeftBack, MiddleLeftFront}
	bottomEdges   = [4]EdgePosition{BottomFront, BottomRight, BottomBack, BottomLeft}
	topCorners    = [4]CornerPosition{TopRightFront, TopLeftFront, TopLeftBack, TopRightBack}
	bottomCorners = [4]CornerPosition{BottomLeftFront, BottomRightFront, BottomRightBack, BottomLeftBack}
)

// Phase returns the furthest layer-by-layer phase the cube has reached.
// Each phase requires all earlier ones.
func (c *Cube) Phase() Phase {
	c.mu.RLock()
	corners, edges := c.corners, c.edges
	c.mu.RUnlock()
	return detectPhase(corners, edges)
}

func detectPhase(corners [NumCorners]CornerPiece, edges [NumEdges]EdgePiece) Phase {
	for _, p := range topEdges {
		if !edges[p].SolvedAt(p) {
			return PhaseScrambled
		}
	}
	for _, p := range topCorners {
		if !corners[p].SolvedAt(p) {
			return PhaseWhiteCross
		}
	}
	for _, p := range middleEdges {
		if !edges[p].SolvedAt(p) {
			return PhaseFirstLayer
		}
	}
	// A bottom slot's first sticker faces down.
	for _, p := range bottomEdges {
		if edges[p].Colors()[0] != Yellow {
			return PhaseSecondLayer
		}
	}
	for _, p := range bottomCorners {
		if corners[p].OriginalPosition != p {
			return PhaseYellowCross
		}
	}
	for _, p := range bottomCorners {
		if !corners[p].SolvedAt(p) {
			return PhaseYellowCorners
		}
	}
	for _, p := range bottomEdges {
		if !edges[p].SolvedAt(p) {
			return PhaseYellowOriented
		}
	}
	return PhaseSolved
}
