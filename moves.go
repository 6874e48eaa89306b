package rubik

// Predefined moves for convenience.
//
// Example:
//
//	cube.Apply(rubik.R, rubik.U, rubik.RPrime, rubik.UPrime)
var (
	// Front face moves
	F      = Move{Face: FaceFront, Magnitude: Clockwise}
	FPrime = Move{Face: FaceFront, Magnitude: CounterClockwise}
	F2     = Move{Face: FaceFront, Magnitude: Half}

	// Right face moves
	R      = Move{Face: FaceRight, Magnitude: Clockwise}
	RPrime = Move{Face: FaceRight, Magnitude: CounterClockwise}
	R2     = Move{Face: FaceRight, Magnitude: Half}

	// Up (top) face moves
	U      = Move{Face: FaceTop, Magnitude: Clockwise}
	UPrime = Move{Face: FaceTop, Magnitude: CounterClockwise}
	U2     = Move{Face: FaceTop, Magnitude: Half}

	// Back face moves
	B      = Move{Face: FaceBack, Magnitude: Clockwise}
	BPrime = Move{Face: FaceBack, Magnitude: CounterClockwise}
	B2     = Move{Face: FaceBack, Magnitude: Half}

	// Left face moves
	L      = Move{Face: FaceLeft, Magnitude: Clockwise}
	LPrime = Move{Face: FaceLeft, Magnitude: CounterClockwise}
	L2     = Move{Face: FaceLeft, Magnitude: Half}

	// Down (bottom) face moves
	D      = Move{Face: FaceBottom, Magnitude: Clockwise}
	DPrime = Move{Face: FaceBottom, Magnitude: CounterClockwise}
	D2     = Move{Face: FaceBottom, Magnitude: Half}
)

// Sexy move: R U R' U'
var SexyMove = []Move{R, U, RPrime, UPrime}

// PLL algorithms
var (
	TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
	HPerm = []Move{R2, L2, DPrime, R2, L2, U2, R2, L2, DPrime, R2, L2}
)

// OLL algorithms
var (
	Sune = []Move{R, U, RPrime, U, R, U2, RPrime}
	TOLL = []Move{F, R, U, RPrime, UPrime, FPrime}
	POLL = []Move{F, U, R, UPrime, RPrime, FPrime}
)

// TwistURFCorner is two rounds of R' D' R D. It twists the top-right-front
// corner in place, disturbing only the bottom layer; three applications
// restore the cube.
var TwistURFCorner = []Move{RPrime, DPrime, R, D, RPrime, DPrime, R, D}
