package rubik

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// NumPieces is the number of movable pieces (8 corners + 12 edges).
const NumPieces = NumCorners + NumEdges

// EventKind distinguishes the two notifications fired around every move.
type EventKind int

const (
	// EventWillApply fires before the move mutates the cube.
	EventWillApply EventKind = iota
	// EventDidApply fires after the move has been applied.
	EventDidApply
)

func (k EventKind) String() string {
	switch k {
	case EventWillApply:
		return "will_apply"
	case EventDidApply:
		return "did_apply"
	default:
		return "unknown"
	}
}

// Event describes a move about to be, or just, applied to a cube.
type Event struct {
	Kind EventKind
	Move Move
	// SolvedPieces is the solved count at the time the event fired.
	SolvedPieces int
}

// Observer receives move events synchronously on the goroutine applying the
// move. Observers may read the cube but must not apply moves to it.
type Observer func(Event)

type subscription struct {
	id int
	fn Observer
}

// Cube is the piece-level state of a 3x3x3 cube.
//
// Corner and edge pieces are stored by the slot they currently occupy. Every
// move rebuilds the arrays from a snapshot of the previous state, so the
// arrays are always a permutation of the canonical pieces.
//
// Reads are safe from any goroutine. Moves must be applied by a single writer;
// use a Dispatcher to apply batches from the background.
type Cube struct {
	mu      sync.RWMutex
	corners [NumCorners]CornerPiece
	edges   [NumEdges]EdgePiece
	history []Move

	moving atomic.Bool

	obsMu     sync.Mutex
	observers []subscription
	nextObsID int

	logger      *log.Logger
	moveHistory bool
}

// New creates a solved cube.
func New(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{
		logger:      cfg.logger,
		moveHistory: cfg.moveHistory,
	}
	c.resetLocked()
	for _, o := range cfg.observers {
		c.Subscribe(o)
	}
	return c
}

func (c *Cube) resetLocked() {
	for _, pos := range CornerPositions {
		c.corners[pos] = NewCornerPiece(pos)
	}
	for _, pos := range EdgePositions {
		c.edges[pos] = NewEdgePiece(pos)
	}
	c.history = nil
}

// Reset returns the cube to the solved state and clears the move log.
func (c *Cube) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// Subscribe registers an observer and returns a function that removes it.
func (c *Cube) Subscribe(o Observer) (unsubscribe func()) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()

	id := c.nextObsID
	c.nextObsID++
	c.observers = append(c.observers, subscription{id: id, fn: o})

	return func() {
		c.obsMu.Lock()
		defer c.obsMu.Unlock()
		for i, s := range c.observers {
			if s.id == id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

func (c *Cube) notify(e Event) {
	c.obsMu.Lock()
	subs := make([]subscription, len(c.observers))
	copy(subs, c.observers)
	c.obsMu.Unlock()

	for _, s := range subs {
		s.fn(e)
	}
}

// Apply applies moves in order. All moves are validated before the first one
// is applied; an invalid move leaves the cube untouched.
func (c *Cube) Apply(moves ...Move) error {
	for i, m := range moves {
		if !m.Valid() {
			return fmt.Errorf("move %d (face %d, magnitude %d): %w", i+1, int(m.Face), int(m.Magnitude), invalidMoveErr(m))
		}
	}

	for _, m := range moves {
		c.notify(Event{Kind: EventWillApply, Move: m, SolvedPieces: c.SolvedPieces()})

		c.mu.Lock()
		c.applyLocked(m)
		solved := c.solvedPiecesLocked()
		c.mu.Unlock()

		c.logger.Debug("applied move", "move", m.Notation(), "solved", solved)
		c.notify(Event{Kind: EventDidApply, Move: m, SolvedPieces: solved})
	}
	return nil
}

// ApplyNotation parses a notation string and applies it.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return c.Apply(moves...)
}

func invalidMoveErr(m Move) error {
	if !m.Face.Valid() {
		return ErrInvalidFace
	}
	return ErrInvalidMagnitude
}

// applyLocked rebuilds the piece arrays for one move. Must hold c.mu.
func (c *Cube) applyLocked(m Move) {
	prevCorners := c.corners
	prevEdges := c.edges
	nextCorners := prevCorners
	nextEdges := prevEdges

	// The piece landing at slot i comes from slot i+delta of the same face.
	delta := -int(m.Magnitude)

	cornerSlots := CornersIn(m.Face)
	for i, pos := range cornerSlots {
		piece := prevCorners[cornerSlots[mod(i+delta, 4)]]
		if m.RotatesCorners() {
			// Adjacent corners of a twisted face turn with opposite chirality.
			if i%2 == 0 {
				piece = piece.Twisted(CornerCounterClockwise)
			} else {
				piece = piece.Twisted(CornerClockwise)
			}
		}
		nextCorners[pos] = piece
	}

	edgeSlots := EdgesIn(m.Face)
	for i, pos := range edgeSlots {
		piece := prevEdges[edgeSlots[mod(i+delta, 4)]]
		if m.FlipsEdges() {
			piece = piece.Flipped()
		}
		nextEdges[pos] = piece
	}

	c.corners = nextCorners
	c.edges = nextEdges

	if c.moveHistory {
		c.history = append(c.history, m)
	}
	if c.solvedPiecesLocked() == NumPieces {
		c.history = nil
	}
}

// Corner returns the piece currently in corner slot p.
// p must be one of the CornerPosition constants.
func (c *Cube) Corner(p CornerPosition) CornerPiece {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.corners[p]
}

// Edge returns the piece currently in edge slot p.
// p must be one of the EdgePosition constants.
func (c *Cube) Edge(p EdgePosition) EdgePiece {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.edges[p]
}

// Corners returns a copy of the corner array, indexed by current slot.
func (c *Cube) Corners() [NumCorners]CornerPiece {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.corners
}

// Edges returns a copy of the edge array, indexed by current slot.
func (c *Cube) Edges() [NumEdges]EdgePiece {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.edges
}

// PiecesIn returns the pieces currently sitting in face f, in turning order.
func (c *Cube) PiecesIn(f Face) ([4]CornerPiece, [4]EdgePiece, error) {
	var corners [4]CornerPiece
	var edges [4]EdgePiece
	if !f.Valid() {
		return corners, edges, fmt.Errorf("%w: %d", ErrInvalidFace, int(f))
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for i, pos := range CornersIn(f) {
		corners[i] = c.corners[pos]
	}
	for i, pos := range EdgesIn(f) {
		edges[i] = c.edges[pos]
	}
	return corners, edges, nil
}

// SolvedCorners returns how many corners are home and untwisted (0..8).
func (c *Cube) SolvedCorners() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.solvedCornersLocked()
}

// SolvedEdges returns how many edges are home and unflipped (0..12).
func (c *Cube) SolvedEdges() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.solvedEdgesLocked()
}

// SolvedPieces returns SolvedCorners + SolvedEdges (0..20).
func (c *Cube) SolvedPieces() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.solvedPiecesLocked()
}

// IsSolved returns true if every piece is solved.
func (c *Cube) IsSolved() bool {
	return c.SolvedPieces() == NumPieces
}

func (c *Cube) solvedCornersLocked() int {
	n := 0
	for _, pos := range CornerPositions {
		if c.corners[pos].SolvedAt(pos) {
			n++
		}
	}
	return n
}

func (c *Cube) solvedEdgesLocked() int {
	n := 0
	for _, pos := range EdgePositions {
		if c.edges[pos].SolvedAt(pos) {
			n++
		}
	}
	return n
}

func (c *Cube) solvedPiecesLocked() int {
	return c.solvedCornersLocked() + c.solvedEdgesLocked()
}

// LastPerformedMoves returns the moves applied since the cube was last solved.
// Applying Invert of this slice returns the cube to solved.
func (c *Cube) LastPerformedMoves() []Move {
	c.mu.RLock()
	defer c.mu.RUnlock()

	moves := make([]Move, len(c.history))
	copy(moves, c.history)
	return moves
}

// Moving reports whether a Dispatcher is currently applying a batch.
func (c *Cube) Moving() bool {
	return c.moving.Load()
}

// Clone returns an independent copy of the cube's pieces and move log.
// Observers are not copied.
func (c *Cube) Clone() *Cube {
	c.mu.RLock()
	defer c.mu.RUnlock()

	clone := &Cube{
		corners:     c.corners,
		edges:       c.edges,
		logger:      c.logger,
		moveHistory: c.moveHistory,
	}
	clone.history = make([]Move, len(c.history))
	copy(clone.history, c.history)
	return clone
}

// SameState reports whether both cubes have identical pieces in every slot.
// Move logs are not compared.
func (c *Cube) SameState(other *Cube) bool {
	if c == other {
		return true
	}
	oc, oe := other.Corners(), other.Edges()
	cc, ce := c.Corners(), c.Edges()
	return cc == oc && ce == oe
}

// Validate checks that the piece arrays are a permutation of the canonical
// pieces with in-range orientations. A failure is a programming error.
func (c *Cube) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var seenCorners [NumCorners]bool
	for pos, p := range c.corners {
		if !p.OriginalPosition.Valid() || seenCorners[p.OriginalPosition] {
			return fmt.Errorf("%w: corner slot %s holds %d", ErrInvalidPermutation, CornerPosition(pos), int(p.OriginalPosition))
		}
		if p.Orientation < CornerCorrect || p.Orientation > CornerCounterClockwise {
			return fmt.Errorf("%w: corner slot %s orientation %d", ErrInvalidPermutation, CornerPosition(pos), int(p.Orientation))
		}
		seenCorners[p.OriginalPosition] = true
	}

	var seenEdges [NumEdges]bool
	for pos, p := range c.edges {
		if !p.OriginalPosition.Valid() || seenEdges[p.OriginalPosition] {
			return fmt.Errorf("%w: edge slot %s holds %d", ErrInvalidPermutation, EdgePosition(pos), int(p.OriginalPosition))
		}
		if p.Orientation != EdgeCorrect && p.Orientation != EdgeFlipped {
			return fmt.Errorf("%w: edge slot %s orientation %d", ErrInvalidPermutation, EdgePosition(pos), int(p.Orientation))
		}
		seenEdges[p.OriginalPosition] = true
	}

	return nil
}

// String returns the sticker net of the cube.
//
//	      U
//	    L F R B
//	      D
func (c *Cube) String() string {
	var sb strings.Builder

	writeRow := func(f Face, row int) {
		grid := c.FaceGrid(f)
		for col := 0; col < 3; col++ {
			sb.WriteString(grid[row][col].String())
			sb.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		writeRow(FaceTop, row)
		sb.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, f := range []Face{FaceLeft, FaceFront, FaceRight, FaceBack} {
			writeRow(f, row)
		}
		sb.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		writeRow(FaceBottom, row)
		sb.WriteByte('\n')
	}

	return sb.String()
}
