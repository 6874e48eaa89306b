package rubik

import (
	"math/rand/v2"
	"sync"
)

// Scrambler generates random moves and scrambles from an injected source.
// A Scrambler built from a seeded source is fully reproducible.
type Scrambler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewScrambler returns a Scrambler drawing from src.
// A nil src uses a randomly seeded PCG source.
func NewScrambler(src rand.Source) *Scrambler {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Scrambler{rng: rand.New(src)}
}

// NewSeededScrambler returns a Scrambler backed by a PCG source seeded with seed.
func NewSeededScrambler(seed uint64) *Scrambler {
	return NewScrambler(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomFace returns a uniformly random face.
func (s *Scrambler) RandomFace() Face {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.randomFaceLocked()
}

// RandomQuarter returns a clockwise or counter-clockwise turn of a random face.
func (s *Scrambler) RandomQuarter() Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.randomQuarterLocked()
}

// RandomMove returns a random turn of a random face, half turns included.
func (s *Scrambler) RandomMove() Move {
	s.mu.Lock()
	defer s.mu.Unlock()

	magnitudes := [3]Magnitude{Clockwise, CounterClockwise, Half}
	return Move{Face: s.randomFaceLocked(), Magnitude: magnitudes[s.rng.IntN(3)]}
}

// Scramble returns length random quarter turns. A candidate is redrawn while
// it turns the same face as the previous move or the move before that, so no
// adjacent pair can fold together.
func (s *Scrambler) Scramble(length int) []Move {
	if length <= 0 {
		return []Move{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	moves := make([]Move, 0, length)
	for len(moves) < length {
		next := s.randomQuarterLocked()
		if isRedundant(next, moves) {
			continue
		}
		moves = append(moves, next)
	}
	return moves
}

// isRedundant reports whether m repeats the face of the last or last-but-one
// move of seq.
func isRedundant(m Move, seq []Move) bool {
	n := len(seq)
	if n >= 1 && seq[n-1].Face == m.Face {
		return true
	}
	if n >= 2 && seq[n-2].Face == m.Face {
		return true
	}
	return false
}

func (s *Scrambler) randomFaceLocked() Face {
	return Faces[s.rng.IntN(len(Faces))]
}

func (s *Scrambler) randomQuarterLocked() Move {
	magnitude := Clockwise
	if s.rng.IntN(2) == 1 {
		magnitude = CounterClockwise
	}
	return Move{Face: s.randomFaceLocked(), Magnitude: magnitude}
}

// RandomScramble returns a scramble of length quarter turns from a randomly
// seeded source.
func RandomScramble(length int) []Move {
	return NewScrambler(nil).Scramble(length)
}
