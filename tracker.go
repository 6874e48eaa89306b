package rubik

import "sync"

// Tracker watches a Cube and reports progress toward the solved state.
type Tracker struct {
	mu               sync.Mutex
	cube             *Cube
	moves            int
	highestSolved    int   // Monotonic until Reset
	highestPhase     Phase // Monotonic until Reset
	progressCallback func(solved int)
	phaseCallback    func(Phase)
	solvedCallback   func(moves int)
	unsubscribe      func()
}

// NewTracker starts tracking c from its current state.
func NewTracker(c *Cube) *Tracker {
	t := &Tracker{
		cube:          c,
		highestSolved: c.SolvedPieces(),
		highestPhase:  c.Phase(),
	}
	t.unsubscribe = c.Subscribe(t.observe)
	return t
}

// SetProgressCallback sets a callback that fires when the solved count
// reaches a new high since the last Reset.
func (t *Tracker) SetProgressCallback(cb func(solved int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progressCallback = cb
}

// SetPhaseCallback sets a callback that fires when the cube first reaches a
// later layer-by-layer phase since the last Reset.
func (t *Tracker) SetPhaseCallback(cb func(Phase)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phaseCallback = cb
}

// SetSolvedCallback sets a callback that fires each time a move leaves the
// cube solved. It receives the number of moves since the last Reset.
func (t *Tracker) SetSolvedCallback(cb func(moves int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.solvedCallback = cb
}

// Reset restarts tracking from the cube's current state, typically right
// after a scramble.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.moves = 0
	t.highestSolved = t.cube.SolvedPieces()
	t.highestPhase = t.cube.Phase()
}

// Close stops observing the cube.
func (t *Tracker) Close() {
	t.unsubscribe()
}

func (t *Tracker) observe(e Event) {
	if e.Kind != EventDidApply {
		return
	}

	phase := t.cube.Phase()

	t.mu.Lock()
	t.moves++
	moves := t.moves

	var progress func(int)
	if e.SolvedPieces > t.highestSolved {
		t.highestSolved = e.SolvedPieces
		progress = t.progressCallback
	}
	var phaseChanged func(Phase)
	if phase > t.highestPhase {
		t.highestPhase = phase
		phaseChanged = t.phaseCallback
	}
	var solved func(int)
	if e.SolvedPieces == NumPieces {
		solved = t.solvedCallback
	}
	t.mu.Unlock()

	if progress != nil {
		progress(e.SolvedPieces)
	}
	if phaseChanged != nil {
		phaseChanged(phase)
	}
	if solved != nil {
		solved(moves)
	}
}

// MoveCount returns the number of moves applied since the last Reset.
func (t *Tracker) MoveCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.moves
}

// HighestSolved returns the best solved count reached since the last Reset.
func (t *Tracker) HighestSolved() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.highestSolved
}

// HighestPhase returns the furthest phase reached since the last Reset.
func (t *Tracker) HighestPhase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.highestPhase
}

// Cube returns the tracked cube.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
