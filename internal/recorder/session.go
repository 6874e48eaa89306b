package recorder

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/rubik2d"
	"github.com/SeamusWaldron/rubik2d/internal/storage"
)

var (
	// ErrSessionInProgress is returned by Start and Resume while recording.
	ErrSessionInProgress = errors.New("recorder: session already in progress")

	// ErrNoSession is returned when an operation needs a recording session.
	ErrNoSession = errors.New("recorder: no session in progress")

	// ErrSessionEnded is returned when resuming a session that was ended.
	ErrSessionEnded = errors.New("recorder: session has ended")
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session records one cube session. Every move applied to Cube while
// recording is appended to the database, tagged with the current source.
// A move that solves the cube ends the session.
type Session struct {
	db        *storage.DB
	stateFile *StateFile
	logger    *log.Logger

	mu          sync.RWMutex
	state       SessionState
	sessionID   string
	startTime   time.Time
	source      storage.Source
	cube        *rubik.Cube
	tracker     *rubik.Tracker
	unsubscribe func()
	err         error

	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository

	onMove   func(rubik.Move)
	onPhase  func(rubik.Phase)
	onSolved func(moves int)
}

// NewSession creates a new session manager. stateFile may be nil.
func NewSession(db *storage.DB, stateFile *StateFile, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		db:          db,
		stateFile:   stateFile,
		logger:      logger,
		state:       StateIdle,
		source:      storage.SourceUser,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
	}
}

// SetMoveCallback sets the callback for recorded moves.
func (s *Session) SetMoveCallback(cb func(rubik.Move)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMove = cb
}

// SetPhaseCallback sets the callback for newly reached phases.
func (s *Session) SetPhaseCallback(cb func(rubik.Phase)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPhase = cb
}

// SetSolvedCallback sets the callback fired when a move solves the cube. It
// receives the number of moves made since the session started.
func (s *Session) SetSolvedCallback(cb func(moves int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSolved = cb
}

// SetSource tags subsequently recorded moves.
func (s *Session) SetSource(src storage.Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = src
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// Cube returns the session's cube, nil before Start or Resume.
func (s *Session) Cube() *rubik.Cube {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cube
}

// ElapsedMs returns the elapsed time since session start in milliseconds.
func (s *Session) ElapsedMs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateRecording {
		return 0
	}
	return time.Since(s.startTime).Milliseconds()
}

// MoveCount returns the number of moves made since the scramble.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tracker == nil {
		return 0
	}
	return s.tracker.MoveCount()
}

// Err returns the first error hit while persisting a move.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Start creates a session, applies and stores the scramble, and begins
// recording.
func (s *Session) Start(scramble []rubik.Move, seed *uint64, notes string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", ErrSessionInProgress
	}

	cube := rubik.New(rubik.WithLogger(s.logger))
	if err := cube.Apply(scramble...); err != nil {
		return "", fmt.Errorf("invalid scramble: %w", err)
	}

	sessionID, err := s.sessionRepo.Create(scramble, seed, notes)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	if _, err := s.moveRepo.Append(sessionID, scramble, storage.SourceScramble); err != nil {
		return "", fmt.Errorf("failed to store scramble: %w", err)
	}

	s.beginLocked(sessionID, time.Now(), cube)
	s.logger.Info("session started", "session", sessionID, "scramble", rubik.FormatMoves(scramble))
	return sessionID, nil
}

// Resume rebuilds the cube of an unfinished session and continues
// recording it.
func (s *Session) Resume(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return ErrSessionInProgress
	}

	sess, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return err
	}
	if !sess.Active() {
		return fmt.Errorf("session %s: %w", sessionID, ErrSessionEnded)
	}

	cube, err := s.moveRepo.Replay(sessionID, rubik.WithLogger(s.logger))
	if err != nil {
		return err
	}

	s.beginLocked(sessionID, sess.StartedAt, cube)
	s.logger.Debug("session resumed", "session", sessionID, "solved", cube.SolvedPieces())
	return nil
}

func (s *Session) beginLocked(sessionID string, started time.Time, cube *rubik.Cube) {
	s.sessionID = sessionID
	s.startTime = started
	s.cube = cube
	s.err = nil
	s.state = StateRecording

	// Persist before the tracker sees the move so a solving move is stored
	// before the session ends.
	s.unsubscribe = cube.Subscribe(s.record)

	s.tracker = rubik.NewTracker(cube)
	s.tracker.SetPhaseCallback(s.phaseReached)
	s.tracker.SetSolvedCallback(s.solved)

	if s.stateFile != nil {
		if err := s.stateFile.SetActiveSession(sessionID); err != nil {
			s.logger.Warn("failed to update state file", "err", err)
		}
	}
}

// Apply applies moves to the session cube, recording each one.
func (s *Session) Apply(moves ...rubik.Move) error {
	s.mu.RLock()
	state, cube := s.state, s.cube
	s.mu.RUnlock()

	if state != StateRecording {
		return ErrNoSession
	}
	if err := cube.Apply(moves...); err != nil {
		return err
	}
	return s.Err()
}

func (s *Session) record(e rubik.Event) {
	if e.Kind != rubik.EventDidApply {
		return
	}

	s.mu.Lock()
	if s.state != StateRecording {
		s.mu.Unlock()
		return
	}
	_, err := s.moveRepo.Append(s.sessionID, []rubik.Move{e.Move}, s.source)
	if err != nil && s.err == nil {
		s.err = fmt.Errorf("failed to store move %s: %w", e.Move, err)
	}
	onMove := s.onMove
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("failed to store move", "move", e.Move.Notation(), "err", err)
		return
	}
	if onMove != nil {
		onMove(e.Move)
	}
}

func (s *Session) phaseReached(p rubik.Phase) {
	s.mu.RLock()
	cb := s.onPhase
	s.mu.RUnlock()

	s.logger.Debug("phase reached", "phase", p.String())
	if cb != nil {
		cb(p)
	}
}

func (s *Session) solved(moves int) {
	s.mu.Lock()
	cb := s.onSolved
	err := s.endLocked(true)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("failed to end solved session", "err", err)
		return
	}
	s.logger.Info("cube solved", "moves", moves)
	if cb != nil {
		cb(moves)
	}
}

// End ends the current session, marking it solved if the cube is solved.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNoSession
	}
	return s.endLocked(s.cube.IsSolved())
}

func (s *Session) endLocked(solved bool) error {
	if s.state != StateRecording {
		return nil
	}

	if err := s.sessionRepo.End(s.sessionID, solved); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.state = StateEnded
	s.unsubscribe()
	s.tracker.Close()

	if s.stateFile != nil {
		if err := s.stateFile.ClearActiveSession(); err != nil {
			s.logger.Warn("failed to clear state file", "err", err)
		}
	}

	s.logger.Debug("session ended", "session", s.sessionID, "solved", solved)
	return nil
}
