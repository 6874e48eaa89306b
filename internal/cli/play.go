package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik2d"
	"github.com/SeamusWaldron/rubik2d/internal/recorder"
	"github.com/SeamusWaldron/rubik2d/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube",
	Long: `Start an interactive TUI for turning the cube.

Keyboard shortcuts:
  f r u b l d   - Turn a face clockwise
  F R U B L D   - Turn a face counter-clockwise
  s             - Scramble (animated)
  enter         - Solve (animated)
  q/Esc         - Quit

Moves are recorded to the active session when there is one; otherwise the
cube lives only as long as the TUI.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	var session *recorder.Session
	var cube *rubik.Cube

	s, db, err := openActive()
	switch {
	case err == nil:
		defer db.Close()
		session, cube = s, s.Cube()
	case errors.Is(err, errNoActiveSession):
		logger.Debug("no active session, playing on a scratch cube")
		cube = rubik.New(rubik.WithLogger(logger))
	default:
		return err
	}

	length, seed := resolveScramble(0, 0)
	model := newPlayModel(cube, session, rubik.NewSeededScrambler(seed), length, cfg.Replay.Interval())
	defer model.close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	if session != nil {
		return session.Err()
	}
	return nil
}

// Messages
type moveAppliedMsg struct {
	move rubik.Move
	ch   <-chan rubik.Move
}
type batchDoneMsg struct{}
type playErrMsg struct{ err error }

// playModel drives a cube from the keyboard. Animated batches run on a
// dispatcher; the model follows them through the dispatcher's move stream.
type playModel struct {
	cube       *rubik.Cube
	session    *recorder.Session
	dispatcher *rubik.Dispatcher
	tracker    *rubik.Tracker
	scrambler  *rubik.Scrambler
	length     int
	interval   time.Duration

	moves     []rubik.Move
	animating bool
	status    string
	err       error
	quitting  bool
}

func newPlayModel(c *rubik.Cube, session *recorder.Session, scrambler *rubik.Scrambler, length int, interval time.Duration) *playModel {
	return &playModel{
		cube:       c,
		session:    session,
		dispatcher: rubik.NewDispatcher(c, rubik.WithDispatchLogger(logger)),
		tracker:    rubik.NewTracker(c),
		scrambler:  scrambler,
		length:     length,
		interval:   interval,
	}
}

func (m *playModel) close() {
	m.dispatcher.Close()
	m.tracker.Close()
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

var faceKeys = map[string]rubik.Face{
	"f": rubik.FaceFront,
	"r": rubik.FaceRight,
	"u": rubik.FaceTop,
	"b": rubik.FaceBack,
	"l": rubik.FaceLeft,
	"d": rubik.FaceBottom,
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "s":
			if m.animating {
				return m, nil
			}
			m.status = "Scrambling..."
			return m, m.submit(m.scrambler.Scramble(m.length), storage.SourceScramble)

		case "enter":
			if m.animating {
				return m, nil
			}
			solution := solutionFor(m.cube)
			if len(solution) == 0 {
				m.status = "Already solved"
				return m, nil
			}
			m.status = fmt.Sprintf("Solving in %d moves...", len(solution))
			return m, m.submit(solution, storage.SourceSolve)
		}

		if m.animating || len(key) != 1 {
			return m, nil
		}
		face, ok := faceKeys[strings.ToLower(key)]
		if !ok {
			return m, nil
		}
		move := rubik.Move{Face: face, Magnitude: rubik.Clockwise}
		if key != strings.ToLower(key) {
			move.Magnitude = rubik.CounterClockwise
		}
		m.setSource(storage.SourceUser)
		if err := m.cube.Apply(move); err != nil {
			m.err = err
			return m, nil
		}
		m.moves = append(m.moves, move)
		m.status = ""
		if m.cube.IsSolved() {
			m.status = fmt.Sprintf("Solved in %d moves!", m.tracker.MoveCount())
		}

	case moveAppliedMsg:
		m.moves = append(m.moves, msg.move)
		return m, waitForMove(msg.ch)

	case batchDoneMsg:
		m.animating = false
		if m.status == "Scrambling..." {
			m.tracker.Reset()
			m.status = "Scrambled"
		} else if m.cube.IsSolved() {
			m.status = "Solved!"
		}

	case playErrMsg:
		m.animating = false
		m.err = msg.err
	}

	return m, nil
}

func (m *playModel) setSource(src storage.Source) {
	if m.session != nil {
		m.session.SetSource(src)
	}
}

func (m *playModel) submit(moves []rubik.Move, src storage.Source) tea.Cmd {
	m.setSource(src)
	ch, err := m.dispatcher.Submit(moves, m.interval, nil)
	if err != nil {
		return func() tea.Msg { return playErrMsg{err: err} }
	}
	m.animating = true
	return waitForMove(ch)
}

// waitForMove blocks until the dispatcher applies the next move of a batch.
func waitForMove(ch <-chan rubik.Move) tea.Cmd {
	return func() tea.Msg {
		mv, ok := <-ch
		if !ok {
			return batchDoneMsg{}
		}
		return moveAppliedMsg{move: mv, ch: ch}
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	title := "Rubik's Cube"
	if m.session != nil {
		title += " - session " + shortID(m.session.SessionID())
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(renderNet(m.cube))
	b.WriteString("\n\n")
	b.WriteString(renderStatus(m.cube))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Moves: %d  Best: %d/%d  Furthest phase: %s\n",
		m.tracker.MoveCount(), m.tracker.HighestSolved(), rubik.NumPieces, m.tracker.HighestPhase().DisplayName()))
	b.WriteString("Last: ")
	b.WriteString(renderMoves(m.moves, 20))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("f/r/u/b/l/d=turn  shift=counter-clockwise  s=scramble  enter=solve  q=quit"))
	b.WriteString("\n")

	return b.String()
}
