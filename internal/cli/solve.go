package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik2d"
	"github.com/SeamusWaldron/rubik2d/internal/storage"
)

var solveInterval time.Duration

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the active session's cube with an animated replay",
	Long: `Undo every move performed since the cube was last solved, one move at a
time, printing each move as it lands. The session ends once the cube is solved.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().DurationVarP(&solveInterval, "interval", "i", -1, "Pause between moves (default from config)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	session, db, err := openActive()
	if err != nil {
		return err
	}
	defer db.Close()

	c := session.Cube()
	solution := solutionFor(c)
	if len(solution) == 0 {
		fmt.Println("Cube is already solved")
		return session.End()
	}

	interval := solveInterval
	if interval < 0 {
		interval = cfg.Replay.Interval()
	}

	session.SetSource(storage.SourceSolve)
	dispatcher := rubik.NewDispatcher(c, rubik.WithDispatchLogger(logger))
	defer dispatcher.Close()

	start := time.Now()
	fmt.Printf("Solving in %d moves: %s\n", len(solution), renderMoves(solution, 0))
	if err := playSolution(os.Stdout, c, dispatcher, solution, interval); err != nil {
		return err
	}

	if err := session.Err(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(renderNet(c))
	fmt.Printf("Solved in %s\n", formatDuration(time.Since(start)))
	return nil
}

// solutionFor returns the simplified inverse of the cube's move history.
func solutionFor(c *rubik.Cube) []rubik.Move {
	return rubik.Simplify(rubik.Invert(c.LastPerformedMoves()))
}

// playSolution runs solution through d and writes one line per move with the
// solved count captured when that move was applied.
func playSolution(w io.Writer, c *rubik.Cube, d *rubik.Dispatcher, solution []rubik.Move, interval time.Duration) error {
	progress := make(chan int, len(solution))
	unsubscribe := c.Subscribe(func(e rubik.Event) {
		if e.Kind != rubik.EventDidApply {
			return
		}
		select {
		case progress <- e.SolvedPieces:
		default:
		}
	})
	defer unsubscribe()

	applied, err := d.Submit(solution, interval, nil)
	if err != nil {
		return err
	}
	for m := range applied {
		fmt.Fprintf(w, "  %-3s %2d/%d solved\n", m.Notation(), <-progress, rubik.NumPieces)
	}
	return nil
}
