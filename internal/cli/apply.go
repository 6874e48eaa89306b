package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik2d"
)

var applyQuiet bool

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Turn faces of the active session's cube",
	Long: `Apply moves in standard notation to the active session's cube.

Faces are F R U B L D; a trailing ' turns counter-clockwise and a trailing 2
turns half way. Moves may be given as separate arguments or one quoted string:

  rubik apply R U2 F
  rubik apply "R U R' U'"

A move that solves the cube ends the session.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVarP(&applyQuiet, "quiet", "q", false, "Do not print the cube afterwards")
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := rubik.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	session, db, err := openActive()
	if err != nil {
		return err
	}
	defer db.Close()

	var solvedAfter int
	session.SetSolvedCallback(func(n int) { solvedAfter = n })

	if err := session.Apply(moves...); err != nil {
		return fmt.Errorf("failed to apply moves: %w", err)
	}

	if !applyQuiet {
		fmt.Println(renderNet(session.Cube()))
		fmt.Println(renderStatus(session.Cube()))
	}
	if solvedAfter > 0 {
		fmt.Printf("Solved! Session %s ended.\n", session.SessionID())
	}
	return nil
}
