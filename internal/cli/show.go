package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik2d"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active session's cube",
	Long: `Show the active session's cube as a sticker net, with solved piece counts,
the layer-by-layer phase, and the moves performed since it was last solved.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	session, db, err := openActive()
	if err != nil {
		return err
	}
	defer db.Close()

	c := session.Cube()
	fmt.Println(titleStyle.Render("Session " + shortID(session.SessionID())))
	fmt.Println()
	fmt.Println(renderNet(c))
	fmt.Println()
	fmt.Println(renderStatus(c))

	history := c.LastPerformedMoves()
	fmt.Printf("History (%d): %s\n", len(history), renderMoves(history, 40))
	if len(history) > 0 {
		fmt.Printf("Inverse:     %s\n", renderMoves(rubik.Simplify(rubik.Invert(history)), 40))
	}
	if err := c.Validate(); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
	}

	return nil
}
