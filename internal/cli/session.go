package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik2d"
	"github.com/SeamusWaldron/rubik2d/internal/analysis"
	"github.com/SeamusWaldron/rubik2d/internal/recorder"
	"github.com/SeamusWaldron/rubik2d/internal/storage"
)

var (
	sessionLength int
	sessionSeed   uint64
	sessionNotes  string
	sessionSolved bool
	listLimit     int
	showLast      bool
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage cube sessions",
	Long:  `Commands for starting, ending, and inspecting cube sessions.`,
}

var sessionNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new session",
	Long: `Start a new session with a freshly scrambled cube. The scramble and every
move applied afterwards are stored, so the cube survives between commands.

Use --solved to start from a solved cube instead.`,
	RunE: runSessionNew,
}

var sessionEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the active session",
	RunE:  runSessionEnd,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE:  runSessionList,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show details of a session",
	Long: `Display a session's scramble, its moves and the resulting cube.

Without an ID the active session is shown. Use --last to show the most
recent session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessionShow,
}

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.AddCommand(sessionNewCmd)
	sessionNewCmd.Flags().IntVarP(&sessionLength, "length", "n", 0, "Scramble length (default from config)")
	sessionNewCmd.Flags().Uint64Var(&sessionSeed, "seed", 0, "Scramble seed (default from config, 0 = random)")
	sessionNewCmd.Flags().StringVar(&sessionNotes, "notes", "", "Notes for this session")
	sessionNewCmd.Flags().BoolVar(&sessionSolved, "solved", false, "Start from a solved cube")

	sessionCmd.AddCommand(sessionEndCmd)

	sessionCmd.AddCommand(sessionListCmd)
	sessionListCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of sessions to display")

	sessionCmd.AddCommand(sessionShowCmd)
	sessionShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent session")
}

func runSessionNew(cmd *cobra.Command, args []string) error {
	stateFile, err := recorder.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	if stateFile.HasActiveSession() {
		return fmt.Errorf("active session already in progress: %s\nUse 'rubik session end' to finish it first", stateFile.ActiveSessionID())
	}

	db, err := openDB(stateFile)
	if err != nil {
		return err
	}
	defer db.Close()

	var scramble []rubik.Move
	var seedPtr *uint64
	if !sessionSolved {
		length, seed := resolveScramble(sessionLength, sessionSeed)
		scramble = rubik.NewSeededScrambler(seed).Scramble(length)
		seedPtr = &seed
		if err := stateFile.SetLastSeed(seed); err != nil {
			logger.Warn("failed to record seed", "err", err)
		}
	}

	session := recorder.NewSession(db, stateFile, logger)
	sessionID, err := session.Start(scramble, seedPtr, sessionNotes)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	if err := stateFile.SetDBPath(db.Path()); err != nil {
		logger.Warn("failed to record database path", "err", err)
	}

	fmt.Printf("Started session: %s\n", sessionID)
	if len(scramble) > 0 {
		fmt.Printf("Scramble (seed %d): %s\n", *seedPtr, rubik.FormatMoves(scramble))
	}
	fmt.Println()
	fmt.Println(renderNet(session.Cube()))
	fmt.Println()
	fmt.Println("Turn faces with:  rubik apply R U R' U'")
	fmt.Println("Solve with:       rubik solve")
	fmt.Println("End with:         rubik session end")

	return nil
}

func runSessionEnd(cmd *cobra.Command, args []string) error {
	session, db, err := openActive()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID := session.SessionID()
	solved := session.Cube().IsSolved()
	if err := session.End(); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	sess, err := storage.NewSessionRepository(db).Get(sessionID)
	if err != nil {
		return err
	}

	fmt.Printf("Session ended: %s\n", sessionID)
	fmt.Printf("Solved: %t\n", solved)
	if sess.EndedAt != nil {
		fmt.Printf("Duration: %s\n", formatDuration(sess.EndedAt.Sub(sess.StartedAt)))
	}

	return nil
}

func runSessionList(cmd *cobra.Command, args []string) error {
	stateFile, err := recorder.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	db, err := openDB(stateFile)
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	moveRepo := storage.NewMoveRepository(db)

	sessions, err := sessionRepo.List(listLimit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet")
		fmt.Println("Start a new session with: rubik session new")
		return nil
	}

	fmt.Printf("Recent sessions (showing %d):\n", len(sessions))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-10s  %-6s  %-6s  %s\n", "ID", "Started", "Duration", "Moves", "Solved", "Notes")
	fmt.Println("------------------------------------  --------------------  ----------  ------  ------  -----")

	for _, s := range sessions {
		duration := "-"
		if s.EndedAt != nil {
			duration = formatDuration(s.EndedAt.Sub(s.StartedAt))
		}

		moves := "-"
		if n, err := moveRepo.Count(s.SessionID); err == nil {
			moves = fmt.Sprintf("%d", n)
		}

		solved := "no"
		if s.Solved {
			solved = "yes"
		}

		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
			if len(notes) > 30 {
				notes = notes[:27] + "..."
			}
		}

		status := ""
		if s.Active() {
			status = " (active)"
		}

		fmt.Printf("%-36s  %-20s  %-10s  %-6s  %-6s  %s%s\n",
			s.SessionID,
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			duration,
			moves,
			solved,
			notes,
			status,
		)
	}

	return nil
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	stateFile, err := recorder.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	db, err := openDB(stateFile)
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	moveRepo := storage.NewMoveRepository(db)

	var sessionID string
	switch {
	case len(args) > 0:
		sessionID = args[0]
	case showLast:
		sessions, err := sessionRepo.List(1)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			return errors.New("no sessions found")
		}
		sessionID = sessions[0].SessionID
	case stateFile.HasActiveSession():
		sessionID = stateFile.ActiveSessionID()
	default:
		return errors.New("specify a session ID, use --last, or start a session")
	}

	sess, err := sessionRepo.Get(sessionID)
	if err != nil {
		return err
	}

	records, err := moveRepo.GetBySession(sessionID)
	if err != nil {
		return err
	}
	cube, err := moveRepo.Replay(sessionID)
	if err != nil {
		return err
	}

	var scramble, played []rubik.Move
	for _, r := range records {
		m, err := r.ToMove()
		if err != nil {
			return err
		}
		if r.Source == storage.SourceScramble {
			scramble = append(scramble, m)
		} else {
			played = append(played, m)
		}
	}

	fmt.Println(titleStyle.Render("Session " + sess.SessionID))
	fmt.Printf("Started:  %s\n", sess.StartedAt.Local().Format(time.RFC1123))
	if sess.EndedAt != nil {
		fmt.Printf("Ended:    %s (%s)\n", sess.EndedAt.Local().Format(time.RFC1123), formatDuration(sess.EndedAt.Sub(sess.StartedAt)))
	} else {
		fmt.Println("Ended:    " + statusStyle.Render("active"))
	}
	if sess.Seed != nil {
		fmt.Printf("Seed:     %d\n", *sess.Seed)
	}
	if sess.Notes != nil {
		fmt.Printf("Notes:    %s\n", *sess.Notes)
	}
	fmt.Printf("Scramble: %s\n", renderMoves(scramble, 0))
	fmt.Printf("Moves:    %s (%d)\n", renderMoves(played, 40), len(played))
	fmt.Println()
	fmt.Println(renderNet(cube))
	fmt.Println(renderStatus(cube))

	if len(played) > 0 {
		if err := printSummary(sessionID, records); err != nil {
			return err
		}
	}

	return nil
}

func printSummary(sessionID string, records []storage.MoveRecord) error {
	summary, err := analysis.Summarize(sessionID, records)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Statistics"))
	fmt.Printf("Moves:       %d (%d after cancelling, efficiency %.0f%%)\n",
		summary.TotalMoves, summary.OptimizedMoves, summary.Efficiency*100)
	fmt.Printf("TPS:         %.2f\n", summary.TPSOverall)
	fmt.Printf("Pauses:      %d over %s, longest %s\n",
		summary.PauseCountOver1500,
		formatDuration(analysis.PauseThresholdMs*time.Millisecond),
		formatDuration(time.Duration(summary.LongestPauseMs)*time.Millisecond))
	fmt.Printf("Most turned: %s (%d)\n",
		summary.Profile.MostUsedFace.Name(), summary.Profile.FaceCounts[summary.Profile.MostUsedFace])

	var played []storage.MoveRecord
	for _, r := range records {
		if r.Source != storage.SourceScramble {
			played = append(played, r)
		}
	}
	report, err := analysis.MineNGrams(played, 4, 8, 3)
	if err != nil {
		return err
	}
	for n := 8; n >= 4; n-- {
		for _, ng := range report.TopNGrams[n] {
			fmt.Printf("Repeated:    %s x%d\n", moveStyle.Render(strings.Join(ng.Sequence, " ")), ng.Count)
		}
	}
	return nil
}
