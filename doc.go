// Package rubik models the pieces of a 3x3x3 twisty puzzle and the legal
// moves between its states.
//
// # Features
//
//   - Piece-level state: 8 corners and 12 edges with orientation
//   - Face turns with correct permutation and twist/flip bookkeeping
//   - Sticker color queries for renderers
//   - Move composition, inversion and notation parsing
//   - Reproducible scrambles with no foldable adjacent moves
//   - Layer-by-layer phase detection and progress tracking
//   - A single-writer dispatcher for animated batch playback
//
// # Quick Start
//
//	cube := rubik.New()
//
//	// Apply moves using predefined constants
//	cube.Apply(rubik.R, rubik.U, rubik.RPrime, rubik.UPrime)
//
//	// Or from notation
//	cube.ApplyNotation("F B2 L' D")
//
//	fmt.Println("Solved pieces:", cube.SolvedPieces())
//
//	// Undo everything since the cube was last solved
//	cube.Apply(rubik.Invert(cube.LastPerformedMoves())...)
//
// # Observing Moves
//
// Renderers subscribe to the event stream instead of polling:
//
//	unsubscribe := cube.Subscribe(func(e rubik.Event) {
//	    if e.Kind == rubik.EventDidApply {
//	        redraw(cube)
//	    }
//	})
//	defer unsubscribe()
//
// # Tracking Progress
//
// A Tracker counts moves since a scramble and reports new highs in solved
// pieces and in the layer-by-layer Phase:
//
//	tracker := rubik.NewTracker(cube)
//	defer tracker.Close()
//	tracker.SetPhaseCallback(func(p rubik.Phase) {
//	    fmt.Println("reached", p.DisplayName())
//	})
//
// # Animated Playback
//
//	d := rubik.NewDispatcher(cube)
//	defer d.Close()
//
//	applied, _ := d.Submit(rubik.NewSeededScrambler(42).Scramble(25), 200*time.Millisecond, nil)
//	for m := range applied {
//	    fmt.Println("turned", m)
//	}
package rubik
