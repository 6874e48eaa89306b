// Package analysis derives statistics from a session's recorded moves.
package analysis

import (
	"github.com/SeamusWaldron/rubik2d"
	"github.com/SeamusWaldron/rubik2d/internal/storage"
)

// PauseThresholdMs is the gap after which a break between moves counts as
// a pause.
const PauseThresholdMs = 1500

// SessionSummary contains statistics for the moves played in one session.
// Scramble moves are excluded.
type SessionSummary struct {
	SessionID          string           `json:"session_id"`
	DurationMs         int64            `json:"duration_ms"`
	TotalMoves         int              `json:"total_moves"`
	OptimizedMoves     int              `json:"optimized_moves"`
	Efficiency         float64          `json:"efficiency"`
	TPSOverall         float64          `json:"tps_overall"`
	LongestPauseMs     int64            `json:"longest_pause_ms"`
	PauseCountOver1500 int              `json:"pause_count_over_1500ms"`
	AvgMoveDurationMs  float64          `json:"avg_move_duration_ms"`
	Profile            *MovementProfile `json:"profile"`
}

// PauseInfo represents a pause between two moves.
type PauseInfo struct {
	AfterMoveIndex int   `json:"after_move_index"`
	DurationMs     int64 `json:"duration_ms"`
	TsMs           int64 `json:"ts_ms"`
}

// Summarize computes a summary from a session's move records.
func Summarize(sessionID string, records []storage.MoveRecord) (*SessionSummary, error) {
	played := playedRecords(records)
	moves, err := storage.ToMoves(played)
	if err != nil {
		return nil, err
	}

	s := &SessionSummary{
		SessionID:      sessionID,
		TotalMoves:     len(moves),
		OptimizedMoves: len(rubik.Simplify(moves)),
		Profile:        AnalyzeMovementProfile(moves),
	}
	if len(played) > 1 {
		s.DurationMs = played[len(played)-1].TsMs - played[0].TsMs
	}
	if s.TotalMoves > 0 {
		s.Efficiency = float64(s.OptimizedMoves) / float64(s.TotalMoves)
	}
	s.TPSOverall = CalculateTPS(len(moves), s.DurationMs)
	s.LongestPauseMs = FindLongestPause(played)
	s.PauseCountOver1500 = CountPausesOver(played, PauseThresholdMs)
	s.AvgMoveDurationMs = CalculateAvgMoveDuration(played)

	return s, nil
}

func playedRecords(records []storage.MoveRecord) []storage.MoveRecord {
	var out []storage.MoveRecord
	for _, r := range records {
		if r.Source != storage.SourceScramble {
			out = append(out, r)
		}
	}
	return out
}

// AnalyzePauses finds all gaps of at least thresholdMs between moves.
func AnalyzePauses(records []storage.MoveRecord, thresholdMs int64) []PauseInfo {
	var pauses []PauseInfo

	for i := 1; i < len(records); i++ {
		gap := records[i].TsMs - records[i-1].TsMs
		if gap >= thresholdMs {
			pauses = append(pauses, PauseInfo{
				AfterMoveIndex: records[i-1].MoveIndex,
				DurationMs:     gap,
				TsMs:           records[i-1].TsMs,
			})
		}
	}

	return pauses
}

// CalculateTPS calculates turns per second.
func CalculateTPS(moves int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(moves) / (float64(durationMs) / 1000.0)
}

// CalculateAvgMoveDuration calculates the average time between moves.
func CalculateAvgMoveDuration(records []storage.MoveRecord) float64 {
	if len(records) < 2 {
		return 0
	}

	totalGap := records[len(records)-1].TsMs - records[0].TsMs
	return float64(totalGap) / float64(len(records)-1)
}

// FindLongestPause finds the longest gap between consecutive moves.
func FindLongestPause(records []storage.MoveRecord) int64 {
	var longest int64

	for i := 1; i < len(records); i++ {
		gap := records[i].TsMs - records[i-1].TsMs
		if gap > longest {
			longest = gap
		}
	}

	return longest
}

// CountPausesOver counts gaps strictly longer than thresholdMs.
func CountPausesOver(records []storage.MoveRecord, thresholdMs int64) int {
	count := 0
	for i := 1; i < len(records); i++ {
		if records[i].TsMs-records[i-1].TsMs > thresholdMs {
			count++
		}
	}
	return count
}

// MovementProfile describes which faces and turn kinds a session used.
type MovementProfile struct {
	FaceCounts      map[rubik.Face]int      `json:"face_counts"`
	MagnitudeCounts map[rubik.Magnitude]int `json:"magnitude_counts"`
	MostUsedFace    rubik.Face              `json:"most_used_face"`
	FaceSequences   map[string]int          `json:"face_sequences"` // e.g. "RU" -> count
}

// AnalyzeMovementProfile counts face and magnitude usage and two-face
// sequences. Ties for the most used face go to the lower face index.
func AnalyzeMovementProfile(moves []rubik.Move) *MovementProfile {
	profile := &MovementProfile{
		FaceCounts:      make(map[rubik.Face]int),
		MagnitudeCounts: make(map[rubik.Magnitude]int),
		FaceSequences:   make(map[string]int),
	}

	for i, m := range moves {
		profile.FaceCounts[m.Face]++
		profile.MagnitudeCounts[m.Magnitude]++

		if i > 0 {
			profile.FaceSequences[moves[i-1].Face.String()+m.Face.String()]++
		}
	}

	maxFaceCount := 0
	for _, f := range rubik.Faces {
		if profile.FaceCounts[f] > maxFaceCount {
			maxFaceCount = profile.FaceCounts[f]
			profile.MostUsedFace = f
		}
	}

	return profile
}
