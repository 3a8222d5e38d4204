package memory

import (
	"fmt"
	"math"
)

// FinalScore is the time/efficiency score computed once when a round
// completes. It is distinct from the live score shown during play: the live
// score accumulates MatchPoints per pair, the final score starts from 1000
// and subtracts clamped time and move penalties before adding the
// difficulty bonus.
//
// The result is intentionally not floored at zero; a slow, wasteful run on
// a low difficulty can score negative.
func FinalScore(d Difficulty, elapsed, moves int) int {
	timePenalty := math.Min(float64(elapsed)/float64(d.MaxTime()), 1) * 500
	movePenalty := math.Min(float64(moves)/float64(d.BoardSize()), 1) * 500
	return int(math.Round(1000 - timePenalty - movePenalty + float64(d.Bonus())))
}

// FormatTime renders elapsed seconds as M:SS.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
