package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalScoreEasyRound(t *testing.T) {
	// 45s of a 60s budget: 375 time penalty; 14 moves on a 12-card board
	// clamp the move penalty at 500.
	assert.Equal(t, 125, FinalScore(Easy, 45, 14))
}

func TestFinalScorePenaltiesClamped(t *testing.T) {
	// Far over both budgets: each penalty caps at 500.
	assert.Equal(t, 0, FinalScore(Easy, 6000, 1000))
	// Both penalties capped on Hard still leaves the bonus.
	assert.Equal(t, 600, FinalScore(Hard, 6000, 1000))
}

func TestFinalScorePerfectRun(t *testing.T) {
	assert.Equal(t, 1000, FinalScore(Easy, 0, 0))
	assert.Equal(t, 1600, FinalScore(Hard, 0, 0))
}

func TestFinalScoreAddsDifficultyBonus(t *testing.T) {
	// Same relative performance, different bonuses.
	assert.Equal(t, 1000-250-250+300, FinalScore(Medium, 60, 10))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "0:00", FormatTime(0))
	assert.Equal(t, "0:45", FormatTime(45))
	assert.Equal(t, "1:05", FormatTime(65))
	assert.Equal(t, "2:00", FormatTime(120))
}
