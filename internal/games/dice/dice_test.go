package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollResultsInRange(t *testing.T) {
	roller := New(rand.New(rand.NewSource(1)))
	for _, sides := range Types {
		roll, err := roller.Roll(MaxDice, sides)
		require.NoError(t, err)
		assert.Len(t, roll.Results, MaxDice)

		total := 0
		for _, result := range roll.Results {
			assert.GreaterOrEqual(t, result, 1)
			assert.LessOrEqual(t, result, sides)
			total += result
		}
		assert.Equal(t, total, roll.Total)
	}
}

func TestRollValidation(t *testing.T) {
	roller := New(rand.New(rand.NewSource(1)))

	_, err := roller.Roll(0, 6)
	assert.Error(t, err)
	_, err = roller.Roll(MaxDice+1, 6)
	assert.Error(t, err)
	_, err = roller.Roll(1, 7)
	assert.Error(t, err)
	assert.Empty(t, roller.History(), "failed rolls must not enter the history")
}

func TestHistoryNewestFirstAndCapped(t *testing.T) {
	roller := New(rand.New(rand.NewSource(1)))

	var lastTotal int
	for i := 0; i < 15; i++ {
		roll, err := roller.Roll(2, 6)
		require.NoError(t, err)
		lastTotal = roll.Total
	}

	history := roller.History()
	require.Len(t, history, 10)
	assert.Equal(t, lastTotal, history[0].Total, "newest roll comes first")
}

func TestClearHistory(t *testing.T) {
	roller := New(rand.New(rand.NewSource(1)))
	_, err := roller.Roll(1, 20)
	require.NoError(t, err)
	require.NotEmpty(t, roller.History())

	roller.ClearHistory()
	assert.Empty(t, roller.History())
}
