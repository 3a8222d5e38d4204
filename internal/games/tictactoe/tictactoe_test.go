package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlternatingTurns(t *testing.T) {
	game := New()
	assert.Equal(t, X, game.Turn())
	require.True(t, game.Play(0))
	assert.Equal(t, O, game.Turn())
	require.True(t, game.Play(1))
	assert.Equal(t, X, game.Turn())
}

func TestOccupiedSquareRejected(t *testing.T) {
	game := New()
	require.True(t, game.Play(4))
	assert.False(t, game.Play(4))
	assert.Equal(t, X, game.Square(4))
	assert.Equal(t, 1, game.Moves())
}

func TestRowWin(t *testing.T) {
	game := New()
	// X: 0 1 2, O: 3 4
	for _, move := range []int{0, 3, 1, 4, 2} {
		require.True(t, game.Play(move))
	}

	assert.Equal(t, X, game.Winner())
	assert.True(t, game.Over())
	assert.Equal(t, 1, game.XWins)
	assert.Equal(t, 0, game.OWins)
	assert.False(t, game.Play(5), "no moves after the game ends")
}

func TestDiagonalWin(t *testing.T) {
	game := New()
	for _, move := range []int{0, 1, 4, 2, 8} {
		require.True(t, game.Play(move))
	}
	assert.Equal(t, X, game.Winner())
}

func TestDraw(t *testing.T) {
	game := New()
	// X O X / X O O / O X X with no line for either player.
	for _, move := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
		require.True(t, game.Play(move))
	}

	assert.Equal(t, Empty, game.Winner())
	assert.True(t, game.Draw())
	assert.True(t, game.Over())
	assert.Equal(t, 1, game.Draws)
}

func TestTallyAccumulatesAcrossGames(t *testing.T) {
	game := New()
	for _, move := range []int{0, 3, 1, 4, 2} {
		require.True(t, game.Play(move))
	}
	game.Reset()
	for _, move := range []int{0, 3, 1, 4, 2} {
		require.True(t, game.Play(move))
	}
	assert.Equal(t, 2, game.XWins)
}

func TestJumpToLocksPlay(t *testing.T) {
	game := New()
	for _, move := range []int{0, 3, 1} {
		require.True(t, game.Play(move))
	}

	require.True(t, game.JumpTo(1))
	assert.True(t, game.Reviewing())
	// Position after move 1: only X on square 0.
	assert.Equal(t, X, game.Square(0))
	assert.Equal(t, Empty, game.Square(3))
	assert.False(t, game.Play(5), "play is locked while reviewing")

	game.Reset()
	assert.False(t, game.Reviewing())
	assert.True(t, game.Play(5))
}

func TestJumpToBounds(t *testing.T) {
	game := New()
	require.True(t, game.Play(0))
	assert.False(t, game.JumpTo(-1))
	assert.False(t, game.JumpTo(1))
	assert.True(t, game.JumpTo(0))
	assert.Equal(t, Empty, game.Square(0), "move 0 is the empty board")
}
