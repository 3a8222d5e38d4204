// Package tictactoe implements two-player tic-tac-toe on one keyboard, with
// a running win tally and move history review.
package tictactoe

// Mark is the content of one square.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// The eight winning lines of the 3x3 grid.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Game holds the board, the match tally and the move history. The history
// can be reviewed move by move; while reviewing, play is locked until the
// board is reset.
type Game struct {
	board     [9]Mark
	xNext     bool
	history   [][9]Mark
	reviewing bool

	XWins, OWins, Draws int
}

func New() *Game {
	return &Game{xNext: true}
}

// Play claims square i for the player on turn. It reports whether the move
// was accepted; occupied squares, finished games and review mode reject the
// move. A move that ends the game updates the tally.
func (g *Game) Play(i int) bool {
	if g.reviewing || g.Over() || i < 0 || i > 8 || g.board[i] != Empty {
		return false
	}

	g.history = append(g.history, g.board)
	if g.xNext {
		g.board[i] = X
	} else {
		g.board[i] = O
	}
	g.xNext = !g.xNext

	switch {
	case g.Winner() == X:
		g.XWins++
	case g.Winner() == O:
		g.OWins++
	case g.Draw():
		g.Draws++
	}
	return true
}

// Winner returns the mark holding a full line, or Empty.
func (g *Game) Winner() Mark {
	for _, line := range winLines {
		a, b, c := line[0], line[1], line[2]
		if g.board[a] != Empty && g.board[a] == g.board[b] && g.board[a] == g.board[c] {
			return g.board[a]
		}
	}
	return Empty
}

// Draw reports a full board without a winner.
func (g *Game) Draw() bool {
	if g.Winner() != Empty {
		return false
	}
	for _, m := range g.board {
		if m == Empty {
			return false
		}
	}
	return true
}

// Over reports whether the current game has ended.
func (g *Game) Over() bool {
	return g.Winner() != Empty || g.Draw()
}

// Square returns the mark at index i.
func (g *Game) Square(i int) Mark { return g.board[i] }

// Turn returns the mark on turn.
func (g *Game) Turn() Mark {
	if g.xNext {
		return X
	}
	return O
}

// Moves is the number of moves played in the current game.
func (g *Game) Moves() int { return len(g.history) }

// JumpTo rewinds the board to the position before the given move and locks
// play until Reset. Move 0 is the empty board.
func (g *Game) JumpTo(move int) bool {
	if move < 0 || move >= len(g.history) {
		return false
	}
	g.reviewing = true
	g.board = g.history[move]
	return true
}

// Reviewing reports whether the board shows a historical position.
func (g *Game) Reviewing() bool { return g.reviewing }

// Reset clears the board and history for a fresh game, keeping the tally.
func (g *Game) Reset() {
	g.board = [9]Mark{}
	g.xNext = true
	g.history = nil
	g.reviewing = false
}
