// Package guess implements the number guessing game: a secret number in a
// difficulty-dependent range found within a limited number of attempts,
// with higher/lower hints.
package guess

import "math/rand"

// Difficulty selects the guessing range and attempt budget.
type Difficulty int

const (
	Easy   Difficulty = iota // 1-100, 10 attempts
	Medium                   // 1-200, 8 attempts
	Hard                     // 1-500, 6 attempts
)

func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "easy"
	}
}

// Range returns the inclusive bounds of the secret number.
func (d Difficulty) Range() (min, max int) {
	switch d {
	case Medium:
		return 1, 200
	case Hard:
		return 1, 500
	default:
		return 1, 100
	}
}

// MaxAttempts is the attempt budget for the difficulty.
func (d Difficulty) MaxAttempts() int {
	switch d {
	case Medium:
		return 8
	case Hard:
		return 6
	default:
		return 10
	}
}

// Result classifies a single guess.
type Result int

const (
	OutOfRange Result = iota // invalid input, does not consume an attempt
	TooLow
	TooHigh
	Correct
	OutOfAttempts // wrong and the budget is spent
)

// Game is one guessing round.
type Game struct {
	min, max    int
	secret      int
	attempts    int
	maxAttempts int
	over        bool
	won         bool
}

// New starts a round with a uniformly random secret in the difficulty's
// range.
func New(d Difficulty, rng *rand.Rand) *Game {
	min, max := d.Range()
	return &Game{
		min:         min,
		max:         max,
		secret:      rng.Intn(max-min+1) + min,
		maxAttempts: d.MaxAttempts(),
	}
}

// Guess submits n. Out-of-range guesses are rejected without consuming an
// attempt; guesses after the game is over report the final state again.
func (g *Game) Guess(n int) Result {
	if g.over {
		if g.won {
			return Correct
		}
		return OutOfAttempts
	}
	if n < g.min || n > g.max {
		return OutOfRange
	}

	g.attempts++
	switch {
	case n == g.secret:
		g.over = true
		g.won = true
		return Correct
	case g.attempts >= g.maxAttempts:
		g.over = true
		return OutOfAttempts
	case n < g.secret:
		return TooLow
	default:
		return TooHigh
	}
}

// Bounds returns the inclusive guessing range.
func (g *Game) Bounds() (min, max int) { return g.min, g.max }

// Attempts is the number of valid guesses made so far.
func (g *Game) Attempts() int { return g.attempts }

// Remaining is the number of attempts left.
func (g *Game) Remaining() int { return g.maxAttempts - g.attempts }

// Over reports whether the round has ended.
func (g *Game) Over() bool { return g.over }

// Won reports whether the secret was found.
func (g *Game) Won() bool { return g.won }

// Secret reveals the number once the round is over, and 0 before that.
func (g *Game) Secret() int {
	if !g.over {
		return 0
	}
	return g.secret
}
