package memory

import (
	"errors"
	"fmt"
	"math/rand"
)

// Difficulty selects the board size, time budget and scoring table.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a user-supplied name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}

// Pairs is the number of symbol pairs on the board.
func (d Difficulty) Pairs() int {
	switch d {
	case Medium:
		return 10
	case Hard:
		return 12
	default:
		return 6
	}
}

// BoardSize is the total card count, two per pair.
func (d Difficulty) BoardSize() int { return 2 * d.Pairs() }

// MaxTime is the time budget in seconds used by the final score formula.
func (d Difficulty) MaxTime() int {
	switch d {
	case Medium:
		return 120
	case Hard:
		return 180
	default:
		return 60
	}
}

// MatchPoints is the live score awarded per matched pair.
func (d Difficulty) MatchPoints() int {
	switch d {
	case Medium:
		return 75
	case Hard:
		return 100
	default:
		return 50
	}
}

// Bonus is the flat difficulty bonus added to the final score.
func (d Difficulty) Bonus() int {
	switch d {
	case Medium:
		return 300
	case Hard:
		return 600
	default:
		return 0
	}
}

// Card is a single board position. Matched is terminal once set.
type Card struct {
	Index   int
	Symbol  string
	Matched bool
}

// Board is the ordered card layout for one round. Length and symbol
// assignment are fixed at generation; only Matched flags mutate.
type Board struct {
	cards []Card
}

func (b *Board) Len() int { return len(b.cards) }

// Card returns the card at index i.
func (b *Board) Card(i int) Card { return b.cards[i] }

// AllMatched reports whether every card has been matched.
func (b *Board) AllMatched() bool {
	for i := range b.cards {
		if !b.cards[i].Matched {
			return false
		}
	}
	return true
}

// ErrSymbolPool is returned when the symbol pool cannot cover the pairs
// required by the chosen difficulty.
var ErrSymbolPool = errors.New("symbol pool smaller than required pairs")

// DefaultSymbols is the stock animal emoji pool, large enough for every
// difficulty.
var DefaultSymbols = []string{
	"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼",
	"🐨", "🐯", "🦁", "🐮", "🐷", "🐸", "🐵", "🐔",
	"🐧", "🦆", "🦉", "🦇", "🐺", "🐗", "🐴", "🦄",
}

// Generate builds a shuffled board for the difficulty. It picks
// pairs(difficulty) distinct symbols from pool, duplicates them and lays
// them out in a uniformly random permutation (Fisher-Yates via
// rand.Shuffle). Deterministic for a seeded rng.
func Generate(d Difficulty, pool []string, rng *rand.Rand) (*Board, error) {
	pairs := d.Pairs()
	if len(pool) < pairs {
		return nil, fmt.Errorf("%w: have %d symbols, need %d", ErrSymbolPool, len(pool), pairs)
	}

	chosen := make([]string, len(pool))
	copy(chosen, pool)
	rng.Shuffle(len(chosen), func(i, j int) {
		chosen[i], chosen[j] = chosen[j], chosen[i]
	})
	chosen = chosen[:pairs]

	deck := make([]string, 0, 2*pairs)
	deck = append(deck, chosen...)
	deck = append(deck, chosen...)
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	cards := make([]Card, len(deck))
	for i, sym := range deck {
		cards[i] = Card{Index: i, Symbol: sym}
	}
	return &Board{cards: cards}, nil
}
