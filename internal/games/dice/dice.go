// Package dice implements the dice roller: multi-die rolls of the standard
// polyhedral set with a capped roll history.
package dice

import (
	"fmt"
	"math/rand"
	"slices"
)

// Types lists the supported die types.
var Types = []int{4, 6, 8, 10, 12, 20}

const (
	// MaxDice is the most dice a single roll may contain.
	MaxDice = 6
	// historyCap keeps only the most recent rolls.
	historyCap = 10
)

// Roll is the outcome of rolling Dice dice of Sides sides.
type Roll struct {
	Dice    int
	Sides   int
	Results []int
	Total   int
}

// Roller rolls dice and remembers the last few rolls, newest first.
type Roller struct {
	rng     *rand.Rand
	history []Roll
}

func New(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// Roll rolls count dice with the given number of sides and records the
// result in the history.
func (r *Roller) Roll(count, sides int) (Roll, error) {
	if count < 1 || count > MaxDice {
		return Roll{}, fmt.Errorf("dice count %d out of range 1-%d", count, MaxDice)
	}
	if !slices.Contains(Types, sides) {
		return Roll{}, fmt.Errorf("unsupported die type d%d", sides)
	}

	roll := Roll{Dice: count, Sides: sides, Results: make([]int, count)}
	for i := range roll.Results {
		roll.Results[i] = r.rng.Intn(sides) + 1
		roll.Total += roll.Results[i]
	}

	r.history = append([]Roll{roll}, r.history...)
	if len(r.history) > historyCap {
		r.history = r.history[:historyCap]
	}
	return roll, nil
}

// History returns the recorded rolls, newest first.
func (r *Roller) History() []Roll { return r.history }

// ClearHistory drops all recorded rolls.
func (r *Roller) ClearHistory() { r.history = nil }
