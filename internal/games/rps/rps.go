// Package rps implements rock-paper-scissors against a uniformly random
// computer opponent with a running score.
package rps

import "math/rand"

// Choice is one of the three throws.
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

// Choices lists every throw in display order.
var Choices = []Choice{Rock, Paper, Scissors}

// Outcome is the result of one throw from the player's perspective.
type Outcome int

const (
	Tie Outcome = iota
	PlayerWins
	ComputerWins
)

func (o Outcome) String() string {
	switch o {
	case PlayerWins:
		return "You win!"
	case ComputerWins:
		return "Computer wins!"
	default:
		return "It's a tie!"
	}
}

// Game tracks the running score across throws.
type Game struct {
	rng           *rand.Rand
	PlayerScore   int
	ComputerScore int
}

func New(rng *rand.Rand) *Game {
	return &Game{rng: rng}
}

// Play pits the player's choice against a random computer choice, updates
// the score and returns both the computer's throw and the outcome.
func (g *Game) Play(player Choice) (Choice, Outcome) {
	computer := Choices[g.rng.Intn(len(Choices))]
	outcome := decide(player, computer)
	switch outcome {
	case PlayerWins:
		g.PlayerScore++
	case ComputerWins:
		g.ComputerScore++
	}
	return computer, outcome
}

func decide(player, computer Choice) Outcome {
	if player == computer {
		return Tie
	}
	if beats(player, computer) {
		return PlayerWins
	}
	return ComputerWins
}

// beats reports whether a defeats b: rock blunts scissors, paper covers
// rock, scissors cut paper.
func beats(a, b Choice) bool {
	return (a == Rock && b == Scissors) ||
		(a == Paper && b == Rock) ||
		(a == Scissors && b == Paper)
}
