package ui

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"funhub/internal/games/rps"
)

func choiceEmoji(c rps.Choice) string {
	switch c {
	case rps.Rock:
		return "✊"
	case rps.Paper:
		return "✋"
	case rps.Scissors:
		return "✌️"
	default:
		return "?"
	}
}

type rpsView struct {
	game     *rps.Game
	player   rps.Choice
	computer rps.Choice
	outcome  rps.Outcome
	played   bool
}

func newRPSView(rng *rand.Rand) *rpsView {
	return &rpsView{game: rps.New(rng)}
}

func (v *rpsView) Update(msg tea.KeyMsg) {
	var choice rps.Choice
	switch msg.String() {
	case "1", "r":
		choice = rps.Rock
	case "2", "p":
		choice = rps.Paper
	case "3", "s":
		choice = rps.Scissors
	default:
		return
	}
	v.player = choice
	v.computer, v.outcome = v.game.Play(choice)
	v.played = true
}

func (v *rpsView) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Rock Paper Scissors") + "\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf(
		"Player: %d | Computer: %d", v.game.PlayerScore, v.game.ComputerScore,
	)) + "\n\n")

	if v.played {
		b.WriteString(fmt.Sprintf(
			"You threw %s %s, the computer threw %s %s.\n",
			choiceEmoji(v.player), v.player, choiceEmoji(v.computer), v.computer,
		))
		switch v.outcome {
		case rps.PlayerWins:
			b.WriteString(greenStyle.Render(v.outcome.String()) + "\n")
		case rps.ComputerWins:
			b.WriteString(redStyle.Render(v.outcome.String()) + "\n")
		default:
			b.WriteString(v.outcome.String() + "\n")
		}
	} else {
		b.WriteString("Pick your throw.\n")
	}

	b.WriteString(helpStyle.Render("1/r: rock  2/p: paper  3/s: scissors  esc: menu"))
	return b.String()
}
