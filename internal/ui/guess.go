package ui

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"funhub/internal/games/guess"
)

type guessView struct {
	rng     *rand.Rand
	game    *guess.Game
	diff    guess.Difficulty
	input   textinput.Model
	message string
}

func newGuessView(rng *rand.Rand) *guessView {
	input := textinput.New()
	input.Placeholder = "your guess"
	input.CharLimit = 4
	input.Width = 12
	return &guessView{rng: rng, input: input}
}

func (v *guessView) start(d guess.Difficulty) {
	v.diff = d
	v.game = guess.New(d, v.rng)
	min, max := v.game.Bounds()
	v.message = fmt.Sprintf(
		"I'm thinking of a number between %d and %d. You have %d attempts.",
		min, max, v.game.Remaining(),
	)
	v.input.SetValue("")
	v.input.Focus()
}

func (v *guessView) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if v.game == nil || v.game.Over() {
			switch key.String() {
			case "1", "e":
				v.start(guess.Easy)
			case "2", "m":
				v.start(guess.Medium)
			case "3", "h":
				v.start(guess.Hard)
			}
			return textinput.Blink
		}
		if key.String() == "enter" {
			v.submit()
			return nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *guessView) submit() {
	n, err := strconv.Atoi(strings.TrimSpace(v.input.Value()))
	min, max := v.game.Bounds()
	if err != nil {
		v.message = fmt.Sprintf("Please enter a valid number between %d and %d.", min, max)
		v.input.SetValue("")
		return
	}

	switch v.game.Guess(n) {
	case guess.OutOfRange:
		v.message = fmt.Sprintf("Please enter a valid number between %d and %d.", min, max)
	case guess.TooLow:
		v.message = fmt.Sprintf("Try higher! You have %d %s left.", v.game.Remaining(), plural(v.game.Remaining(), "attempt"))
	case guess.TooHigh:
		v.message = fmt.Sprintf("Try lower! You have %d %s left.", v.game.Remaining(), plural(v.game.Remaining(), "attempt"))
	case guess.Correct:
		v.message = fmt.Sprintf("Congratulations! You guessed the number in %d attempts!", v.game.Attempts())
	case guess.OutOfAttempts:
		v.message = fmt.Sprintf("Game over! You've used all your attempts. The number was %d.", v.game.Secret())
	}
	v.input.SetValue("")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func (v *guessView) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Number Guessing") + "\n\n")

	if v.game == nil || v.game.Over() {
		if v.message != "" {
			if v.game != nil && v.game.Won() {
				b.WriteString(greenStyle.Render(v.message) + "\n\n")
			} else {
				b.WriteString(redStyle.Render(v.message) + "\n\n")
			}
		}
		b.WriteString("  1) easy    1-100, 10 attempts\n")
		b.WriteString("  2) medium  1-200, 8 attempts\n")
		b.WriteString("  3) hard    1-500, 6 attempts\n")
		b.WriteString(helpStyle.Render("1/2/3: start  esc: menu"))
		return b.String()
	}

	b.WriteString(v.message + "\n\n")
	b.WriteString(v.input.View() + "\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"Attempts: %d | Remaining: %d", v.game.Attempts(), v.game.Remaining(),
	)))
	b.WriteString(helpStyle.Render("\nenter: guess  esc: menu"))
	return b.String()
}
