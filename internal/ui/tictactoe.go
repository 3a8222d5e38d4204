package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"funhub/internal/games/tictactoe"
)

type tttView struct {
	game   *tictactoe.Game
	cursor int
	review int // history position while reviewing
}

func newTTTView() *tttView {
	return &tttView{game: tictactoe.New()}
}

func (v *tttView) Update(msg tea.KeyMsg) {
	switch msg.String() {
	case "left":
		if v.cursor%3 > 0 {
			v.cursor--
		}
	case "right":
		if v.cursor%3 < 2 {
			v.cursor++
		}
	case "up":
		if v.cursor >= 3 {
			v.cursor -= 3
		}
	case "down":
		if v.cursor < 6 {
			v.cursor += 3
		}
	case "enter", " ":
		v.game.Play(v.cursor)
	case "[":
		// Step back through the game's history; locks play until reset.
		if !v.game.Reviewing() {
			v.review = v.game.Moves() - 1
		} else if v.review > 0 {
			v.review--
		}
		v.game.JumpTo(v.review)
	case "]":
		if v.game.Reviewing() && v.review < v.game.Moves()-1 {
			v.review++
			v.game.JumpTo(v.review)
		}
	case "r":
		v.game.Reset()
		v.cursor = 0
		v.review = 0
	}
}

func (v *tttView) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tic Tac Toe") + "\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf(
		"X: %d | O: %d | Draws: %d", v.game.XWins, v.game.OWins, v.game.Draws,
	)) + "\n\n")

	var rows []string
	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			i := row*3 + col
			style := cardHidden
			if i == v.cursor && !v.game.Over() && !v.game.Reviewing() {
				style = cardCursor
			}
			cells[col] = style.Render(v.game.Square(i).String())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))

	switch {
	case v.game.Reviewing():
		b.WriteString("\n" + faintStyle.Render(fmt.Sprintf("Reviewing move %d of %d", v.review, v.game.Moves()-1)))
	case v.game.Winner() != tictactoe.Empty:
		b.WriteString("\n" + greenStyle.Render(fmt.Sprintf("Player %s wins!", v.game.Winner())))
	case v.game.Draw():
		b.WriteString("\n" + scoreStyle.Render("It's a draw!"))
	default:
		b.WriteString(fmt.Sprintf("\nPlayer %s to move", v.game.Turn()))
	}

	b.WriteString(helpStyle.Render("\narrows: move  enter: place  [/]: review  r: reset  esc: menu"))
	return b.String()
}
