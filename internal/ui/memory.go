package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"funhub/internal/memory"
)

// gridColumns matches the original layouts: wider boards for harder
// difficulties.
func gridColumns(d memory.Difficulty) int {
	switch d {
	case memory.Medium:
		return 5
	case memory.Hard:
		return 6
	default:
		return 4
	}
}

type memoryView struct {
	round  *memory.Round
	cursor int
	errMsg string
}

func newMemoryView(round *memory.Round) *memoryView {
	return &memoryView{round: round}
}

func (v *memoryView) leave() {
	v.round.Reset()
	v.cursor = 0
	v.errMsg = ""
}

func (v *memoryView) Update(msg tea.KeyMsg) {
	key := msg.String()

	switch v.round.Status() {
	case memory.NotStarted:
		var d memory.Difficulty
		switch key {
		case "1", "e":
			d = memory.Easy
		case "2", "m":
			d = memory.Medium
		case "3", "h":
			d = memory.Hard
		default:
			return
		}
		v.cursor = 0
		if err := v.round.Start(d); err != nil {
			v.errMsg = err.Error()
			return
		}
		v.errMsg = ""

	case memory.InProgress:
		cards := v.round.Cards()
		cols := gridColumns(v.round.Difficulty())
		switch key {
		case "left":
			if v.cursor > 0 {
				v.cursor--
			}
		case "right":
			if v.cursor < len(cards)-1 {
				v.cursor++
			}
		case "up":
			if v.cursor-cols >= 0 {
				v.cursor -= cols
			}
		case "down":
			if v.cursor+cols < len(cards) {
				v.cursor += cols
			}
		case "enter", " ":
			v.round.Click(v.cursor)
		case "r":
			v.round.Reset()
			v.cursor = 0
		}

	case memory.Over:
		if key == "r" || key == "enter" {
			v.round.Reset()
			v.cursor = 0
		}
	}
}

func (v *memoryView) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Memory Matching Game") + "\n\n")

	switch v.round.Status() {
	case memory.NotStarted:
		b.WriteString("Test your memory by matching pairs of cards.\n\n")
		b.WriteString("  1) easy    12 cards, 60s budget\n")
		b.WriteString("  2) medium  20 cards, 120s budget\n")
		b.WriteString("  3) hard    24 cards, 180s budget\n")
		if best, ok := v.round.Best(); ok {
			b.WriteString("\n" + scoreStyle.Render(fmt.Sprintf("Best score: %d", best)) + "\n")
		}
		if v.errMsg != "" {
			b.WriteString("\n" + redStyle.Render(v.errMsg) + "\n")
		}
		b.WriteString(helpStyle.Render("1/2/3: start  esc: menu"))

	case memory.InProgress:
		b.WriteString(v.renderGrid())
		b.WriteString(statusStyle.Render(fmt.Sprintf(
			"MOVES: %d | TIME: %s | SCORE: %d",
			v.round.Moves(), memory.FormatTime(v.round.Elapsed()), v.round.Score(),
		)))
		b.WriteString(helpStyle.Render("\narrows: move  enter: flip  r: reset  esc: menu"))

	case memory.Over:
		b.WriteString(v.renderGrid())
		best, _ := v.round.Best()
		b.WriteString("\n" + greenStyle.Render("Congratulations!") + "\n")
		b.WriteString(fmt.Sprintf(
			"You completed the game in %s with %d moves.\n",
			memory.FormatTime(v.round.Elapsed()), v.round.Moves(),
		))
		b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d | Best: %d", v.round.Final(), best)))
		b.WriteString(helpStyle.Render("\nr: play again  esc: menu"))
	}

	return b.String()
}

func (v *memoryView) renderGrid() string {
	cards := v.round.Cards()
	cols := gridColumns(v.round.Difficulty())
	over := v.round.Status() == memory.Over

	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			card := cards[i]
			face := "?"
			if card.Symbol != "" {
				face = card.Symbol
			}
			style := cardHidden
			switch {
			case !over && i == v.cursor:
				style = cardCursor
			case card.Matched:
				style = cardMatched
			case card.Pending:
				style = cardFace
			}
			cells = append(cells, style.Render(face))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
