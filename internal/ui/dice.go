package ui

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"funhub/internal/games/dice"
)

type diceView struct {
	roller  *dice.Roller
	count   int
	typeIdx int
	last    *dice.Roll
	errMsg  string
}

func newDiceView(rng *rand.Rand) *diceView {
	return &diceView{
		roller:  dice.New(rng),
		count:   1,
		typeIdx: 1, // d6
	}
}

func (v *diceView) Update(msg tea.KeyMsg) {
	switch msg.String() {
	case "left":
		if v.typeIdx > 0 {
			v.typeIdx--
		}
	case "right":
		if v.typeIdx < len(dice.Types)-1 {
			v.typeIdx++
		}
	case "down":
		if v.count > 1 {
			v.count--
		}
	case "up":
		if v.count < dice.MaxDice {
			v.count++
		}
	case "enter", " ":
		roll, err := v.roller.Roll(v.count, dice.Types[v.typeIdx])
		if err != nil {
			v.errMsg = err.Error()
			return
		}
		v.errMsg = ""
		v.last = &roll
	case "c":
		v.roller.ClearHistory()
		v.last = nil
	}
}

func (v *diceView) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Dice Roller") + "\n\n")

	b.WriteString(fmt.Sprintf("Rolling %d x d%d\n", v.count, dice.Types[v.typeIdx]))

	if v.last != nil {
		faces := make([]string, len(v.last.Results))
		for i, result := range v.last.Results {
			faces[i] = fmt.Sprintf("[%d]", result)
		}
		b.WriteString("\n" + greenStyle.Render(strings.Join(faces, " ")))
		b.WriteString(scoreStyle.Render(fmt.Sprintf("  total %d", v.last.Total)) + "\n")
	}
	if v.errMsg != "" {
		b.WriteString("\n" + redStyle.Render(v.errMsg) + "\n")
	}

	if history := v.roller.History(); len(history) > 0 {
		b.WriteString("\nHistory:\n")
		for _, roll := range history {
			b.WriteString(faintStyle.Render(fmt.Sprintf(
				"  %dxd%d -> %v = %d\n", roll.Dice, roll.Sides, roll.Results, roll.Total,
			)))
		}
	}

	b.WriteString(helpStyle.Render("left/right: die type  up/down: dice  enter: roll  c: clear  esc: menu"))
	return b.String()
}
