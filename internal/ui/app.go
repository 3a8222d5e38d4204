// Package ui is the Bubble Tea presentation layer of the hub: a navigation
// menu and one view per game. Views only consume the games' public
// operations and query accessors; they never reach into game internals.
package ui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"funhub/internal/memory"
)

// ApplyMsg carries a scheduler callback onto the UI loop. The scheduler's
// dispatch hook wraps expired timers in ApplyMsg and sends them through
// tea.Program.Send, so all game state mutates on the update goroutine.
type ApplyMsg struct {
	Fn func()
}

// TickMsg drives periodic redraws and toast expiry.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type screen int

const (
	screenMenu screen = iota
	screenMemory
	screenDice
	screenRPS
	screenGuess
	screenTTT
)

type menuItem struct {
	title  string
	desc   string
	target screen
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

// App is the root model: the hub menu plus the game views.
type App struct {
	menu   list.Model
	memory *memoryView
	dice   *diceView
	rps    *rpsView
	guess  *guessView
	ttt    *tttView
	toasts *Toasts

	active screen
	width  int
	height int
}

// NewApp assembles the hub around an already-wired memory round. The rng is
// shared by the simple games.
func NewApp(round *memory.Round, rng *rand.Rand, toasts *Toasts) *App {
	items := []list.Item{
		menuItem{"Memory Game", "Match pairs of cards by difficulty", screenMemory},
		menuItem{"Dice Roller", "Roll the polyhedral set", screenDice},
		menuItem{"Rock Paper Scissors", "Best the computer's throw", screenRPS},
		menuItem{"Number Guessing", "Find the secret number", screenGuess},
		menuItem{"Tic Tac Toe", "Three in a row, two players", screenTTT},
	}
	menu := list.New(items, list.NewDefaultDelegate(), 48, 18)
	menu.Title = "Fun Games Hub"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)

	return &App{
		menu:   menu,
		memory: newMemoryView(round),
		dice:   newDiceView(rng),
		rps:    newRPSView(rng),
		guess:  newGuessView(rng),
		ttt:    newTTTView(),
		toasts: toasts,
	}
}

// OpenMemory starts the hub on the memory game screen instead of the menu.
func (a *App) OpenMemory() {
	a.active = screenMemory
}

func (a *App) Init() tea.Cmd {
	return tickCmd()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ApplyMsg:
		msg.Fn()
		return a, nil

	case TickMsg:
		a.toasts.prune(time.Time(msg))
		return a, tickCmd()

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(msg.Width-4, msg.Height-4)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			if a.active == screenMenu {
				return a, tea.Quit
			}
			a.leaveGame()
			a.active = screenMenu
			return a, nil
		}

		if a.active == screenMenu {
			if msg.String() == "enter" {
				if item, ok := a.menu.SelectedItem().(menuItem); ok {
					a.active = item.target
				}
				return a, nil
			}
			var cmd tea.Cmd
			a.menu, cmd = a.menu.Update(msg)
			return a, cmd
		}
		return a, a.updateGame(msg)
	}

	if a.active == screenGuess {
		return a, a.guess.Update(msg)
	}
	return a, nil
}

func (a *App) updateGame(msg tea.KeyMsg) tea.Cmd {
	switch a.active {
	case screenMemory:
		a.memory.Update(msg)
	case screenDice:
		a.dice.Update(msg)
	case screenRPS:
		a.rps.Update(msg)
	case screenGuess:
		return a.guess.Update(msg)
	case screenTTT:
		a.ttt.Update(msg)
	}
	return nil
}

// leaveGame abandons in-flight state that should not survive navigation.
func (a *App) leaveGame() {
	if a.active == screenMemory {
		a.memory.leave()
	}
}

func (a *App) View() string {
	var body string
	switch a.active {
	case screenMenu:
		body = a.menu.View() + helpStyle.Render("enter: play  esc: quit")
	case screenMemory:
		body = a.memory.View()
	case screenDice:
		body = a.dice.View()
	case screenRPS:
		body = a.rps.View()
	case screenGuess:
		body = a.guess.View()
	case screenTTT:
		body = a.ttt.View()
	}

	if toasts := a.toasts.View(); toasts != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, toasts)
	}
	return body
}
