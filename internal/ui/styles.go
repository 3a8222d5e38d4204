package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true).MarginTop(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).MarginTop(1)

	cardHidden = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(5).
			Align(lipgloss.Center)
	cardFace = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Width(5).
			Align(lipgloss.Center)
	cardMatched = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Width(5).
			Align(lipgloss.Center).
			Faint(true)
	cardCursor = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("13")).
			Width(5).
			Align(lipgloss.Center)

	toastInfo = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
	toastSuccess = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 1)
	toastFailure = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1)
)
