package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle              = lipgloss.NewStyle().Padding(1, 2)
	titleStyle            = lipgloss.NewStyle().Bold(true)
	helpStyle             = lipgloss.NewStyle().Faint(true)
	toastBoxStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	destructiveBoxStyle   = toastBoxStyle.BorderForeground(lipgloss.Color("9"))
	informationalBoxStyle = toastBoxStyle.BorderForeground(lipgloss.Color("10"))
)
