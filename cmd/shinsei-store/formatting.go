package main

import "github.com/charmbracelet/lipgloss"

var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	trueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	falseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func renderBool(v bool) string {
	if v {
		return trueStyle.Render("true")
	}
	return falseStyle.Render("false")
}
