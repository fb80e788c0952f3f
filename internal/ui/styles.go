package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleLabel   = lipgloss.NewStyle().Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Heading renders a section title underlined with '='.
func Heading(title string) string {
	return styleHeading.Render(title) + "\n" + styleMuted.Render(strings.Repeat("=", len(title)))
}

// Muted renders secondary text such as masked keys.
func Muted(s string) string { return styleMuted.Render(s) }

// OK renders a success line.
func OK(s string) string { return styleOK.Render(s) }

// Warn renders a non-fatal diagnostic.
func Warn(s string) string { return styleErr.Render(s) }
