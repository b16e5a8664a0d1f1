package main

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the viewer.
type Styles struct {
	Canvas    lipgloss.Style
	StatusBar lipgloss.Style
	Mode      lipgloss.Style
	Prompt    lipgloss.Style
	Help      lipgloss.Style
	HelpKey   lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Canvas: lipgloss.NewStyle(),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Mode: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("109")).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		Help: lipgloss.NewStyle().
			Padding(1, 2),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("167")),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")),
	}
}
