// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	accentColor         = lipgloss.Color("#5F87AF") // Slate blue for focus and bars
	mutedColor          = lipgloss.Color("#6C6C6C") // Gray for secondary text
	doneColor           = lipgloss.Color("#87AF87") // Sage for finished work
	pendingColor        = lipgloss.Color("#D7AF5F") // Amber for open work
	productiveColor     = lipgloss.Color("#5FAF87") // Green for a productive verdict
	lessProductiveColor = lipgloss.Color("#D7875F") // Orange for a weak verdict
	errorColor          = lipgloss.Color("#AF5F5F") // Terracotta for errors

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	// SectionStyle for menu section headers
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(mutedColor)

	// SubtleStyle for hints, help text and finished rows
	SubtleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// SelectedStyle for the focused row, field or selector
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// BarStyle for analytics bars
	BarStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	// DoneStyle for the done counter and confirmations
	DoneStyle = lipgloss.NewStyle().
			Foreground(doneColor)

	// PendingStyle for the pending counter and soft warnings
	PendingStyle = lipgloss.NewStyle().
			Foreground(pendingColor)

	ProductiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(productiveColor)

	LessProductiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lessProductiveColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)
