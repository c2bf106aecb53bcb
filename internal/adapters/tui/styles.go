package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/ngpack/internal/ui/style"
)

var (
	runningStyle = lipgloss.NewStyle().
			Foreground(style.Teal).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	elapsedStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
