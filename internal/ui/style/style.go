// Package style holds the colors and icons shared by ngpack's terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Slate = lipgloss.Color("#64748B")
	Green = lipgloss.Color("#16A34A")
	Red   = lipgloss.Color("#DC2626")
	Amber = lipgloss.Color("#D97706")
	Teal  = lipgloss.Color("#0D9488")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// Heading renders s as a bold teal heading.
func Heading(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Teal).Render(s)
}
