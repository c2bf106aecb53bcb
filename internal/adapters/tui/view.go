package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/ngpack/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	if m.Title != "" {
		s.WriteString(style.Heading(m.Title) + "\n")
	}
	for _, node := range m.Phases {
		s.WriteString(m.renderRow(node) + "\n")
	}
	return s.String()
}

func (m *Model) renderRow(node *PhaseNode) string {
	indent := strings.Repeat("  ", node.Depth)

	var row string
	switch node.Status {
	case StatusDone:
		detail := round(node.Elapsed).String()
		if node.Written > 0 {
			detail += fmt.Sprintf(", %d written", node.Written)
		}
		row = doneStyle.Render(style.Check+" "+node.Name) + " " + elapsedStyle.Render(detail)
	case StatusError:
		row = errorStyle.Render(fmt.Sprintf("%s %s: %v", style.Cross, node.Name, node.Err))
	default:
		row = runningStyle.Render(style.Dot + " " + node.Name)
	}

	if m.Width > 0 {
		row = lipgloss.NewStyle().MaxWidth(m.Width - len(indent)).Render(row)
	}
	return indent + row
}

func round(d time.Duration) time.Duration {
	if d < time.Millisecond {
		return d
	}
	return d.Round(time.Millisecond)
}
