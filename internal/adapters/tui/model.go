// Package tui shows packaging progress as a live phase list on interactive terminals.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PhaseStatus represents the current state of a phase.
type PhaseStatus string

const (
	// StatusRunning indicates the phase is executing.
	StatusRunning PhaseStatus = "Running"
	// StatusDone indicates the phase completed successfully.
	StatusDone PhaseStatus = "Done"
	// StatusError indicates the phase failed.
	StatusError PhaseStatus = "Error"
)

// PhaseNode is one row of the phase list.
type PhaseNode struct {
	SpanID   string
	ParentID string
	Name     string
	Depth    int
	Status   PhaseStatus
	Start    time.Time
	Elapsed  time.Duration
	Written  int
	Err      error
}

// MsgPhaseStart reports that a phase began.
type MsgPhaseStart struct {
	SpanID    string
	ParentID  string
	Name      string
	StartTime time.Time
}

// MsgPhaseComplete reports that a phase ended.
type MsgPhaseComplete struct {
	SpanID  string
	EndTime time.Time
	Written int
	Err     error
}

// Model is the phase list state.
type Model struct {
	Title  string
	Phases []*PhaseNode
	Spans  map[string]*PhaseNode
	Width  int
}

// NewModel creates an empty model headed by title.
func NewModel(title string) *Model {
	return &Model{
		Title: title,
		Spans: make(map[string]*PhaseNode),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case MsgPhaseStart:
		if m.Spans == nil {
			m.Spans = make(map[string]*PhaseNode)
		}
		node := &PhaseNode{
			SpanID:   msg.SpanID,
			ParentID: msg.ParentID,
			Name:     msg.Name,
			Status:   StatusRunning,
			Start:    msg.StartTime,
		}
		if parent, ok := m.Spans[msg.ParentID]; ok {
			node.Depth = parent.Depth + 1
		}
		m.Phases = append(m.Phases, node)
		m.Spans[msg.SpanID] = node

	case MsgPhaseComplete:
		node, ok := m.Spans[msg.SpanID]
		if !ok {
			break
		}
		node.Elapsed = msg.EndTime.Sub(node.Start)
		node.Written = msg.Written
		if msg.Err != nil {
			node.Status = StatusError
			node.Err = msg.Err
		} else {
			node.Status = StatusDone
		}
	}

	return m, nil
}
