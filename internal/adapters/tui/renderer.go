package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/ngpack/internal/ui/output"
)

// Renderer wraps the phase list Bubble Tea program as a ports.LiveRenderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a renderer drawing to w. A nil w means stderr.
// The display takes no keyboard input, so interrupts reach the process as signals.
func NewRenderer(w io.Writer, opts ...tea.ProgramOption) *Renderer {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	model := NewModel("ngpack")
	opts = append([]tea.ProgramOption{
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	}, opts...)
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the program in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the program to quit after drawing what it has received.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the program has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnPhaseStart forwards phase start events to the program.
func (r *Renderer) OnPhaseStart(spanID, parentID, name string, startTime time.Time) {
	r.program.Send(MsgPhaseStart{
		SpanID:    spanID,
		ParentID:  parentID,
		Name:      name,
		StartTime: startTime,
	})
}

// OnPhaseComplete forwards phase completion events to the program.
func (r *Renderer) OnPhaseComplete(spanID string, endTime time.Time, written int, err error) {
	r.program.Send(MsgPhaseComplete{
		SpanID:  spanID,
		EndTime: endTime,
		Written: written,
		Err:     err,
	})
}

// Model returns the model driven by the program.
// It is safe to read only after Wait returns.
func (r *Renderer) Model() *Model {
	return r.model
}
