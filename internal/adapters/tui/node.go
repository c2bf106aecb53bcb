package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grindlemire/graft"
	"go.trai.ch/ngpack/internal/core/ports"
)

// NodeID is the unique identifier for the TUI renderer Graft node.
const NodeID graft.ID = "adapter.tui"

// Factory creates a fresh live renderer bound to ctx. A Bubble Tea program
// runs once, so every packaging run needs its own.
type Factory func(ctx context.Context) ports.LiveRenderer

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Factory, error) {
			return func(ctx context.Context) ports.LiveRenderer {
				return NewRenderer(nil, tea.WithContext(ctx))
			}, nil
		},
	})
}
