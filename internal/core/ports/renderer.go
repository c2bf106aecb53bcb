package ports

import (
	"context"
	"time"
)

// Renderer presents packaging progress.
// It decouples telemetry collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPhaseStart is called when a packaging phase begins.
	// spanID: unique identifier for this phase
	// parentID: spanID of the enclosing phase (empty if root)
	OnPhaseStart(spanID, parentID, name string, startTime time.Time)

	// OnPhaseComplete is called when a phase finishes.
	// written: number of files the phase put into the output root
	// err: nil if successful, error otherwise
	OnPhaseComplete(spanID string, endTime time.Time, written int, err error)
}

// LiveRenderer is a Renderer that owns a terminal for the length of a run.
type LiveRenderer interface {
	Renderer

	// Start takes over the terminal.
	Start(ctx context.Context) error
	// Stop asks the renderer to release the terminal once queued events are drawn.
	Stop() error
	// Wait blocks until the terminal is released.
	Wait() error
}
