package tui_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ngpack/internal/adapters/tui"
)

func newTestRenderer(t *testing.T) *tui.Renderer {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	return tui.NewRenderer(
		io.Discard,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
}

func TestRenderer_Lifecycle(t *testing.T) {
	r := newTestRenderer(t)

	require.NoError(t, r.Start(context.Background()))
	require.NoError(t, r.Stop())
	require.NoError(t, r.Wait())
}

func TestRenderer_ForwardsPhases(t *testing.T) {
	r := newTestRenderer(t)
	require.NoError(t, r.Start(context.Background()))

	r.OnPhaseStart("root", "", "package", t0)
	r.OnPhaseStart("a", "root", "stamp", t0)
	r.OnPhaseComplete("a", t0, 3, nil)
	r.OnPhaseStart("b", "root", "readme", t0)
	r.OnPhaseComplete("b", t0, 0, errors.New("read failed"))
	r.OnPhaseComplete("root", t0, 3, errors.New("read failed"))

	require.NoError(t, r.Stop())
	require.NoError(t, r.Wait())

	phases := r.Model().Phases
	require.Len(t, phases, 3)
	assert.Equal(t, "package", phases[0].Name)
	assert.Equal(t, tui.StatusError, phases[0].Status)
	assert.Equal(t, tui.StatusDone, phases[1].Status)
	assert.Equal(t, 3, phases[1].Written)
	assert.Equal(t, 1, phases[2].Depth)
}
