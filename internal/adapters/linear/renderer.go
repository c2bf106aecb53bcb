// Package linear provides a synchronous, line-oriented progress renderer.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/ngpack/internal/ui/output"
	"go.trai.ch/ngpack/internal/ui/style"
)

// Renderer implements ports.Renderer by printing one line per phase event.
// Nested phases are indented under their parent.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu     sync.Mutex
	phases map[string]*phaseState // spanID -> phase
}

type phaseState struct {
	name      string
	depth     int
	startTime time.Time
}

// NewRenderer creates a new Renderer writing to w. A nil w means stderr.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{
		w:      w,
		output: output.NewWithProfile(w, output.ColorProfileANSI),
		phases: make(map[string]*phaseState),
	}
}

// OnPhaseStart prints a phase start message.
func (r *Renderer) OnPhaseStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	depth := 0
	if parent, ok := r.phases[parentID]; ok {
		depth = parent.depth + 1
	}
	r.phases[spanID] = &phaseState{name: name, depth: depth, startTime: startTime}

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.w, "%s%s Starting...\n", indent(depth), prefix)
}

// OnPhaseComplete prints the outcome and duration of a phase, with the number
// of files it wrote when there were any. Unknown span IDs are ignored.
func (r *Renderer) OnPhaseComplete(spanID string, endTime time.Time, written int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	phase, ok := r.phases[spanID]
	if !ok {
		return
	}
	delete(r.phases, spanID)

	duration := endTime.Sub(phase.startTime)
	prefix := indent(phase.depth) + fmt.Sprintf("[%s]", phase.name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(r.output.Color(string(style.Red))).String()
		_, _ = fmt.Fprintf(r.w, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}
	symbol := r.output.String(style.Check).Foreground(r.output.Color(string(style.Green))).String()
	_, _ = fmt.Fprintf(r.w, "%s %s Completed in %v%s\n", prefix, symbol, duration, files(written))
}

func files(written int) string {
	switch written {
	case 0:
		return ""
	case 1:
		return " (1 file)"
	default:
		return fmt.Sprintf(" (%d files)", written)
	}
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
