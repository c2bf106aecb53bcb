package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ngpack/internal/adapters/linear"
)

func TestRenderer_NestedPhases(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := linear.NewRenderer(&buf)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.OnPhaseStart("root", "", "package", start)
	r.OnPhaseStart("s1", "root", "readme", start)
	r.OnPhaseComplete("s1", start.Add(2*time.Millisecond), 1, nil)
	r.OnPhaseStart("s2", "root", "redirects", start)
	r.OnPhaseComplete("s2", start.Add(3*time.Millisecond), 0, nil)
	r.OnPhaseComplete("root", start.Add(5*time.Millisecond), 12, nil)

	want := "[package] Starting...\n" +
		"  [readme] Starting...\n" +
		"  [readme] ✓ Completed in 2ms (1 file)\n" +
		"  [redirects] Starting...\n" +
		"  [redirects] ✓ Completed in 3ms\n" +
		"[package] ✓ Completed in 5ms (12 files)\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderer_Failure(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := linear.NewRenderer(&buf)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.OnPhaseStart("s1", "", "sources", start)
	r.OnPhaseComplete("s1", start.Add(time.Second), 2, errors.New("failed to read file"))

	assert.Equal(t, "[sources] Starting...\n[sources] ✗ Failed after 1s: failed to read file\n", buf.String())
}

func TestRenderer_UnknownSpan(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewRenderer(&buf)

	r.OnPhaseComplete("missing", time.Now(), 0, nil)
	assert.Empty(t, buf.String())
}
