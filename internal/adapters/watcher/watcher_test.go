package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ngpack/internal/adapters/fs"
	"go.trai.ch/ngpack/internal/adapters/watcher"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/ngpack/internal/core/ports"
)

func TestConvertOp(t *testing.T) {
	tests := []struct {
		op     fsnotify.Op
		want   ports.WatchOp
		wantOK bool
	}{
		{op: fsnotify.Write, want: ports.OpWrite, wantOK: true},
		{op: fsnotify.Create, want: ports.OpCreate, wantOK: true},
		{op: fsnotify.Remove, want: ports.OpRemove, wantOK: true},
		{op: fsnotify.Rename, want: ports.OpRename, wantOK: true},
		{op: fsnotify.Create | fsnotify.Write, want: ports.OpWrite, wantOK: true},
		{op: fsnotify.Chmod, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, ok := watcher.ConvertOp(tt.op)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestWatcher_MissingRoot(t *testing.T) {
	w, err := watcher.NewWatcher(fs.NewWalker(afero.NewOsFs()))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	err = w.Start(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatchFailed.Error())
}

func TestWatcher_ReportsWritesInNestedDirs(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "testing")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	w, err := watcher.NewWatcher(fs.NewWalker(afero.NewOsFs()))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, w.Start(ctx, root))

	target := filepath.Join(nested, "testing.d.ts")
	require.NoError(t, os.WriteFile(target, []byte("export {};\n"), 0o644))

	var seen bool
	for event := range w.Events() {
		if event.Path == target {
			seen = true
			break
		}
	}
	assert.True(t, seen, "expected an event for %s", target)
}
