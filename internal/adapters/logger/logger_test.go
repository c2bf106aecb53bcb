package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ngpack/internal/adapters/logger"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/zerr"
)

func newLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Pretty(t *testing.T) {
	l, buf := newLogger(t)

	l.Info("packaged @angular/core")
	l.Warn("output unchanged")

	assert.Equal(t, "packaged @angular/core\n! output unchanged\n", buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	l, buf := newLogger(t)

	err := zerr.With(zerr.Wrap(errors.New("no such file"), domain.ErrStorageRead.Error()), "path", "/src/package.json")
	l.Error(err)

	want := "✗ Error: failed to read file\n" +
		"       path: /src/package.json\n" +
		"\n" +
		"  Caused by:\n" +
		"    → no such file\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	l, buf := newLogger(t)
	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newLogger(t)
	l.SetJSON(true)

	l.Error(zerr.With(zerr.New("phase failed"), "phase", "sources"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "sources", record["phase"])
	assert.Contains(t, record["error"], "phase failed")
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	l, buf := newLogger(t)
	l.SetJSON(true)
	l.Info("hello")
	l.SetJSON(false)
	l.Info("again")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), "again\n")
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{name: "plain error", err: errors.New("boom"), want: []string{"boom"}},
		{name: "single zerr", err: zerr.New("boom"), want: []string{"boom"}},
		{
			name: "wrapped chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root"), "middle"), "outer"),
			want: []string{"outer", "middle", "root"},
		},
		{name: "nil", err: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, entry := range logger.CollectErrorEntries(tt.err) {
				got = append(got, entry.Message)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	err := zerr.Wrap(zerr.With(zerr.New("inner"), "path", "a.ts"), "outer")
	err = zerr.With(err, "phase", "sources")

	entries := logger.CollectErrorEntries(err)
	require.Len(t, entries, 2)
	assert.Equal(t, "sources", entries[0].Metadata["phase"])
	assert.Equal(t, "a.ts", entries[1].Metadata["path"])
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "boom"}},
			want:    "Error: boom",
		},
		{
			name: "sorted metadata",
			entries: []logger.ErrorEntry{
				{Message: "boom", Metadata: map[string]any{"b": 2, "a": "x"}},
			},
			want: "Error: boom\n       a: x\n       b: 2",
		},
		{
			name: "cause with multiline message",
			entries: []logger.ErrorEntry{
				{Message: "outer"},
				{Message: "line one\nline two", Metadata: map[string]any{"k": "v"}},
			},
			want: "Error: outer\n\n  Caused by:\n    → line one\n      line two\n      k: v",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
