package redirect_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/ngpack/internal/engine/redirect"
)

const banner = "/**\n * @license Angular v6.1.0\n * License: MIT\n */\n"

func TestSynthesizer_Synthesize(t *testing.T) {
	s := redirect.NewSynthesizer("/out", banner)

	stubs, err := s.Synthesize([]domain.EntryPointName{"testing/foo", "http"})
	require.NoError(t, err)
	require.Len(t, stubs, 4)

	assert.Equal(t, filepath.Join("/out", "testing", "foo.metadata.json"), stubs[0].Path)
	assert.Equal(t, filepath.Join("/out", "testing", "foo.d.ts"), stubs[1].Path)
	assert.Equal(t, filepath.Join("/out", "http.metadata.json"), stubs[2].Path)
	assert.Equal(t, filepath.Join("/out", "http.d.ts"), stubs[3].Path)

	g := goldie.New(t)
	g.Assert(t, "testing_foo.metadata", []byte(stubs[0].Content))
	g.Assert(t, "testing_foo.d", []byte(stubs[1].Content))
}

func TestSynthesizer_NoSecondaries(t *testing.T) {
	stubs, err := redirect.NewSynthesizer("/out", "").Synthesize(nil)
	require.NoError(t, err)
	assert.Empty(t, stubs)
}

func TestRedirectDeclaration_WithoutBanner(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "http_no_banner.d", []byte(redirect.RedirectDeclaration("http", "")))
}

func TestRedirectDeclaration_SingleReExport(t *testing.T) {
	content := redirect.RedirectDeclaration("testing/foo", banner)

	var exports []string
	for line := range strings.Lines(content) {
		if strings.Contains(line, "export * from") {
			exports = append(exports, strings.TrimSpace(line))
		}
	}

	assert.Equal(t, []string{"export * from './foo/foo'"}, exports)
}

func TestRedirectMetadata(t *testing.T) {
	got, err := redirect.RedirectMetadata("common/http/testing")
	require.NoError(t, err)

	assert.Equal(t,
		`{"__symbolic":"module","version":3,"metadata":{},"exports":[{"from":"./testing/testing"}],"flatModuleIndexRedirect":true}`+"\n",
		got,
	)
	assert.Equal(t, 1, strings.Count(got, "\n"))
}
