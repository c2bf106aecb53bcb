package stamp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/ngpack/internal/engine/stamp"
)

func TestSubstitutor_Apply(t *testing.T) {
	content := `{"version":"` + domain.VersionSentinel + `","peerDependencies":{"@angular/core":"` +
		domain.VersionSentinel + `"}}`

	t.Run("replaces every occurrence", func(t *testing.T) {
		got := stamp.NewSubstitutor("6.1.0").Apply(content)
		assert.Equal(t, `{"version":"6.1.0","peerDependencies":{"@angular/core":"6.1.0"}}`, got)
		assert.NotContains(t, got, domain.VersionSentinel)
	})

	t.Run("idempotent", func(t *testing.T) {
		s := stamp.NewSubstitutor("6.1.0")
		once := s.Apply(content)
		assert.Equal(t, once, s.Apply(once))
	})

	t.Run("pass-through without stamp", func(t *testing.T) {
		s := stamp.Passthrough()
		assert.Equal(t, content, s.Apply(content))

		_, ok := s.Version()
		assert.False(t, ok)
	})

	t.Run("nil substitutor is pass-through", func(t *testing.T) {
		var s *stamp.Substitutor
		assert.Equal(t, content, s.Apply(content))
	})
}

func TestFromStampData(t *testing.T) {
	s, err := stamp.FromStampData("BUILD_TIMESTAMP 1530000000\nBUILD_SCM_VERSION 6.1.0+sha-1a2b3c\n")
	require.NoError(t, err)

	v, ok := s.Version()
	assert.True(t, ok)
	assert.Equal(t, "6.1.0+sha-1a2b3c", v)
	assert.Equal(t, "v6.1.0+sha-1a2b3c", s.Apply("v"+domain.VersionSentinel))
}

func TestFromStampData_MissingVersion(t *testing.T) {
	for _, data := range []string{"BUILD_TIMESTAMP 1530000000\n", "BUILD_SCM_VERSION\n", ""} {
		_, err := stamp.FromStampData(data)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrStampFieldMissing.Error())
	}
}

func TestVersionSentinel_NotSpelledInSources(t *testing.T) {
	assert.True(t, strings.HasPrefix(domain.VersionSentinel, "0.0.0"))
	assert.True(t, strings.HasSuffix(domain.VersionSentinel, "PLACEHOLDER"))
}
