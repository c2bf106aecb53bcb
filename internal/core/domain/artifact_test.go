package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ngpack/internal/core/domain"
)

func TestClassifyBuildOutput(t *testing.T) {
	tests := []struct {
		path     string
		wantKind domain.ArtifactKind
		wantOK   bool
	}{
		{path: "bin/core/src/core.d.ts", wantKind: domain.KindDeclaration, wantOK: true},
		{path: "bin/core/src/core.metadata.json", wantKind: domain.KindMetadata, wantOK: true},
		{path: "bin/core.bundle_index.d.ts", wantKind: domain.KindBundleIndexDeclaration, wantOK: true},
		{path: "bin/core.bundle_index.metadata.json", wantKind: domain.KindBundleIndexMetadata, wantOK: true},
		{path: "bin/core/src/app.ngfactory.d.ts", wantOK: false},
		{path: "bin/core/src/app.ngsummary.d.ts", wantOK: false},
		{path: "bin/core/src/app.ngsummary.metadata.json", wantOK: false},
		{path: "bin/core/src/core.js", wantOK: false},
		{path: "bin/core.bundle_index.js", wantOK: false},
		{path: "bin/core/src/core.json", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, ok := domain.ClassifyBuildOutput(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKind, kind)
			}
		})
	}
}

func TestArtifactKind(t *testing.T) {
	assert.Equal(t, "fesm2015", domain.KindFesmEs2015.String())
	assert.Equal(t, "bundle-index-metadata", domain.KindBundleIndexMetadata.String())
	assert.Equal(t, "unknown", domain.ArtifactKind(200).String())

	assert.True(t, domain.KindBundleIndexDeclaration.IsBundleIndex())
	assert.True(t, domain.KindBundleIndexMetadata.IsBundleIndex())
	assert.False(t, domain.KindDeclaration.IsBundleIndex())
}
