package layout_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/ngpack/internal/engine/layout"
)

func newPlacer() *layout.Placer {
	return layout.NewPlacer("/out", "/src/packages/core", "/bin/packages/core")
}

func TestPlacer_PlaceFesm(t *testing.T) {
	p := newPlacer()
	res := domain.NewResolution()

	tests := []struct {
		name     string
		artifact domain.Artifact
		wantDst  string
		wantName domain.EntryPointName
		wantRole domain.Role
	}{
		{
			name:     "first es2015 module is primary",
			artifact: domain.Artifact{Kind: domain.KindFesmEs2015, Path: "/bin/fesm2015/core.js"},
			wantDst:  filepath.Join("/out", "esm2015", "core.js"),
			wantName: "core",
			wantRole: domain.RolePrimary,
		},
		{
			name:     "delimited name is nested",
			artifact: domain.Artifact{Kind: domain.KindFesmEs2015, Path: "/bin/fesm2015/core__testing.js"},
			wantDst:  filepath.Join("/out", "esm2015", "core", "testing.js"),
			wantName: "core/testing",
			wantRole: domain.RoleSecondary,
		},
		{
			name:     "es5 module goes to esm5",
			artifact: domain.Artifact{Kind: domain.KindFesmEs5, Path: "/bin/fesm5/core__testing.js"},
			wantDst:  filepath.Join("/out", "esm5", "core", "testing.js"),
			wantName: "core/testing",
			wantRole: domain.RoleSecondary,
		},
		{
			name:     "primary again stays primary",
			artifact: domain.Artifact{Kind: domain.KindFesmEs5, Path: "/bin/fesm5/core.js"},
			wantDst:  filepath.Join("/out", "esm5", "core.js"),
			wantName: "core",
			wantRole: domain.RolePrimary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.PlaceFesm(res, tt.artifact)
			assert.Equal(t, tt.wantDst, got.Destination)
			assert.Equal(t, tt.wantName, got.EntryPoint)
			assert.Equal(t, tt.wantRole, got.Role)
			assert.Equal(t, tt.artifact, got.Artifact)
		})
	}

	assert.Equal(t, domain.EntryPointName("core"), res.Primary())
	assert.Equal(t, []domain.EntryPointName{"core/testing"}, res.Secondaries())
}

func TestPlacer_PlaceBundle(t *testing.T) {
	got := newPlacer().PlaceBundle(domain.Artifact{Kind: domain.KindBundle, Path: "/bin/umd/nested/core-testing.umd.js"})
	assert.Equal(t, filepath.Join("/out", "bundles", "core-testing.umd.js"), got.Destination)
}

func TestPlacer_PlaceReadme(t *testing.T) {
	got := newPlacer().PlaceReadme(domain.Artifact{Kind: domain.KindReadme, Path: "/src/docs/PACKAGE.md"})
	assert.Equal(t, filepath.Join("/out", "README.md"), got.Destination)
}

func TestPlacer_PlaceSource(t *testing.T) {
	p := newPlacer()

	got, err := p.PlaceSource(domain.Artifact{Kind: domain.KindSource, Path: "/src/packages/core/testing/package.json"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/out", "testing", "package.json"), got.Destination)

	_, err = p.PlaceSource(domain.Artifact{Kind: domain.KindSource, Path: "/src/packages/common/package.json"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPathOutsideRoot.Error())
}

func TestPlacer_PlaceBuildOutput(t *testing.T) {
	p := newPlacer()
	res := domain.NewResolution()
	res.Classify("core")

	got, err := p.PlaceBuildOutput(res, domain.Artifact{
		Kind: domain.KindDeclaration,
		Path: "/bin/packages/core/src/render/api.d.ts",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/out", "src", "render", "api.d.ts"), got.Destination)

	got, err = p.PlaceBuildOutput(res, domain.Artifact{
		Kind: domain.KindBundleIndexDeclaration,
		Path: "/bin/packages/core/core.bundle_index.d.ts",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/out", "core.d.ts"), got.Destination)
}

func TestStripAMDModule(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "leading marker removed",
			in:   "/// <amd-module name=\"@angular/core\" />\nexport declare const x: number;\n",
			want: "export declare const x: number;\n",
		},
		{
			name: "no marker",
			in:   "export declare const x: number;\n",
			want: "export declare const x: number;\n",
		},
		{
			name: "only first line is considered",
			in:   "/** banner */\n/// <amd-module name=\"x\" />\nexport {};\n",
			want: "/** banner */\n/// <amd-module name=\"x\" />\nexport {};\n",
		},
		{
			name: "marker without newline is kept",
			in:   "/// <amd-module name=\"x\" />",
			want: "/// <amd-module name=\"x\" />",
		},
		{
			name: "only one marker removed",
			in:   "/// <amd-module name=\"a\" />\n/// <amd-module name=\"b\" />\n",
			want: "/// <amd-module name=\"b\" />\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.StripAMDModule(tt.in))
		})
	}
}
