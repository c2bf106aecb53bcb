// Package layout computes where every packaged artifact lands in the output tree.
package layout

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// amdModuleMarker matches the module-name annotation emitted at the top of declaration files.
var amdModuleMarker = regexp.MustCompile(`^/// <amd-module name=.*/>\n`)

// Placer maps artifacts to destinations under the output root.
// Destinations depend only on the artifact and the resolution state.
type Placer struct {
	outputRoot string
	sourceRoot string
	buildRoot  string
}

// NewPlacer creates a Placer for one packaging run.
func NewPlacer(outputRoot, sourceRoot, buildRoot string) *Placer {
	return &Placer{
		outputRoot: outputRoot,
		sourceRoot: sourceRoot,
		buildRoot:  buildRoot,
	}
}

// PlaceFesm places a flattened module under esm2015/ or esm5/ and classifies
// its entry point against res.
func (p *Placer) PlaceFesm(res *domain.Resolution, artifact domain.Artifact) domain.Placement {
	name := domain.EntryPointNameOf(artifact.Path)
	role := res.Classify(name)

	dirs, file := domain.DestinationSegments(artifact.Path)
	parts := make([]string, 0, len(dirs)+3)
	parts = append(parts, p.outputRoot, esmDirOf(artifact.Kind))
	parts = append(parts, dirs...)
	parts = append(parts, file)

	return domain.Placement{
		Artifact:    artifact,
		Destination: filepath.Join(parts...),
		EntryPoint:  name,
		Role:        role,
	}
}

func esmDirOf(kind domain.ArtifactKind) string {
	if kind == domain.KindFesmEs5 {
		return domain.Esm5DirName
	}
	return domain.Esm2015DirName
}

// BundlesDir returns the flat directory holding UMD bundles.
func (p *Placer) BundlesDir() string {
	return filepath.Join(p.outputRoot, domain.BundlesDirName)
}

// PlaceBundle places a UMD bundle flat under bundles/.
func (p *Placer) PlaceBundle(artifact domain.Artifact) domain.Placement {
	return domain.Placement{
		Artifact:    artifact,
		Destination: filepath.Join(p.BundlesDir(), filepath.Base(artifact.Path)),
	}
}

// PlaceReadme places the README at the package root.
func (p *Placer) PlaceReadme(artifact domain.Artifact) domain.Placement {
	return domain.Placement{
		Artifact:    artifact,
		Destination: filepath.Join(p.outputRoot, domain.ReadmeFileName),
	}
}

// PlaceSource places a source-tree file at its path relative to the source root.
func (p *Placer) PlaceSource(artifact domain.Artifact) (domain.Placement, error) {
	rel, err := relativeTo(p.sourceRoot, artifact.Path)
	if err != nil {
		return domain.Placement{}, err
	}
	return domain.Placement{
		Artifact:    artifact,
		Destination: filepath.Join(p.outputRoot, rel),
	}, nil
}

// PlaceBuildOutput places a declaration or metadata file from the build output tree.
// Bundle index artifacts are relocated by entry point; everything else keeps its
// path relative to the build root.
func (p *Placer) PlaceBuildOutput(res *domain.Resolution, artifact domain.Artifact) (domain.Placement, error) {
	if artifact.Kind.IsBundleIndex() {
		dst, err := p.RelocateBundleIndex(res, artifact.Path)
		if err != nil {
			return domain.Placement{}, err
		}
		return domain.Placement{Artifact: artifact, Destination: dst}, nil
	}

	rel, err := relativeTo(p.buildRoot, artifact.Path)
	if err != nil {
		return domain.Placement{}, err
	}
	return domain.Placement{
		Artifact:    artifact,
		Destination: filepath.Join(p.outputRoot, rel),
	}, nil
}

// StripAMDModule removes a single leading module-name annotation line.
func StripAMDModule(content string) string {
	loc := amdModuleMarker.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[loc[1]:]
}

// relativeTo returns path relative to root, rejecting paths that escape it.
func relativeTo(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, domain.ErrPathOutsideRoot.Error()), "root", root), "path", path)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.With(domain.ErrPathOutsideRoot, "root", root), "path", path)
	}
	return rel, nil
}
