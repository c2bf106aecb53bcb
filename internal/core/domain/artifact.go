package domain

import "strings"

// ArtifactKind tags a build output file with how it is laid out.
type ArtifactKind uint8

const (
	// KindFesmEs2015 is a flattened ES2015 module.
	KindFesmEs2015 ArtifactKind = iota
	// KindFesmEs5 is a flattened ES5 module.
	KindFesmEs5
	// KindBundle is a UMD bundle.
	KindBundle
	// KindDeclaration is a type declaration file.
	KindDeclaration
	// KindMetadata is a metadata file.
	KindMetadata
	// KindBundleIndexDeclaration is the aggregated declaration of an entry point.
	KindBundleIndexDeclaration
	// KindBundleIndexMetadata is the aggregated metadata of an entry point.
	KindBundleIndexMetadata
	// KindSource is a file copied from the source tree.
	KindSource
	// KindReadme is the package README.
	KindReadme
	// KindLicense is the license banner.
	KindLicense
)

var kindNames = [...]string{
	KindFesmEs2015:             "fesm2015",
	KindFesmEs5:                "fesm5",
	KindBundle:                 "bundle",
	KindDeclaration:            "declaration",
	KindMetadata:               "metadata",
	KindBundleIndexDeclaration: "bundle-index-declaration",
	KindBundleIndexMetadata:    "bundle-index-metadata",
	KindSource:                 "source",
	KindReadme:                 "readme",
	KindLicense:                "license",
}

// String returns the kind name.
func (k ArtifactKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsBundleIndex reports whether the kind is relocated by entry point.
func (k ArtifactKind) IsBundleIndex() bool {
	return k == KindBundleIndexDeclaration || k == KindBundleIndexMetadata
}

// Artifact is a build output file together with its kind.
type Artifact struct {
	Kind ArtifactKind
	Path string
}

// Placement is the resolved destination of an artifact.
type Placement struct {
	Artifact    Artifact
	Destination string
	// EntryPoint and Role are only set for FESM artifacts.
	EntryPoint EntryPointName
	Role       Role
}

// ClassifyBuildOutput tells which build-output artifact kind a file is.
// Only declaration and metadata files qualify; generated factory and summary
// files are excluded entirely.
func ClassifyBuildOutput(path string) (ArtifactKind, bool) {
	var stem string
	var declaration bool
	switch {
	case strings.HasSuffix(path, DeclarationExt):
		stem = strings.TrimSuffix(path, DeclarationExt)
		declaration = true
	case strings.HasSuffix(path, MetadataExt):
		stem = strings.TrimSuffix(path, MetadataExt)
	default:
		return 0, false
	}

	for _, suffix := range excludedStemSuffixes {
		if strings.HasSuffix(stem, suffix) {
			return 0, false
		}
	}

	bundleIndex := strings.HasSuffix(stem, BundleIndexMarker)
	switch {
	case declaration && bundleIndex:
		return KindBundleIndexDeclaration, true
	case declaration:
		return KindDeclaration, true
	case bundleIndex:
		return KindBundleIndexMetadata, true
	default:
		return KindMetadata, true
	}
}
