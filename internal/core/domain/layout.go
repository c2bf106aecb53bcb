package domain

import (
	"path/filepath"
	"strings"
)

const (
	// StateDirName is the name of the internal state directory.
	StateDirName = ".ngpack"

	// StoreDirName is the name of the package record store directory.
	StoreDirName = "store"

	// ManifestFileName is the name of the optional run manifest.
	ManifestFileName = "ngpack.yaml"

	// Esm2015DirName is the output directory for ES2015 flat modules.
	Esm2015DirName = "esm2015"

	// Esm5DirName is the output directory for ES5 flat modules.
	Esm5DirName = "esm5"

	// BundlesDirName is the output directory for UMD bundles.
	BundlesDirName = "bundles"

	// ReadmeFileName is the name the README is published under.
	ReadmeFileName = "README.md"

	// DescriptorFileName is the base name of the package descriptor.
	DescriptorFileName = "package.json"

	// DeclarationExt is the extension of type declaration files.
	DeclarationExt = ".d.ts"

	// MetadataExt is the extension of metadata files.
	MetadataExt = ".metadata.json"

	// BundleIndexMarker marks the stem of a bundle index artifact.
	BundleIndexMarker = ".bundle_index"

	// EntryPointDelimiter separates entry point segments in flattened file names.
	EntryPointDelimiter = "__"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// excludedStemSuffixes lists generated stems that never ship in a package.
var excludedStemSuffixes = []string{".ngfactory", ".ngsummary"}

// DefaultStatePath returns the default root directory for ngpack state.
func DefaultStatePath() string {
	return StateDirName
}

// StorePath returns the package record store path under the given state directory.
func StorePath(stateDir string) string {
	return filepath.Join(stateDir, StoreDirName)
}

// DefaultStorePath returns the default path for the package record store.
// It joins .ngpack and store.
func DefaultStorePath() string {
	return StorePath(StateDirName)
}

// Within reports whether path is root or below it.
func Within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
