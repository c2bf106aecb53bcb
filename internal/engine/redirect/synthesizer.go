// Package redirect synthesizes the stubs that make secondary entry points importable
// from the package root.
package redirect

import (
	"encoding/json"
	"path/filepath"

	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// redirectMetadataVersion is the metadata format version of redirect stubs.
const redirectMetadataVersion = 3

// Stub is one synthesized file.
type Stub struct {
	Path    string
	Content string
}

type redirectExport struct {
	From string `json:"from"`
}

type redirectMetadata struct {
	Symbolic                string           `json:"__symbolic"`
	Version                 int              `json:"version"`
	Metadata                struct{}         `json:"metadata"`
	Exports                 []redirectExport `json:"exports"`
	FlatModuleIndexRedirect bool             `json:"flatModuleIndexRedirect"`
}

// Synthesizer emits redirect stubs for secondary entry points.
type Synthesizer struct {
	outputRoot string
	banner     string
}

// NewSynthesizer creates a Synthesizer writing under outputRoot.
// banner is the license text prepended to declaration stubs; it may be empty.
func NewSynthesizer(outputRoot, banner string) *Synthesizer {
	return &Synthesizer{outputRoot: outputRoot, banner: banner}
}

// Synthesize returns the metadata and declaration stubs of every secondary entry
// point, in the given order.
func (s *Synthesizer) Synthesize(secondaries []domain.EntryPointName) ([]Stub, error) {
	stubs := make([]Stub, 0, 2*len(secondaries))
	for _, name := range secondaries {
		metadata, err := RedirectMetadata(name)
		if err != nil {
			return nil, err
		}
		dir := filepath.Join(s.outputRoot, filepath.FromSlash(name.Parent()))
		stubs = append(stubs,
			Stub{
				Path:    filepath.Join(dir, name.Base()+domain.MetadataExt),
				Content: metadata,
			},
			Stub{
				Path:    filepath.Join(dir, name.Base()+domain.DeclarationExt),
				Content: RedirectDeclaration(name, s.banner),
			},
		)
	}
	return stubs, nil
}

// exportTarget is the module a redirect stub re-exports.
func exportTarget(name domain.EntryPointName) string {
	return "./" + name.Base() + "/" + name.Base()
}

// RedirectMetadata renders the single-line flat module index redirect for name.
func RedirectMetadata(name domain.EntryPointName) (string, error) {
	data, err := json.Marshal(redirectMetadata{
		Symbolic:                "module",
		Version:                 redirectMetadataVersion,
		Exports:                 []redirectExport{{From: exportTarget(name)}},
		FlatModuleIndexRedirect: true,
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to marshal redirect metadata"), "entry_point", name.String())
	}
	return string(data) + "\n", nil
}

// RedirectDeclaration renders the declaration stub re-exporting name.
func RedirectDeclaration(name domain.EntryPointName, banner string) string {
	return banner + " " + "\n export * from '" + exportTarget(name) + "'\n"
}
