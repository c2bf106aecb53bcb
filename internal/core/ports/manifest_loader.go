package ports

import "go.trai.ch/ngpack/internal/core/domain"

// ManifestLoader reads run parameters declared in a manifest file.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest at path. Relative paths inside the manifest are
	// resolved against the manifest's directory.
	// A missing manifest yields zero params and found == false.
	Load(path string) (params domain.RunParams, found bool, err error)
}
