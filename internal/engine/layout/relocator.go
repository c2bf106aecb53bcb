package layout

import (
	"path/filepath"
	"strings"

	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// bundleIndexExt returns the extension class of a bundle index path.
func bundleIndexExt(path string) (string, error) {
	switch {
	case strings.HasSuffix(path, domain.DeclarationExt):
		return domain.DeclarationExt, nil
	case strings.HasSuffix(path, domain.MetadataExt):
		return domain.MetadataExt, nil
	default:
		return "", zerr.With(domain.ErrUnrecognizedBundleIndexExtension, "path", path)
	}
}

// RelocateBundleIndex computes the destination of a bundle index file.
//
// The first secondary entry point, in insertion order, whose name prefixes the
// build-relative path owns the file and receives it as <name>/<base><ext>.
// Otherwise the file becomes <primary><ext> at the package root.
func (p *Placer) RelocateBundleIndex(res *domain.Resolution, path string) (string, error) {
	ext, err := bundleIndexExt(path)
	if err != nil {
		return "", err
	}

	rel, err := relativeTo(p.buildRoot, path)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)

	for _, secondary := range res.Secondaries() {
		if strings.HasPrefix(rel, secondary.String()) {
			return filepath.Join(p.outputRoot, filepath.FromSlash(secondary.String()), secondary.Base()+ext), nil
		}
	}

	if !res.HasPrimary() {
		return "", zerr.With(domain.ErrNoPrimaryEntryPoint, "path", path)
	}
	return filepath.Join(p.outputRoot, filepath.FromSlash(res.Primary().String())+ext), nil
}
