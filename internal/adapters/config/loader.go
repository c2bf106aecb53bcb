// Package config loads run manifests and environment settings.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/ngpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader using YAML manifests.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a new Loader reading from fsys.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys}
}

// Load reads the manifest at path. Unknown keys are rejected.
func (l *Loader) Load(path string) (domain.RunParams, bool, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.RunParams{}, false, nil
		}
		return domain.RunParams{}, false, zerr.With(zerr.Wrap(err, domain.ErrManifestRead.Error()), "path", path)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return domain.RunParams{}, false, zerr.With(zerr.Wrap(err, domain.ErrManifestParse.Error()), "path", path)
	}

	return m.resolve(filepath.Dir(path)), true, nil
}

func (m *Manifest) resolve(dir string) domain.RunParams {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	absAll := func(ps []string) []string {
		if len(ps) == 0 {
			return nil
		}
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = abs(p)
		}
		return out
	}

	return domain.RunParams{
		OutputRoot: abs(m.Out),
		SourceRoot: abs(m.SrcRoot),
		BuildRoot:  abs(m.BinRoot),
		Readme:     abs(m.Readme),
		Fesms2015:  absAll(m.Fesm2015),
		Fesms5:     absAll(m.Fesm5),
		Bundles:    absAll(m.Bundles),
		Sources:    absAll(m.Srcs),
		StampData:  abs(m.StampData),
		License:    abs(m.License),
	}
}
