// Package cas persists package records keyed by output root.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/ngpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageRecordStore = (*Store)(nil)

// Store implements ports.PackageRecordStore using one JSON file per output root.
type Store struct {
	fs  afero.Fs
	dir string
}

// NewStore creates a store under the given state directory.
func NewStore(fsys afero.Fs, stateDir string) *Store {
	return &Store{fs: fsys, dir: domain.StorePath(stateDir)}
}

// Get retrieves the record for an output root.
func (s *Store) Get(outputRoot string) (*domain.PackageRecord, error) {
	filename := s.filename(outputRoot)
	data, err := afero.ReadFile(s.fs, filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var record domain.PackageRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}
	return &record, nil
}

// Put stores the record, replacing any previous record for its output root.
func (s *Store) Put(record domain.PackageRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := s.fs.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	filename := s.filename(record.OutputRoot)
	if err := afero.WriteFile(s.fs, filename, data, domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}
	return nil
}

// Dir returns the directory records are stored in.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) filename(outputRoot string) string {
	hash := sha256.Sum256([]byte(filepath.Clean(outputRoot)))
	return filepath.Join(s.dir, hex.EncodeToString(hash[:])+".json")
}
