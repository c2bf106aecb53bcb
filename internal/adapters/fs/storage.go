package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/ngpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Storage = (*Storage)(nil)

// Storage implements ports.Storage on an afero file system.
type Storage struct {
	fs     afero.Fs
	walker *Walker
}

// NewStorage creates a Storage over fsys.
func NewStorage(fsys afero.Fs, walker *Walker) *Storage {
	return &Storage{fs: fsys, walker: walker}
}

// CreateDirectory creates path and any missing parents.
func (s *Storage) CreateDirectory(path string) error {
	if err := s.fs.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStorageCreateDir.Error()), "path", path)
	}
	return nil
}

// ReadText returns the content of the file at path.
func (s *Storage) ReadText(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrStorageRead.Error()), "path", path)
	}
	return string(data), nil
}

// WriteText writes text to path, replacing any existing file.
func (s *Storage) WriteText(path, text string) error {
	if err := afero.WriteFile(s.fs, path, []byte(text), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStorageWrite.Error()), "path", path)
	}
	return nil
}

// CopyFile copies the bytes of src to the file dst.
func (s *Storage) CopyFile(src, dst string) (err error) {
	in, err := s.fs.Open(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStorageCopy.Error()), "src", src)
	}
	defer in.Close() //nolint:errcheck // Read-only handle

	out, err := s.fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStorageCopy.Error()), "dst", dst)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = zerr.With(zerr.Wrap(cerr, domain.ErrStorageCopy.Error()), "dst", dst)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrStorageCopy.Error()), "src", src), "dst", dst)
	}
	return nil
}

// ListFilesRecursive returns every regular file under root in lexical order.
func (s *Storage) ListFilesRecursive(root string) ([]string, error) {
	files, err := s.walker.Files(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStorageList.Error()), "root", root)
	}
	return files, nil
}

// Remove deletes path and everything below it. A missing path is not an error.
func (s *Storage) Remove(path string) error {
	if err := s.fs.RemoveAll(filepath.Clean(path)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStorageRemove.Error()), "path", path)
	}
	return nil
}
