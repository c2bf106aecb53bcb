// Package fs provides file system adapters for storage, walking and hashing files.
package fs

import (
	"errors"
	"iter"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Walker provides file walking functionality.
type Walker struct {
	fs afero.Fs
}

// NewWalker creates a new Walker over fsys.
func NewWalker(fsys afero.Fs) *Walker {
	return &Walker{fs: fsys}
}

// WalkFiles yields all files under root in lexical order, skipping VCS and
// ignored directories. Paths include root. Unreadable entries end the walk.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = w.walk(root, ignores, false, yield)
	}
}

// WalkDirs yields root and every directory below it, skipping VCS and ignored
// directories.
func (w *Walker) WalkDirs(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = w.walk(root, ignores, true, yield)
	}
}

// Files returns every file under root in lexical order.
// Unlike WalkFiles it reports walk errors, including a missing root.
func (w *Walker) Files(root string) ([]string, error) {
	var files []string
	err := w.walk(root, nil, false, func(path string) bool {
		files = append(files, path)
		return true
	})
	return files, err
}

func (w *Walker) walk(root string, ignores []string, dirs bool, yield func(string) bool) error {
	err := afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() && path != root && shouldSkipDir(info.Name(), ignores) {
			return filepath.SkipDir
		}

		if info.IsDir() != dirs {
			return nil
		}

		if !yield(path) {
			return filepath.SkipAll
		}
		return nil
	})
	if errors.Is(err, filepath.SkipAll) {
		return nil
	}
	return err
}

// shouldSkipDir checks if a directory should be skipped based on ignore patterns.
func shouldSkipDir(name string, ignores []string) bool {
	// Always skip .git and .jj
	if name == ".git" || name == ".jj" {
		return true
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
