package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/ngpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Digester = (*Hasher)(nil)

// Hasher computes content digests of packaged files.
type Hasher struct {
	fs afero.Fs
}

// NewHasher creates a new Hasher over fsys.
func NewHasher(fsys afero.Fs) *Hasher {
	return &Hasher{fs: fsys}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := h.fs.Open(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// DigestFiles combines the path and content hash of every file into one digest.
// Paths are sorted first, so the digest does not depend on their order.
func (h *Hasher) DigestFiles(paths []string) (string, error) {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	digest := xxhash.New()
	for _, path := range sorted {
		_, _ = digest.WriteString(path)
		_, _ = digest.Write([]byte{0}) // Separator

		hash, err := h.ComputeFileHash(path)
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrDigestFailed.Error())
		}
		if err := binary.Write(digest, binary.LittleEndian, hash); err != nil {
			return "", zerr.Wrap(err, domain.ErrDigestFailed.Error())
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}
