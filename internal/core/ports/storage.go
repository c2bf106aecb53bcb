// Package ports defines the core interfaces for the application.
package ports

// Storage is the filesystem collaborator of a packaging run.
// Every failure is returned to the caller; nothing is retried or swallowed.
//
//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks
type Storage interface {
	// CreateDirectory creates path and any missing parents.
	CreateDirectory(path string) error

	// ReadText returns the content of the file at path.
	ReadText(path string) (string, error)

	// WriteText writes text to path, replacing any existing file.
	WriteText(path, text string) error

	// CopyFile copies the bytes of src to the file dst.
	CopyFile(src, dst string) error

	// ListFilesRecursive returns every regular file under root in lexical order.
	ListFilesRecursive(root string) ([]string, error)

	// Remove deletes path and everything below it. A missing path is not an error.
	Remove(path string) error
}
