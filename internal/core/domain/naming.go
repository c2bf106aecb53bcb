package domain

import (
	"path/filepath"
	"strings"
)

// EntryPointName is a slash-joined entry point path such as "core/testing".
type EntryPointName string

// String returns the entry point name as a string.
func (n EntryPointName) String() string {
	return string(n)
}

// Segments returns the slash-separated segments of the name.
func (n EntryPointName) Segments() []string {
	return strings.Split(string(n), "/")
}

// Base returns the last segment of the name.
func (n EntryPointName) Base() string {
	segments := n.Segments()
	return segments[len(segments)-1]
}

// Parent returns every segment but the last, joined with "/".
// It is empty for single-segment names.
func (n EntryPointName) Parent() string {
	segments := n.Segments()
	return strings.Join(segments[:len(segments)-1], "/")
}

// EntryPointNameOf derives the entry point name of a flattened FESM file.
// "common__http.umd.js" yields "common/http".
func EntryPointNameOf(fesmFileName string) EntryPointName {
	base := filepath.Base(fesmFileName)
	joined := strings.Join(strings.Split(base, EntryPointDelimiter), "/")
	if i := strings.IndexByte(joined, '.'); i >= 0 {
		joined = joined[:i]
	}
	return EntryPointName(joined)
}

// DestinationSegments splits a flattened FESM file name into the nested
// directories it belongs to and the file name placed inside them.
// "core__testing.js" yields ["core"] and "testing.js".
func DestinationSegments(fesmFileName string) ([]string, string) {
	base := filepath.Base(fesmFileName)
	parts := strings.Split(base, EntryPointDelimiter)
	return parts[:len(parts)-1], parts[len(parts)-1]
}
