package domain

import "strings"

// PackageDescriptor is the typed view of the package.json fields ngpack reads and writes.
// Every other key of the document is carried through untouched.
type PackageDescriptor struct {
	Name    string
	Main    string
	Module  string
	ES2015  string
	Typings string
}

// Descriptor field keys.
const (
	DescriptorKeyName    = "name"
	DescriptorKeyMain    = "main"
	DescriptorKeyModule  = "module"
	DescriptorKeyES2015  = "es2015"
	DescriptorKeyTypings = "typings"
)

// WithLayoutPointers returns a copy of d whose module pointer fields match the
// published layout for its name.
//
// For "@scope/sub/foo" the package lives one level below the scope root, so
// every bundle pointer is relative to "..", the UMD bundle is "sub-foo.umd.js"
// and the index file is "foo".
func (d PackageDescriptor) WithLayoutPointers() PackageDescriptor {
	segments := strings.Split(d.Name, "/")
	if strings.HasPrefix(segments[0], "@") {
		segments = segments[1:]
	}

	rel := "."
	if depth := len(segments) - 1; depth > 0 {
		ups := make([]string, depth)
		for i := range ups {
			ups[i] = ".."
		}
		rel = strings.Join(ups, "/")
	}

	indexFile := ""
	if len(segments) > 0 {
		indexFile = segments[len(segments)-1]
	}

	d.Main = rel + "/" + BundlesDirName + "/" + strings.Join(segments, "-") + ".umd.js"
	d.Module = rel + "/" + Esm5DirName + "/" + indexFile + ".js"
	d.ES2015 = rel + "/" + Esm2015DirName + "/" + indexFile + ".js"
	d.Typings = "./" + indexFile + DeclarationExt
	return d
}

// Pointers returns the module pointer fields in the order they are written.
func (d PackageDescriptor) Pointers() [][2]string {
	return [][2]string{
		{DescriptorKeyMain, d.Main},
		{DescriptorKeyModule, d.Module},
		{DescriptorKeyES2015, d.ES2015},
		{DescriptorKeyTypings, d.Typings},
	}
}
