// Package descriptor rewrites package descriptors to point at the packaged layout.
package descriptor

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// prettyOptions formats like a two-space JSON.stringify: every array and object
// is expanded and keys keep their document order.
var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Rewriter overwrites the module pointer fields of a package descriptor.
type Rewriter struct{}

// NewRewriter creates a new Rewriter.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Parse reads the typed fields of a descriptor document.
func (r *Rewriter) Parse(doc string) (domain.PackageDescriptor, error) {
	if !gjson.Valid(doc) {
		return domain.PackageDescriptor{}, domain.ErrDescriptorParse
	}
	root := gjson.Parse(doc)
	if !root.IsObject() {
		return domain.PackageDescriptor{}, zerr.With(domain.ErrDescriptorParse, "type", root.Type.String())
	}

	name := root.Get(domain.DescriptorKeyName)
	if name.Type != gjson.String || name.Str == "" {
		return domain.PackageDescriptor{}, domain.ErrDescriptorMissingName
	}

	return domain.PackageDescriptor{
		Name:    name.Str,
		Main:    root.Get(domain.DescriptorKeyMain).Str,
		Module:  root.Get(domain.DescriptorKeyModule).Str,
		ES2015:  root.Get(domain.DescriptorKeyES2015).Str,
		Typings: root.Get(domain.DescriptorKeyTypings).Str,
	}, nil
}

// Rewrite sets main, module, es2015 and typings from the descriptor's name.
// Other keys keep their values and order; pointer keys that already exist are
// overwritten in place and missing ones are appended. The result is indented
// with two spaces and ends with exactly one newline.
func (r *Rewriter) Rewrite(doc string) (string, domain.PackageDescriptor, error) {
	parsed, err := r.Parse(doc)
	if err != nil {
		return "", domain.PackageDescriptor{}, err
	}

	rewritten := parsed.WithLayoutPointers()
	out := doc
	for _, field := range rewritten.Pointers() {
		out, err = sjson.Set(out, field[0], field[1])
		if err != nil {
			return "", domain.PackageDescriptor{}, zerr.With(zerr.Wrap(err, domain.ErrDescriptorUpdate.Error()), "field", field[0])
		}
	}

	formatted := pretty.PrettyOptions([]byte(out), prettyOptions)
	return strings.TrimRight(string(formatted), "\n") + "\n", rewritten, nil
}
