// Package stamp injects the stamped version into packaged text files.
package stamp

import (
	"strings"

	"go.trai.ch/ngpack/internal/core/domain"
)

// Substitutor replaces the version sentinel with a stamped version.
// A Substitutor without a version leaves content untouched.
type Substitutor struct {
	version  string
	stamped  bool
	replacer *strings.Replacer
}

// NewSubstitutor creates a Substitutor that writes version in place of the sentinel.
func NewSubstitutor(version string) *Substitutor {
	return &Substitutor{
		version:  version,
		stamped:  true,
		replacer: strings.NewReplacer(domain.VersionSentinel, version),
	}
}

// Passthrough returns a Substitutor that leaves content untouched.
func Passthrough() *Substitutor {
	return &Substitutor{}
}

// FromStampData builds a Substitutor from raw stamp data.
func FromStampData(data string) (*Substitutor, error) {
	version, err := domain.ParseStamp(data).Version()
	if err != nil {
		return nil, err
	}
	return NewSubstitutor(version), nil
}

// Version returns the stamped version and whether one is set.
func (s *Substitutor) Version() (string, bool) {
	if s == nil {
		return "", false
	}
	return s.version, s.stamped
}

// Apply replaces every sentinel occurrence in content.
func (s *Substitutor) Apply(content string) string {
	if s == nil || !s.stamped {
		return content
	}
	return s.replacer.Replace(content)
}
