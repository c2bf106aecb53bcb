package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// The version sentinel is stored in two halves. Joined, it is the literal that
// stamping replaces, and it must never appear whole in this repository's sources.
const (
	sentinelVersion = "0.0.0"
	sentinelTag     = "-PLACEHOLDER"
)

// VersionSentinel is the literal replaced by the stamped version in packaged text files.
const VersionSentinel = sentinelVersion + sentinelTag

// StampVersionKey is the stamp key holding the source-control version.
const StampVersionKey = "BUILD_SCM_VERSION"

// Stamp holds build-time key/value facts read from a stamp file.
type Stamp map[string]string

// ParseStamp parses stamp data, one "KEY value" pair per line.
// Only the first whitespace-separated field after the key is kept.
func ParseStamp(data string) Stamp {
	stamp := make(Stamp)
	for line := range strings.Lines(data) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		value := ""
		if len(fields) > 1 {
			value = fields[1]
		}
		if _, ok := stamp[fields[0]]; !ok {
			stamp[fields[0]] = value
		}
	}
	return stamp
}

// Version returns the trimmed source-control version.
// A version key without a value counts as missing.
func (s Stamp) Version() (string, error) {
	v := strings.TrimSpace(s[StampVersionKey])
	if v == "" {
		return "", zerr.With(ErrStampFieldMissing, "key", StampVersionKey)
	}
	return v, nil
}
