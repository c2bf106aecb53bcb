package domain

import "slices"

// Role tells whether an entry point is the primary one or a secondary one.
type Role uint8

const (
	// RolePrimary marks the main importable module path of a package.
	RolePrimary Role = iota
	// RoleSecondary marks an additional importable sub-path.
	RoleSecondary
)

// String returns a human-readable role.
func (r Role) String() string {
	if r == RoleSecondary {
		return "secondary"
	}
	return "primary"
}

// Resolution accumulates the entry points seen during one packaging run.
//
// The first classified name becomes the primary and is never replaced.
// Every other distinct name is kept once, in the order it was first seen.
// The zero value is an empty resolution ready for use.
type Resolution struct {
	primary     EntryPointName
	hasPrimary  bool
	secondaries []EntryPointName
	seen        map[EntryPointName]struct{}
}

// NewResolution returns an empty resolution.
func NewResolution() *Resolution {
	return &Resolution{}
}

// Classify records name and reports its role.
func (r *Resolution) Classify(name EntryPointName) Role {
	if !r.hasPrimary {
		r.primary = name
		r.hasPrimary = true
		return RolePrimary
	}
	if name == r.primary {
		return RolePrimary
	}
	if r.seen == nil {
		r.seen = make(map[EntryPointName]struct{})
	}
	if _, ok := r.seen[name]; !ok {
		r.seen[name] = struct{}{}
		r.secondaries = append(r.secondaries, name)
	}
	return RoleSecondary
}

// Primary returns the primary entry point, or "" when none was classified yet.
func (r *Resolution) Primary() EntryPointName {
	return r.primary
}

// HasPrimary reports whether a primary entry point was classified.
func (r *Resolution) HasPrimary() bool {
	return r.hasPrimary
}

// Secondaries returns the secondary entry points in insertion order.
func (r *Resolution) Secondaries() []EntryPointName {
	return slices.Clone(r.secondaries)
}

// IsSecondary reports whether name was classified as a secondary entry point.
func (r *Resolution) IsSecondary(name EntryPointName) bool {
	_, ok := r.seen[name]
	return ok
}
