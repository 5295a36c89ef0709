package domain

import "slices"

// Package is one entry in a repository: descriptive metadata plus the
// append-only version history. The history mirrors insertion order, and
// every non-root record's BaseVersion points at an earlier record.
type Package struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Tags   []string `json:"tags,omitempty"`
	Author Author   `json:"author,omitzero"`

	// Versions is the ordered version history. Records are appended by the
	// version writer and never mutated in place.
	Versions []VersionRecord `json:"versions"`

	// LatestVersion names the most recently added version. If non-empty it
	// must equal the Version of some record in Versions.
	LatestVersion string `json:"latest_version"`
}

// PackagePatch is a controlled mutation of package-level metadata. Only
// description and tags may be patched after creation; version records are
// never modified through this path.
type PackagePatch struct {
	Description *string
	Tags        []string
}

// Version returns the index of the record with the given version
// identifier, or -1 if the package has no such record.
func (p *Package) Version(version string) int {
	return slices.IndexFunc(p.Versions, func(v VersionRecord) bool {
		return v.Version == version
	})
}

// HasVersion reports whether a record with the given identifier exists.
func (p *Package) HasVersion(version string) bool {
	return p.Version(version) >= 0
}

// VersionIndex builds a version-string to slice-index lookup table for
// chain traversal. Walking by index into the append-only slice keeps
// traversal independent of any record aliasing.
func (p *Package) VersionIndex() map[string]int {
	idx := make(map[string]int, len(p.Versions))
	for i, v := range p.Versions {
		idx[v.Version] = i
	}
	return idx
}

// Clone returns a deep copy of the package.
func (p Package) Clone() Package {
	out := p
	out.Tags = slices.Clone(p.Tags)
	out.Versions = make([]VersionRecord, len(p.Versions))
	for i, v := range p.Versions {
		out.Versions[i] = v.Clone()
	}
	return out
}
