package domain

import (
	"slices"
	"strings"

	"golang.org/x/mod/semver"
)

// Artifact references a release file belonging to a version.
type Artifact struct {
	// Path is the artifact location relative to the package directory.
	Path string `json:"path"`

	// Digest is the xxhash-64 content digest, hex encoded.
	Digest string `json:"digest,omitempty"`
}

// VersionRecord is one entry in a package's version history. Except for the
// root record it stores metadata differentially: only the delta against
// BaseVersion is kept. Records are immutable once appended; the chain is
// always walked by version-string lookup, never by live references.
//
// Delta fields are omitted from the serialized document when empty. A
// dependency name appears in at most one of added, removed and modified for
// a given record.
type VersionRecord struct {
	// Version is the version identifier, unique within the package.
	Version string `json:"version"`

	// AddedDate is the RFC 3339 timestamp of when the record was appended.
	// It is always serialized.
	AddedDate string `json:"added_date"`

	// ReleaseURI points at the downloadable release archive.
	ReleaseURI string `json:"release_uri,omitempty"`

	// Artifacts lists release files with their content digests.
	Artifacts []Artifact `json:"artifacts,omitempty"`

	// BaseVersion names the record this record's delta was computed
	// against. It is empty only on a package's root version.
	BaseVersion string `json:"base_version,omitempty"`

	HatchDependenciesAdded    []Dependency `json:"hatch_dependencies_added,omitempty"`
	HatchDependenciesRemoved  []string     `json:"hatch_dependencies_removed,omitempty"`
	HatchDependenciesModified []Dependency `json:"hatch_dependencies_modified,omitempty"`

	PythonDependenciesAdded    []PythonDependency `json:"python_dependencies_added,omitempty"`
	PythonDependenciesRemoved  []string           `json:"python_dependencies_removed,omitempty"`
	PythonDependenciesModified []PythonDependency `json:"python_dependencies_modified,omitempty"`

	// CompatibilityChanges holds only the compatibility keys whose value
	// changed, with the new value. A constraint reverting to "no
	// constraint" is stored as a change to the empty string, so the field
	// uses pointers to distinguish "unchanged" from "changed to empty".
	CompatibilityChanges *CompatibilityChange `json:"compatibility_changes,omitempty"`
}

// CompatibilityChange records new values for changed compatibility keys.
// A nil pointer means the key did not change.
type CompatibilityChange struct {
	Hatchling *string `json:"hatchling,omitempty"`
	Python    *string `json:"python,omitempty"`
}

// IsRoot reports whether the record stores full metadata rather than a delta.
func (v *VersionRecord) IsRoot() bool {
	return v.BaseVersion == ""
}

// Clone returns a deep copy of the record.
func (v VersionRecord) Clone() VersionRecord {
	out := v
	out.Artifacts = slices.Clone(v.Artifacts)
	out.HatchDependenciesAdded = slices.Clone(v.HatchDependenciesAdded)
	out.HatchDependenciesRemoved = slices.Clone(v.HatchDependenciesRemoved)
	out.HatchDependenciesModified = slices.Clone(v.HatchDependenciesModified)
	out.PythonDependenciesAdded = slices.Clone(v.PythonDependenciesAdded)
	out.PythonDependenciesRemoved = slices.Clone(v.PythonDependenciesRemoved)
	out.PythonDependenciesModified = slices.Clone(v.PythonDependenciesModified)
	if v.CompatibilityChanges != nil {
		cc := *v.CompatibilityChanges
		if v.CompatibilityChanges.Hatchling != nil {
			h := *v.CompatibilityChanges.Hatchling
			cc.Hatchling = &h
		}
		if v.CompatibilityChanges.Python != nil {
			p := *v.CompatibilityChanges.Python
			cc.Python = &p
		}
		out.CompatibilityChanges = &cc
	}
	return out
}

// CompareVersions orders two version identifiers.
//
// Identifiers that are both valid semantic versions (with or without a
// leading "v") are ordered by semver precedence. Any other pair falls back
// to plain lexicographic comparison. The result is -1, 0 or +1.
func CompareVersions(a, b string) int {
	ca, cb := canonicalSemver(a), canonicalSemver(b)
	if ca != "" && cb != "" {
		return semver.Compare(ca, cb)
	}
	return strings.Compare(a, b)
}

func canonicalSemver(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}
