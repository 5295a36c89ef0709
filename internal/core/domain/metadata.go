package domain

import "slices"

// Author identifies the maintainer of a package.
type Author struct {
	// GitHubID is the maintainer's GitHub username.
	GitHubID string `json:"GitHubID,omitempty"`

	// Email is the maintainer's contact address.
	Email string `json:"email,omitempty"`
}

// PackageMetadata is the full, non-differential metadata snapshot of one
// package version. It is what the validator extracts from a package
// directory and what chain reconstruction recovers from stored deltas.
type PackageMetadata struct {
	Name               string             `json:"name"`
	Version            string             `json:"version"`
	Description        string             `json:"description,omitempty"`
	EntryPoint         string             `json:"entry_point,omitempty"`
	Tags               []string           `json:"tags,omitempty"`
	Author             Author             `json:"author,omitzero"`
	HatchDependencies  []Dependency       `json:"hatch_dependencies,omitempty"`
	PythonDependencies []PythonDependency `json:"python_dependencies,omitempty"`
	Compatibility      Compatibility      `json:"compatibility,omitzero"`
}

// Clone returns a deep copy of the metadata snapshot.
func (m PackageMetadata) Clone() PackageMetadata {
	out := m
	out.Tags = slices.Clone(m.Tags)
	out.HatchDependencies = slices.Clone(m.HatchDependencies)
	out.PythonDependencies = slices.Clone(m.PythonDependencies)
	return out
}
