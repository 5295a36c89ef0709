package domain

// Dependency declares a package-level dependency on another Hatch package.
type Dependency struct {
	// Name is the dependency's package name, unique within a dependency list.
	Name string `json:"name"`

	// VersionConstraint is the accepted version range (e.g., ">=1.0").
	VersionConstraint string `json:"version_constraint,omitempty"`
}

// PythonDependency declares a dependency on a Python distribution.
// It carries the installing package manager in addition to the constraint,
// and both participate in modification detection.
type PythonDependency struct {
	// Name is the distribution name, unique within a dependency list.
	Name string `json:"name"`

	// VersionConstraint is the accepted version range (e.g., ">=2.31").
	VersionConstraint string `json:"version_constraint,omitempty"`

	// PackageManager is the tool expected to install the distribution
	// (e.g., "pip", "uv").
	PackageManager string `json:"package_manager,omitempty"`
}

// Compatibility holds the fixed-key compatibility constraints of a package.
// An empty string means no constraint is declared for that key.
type Compatibility struct {
	// Hatchling is the accepted hatchling runtime version range.
	Hatchling string `json:"hatchling,omitempty"`

	// Python is the accepted Python interpreter version range.
	Python string `json:"python,omitempty"`
}

// IsZero reports whether no compatibility constraint is set.
func (c Compatibility) IsZero() bool {
	return c.Hatchling == "" && c.Python == ""
}
