package ports

import "github.com/crackingshells/hatch-registry/internal/core/domain"

// PendingUpdate carries an in-flight package write so the validator can
// detect circular dependencies that would only materialize once the write
// is committed.
type PendingUpdate struct {
	// Name is the package being written.
	Name string

	// Metadata is the metadata snapshot about to be stored.
	Metadata domain.PackageMetadata
}

// PackageValidator validates a package directory before any registry write.
// The engine treats validator failure as a hard stop: no delta computation
// happens and no partial record is ever appended.
//
//go:generate mockgen -source=validator.go -destination=mocks/mock_validator.go -package=mocks
type PackageValidator interface {
	// Validate checks the package directory for schema conformance,
	// entry-point presence and registry-wide circular dependencies. On
	// success it returns the extracted metadata snapshot. On validation
	// failure it returns domain.ErrValidationFailed along with the list
	// of individual findings.
	Validate(packageDir string) (domain.PackageMetadata, []string, error)

	// ValidateBatch checks that a set of in-flight writes, applied
	// together, leaves the registry free of circular dependencies.
	// Validate only overlays a single write on the stored graph; two
	// batch members can close a cycle between each other that only this
	// combined overlay sees.
	ValidateBatch(pending []PendingUpdate) ([]string, error)
}
