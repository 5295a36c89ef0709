// Package validator implements package-directory validation: metadata
// schema conformance, entry-point presence and registry-wide circular
// dependency detection.
package validator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"github.com/crackingshells/hatch-registry/internal/engine/chain"
	"go.trai.ch/zerr"
)

var _ ports.PackageValidator = (*Validator)(nil)

// Validator implements ports.PackageValidator against the registry store.
type Validator struct {
	store         ports.RegistryStore
	loader        ports.MetadataLoader
	reconstructor *chain.Reconstructor
	metadataFile  string
}

// New creates a Validator. metadataFile is the metadata filename looked up
// inside package directories.
func New(store ports.RegistryStore, loader ports.MetadataLoader, reconstructor *chain.Reconstructor, metadataFile string) *Validator {
	return &Validator{
		store:         store,
		loader:        loader,
		reconstructor: reconstructor,
		metadataFile:  metadataFile,
	}
}

// Validate checks the package directory and returns the extracted metadata
// snapshot. Any finding makes the write a hard stop: the engine computes no
// delta and appends no record.
func (v *Validator) Validate(packageDir string) (domain.PackageMetadata, []string, error) {
	info, err := os.Stat(packageDir)
	if err != nil || !info.IsDir() {
		return domain.PackageMetadata{}, nil, zerr.With(domain.ErrPackageDirInvalid, "dir", packageDir)
	}

	meta, err := v.loader.Load(packageDir, v.metadataFile)
	if err != nil {
		return domain.PackageMetadata{}, nil, err
	}

	findings := v.checkSchema(packageDir, meta)

	cycleFindings, err := v.checkCycles([]ports.PendingUpdate{{Name: meta.Name, Metadata: meta}})
	if err != nil {
		return meta, nil, err
	}
	findings = append(findings, cycleFindings...)

	if len(findings) > 0 {
		err := zerr.With(domain.ErrValidationFailed, "dir", packageDir)
		return meta, findings, zerr.With(err, "findings", fmt.Sprintf("%d", len(findings)))
	}

	return meta, nil, nil
}

// ValidateBatch overlays every pending write on the stored dependency graph
// at once. A batch can close a cycle between two of its own members that
// each member's individual Validate call cannot see, because edges to
// packages unknown to the registry are ignored until both sides exist.
func (v *Validator) ValidateBatch(pending []ports.PendingUpdate) ([]string, error) {
	findings, err := v.checkCycles(pending)
	if err != nil {
		return nil, err
	}
	if len(findings) > 0 {
		err := zerr.With(domain.ErrValidationFailed, "packages", fmt.Sprintf("%d", len(pending)))
		return findings, zerr.With(err, "findings", fmt.Sprintf("%d", len(findings)))
	}
	return nil, nil
}

// checkSchema verifies required metadata fields and entry-point presence.
func (v *Validator) checkSchema(packageDir string, meta domain.PackageMetadata) []string {
	var findings []string

	if meta.Name == "" {
		findings = append(findings, "metadata field 'name' is required")
	}
	if meta.Version == "" {
		findings = append(findings, "metadata field 'version' is required")
	}

	if meta.EntryPoint != "" {
		entry := filepath.Join(packageDir, meta.EntryPoint)
		if _, err := os.Stat(entry); err != nil {
			findings = append(findings, fmt.Sprintf("entry point %q not found in package directory", meta.EntryPoint))
		}
	}

	for _, dep := range meta.HatchDependencies {
		if dep.Name == "" {
			findings = append(findings, "hatch dependency with empty name")
		}
	}
	for _, dep := range meta.PythonDependencies {
		if dep.Name == "" {
			findings = append(findings, "python dependency with empty name")
		}
	}

	return findings
}

// checkCycles builds the registry-wide dependency graph from every
// package's reconstructed latest metadata, overlays the pending updates and
// looks for cycles that would only materialize once the writes commit.
func (v *Validator) checkCycles(pending []ports.PendingUpdate) ([]string, error) {
	snapshot, err := v.store.Snapshot()
	if err != nil {
		return nil, err
	}

	graph := domain.NewDependencyGraph()
	for _, repo := range snapshot.Repositories {
		for i := range repo.Packages {
			pkg := &repo.Packages[i]
			if pkg.LatestVersion == "" {
				graph.AddPackage(pkg.Name, nil)
				continue
			}

			full, err := v.reconstructor.Reconstruct(pkg, pkg.LatestVersion)
			if err != nil {
				return nil, zerr.Wrap(err, "failed to expand stored package for cycle check")
			}
			graph.AddPackage(pkg.Name, full.HatchDependencies)
		}
	}

	// Each pending write overrides whatever is currently stored under the
	// same name.
	for _, p := range pending {
		graph.AddPackage(p.Name, p.Metadata.HatchDependencies)
	}

	if err := graph.Validate(); err != nil {
		return []string{err.Error()}, nil
	}
	return nil, nil
}
