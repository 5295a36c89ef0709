// Package chain reconstructs full package metadata from a stored chain of
// differential version records.
package chain

import (
	"fmt"
	"slices"

	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reconstructor replays version deltas from a package's root record forward
// to recover the full, non-differential metadata of any version.
// Reconstruction is read-only and idempotent: it is a pure function of the
// stored chain and may run concurrently with itself.
type Reconstructor struct {
	logger ports.Logger
}

// NewReconstructor creates a new Reconstructor.
func NewReconstructor(logger ports.Logger) *Reconstructor {
	return &Reconstructor{logger: logger}
}

// Reconstruct returns the full metadata state as of the given version.
//
// It walks base_version references backward to the root, then replays the
// chain oldest to newest, applying each record's added, removed, modified
// and compatibility deltas to an accumulator. A dangling base_version
// reference is registry corruption and fails with domain.ErrChainBroken; a
// modified entry with no matching accumulator key is logged and skipped,
// since that one defect class can arise from partial writes upstream and
// must not poison the rest of the chain.
func (r *Reconstructor) Reconstruct(pkg *domain.Package, version string) (domain.PackageMetadata, error) {
	records, err := r.collect(pkg, version)
	if err != nil {
		return domain.PackageMetadata{}, err
	}

	// Replay oldest to newest. collect returns newest first.
	slices.Reverse(records)

	meta := domain.PackageMetadata{
		Name:        pkg.Name,
		Version:     version,
		Description: pkg.Description,
		Tags:        slices.Clone(pkg.Tags),
		Author:      pkg.Author,
	}
	for _, rec := range records {
		r.apply(&meta, rec, pkg.Name)
	}

	return meta, nil
}

// collect gathers the chain from the given version back to the root,
// newest first. The chain is walked by index lookup into the append-only
// version slice, never by live record references.
func (r *Reconstructor) collect(pkg *domain.Package, version string) ([]domain.VersionRecord, error) {
	index := pkg.VersionIndex()

	i, ok := index[version]
	if !ok {
		err := zerr.With(domain.ErrVersionNotFound, "package", pkg.Name)
		return nil, zerr.With(err, "version", version)
	}

	var records []domain.VersionRecord
	for {
		// An intact chain never has more hops than stored records, so
		// exceeding that bound means base_version references loop.
		if len(records) >= len(pkg.Versions) {
			err := zerr.With(domain.ErrChainBroken, "package", pkg.Name)
			return nil, zerr.With(err, "version", version)
		}

		rec := pkg.Versions[i]
		records = append(records, rec)

		if rec.IsRoot() {
			return records, nil
		}

		i, ok = index[rec.BaseVersion]
		if !ok {
			err := zerr.With(domain.ErrChainBroken, "package", pkg.Name)
			err = zerr.With(err, "version", rec.Version)
			return nil, zerr.With(err, "dangling_base_version", rec.BaseVersion)
		}
	}
}

// apply replays one record's deltas onto the accumulator.
func (r *Reconstructor) apply(meta *domain.PackageMetadata, rec domain.VersionRecord, pkgName string) {
	// Added entries append; an added key that already exists would be a
	// delta-construction bug and is not handled defensively here.
	meta.HatchDependencies = append(meta.HatchDependencies, rec.HatchDependenciesAdded...)
	meta.PythonDependencies = append(meta.PythonDependencies, rec.PythonDependenciesAdded...)

	for _, name := range rec.HatchDependenciesRemoved {
		meta.HatchDependencies = slices.DeleteFunc(meta.HatchDependencies, func(d domain.Dependency) bool {
			return d.Name == name
		})
	}
	for _, name := range rec.PythonDependenciesRemoved {
		meta.PythonDependencies = slices.DeleteFunc(meta.PythonDependencies, func(d domain.PythonDependency) bool {
			return d.Name == name
		})
	}

	for _, mod := range rec.HatchDependenciesModified {
		i := slices.IndexFunc(meta.HatchDependencies, func(d domain.Dependency) bool {
			return d.Name == mod.Name
		})
		if i < 0 {
			r.warnUnmatched(pkgName, rec.Version, "hatch", mod.Name)
			continue
		}
		meta.HatchDependencies[i] = mod
	}
	for _, mod := range rec.PythonDependenciesModified {
		i := slices.IndexFunc(meta.PythonDependencies, func(d domain.PythonDependency) bool {
			return d.Name == mod.Name
		})
		if i < 0 {
			r.warnUnmatched(pkgName, rec.Version, "python", mod.Name)
			continue
		}
		meta.PythonDependencies[i] = mod
	}

	if cc := rec.CompatibilityChanges; cc != nil {
		if cc.Hatchling != nil {
			meta.Compatibility.Hatchling = *cc.Hatchling
		}
		if cc.Python != nil {
			meta.Compatibility.Python = *cc.Python
		}
	}
}

func (r *Reconstructor) warnUnmatched(pkg, version, kind, dep string) {
	r.logger.Warn(fmt.Sprintf(
		"package %s version %s: %s dependency %q modified but not present; skipping delta entry",
		pkg, version, kind, dep,
	))
}
