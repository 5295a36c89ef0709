// Package app implements the application layer for hatch-registry.
package app

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"github.com/crackingshells/hatch-registry/internal/engine/chain"
	"github.com/crackingshells/hatch-registry/internal/engine/writer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic: every registry operation the
// CLI exposes runs through here.
type App struct {
	store         ports.RegistryStore
	validator     ports.PackageValidator
	writer        *writer.Writer
	reconstructor *chain.Reconstructor
	scanner       ports.ArtifactScanner
	logger        ports.Logger
}

// New creates a new App instance.
func New(
	store ports.RegistryStore,
	validator ports.PackageValidator,
	w *writer.Writer,
	reconstructor *chain.Reconstructor,
	scanner ports.ArtifactScanner,
	logger ports.Logger,
) *App {
	return &App{
		store:         store,
		validator:     validator,
		writer:        w,
		reconstructor: reconstructor,
		scanner:       scanner,
		logger:        logger,
	}
}

// AddRepository registers a new repository.
func (a *App) AddRepository(name, url string) error {
	if err := a.store.AddRepository(name, url); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("added repository %s to registry", name))
	return nil
}

// RemoveRepository removes a repository and everything under it.
func (a *App) RemoveRepository(name string) error {
	if err := a.store.RemoveRepository(name); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed repository %s from registry", name))
	return nil
}

// AddPackage validates the package directory and adds the package to the
// repository with its first version. If the package already exists the
// call falls through to adding a new version instead.
func (a *App) AddPackage(repo, dir string) error {
	v, err := a.validateAndScan(dir)
	if err != nil {
		return err
	}

	if _, err := a.store.FindPackage(repo, v.meta.Name); err == nil {
		a.logger.Info(fmt.Sprintf("package %s already exists, adding version %s", v.meta.Name, v.meta.Version))
		_, err := a.writer.AddVersion(repo, v.meta.Name, v.meta, v.artifacts)
		return err
	}

	if err := a.store.AddPackage(repo, domain.Package{
		Name:        v.meta.Name,
		Description: v.meta.Description,
		Tags:        v.meta.Tags,
		Author:      v.meta.Author,
	}); err != nil {
		return err
	}

	if _, err := a.writer.AddVersion(repo, v.meta.Name, v.meta, v.artifacts); err != nil {
		// The package entry without its first version is useless; undo it.
		if rmErr := a.store.RemovePackage(repo, v.meta.Name); rmErr != nil {
			a.logger.Error(zerr.Wrap(rmErr, "failed to roll back package entry"))
		}
		return err
	}

	a.logger.Info(fmt.Sprintf("added package %s to repository %s", v.meta.Name, repo))
	return nil
}

// AddVersion validates the package directory and appends a new version to
// the already-registered package.
func (a *App) AddVersion(repo, dir string) (*domain.VersionRecord, error) {
	v, err := a.validateAndScan(dir)
	if err != nil {
		return nil, err
	}
	return a.writer.AddVersion(repo, v.meta.Name, v.meta, v.artifacts)
}

// RemovePackage removes a package from a repository.
func (a *App) RemovePackage(repo, name string) error {
	if err := a.store.RemovePackage(repo, name); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed package %s from repository %s", name, repo))
	return nil
}

// RemoveVersion removes one version record from a package.
func (a *App) RemoveVersion(repo, pkg, version string) error {
	if err := a.store.RemoveVersion(repo, pkg, version); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed version %s from package %s", version, pkg))
	return nil
}

// UpdatePackage patches package-level metadata (description and tags).
func (a *App) UpdatePackage(repo, name string, patch domain.PackagePatch) error {
	if err := a.store.UpdatePackageMetadata(repo, name, patch); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("updated metadata for package %s", name))
	return nil
}

// Show reconstructs the full metadata of a version. An empty version
// selects the package's latest version.
func (a *App) Show(repo, pkg, version string) (domain.PackageMetadata, error) {
	p, err := a.store.FindPackage(repo, pkg)
	if err != nil {
		return domain.PackageMetadata{}, err
	}

	if version == "" {
		version = p.LatestVersion
	}
	if version == "" {
		err := zerr.With(domain.ErrVersionNotFound, "package", pkg)
		return domain.PackageMetadata{}, zerr.With(err, "reason", "package has no versions")
	}

	return a.reconstructor.Reconstruct(p, version)
}

// Stats returns the registry-wide aggregate counters.
func (a *App) Stats() (domain.Stats, error) {
	return a.store.Stats()
}

// IndexRepository validates and adds every given package directory to the
// repository. Validation and artifact scanning run concurrently, followed
// by a combined cycle check over the whole batch; writes are applied
// serially in sorted directory order so the outcome does not depend on
// goroutine scheduling. The repository's last_indexed timestamp is
// refreshed afterwards.
func (a *App) IndexRepository(ctx context.Context, repo string, dirs []string) error {
	if _, err := a.store.FindRepository(repo); err != nil {
		return err
	}

	sorted := append([]string(nil), dirs...)
	sort.Strings(sorted)

	results := make([]validated, len(sorted))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, dir := range sorted {
		g.Go(func() error {
			v, err := a.validateAndScan(dir)
			if err != nil {
				return zerr.With(err, "dir", dir)
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Per-directory validation only sees each package's own pending write.
	// Two batch members depending on each other pass individually, so the
	// whole batch is checked again with every member overlaid before
	// anything is committed.
	pending := make([]ports.PendingUpdate, len(results))
	for i, v := range results {
		pending[i] = ports.PendingUpdate{Name: v.meta.Name, Metadata: v.meta}
	}
	if findings, err := a.validator.ValidateBatch(pending); err != nil {
		for _, finding := range findings {
			a.logger.Warn("validation: " + finding)
		}
		return err
	}

	for _, v := range results {
		if err := a.commit(repo, v); err != nil {
			return err
		}
	}

	if err := a.store.UpdateRepositoryTimestamp(repo); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("indexed %d packages into repository %s", len(sorted), repo))
	return nil
}

// validated is one package directory after validation and artifact
// scanning, ready to be written.
type validated struct {
	meta      domain.PackageMetadata
	artifacts []domain.Artifact
}

func (a *App) validateAndScan(dir string) (validated, error) {
	meta, findings, err := a.validator.Validate(dir)
	if err != nil {
		for _, finding := range findings {
			a.logger.Warn("validation: " + finding)
		}
		return validated{}, err
	}

	artifacts, err := a.scanner.Scan(dir)
	if err != nil {
		return validated{}, err
	}

	return validated{meta: meta, artifacts: artifacts}, nil
}

// commit writes one validated package, creating the package entry first
// when it does not exist yet.
func (a *App) commit(repo string, v validated) error {
	if _, err := a.store.FindPackage(repo, v.meta.Name); err != nil {
		if err := a.store.AddPackage(repo, domain.Package{
			Name:        v.meta.Name,
			Description: v.meta.Description,
			Tags:        v.meta.Tags,
			Author:      v.meta.Author,
		}); err != nil {
			return err
		}
	}

	_, err := a.writer.AddVersion(repo, v.meta.Name, v.meta, v.artifacts)
	return err
}
