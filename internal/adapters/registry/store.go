// Package registry implements the registry store: an in-memory repository
// tree persisted as a single JSON document.
package registry

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RegistryStore = (*Store)(nil)

// Store implements ports.RegistryStore. All mutations run under a single
// write lock and save the document before returning, so two writers can
// never read the same latest_version and append divergent deltas against
// it. Readers take the read lock and always observe a fully appended
// chain.
type Store struct {
	path   string
	clock  ports.Clock
	logger ports.Logger

	mu       sync.RWMutex
	registry *domain.Registry
}

// NewStore opens the registry document at path, creating a fresh one if
// the file does not exist yet.
func NewStore(path string, clock ports.Clock, logger ports.Logger) (*Store, error) {
	s := &Store{
		path:   path,
		clock:  clock,
		logger: logger,
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the document from disk, bootstrapping a new registry when the
// file is missing and backfilling the stats block of older documents.
func (s *Store) load() error {
	data, err := os.ReadFile(s.path) //nolint:gosec // Path comes from configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.registry = domain.NewRegistry()
			s.registry.LastUpdated = s.now()
			if s.logger != nil {
				s.logger.Info("registry file not found, creating new: " + s.path)
			}
			return s.save()
		}
		return zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var reg domain.Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	if reg.Repositories == nil {
		reg.Repositories = []domain.Repository{}
	}

	s.registry = &reg
	return nil
}

// save persists the document. Callers hold the write lock (or own the
// store exclusively during construction).
func (s *Store) save() error {
	s.registry.LastUpdated = s.now()

	data, err := json.MarshalIndent(s.registry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
		}
	}

	//nolint:gosec // Path comes from configuration
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) now() string {
	return s.clock.Now().UTC().Format(time.RFC3339)
}

// AddRepository adds a new, empty repository.
func (s *Store) AddRepository(name, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry.Repository(name) >= 0 {
		return zerr.With(domain.ErrRepositoryAlreadyExists, "repository", name)
	}

	s.registry.Repositories = append(s.registry.Repositories, domain.Repository{
		Name:        name,
		URL:         url,
		Packages:    []domain.Package{},
		LastIndexed: s.now(),
	})

	return s.save()
}

// FindRepository retrieves a deep copy of a repository.
func (s *Store) FindRepository(name string) (*domain.Repository, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.registry.Repository(name)
	if i < 0 {
		return nil, zerr.With(domain.ErrRepositoryNotFound, "repository", name)
	}

	repo := s.registry.Repositories[i].Clone()
	return &repo, nil
}

// RemoveRepository removes a repository and everything under it.
func (s *Store) RemoveRepository(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.registry.Repository(name)
	if i < 0 {
		return zerr.With(domain.ErrRepositoryNotFound, "repository", name)
	}

	removed := s.registry.Repositories[i]
	for _, pkg := range removed.Packages {
		s.registry.Stats.TotalPackages--
		s.registry.Stats.TotalVersions -= len(pkg.Versions)
		for _, v := range pkg.Versions {
			s.registry.Stats.TotalArtifacts -= len(v.Artifacts)
		}
	}

	s.registry.Repositories = append(s.registry.Repositories[:i], s.registry.Repositories[i+1:]...)
	return s.save()
}

// UpdateRepositoryTimestamp refreshes a repository's last_indexed time.
func (s *Store) UpdateRepositoryTimestamp(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.registry.Repository(name)
	if i < 0 {
		return zerr.With(domain.ErrRepositoryNotFound, "repository", name)
	}

	s.registry.Repositories[i].LastIndexed = s.now()
	return s.save()
}

// AddPackage adds a package to a repository.
func (s *Store) AddPackage(repo string, pkg domain.Package) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ri := s.registry.Repository(repo)
	if ri < 0 {
		return zerr.With(domain.ErrRepositoryNotFound, "repository", repo)
	}

	r := &s.registry.Repositories[ri]
	if r.Package(pkg.Name) >= 0 {
		err := zerr.With(domain.ErrPackageAlreadyExists, "repository", repo)
		return zerr.With(err, "package", pkg.Name)
	}

	stored := pkg.Clone()
	if stored.Versions == nil {
		stored.Versions = []domain.VersionRecord{}
	}

	r.Packages = append(r.Packages, stored)
	s.registry.Stats.TotalPackages++
	s.registry.Stats.TotalVersions += len(stored.Versions)
	for _, v := range stored.Versions {
		s.registry.Stats.TotalArtifacts += len(v.Artifacts)
	}

	return s.save()
}

// FindPackage retrieves a deep copy of a package.
func (s *Store) FindPackage(repo, name string) (*domain.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pkg, err := s.lookupPackage(repo, name)
	if err != nil {
		return nil, err
	}

	out := pkg.Clone()
	return &out, nil
}

// RemovePackage removes a package from a repository.
func (s *Store) RemovePackage(repo, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ri := s.registry.Repository(repo)
	if ri < 0 {
		return zerr.With(domain.ErrRepositoryNotFound, "repository", repo)
	}

	r := &s.registry.Repositories[ri]
	pi := r.Package(name)
	if pi < 0 {
		err := zerr.With(domain.ErrPackageNotFound, "repository", repo)
		return zerr.With(err, "package", name)
	}

	removed := r.Packages[pi]
	s.registry.Stats.TotalPackages--
	s.registry.Stats.TotalVersions -= len(removed.Versions)
	for _, v := range removed.Versions {
		s.registry.Stats.TotalArtifacts -= len(v.Artifacts)
	}

	r.Packages = append(r.Packages[:pi], r.Packages[pi+1:]...)
	return s.save()
}

// UpdatePackageMetadata applies a description/tags patch to a package.
// Version records are never touched through this path.
func (s *Store) UpdatePackageMetadata(repo, name string, patch domain.PackagePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pkg, err := s.lookupPackage(repo, name)
	if err != nil {
		return err
	}

	if patch.Description != nil {
		pkg.Description = *patch.Description
	}
	if patch.Tags != nil {
		pkg.Tags = append([]string(nil), patch.Tags...)
	}

	return s.save()
}

// AppendVersion appends a version record and moves latest_version to it.
func (s *Store) AppendVersion(repo, pkgName string, record domain.VersionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pkg, err := s.lookupPackage(repo, pkgName)
	if err != nil {
		return err
	}

	if pkg.HasVersion(record.Version) {
		err := zerr.With(domain.ErrDuplicateVersion, "package", pkgName)
		return zerr.With(err, "version", record.Version)
	}

	pkg.Versions = append(pkg.Versions, record.Clone())
	pkg.LatestVersion = record.Version

	s.registry.Stats.TotalVersions++
	s.registry.Stats.TotalArtifacts += len(record.Artifacts)

	return s.save()
}

// FindVersion retrieves a deep copy of one version record.
func (s *Store) FindVersion(repo, pkgName, version string) (*domain.VersionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pkg, err := s.lookupPackage(repo, pkgName)
	if err != nil {
		return nil, err
	}

	vi := pkg.Version(version)
	if vi < 0 {
		err := zerr.With(domain.ErrVersionNotFound, "package", pkgName)
		return nil, zerr.With(err, "version", version)
	}

	out := pkg.Versions[vi].Clone()
	return &out, nil
}

// RemoveVersion removes a version record. When the removed record was the
// latest, latest_version is recomputed from the newest remaining
// added_date. Removing a record that later records name as base_version
// leaves their chains broken; reconstruction surfaces that as
// ErrChainBroken.
func (s *Store) RemoveVersion(repo, pkgName, version string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pkg, err := s.lookupPackage(repo, pkgName)
	if err != nil {
		return err
	}

	vi := pkg.Version(version)
	if vi < 0 {
		err := zerr.With(domain.ErrVersionNotFound, "package", pkgName)
		return zerr.With(err, "version", version)
	}

	removed := pkg.Versions[vi]
	pkg.Versions = append(pkg.Versions[:vi], pkg.Versions[vi+1:]...)

	if pkg.LatestVersion == version {
		pkg.LatestVersion = newestByAddedDate(pkg.Versions)
	}

	s.registry.Stats.TotalVersions--
	s.registry.Stats.TotalArtifacts -= len(removed.Artifacts)

	return s.save()
}

// Stats returns the registry-wide aggregate counters.
func (s *Store) Stats() (domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.Stats, nil
}

// Snapshot returns a deep copy of the whole registry document.
func (s *Store) Snapshot() (*domain.Registry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.registry.Clone()
	return &snap, nil
}

// lookupPackage resolves a live package pointer. Callers hold the lock and
// must not leak the pointer past the critical section.
func (s *Store) lookupPackage(repo, name string) (*domain.Package, error) {
	ri := s.registry.Repository(repo)
	if ri < 0 {
		return nil, zerr.With(domain.ErrRepositoryNotFound, "repository", repo)
	}

	r := &s.registry.Repositories[ri]
	pi := r.Package(name)
	if pi < 0 {
		err := zerr.With(domain.ErrPackageNotFound, "repository", repo)
		return nil, zerr.With(err, "package", name)
	}

	return &r.Packages[pi], nil
}

// newestByAddedDate returns the version string of the record with the
// newest added_date, or "" when no records remain. RFC 3339 timestamps
// order lexicographically.
func newestByAddedDate(versions []domain.VersionRecord) string {
	latest := ""
	latestDate := ""
	for _, v := range versions {
		if v.AddedDate >= latestDate {
			latest = v.Version
			latestDate = v.AddedDate
		}
	}
	return latest
}
