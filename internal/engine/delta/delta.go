// Package delta computes the difference between two same-shaped metadata
// collections: keyed dependency lists and the fixed-key compatibility map.
// All functions are pure and deterministic; output slices are sorted by key
// so results never depend on map iteration order.
package delta

import (
	"slices"
	"strings"

	"github.com/crackingshells/hatch-registry/internal/core/domain"
)

// DependencyDelta is the added/removed/modified difference between two
// hatch dependency lists. Added and Modified carry full new records;
// Removed carries bare names only, since a removal only needs to identify
// what was removed.
type DependencyDelta struct {
	Added    []domain.Dependency
	Removed  []string
	Modified []domain.Dependency
}

// IsZero reports whether the delta is empty in all three categories.
func (d DependencyDelta) IsZero() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Modified) == 0
}

// PythonDependencyDelta is the added/removed/modified difference between
// two Python dependency lists.
type PythonDependencyDelta struct {
	Added    []domain.PythonDependency
	Removed  []string
	Modified []domain.PythonDependency
}

// IsZero reports whether the delta is empty in all three categories.
func (d PythonDependencyDelta) IsZero() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Modified) == 0
}

// Dependencies diffs two hatch dependency lists keyed by name. A change to
// version_constraint marks an entry as modified. Duplicate names within one
// input are resolved last-write-wins.
func Dependencies(old, updated []domain.Dependency) DependencyDelta {
	added, removed, modified := diff(old, updated,
		func(d domain.Dependency) string { return d.Name },
		func(o, n domain.Dependency) bool {
			return o.VersionConstraint != n.VersionConstraint
		})
	return DependencyDelta{Added: added, Removed: removed, Modified: modified}
}

// PythonDependencies diffs two Python dependency lists keyed by name. A
// change to version_constraint or package_manager marks an entry as
// modified. Duplicate names within one input are resolved last-write-wins.
func PythonDependencies(old, updated []domain.PythonDependency) PythonDependencyDelta {
	added, removed, modified := diff(old, updated,
		func(d domain.PythonDependency) string { return d.Name },
		func(o, n domain.PythonDependency) bool {
			return o.VersionConstraint != n.VersionConstraint ||
				o.PackageManager != n.PackageManager
		})
	return PythonDependencyDelta{Added: added, Removed: removed, Modified: modified}
}

// Compatibility diffs two compatibility maps over their fixed key set.
// Changed keys carry the new value; a constraint reverting to "no
// constraint" is a change to the empty string, not an omission. Returns nil
// when nothing changed.
func Compatibility(old, updated domain.Compatibility) *domain.CompatibilityChange {
	var change domain.CompatibilityChange
	changed := false

	if old.Hatchling != updated.Hatchling {
		v := updated.Hatchling
		change.Hatchling = &v
		changed = true
	}
	if old.Python != updated.Python {
		v := updated.Python
		change.Python = &v
		changed = true
	}

	if !changed {
		return nil
	}
	return &change
}

// diff is the generic core shared by both dependency kinds: records present
// only in updated are added, keys present only in old are removed, records
// present in both with a watched-field difference are modified and returned
// as the full new record (reconstruction replaces wholesale, it never
// merges fields).
func diff[T any](old, updated []T, key func(T) string, changed func(o, n T) bool) (added []T, removed []string, modified []T) {
	oldByKey := indexByKey(old, key)
	newByKey := indexByKey(updated, key)

	for k, n := range newByKey {
		o, exists := oldByKey[k]
		switch {
		case !exists:
			added = append(added, n)
		case changed(o, n):
			modified = append(modified, n)
		}
	}

	for k := range oldByKey {
		if _, exists := newByKey[k]; !exists {
			removed = append(removed, k)
		}
	}

	slices.SortFunc(added, func(a, b T) int { return strings.Compare(key(a), key(b)) })
	slices.SortFunc(modified, func(a, b T) int { return strings.Compare(key(a), key(b)) })
	slices.Sort(removed)

	return added, removed, modified
}

// indexByKey builds a key lookup table. Later entries win on duplicate keys.
func indexByKey[T any](items []T, key func(T) string) map[string]T {
	byKey := make(map[string]T, len(items))
	for _, item := range items {
		byKey[key(item)] = item
	}
	return byKey
}
