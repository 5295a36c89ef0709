package fs

import (
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactScanner = (*Scanner)(nil)

// Scanner implements ports.ArtifactScanner: it walks a package directory
// and records every regular file as an artifact with an xxhash content
// digest. Results are sorted by path for deterministic records.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns the directory's files as artifacts, paths relative to dir.
func (s *Scanner) Scan(dir string) ([]domain.Artifact, error) {
	var artifacts []domain.Artifact

	err := filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		digest, err := s.digestFile(path)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		artifacts = append(artifacts, domain.Artifact{Path: rel, Digest: digest})
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to scan package directory"), "dir", dir)
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Path < artifacts[j].Path
	})

	return artifacts, nil
}

// digestFile computes the xxhash-64 digest of a file's content.
func (s *Scanner) digestFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from walking the caller's directory
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
