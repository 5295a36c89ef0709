package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/crackingshells/hatch-registry/cmd/hatch-registry/commands"
	"github.com/crackingshells/hatch-registry/internal/build"
	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	addRepositoryFunc    func(name, url string) error
	removeRepositoryFunc func(name string) error
	indexRepositoryFunc  func(ctx context.Context, repo string, dirs []string) error
	addPackageFunc       func(repo, dir string) error
	addVersionFunc       func(repo, dir string) (*domain.VersionRecord, error)
	removePackageFunc    func(repo, name string) error
	removeVersionFunc    func(repo, pkg, version string) error
	updatePackageFunc    func(repo, name string, patch domain.PackagePatch) error
	showFunc             func(repo, pkg, version string) (domain.PackageMetadata, error)
	statsFunc            func() (domain.Stats, error)
}

func (m *mockApp) AddRepository(name, url string) error {
	if m.addRepositoryFunc != nil {
		return m.addRepositoryFunc(name, url)
	}
	return nil
}

func (m *mockApp) RemoveRepository(name string) error {
	if m.removeRepositoryFunc != nil {
		return m.removeRepositoryFunc(name)
	}
	return nil
}

func (m *mockApp) IndexRepository(ctx context.Context, repo string, dirs []string) error {
	if m.indexRepositoryFunc != nil {
		return m.indexRepositoryFunc(ctx, repo, dirs)
	}
	return nil
}

func (m *mockApp) AddPackage(repo, dir string) error {
	if m.addPackageFunc != nil {
		return m.addPackageFunc(repo, dir)
	}
	return nil
}

func (m *mockApp) AddVersion(repo, dir string) (*domain.VersionRecord, error) {
	if m.addVersionFunc != nil {
		return m.addVersionFunc(repo, dir)
	}
	return &domain.VersionRecord{}, nil
}

func (m *mockApp) RemovePackage(repo, name string) error {
	if m.removePackageFunc != nil {
		return m.removePackageFunc(repo, name)
	}
	return nil
}

func (m *mockApp) RemoveVersion(repo, pkg, version string) error {
	if m.removeVersionFunc != nil {
		return m.removeVersionFunc(repo, pkg, version)
	}
	return nil
}

func (m *mockApp) UpdatePackage(repo, name string, patch domain.PackagePatch) error {
	if m.updatePackageFunc != nil {
		return m.updatePackageFunc(repo, name, patch)
	}
	return nil
}

func (m *mockApp) Show(repo, pkg, version string) (domain.PackageMetadata, error) {
	if m.showFunc != nil {
		return m.showFunc(repo, pkg, version)
	}
	return domain.PackageMetadata{}, nil
}

func (m *mockApp) Stats() (domain.Stats, error) {
	if m.statsFunc != nil {
		return m.statsFunc()
	}
	return domain.Stats{}, nil
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(mock)
	out := new(bytes.Buffer)
	cli.SetArgs(args)
	cli.SetOutput(out, out)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_RepoAdd(t *testing.T) {
	t.Run("wires name and url", func(t *testing.T) {
		var gotName, gotURL string
		mock := &mockApp{addRepositoryFunc: func(name, url string) error {
			gotName, gotURL = name, url
			return nil
		}}

		out, err := execute(t, mock, "repo", "add", "official", "--url", "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "official", gotName)
		assert.Equal(t, "https://example.com", gotURL)
		assert.Contains(t, out, `Added repository "official"`)
	})

	t.Run("propagates errors", func(t *testing.T) {
		mock := &mockApp{addRepositoryFunc: func(_, _ string) error {
			return errors.New("simulated error")
		}}

		_, err := execute(t, mock, "repo", "add", "official")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_RepoRemove(t *testing.T) {
	var gotName string
	mock := &mockApp{removeRepositoryFunc: func(name string) error {
		gotName = name
		return nil
	}}

	_, err := execute(t, mock, "repo", "remove", "official")
	require.NoError(t, err)
	assert.Equal(t, "official", gotName)
}

func TestCommands_RepoIndex(t *testing.T) {
	var gotRepo string
	var gotDirs []string
	mock := &mockApp{indexRepositoryFunc: func(_ context.Context, repo string, dirs []string) error {
		gotRepo = repo
		gotDirs = dirs
		return nil
	}}

	out, err := execute(t, mock, "repo", "index", "official", "./a", "./b")
	require.NoError(t, err)
	assert.Equal(t, "official", gotRepo)
	assert.Equal(t, []string{"./a", "./b"}, gotDirs)
	assert.Contains(t, out, "Indexed 2 package(s)")
}

func TestCommands_PackageAdd(t *testing.T) {
	var gotRepo, gotDir string
	mock := &mockApp{addPackageFunc: func(repo, dir string) error {
		gotRepo, gotDir = repo, dir
		return nil
	}}

	_, err := execute(t, mock, "package", "add", "official", "./weather")
	require.NoError(t, err)
	assert.Equal(t, "official", gotRepo)
	assert.Equal(t, "./weather", gotDir)
}

func TestCommands_PackageAddAlias(t *testing.T) {
	called := false
	mock := &mockApp{addPackageFunc: func(_, _ string) error {
		called = true
		return nil
	}}

	_, err := execute(t, mock, "pkg", "add", "official", "./weather")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_PackageRemove(t *testing.T) {
	t.Run("whole package", func(t *testing.T) {
		var gotName string
		mock := &mockApp{
			removePackageFunc: func(_, name string) error {
				gotName = name
				return nil
			},
			removeVersionFunc: func(_, _, _ string) error {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "package", "remove", "official", "weather")
		require.NoError(t, err)
		assert.Equal(t, "weather", gotName)
	})

	t.Run("single version", func(t *testing.T) {
		var gotVersion string
		mock := &mockApp{
			removePackageFunc: func(_, _ string) error {
				panic("should not be called")
			},
			removeVersionFunc: func(_, _, version string) error {
				gotVersion = version
				return nil
			},
		}

		_, err := execute(t, mock, "package", "remove", "official", "weather", "--version", "1.0.0")
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", gotVersion)
	})
}

func TestCommands_VersionAdd(t *testing.T) {
	t.Run("prints the new version", func(t *testing.T) {
		var gotRepo, gotDir string
		mock := &mockApp{addVersionFunc: func(repo, dir string) (*domain.VersionRecord, error) {
			gotRepo, gotDir = repo, dir
			return &domain.VersionRecord{Version: "1.1.0"}, nil
		}}

		out, err := execute(t, mock, "version", "add", "official", "./weather")
		require.NoError(t, err)
		assert.Equal(t, "official", gotRepo)
		assert.Equal(t, "./weather", gotDir)
		assert.Contains(t, out, `Added version 1.1.0 to "official"`)
	})

	t.Run("propagates errors", func(t *testing.T) {
		mock := &mockApp{addVersionFunc: func(_, _ string) (*domain.VersionRecord, error) {
			return nil, errors.New("simulated error")
		}}

		_, err := execute(t, mock, "version", "add", "official", "./weather")
		require.Error(t, err)
	})
}

func TestCommands_VersionRemove(t *testing.T) {
	var gotPkg, gotVersion string
	mock := &mockApp{removeVersionFunc: func(_, pkg, version string) error {
		gotPkg, gotVersion = pkg, version
		return nil
	}}

	_, err := execute(t, mock, "version", "remove", "official", "weather", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "weather", gotPkg)
	assert.Equal(t, "1.0.0", gotVersion)
}

func TestCommands_PackageUpdate(t *testing.T) {
	t.Run("description only", func(t *testing.T) {
		var gotPatch domain.PackagePatch
		mock := &mockApp{updatePackageFunc: func(_, _ string, patch domain.PackagePatch) error {
			gotPatch = patch
			return nil
		}}

		_, err := execute(t, mock, "package", "update", "official", "weather", "--description", "New text")
		require.NoError(t, err)
		require.NotNil(t, gotPatch.Description)
		assert.Equal(t, "New text", *gotPatch.Description)
		assert.Nil(t, gotPatch.Tags)
	})

	t.Run("tags only", func(t *testing.T) {
		var gotPatch domain.PackagePatch
		mock := &mockApp{updatePackageFunc: func(_, _ string, patch domain.PackagePatch) error {
			gotPatch = patch
			return nil
		}}

		_, err := execute(t, mock, "package", "update", "official", "weather", "--tags", "mcp,forecast")
		require.NoError(t, err)
		assert.Nil(t, gotPatch.Description)
		assert.Equal(t, []string{"mcp", "forecast"}, gotPatch.Tags)
	})
}

func TestCommands_Show(t *testing.T) {
	mock := &mockApp{showFunc: func(repo, pkg, version string) (domain.PackageMetadata, error) {
		assert.Equal(t, "official", repo)
		assert.Equal(t, "weather", pkg)
		assert.Equal(t, "1.0.0", version)
		return domain.PackageMetadata{Name: "weather", Version: "1.0.0"}, nil
	}}

	out, err := execute(t, mock, "show", "official", "weather", "1.0.0")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "weather"`)
	assert.Contains(t, out, `"version": "1.0.0"`)
}

func TestCommands_ShowDefaultsToLatest(t *testing.T) {
	var gotVersion string
	mock := &mockApp{showFunc: func(_, _, version string) (domain.PackageMetadata, error) {
		gotVersion = version
		return domain.PackageMetadata{}, nil
	}}

	_, err := execute(t, mock, "show", "official", "weather")
	require.NoError(t, err)
	assert.Empty(t, gotVersion)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "hatch-registry version "+build.Version)
}

func TestCommands_Stats(t *testing.T) {
	mock := &mockApp{statsFunc: func() (domain.Stats, error) {
		return domain.Stats{TotalPackages: 2, TotalVersions: 5, TotalArtifacts: 9}, nil
	}}

	out, err := execute(t, mock, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Packages:  2")
	assert.Contains(t, out, "Versions:  5")
	assert.Contains(t, out, "Artifacts: 9")
}
