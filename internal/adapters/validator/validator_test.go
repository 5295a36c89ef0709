package validator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crackingshells/hatch-registry/internal/adapters/validator"
	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"github.com/crackingshells/hatch-registry/internal/core/ports/mocks"
	"github.com/crackingshells/hatch-registry/internal/engine/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type validatorTestMocks struct {
	store  *mocks.MockRegistryStore
	loader *mocks.MockMetadataLoader
}

func setupValidatorTest(t *testing.T) (*validator.Validator, validatorTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := validatorTestMocks{
		store:  mocks.NewMockRegistryStore(ctrl),
		loader: mocks.NewMockMetadataLoader(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	v := validator.New(m.store, m.loader, chain.NewReconstructor(logger), domain.MetadataFileName)
	return v, m
}

func emptySnapshot() *domain.Registry {
	return domain.NewRegistry()
}

func TestValidate_MissingDirectory(t *testing.T) {
	v, _ := setupValidatorTest(t)

	_, _, err := v.Validate(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, domain.ErrPackageDirInvalid)
}

func TestValidate_DirectoryIsAFile(t *testing.T) {
	v, _ := setupValidatorTest(t)

	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, _, err := v.Validate(path)
	require.ErrorIs(t, err, domain.ErrPackageDirInvalid)
}

func TestValidate_LoaderErrorPropagates(t *testing.T) {
	v, m := setupValidatorTest(t)
	dir := t.TempDir()

	m.loader.EXPECT().Load(dir, domain.MetadataFileName).
		Return(domain.PackageMetadata{}, domain.ErrMetadataParseFailed)

	_, _, err := v.Validate(dir)
	require.ErrorIs(t, err, domain.ErrMetadataParseFailed)
}

func TestValidate_Success(t *testing.T) {
	v, m := setupValidatorTest(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte(""), 0o644))

	meta := domain.PackageMetadata{
		Name:       "weather",
		Version:    "1.0.0",
		EntryPoint: "main.py",
		HatchDependencies: []domain.Dependency{
			{Name: "base", VersionConstraint: ">=1.0"},
		},
	}
	m.loader.EXPECT().Load(dir, domain.MetadataFileName).Return(meta, nil)
	m.store.EXPECT().Snapshot().Return(emptySnapshot(), nil)

	got, findings, err := v.Validate(dir)
	require.NoError(t, err)
	assert.Empty(t, findings)
	assert.Equal(t, meta, got)
}

func TestValidate_SchemaFindings(t *testing.T) {
	tests := []struct {
		name string
		meta domain.PackageMetadata
		want string
	}{
		{
			name: "missing name",
			meta: domain.PackageMetadata{Version: "1.0.0"},
			want: "metadata field 'name' is required",
		},
		{
			name: "missing version",
			meta: domain.PackageMetadata{Name: "weather"},
			want: "metadata field 'version' is required",
		},
		{
			name: "entry point not on disk",
			meta: domain.PackageMetadata{Name: "weather", Version: "1.0.0", EntryPoint: "main.py"},
			want: `entry point "main.py" not found in package directory`,
		},
		{
			name: "hatch dependency with empty name",
			meta: domain.PackageMetadata{
				Name:              "weather",
				Version:           "1.0.0",
				HatchDependencies: []domain.Dependency{{VersionConstraint: ">=1.0"}},
			},
			want: "hatch dependency with empty name",
		},
		{
			name: "python dependency with empty name",
			meta: domain.PackageMetadata{
				Name:               "weather",
				Version:            "1.0.0",
				PythonDependencies: []domain.PythonDependency{{PackageManager: "pip"}},
			},
			want: "python dependency with empty name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, m := setupValidatorTest(t)
			dir := t.TempDir()

			m.loader.EXPECT().Load(dir, domain.MetadataFileName).Return(tt.meta, nil)
			m.store.EXPECT().Snapshot().Return(emptySnapshot(), nil)

			_, findings, err := v.Validate(dir)
			require.ErrorIs(t, err, domain.ErrValidationFailed)
			assert.Contains(t, findings, tt.want)
		})
	}
}

func TestValidate_CycleWithPendingUpdate(t *testing.T) {
	v, m := setupValidatorTest(t)
	dir := t.TempDir()

	// Stored state: a depends on b, b has no dependencies. The pending
	// write flips b to depend on a, closing a cycle that only exists
	// once the write commits.
	snapshot := emptySnapshot()
	snapshot.Repositories = []domain.Repository{{
		Name: "official",
		Packages: []domain.Package{
			{
				Name:          "a",
				LatestVersion: "1.0.0",
				Versions: []domain.VersionRecord{{
					Version:                "1.0.0",
					HatchDependenciesAdded: []domain.Dependency{{Name: "b"}},
				}},
			},
			{
				Name:          "b",
				LatestVersion: "1.0.0",
				Versions:      []domain.VersionRecord{{Version: "1.0.0"}},
			},
		},
	}}

	meta := domain.PackageMetadata{
		Name:              "b",
		Version:           "2.0.0",
		HatchDependencies: []domain.Dependency{{Name: "a"}},
	}
	m.loader.EXPECT().Load(dir, domain.MetadataFileName).Return(meta, nil)
	m.store.EXPECT().Snapshot().Return(snapshot, nil)

	_, findings, err := v.Validate(dir)
	require.ErrorIs(t, err, domain.ErrValidationFailed)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], "circular")
}

func TestValidateBatch_MutualDependencyIsACycle(t *testing.T) {
	v, m := setupValidatorTest(t)

	// Neither package is stored yet, so each one's individual Validate
	// call sees an edge to an unknown name and ignores it. Overlaying
	// both pending writes closes the cycle.
	m.store.EXPECT().Snapshot().Return(emptySnapshot(), nil)

	findings, err := v.ValidateBatch([]ports.PendingUpdate{
		{Name: "a", Metadata: domain.PackageMetadata{
			Name:              "a",
			Version:           "1.0.0",
			HatchDependencies: []domain.Dependency{{Name: "b"}},
		}},
		{Name: "b", Metadata: domain.PackageMetadata{
			Name:              "b",
			Version:           "1.0.0",
			HatchDependencies: []domain.Dependency{{Name: "a"}},
		}},
	})
	require.ErrorIs(t, err, domain.ErrValidationFailed)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], "circular")
}

func TestValidateBatch_AcyclicBatchPasses(t *testing.T) {
	v, m := setupValidatorTest(t)
	m.store.EXPECT().Snapshot().Return(emptySnapshot(), nil)

	findings, err := v.ValidateBatch([]ports.PendingUpdate{
		{Name: "a", Metadata: domain.PackageMetadata{Name: "a", Version: "1.0.0"}},
		{Name: "b", Metadata: domain.PackageMetadata{
			Name:              "b",
			Version:           "1.0.0",
			HatchDependencies: []domain.Dependency{{Name: "a"}},
		}},
	})
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestValidate_DependencyOnUnknownPackageIsAllowed(t *testing.T) {
	v, m := setupValidatorTest(t)
	dir := t.TempDir()

	meta := domain.PackageMetadata{
		Name:              "weather",
		Version:           "1.0.0",
		HatchDependencies: []domain.Dependency{{Name: "not-yet-published"}},
	}
	m.loader.EXPECT().Load(dir, domain.MetadataFileName).Return(meta, nil)
	m.store.EXPECT().Snapshot().Return(emptySnapshot(), nil)

	_, findings, err := v.Validate(dir)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestValidate_BrokenStoredChainFailsHard(t *testing.T) {
	v, m := setupValidatorTest(t)
	dir := t.TempDir()

	snapshot := emptySnapshot()
	snapshot.Repositories = []domain.Repository{{
		Name: "official",
		Packages: []domain.Package{{
			Name:          "a",
			LatestVersion: "1.1.0",
			Versions: []domain.VersionRecord{{
				Version:     "1.1.0",
				BaseVersion: "1.0.0",
			}},
		}},
	}}

	meta := domain.PackageMetadata{Name: "weather", Version: "1.0.0"}
	m.loader.EXPECT().Load(dir, domain.MetadataFileName).Return(meta, nil)
	m.store.EXPECT().Snapshot().Return(snapshot, nil)

	_, _, err := v.Validate(dir)
	require.ErrorIs(t, err, domain.ErrChainBroken)
}
