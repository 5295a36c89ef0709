package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/crackingshells/hatch-registry/internal/app"
	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"github.com/crackingshells/hatch-registry/internal/core/ports/mocks"
	"github.com/crackingshells/hatch-registry/internal/engine/chain"
	"github.com/crackingshells/hatch-registry/internal/engine/writer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mainTestMocks struct {
	store     *mocks.MockRegistryStore
	validator *mocks.MockPackageValidator
}

func testComponents(t *testing.T) (*app.Components, mainTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mainTestMocks{
		store:     mocks.NewMockRegistryStore(ctrl),
		validator: mocks.NewMockPackageValidator(ctrl),
	}
	scanner := mocks.NewMockArtifactScanner(ctrl)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)).AnyTimes()

	reconstructor := chain.NewReconstructor(logger)
	w := writer.New(m.store, reconstructor, clock, logger)
	a := app.New(m.store, m.validator, w, reconstructor, scanner, logger)

	return &app.Components{App: a, Logger: logger}, m
}

func provideComponents(c *app.Components) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return c, func() {}, nil
	}
}

func TestRun_Success(t *testing.T) {
	components, m := testComponents(t)
	m.store.EXPECT().Stats().Return(domain.Stats{TotalPackages: 1}, nil)

	out := new(bytes.Buffer)
	code := run(context.Background(), []string{"stats"}, out, io.Discard, provideComponents(components))

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Packages:  1")
}

func TestRun_CommandFailure(t *testing.T) {
	components, m := testComponents(t)
	m.store.EXPECT().Stats().Return(domain.Stats{}, errors.New("simulated error"))

	code := run(context.Background(), []string{"stats"}, io.Discard, io.Discard, provideComponents(components))
	assert.Equal(t, 1, code)
}

func TestRun_ValidationFailureExitCode(t *testing.T) {
	components, m := testComponents(t)
	m.validator.EXPECT().Validate("./bad").
		Return(domain.PackageMetadata{}, []string{"metadata field 'name' is required"}, domain.ErrValidationFailed)

	code := run(context.Background(), []string{"package", "add", "official", "./bad"},
		io.Discard, io.Discard, provideComponents(components))
	assert.Equal(t, 2, code)
}

func TestRun_ProviderFailure(t *testing.T) {
	failing := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("wiring failed")
	}

	stderr := new(bytes.Buffer)
	code := run(context.Background(), []string{"stats"}, io.Discard, stderr, failing)

	assert.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "Error: wiring failed")
}
