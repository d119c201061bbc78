package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bedrock-fem/bedrock/internal/adapters/config"
	"github.com/bedrock-fem/bedrock/internal/app"
	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports/mocks"
)

func newApp(t *testing.T, store *mocks.MockStateStore) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	return app.New(&config.Profile{}, nil, nil, nil, nil, nil, store, log)
}

func TestStatus_EmptyStorePrintsHint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStateStore(ctrl)
	store.EXPECT().All().Return(nil, nil)

	var out bytes.Buffer
	require.NoError(t, newApp(t, store).Status(&out))
	assert.Contains(t, out.String(), "bedrock install")
}

func TestStatus_ListsTrackedPackages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStateStore(ctrl)
	store.EXPECT().All().Return([]domain.InstallInfo{
		{
			Package:   "fiat",
			Branch:    "main",
			Revision:  "0123456789abcdef0123456789abcdef01234567",
			Timestamp: time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
		},
		{Package: "strata", Branch: "release"},
	}, nil)

	var out bytes.Buffer
	require.NoError(t, newApp(t, store).Status(&out))

	text := out.String()
	assert.Contains(t, text, "fiat")
	assert.Contains(t, text, "0123456789ab") // revision shortened
	assert.NotContains(t, text, "0123456789abcd")
	assert.Contains(t, text, "strata")
}

func TestInstall_RejectsInvalidConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newApp(t, mocks.NewMockStateStore(ctrl))

	cfg := &domain.Config{Kind: domain.InstallVenv, StrataDir: "/opt/strata"}
	err := a.Install(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStrataDirConflict))
}

func TestInstall_ProfileFillsUnsetFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	profile := &config.Profile{Venv: "profile-env"}
	a := app.New(profile, nil, nil, nil, nil, nil, mocks.NewMockStateStore(ctrl), log)

	// Validation failure keeps the run from reaching the nil engines; the
	// profile must already have been folded in by then.
	cfg := &domain.Config{Kind: "bogus"}
	err := a.Install(context.Background(), cfg)
	require.Error(t, err)
	assert.Equal(t, "profile-env", cfg.VenvName)
}
