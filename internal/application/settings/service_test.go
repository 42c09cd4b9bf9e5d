package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/application/settings"
	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/repository/mocks"
)

func TestLoad_EmptyStoreUsesDefaults(t *testing.T) {
	repo := new(mocks.SettingsRepository)
	repo.On("Load", mock.Anything).Return(nil, nil)
	svc := settings.NewService(repo, entity.DefaultSettings(), zerolog.Nop())

	require.NoError(t, svc.Load(context.Background()))

	got := svc.Get(context.Background())
	assert.Equal(t, "Admin", got.Profile.Name)
	assert.Equal(t, "light", got.Theme)
	assert.True(t, svc.NotifyPayments())
}

func TestLoad_StoredValuesWin(t *testing.T) {
	stored := entity.DefaultSettings()
	stored.Theme = entity.ThemeDark
	stored.Profile.PixKey = "chave-aleatoria"
	repo := new(mocks.SettingsRepository)
	repo.On("Load", mock.Anything).Return(&stored, nil)
	svc := settings.NewService(repo, entity.DefaultSettings(), zerolog.Nop())

	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, entity.ThemeDark, svc.Current().Theme)
	assert.Equal(t, "chave-aleatoria", svc.Current().Profile.PixKey)
}

func TestLoad_StoreError(t *testing.T) {
	repo := new(mocks.SettingsRepository)
	repo.On("Load", mock.Anything).Return(nil, errors.New("redis caído"))
	svc := settings.NewService(repo, entity.DefaultSettings(), zerolog.Nop())

	assert.Error(t, svc.Load(context.Background()))
}

func TestUpdate_PartialSections(t *testing.T) {
	repo := new(mocks.SettingsRepository)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(s entity.Settings) bool {
		return s.Theme == entity.ThemeDark && s.Profile.Name == "Admin" && !s.Notifications.Payments
	})).Return(nil).Once()
	svc := settings.NewService(repo, entity.DefaultSettings(), zerolog.Nop())

	dark := "dark"
	out, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{
		Theme:         &dark,
		Notifications: &dto.NotificationsDTO{Leads: true},
	})

	require.NoError(t, err)
	assert.Equal(t, "dark", out.Theme)
	assert.False(t, svc.NotifyPayments())
	repo.AssertExpectations(t)
}

func TestUpdate_InvalidThemeDoesNotSave(t *testing.T) {
	repo := new(mocks.SettingsRepository)
	svc := settings.NewService(repo, entity.DefaultSettings(), zerolog.Nop())

	blue := "blue"
	_, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{Theme: &blue})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	assert.Equal(t, entity.ThemeLight, svc.Current().Theme)
}

func TestUpdate_SaveFailureKeepsCurrent(t *testing.T) {
	repo := new(mocks.SettingsRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("redis caído"))
	svc := settings.NewService(repo, entity.DefaultSettings(), zerolog.Nop())

	_, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{
		Profile: &dto.ProfileDTO{Name: "Carla", PixKey: "carla@pix.com"},
	})

	assert.Error(t, err)
	assert.Equal(t, "Admin", svc.Current().Profile.Name)
}
