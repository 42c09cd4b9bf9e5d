// Package settings configuración del operador (perfil, workspace, avisos y tema).
// Se carga una vez al arrancar y se mantiene en memoria; cada cambio se persiste.
package settings

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/repository"
)

// Service lectura y escritura tipadas de la configuración.
type Service struct {
	repo     repository.SettingsRepository
	defaults entity.Settings
	log      zerolog.Logger

	mu      sync.RWMutex
	current entity.Settings
}

// NewService construye el servicio con los valores por defecto indicados.
func NewService(repo repository.SettingsRepository, defaults entity.Settings, log zerolog.Logger) *Service {
	return &Service{repo: repo, defaults: defaults, current: defaults, log: log}
}

// Load lee la configuración persistida; si no hay nada guardado quedan los valores
// por defecto.
func (s *Service) Load(ctx context.Context) error {
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("settings: cargar: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if stored == nil {
		s.current = s.defaults
		s.log.Info().Msg("settings: sin configuración guardada, usando valores por defecto")
		return nil
	}
	s.current = *stored
	return nil
}

// Current copia de la configuración vigente.
func (s *Service) Current() entity.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Get configuración vigente como DTO.
func (s *Service) Get(ctx context.Context) dto.SettingsDTO {
	return dto.FromSettings(s.Current())
}

// NotifyPayments aviso de facturas/pagos habilitado.
func (s *Service) NotifyPayments() bool {
	return s.Current().Notifications.Payments
}

// Update reemplaza las secciones presentes y persiste el resultado.
func (s *Service) Update(ctx context.Context, in dto.UpdateSettingsRequest) (*dto.SettingsDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	if in.Profile != nil {
		if strings.TrimSpace(in.Profile.Name) == "" {
			return nil, domain.NewValidationError("profile.name", "el nombre es obligatorio")
		}
		next.Profile = entity.Profile{
			Name:   strings.TrimSpace(in.Profile.Name),
			Email:  strings.TrimSpace(in.Profile.Email),
			PixKey: strings.TrimSpace(in.Profile.PixKey),
		}
	}
	if in.Workspace != nil {
		next.Workspace = entity.Workspace{
			Name:   strings.TrimSpace(in.Workspace.Name),
			Domain: strings.TrimSpace(in.Workspace.Domain),
		}
	}
	if in.Notifications != nil {
		next.Notifications = entity.Notifications{
			Payments: in.Notifications.Payments,
			Leads:    in.Notifications.Leads,
			Expired:  in.Notifications.Expired,
			Reports:  in.Notifications.Reports,
		}
	}
	if in.Theme != nil {
		theme := entity.Theme(*in.Theme)
		if !theme.Valid() {
			return nil, domain.NewValidationError("theme", "tema inválido, use light o dark")
		}
		next.Theme = theme
	}

	if err := s.repo.Save(ctx, next); err != nil {
		s.log.Error().Err(err).Msg("settings: no se pudo guardar")
		return nil, err
	}
	s.current = next
	out := dto.FromSettings(next)
	return &out, nil
}
