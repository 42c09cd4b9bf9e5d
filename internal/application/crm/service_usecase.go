package crm

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/application/workspace"
	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/repository"
	"github.com/jhoicas/pipeday-api/internal/domain/stats"
)

// ServiceUseCase casos de uso del catálogo de servicios.
type ServiceUseCase struct {
	repo repository.ServiceRepository
	ws   workspace.Cache
	log  zerolog.Logger
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository, ws workspace.Cache, log zerolog.Logger) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, ws: ws, log: log}
}

// List servicios filtrados por nombre u observaciones.
func (uc *ServiceUseCase) List(ctx context.Context, q dto.ListQuery) dto.ListResponse[dto.ServiceResponse] {
	found := stats.FilterServices(q.Q, uc.ws.Snapshot().Services)
	out := make([]dto.ServiceResponse, 0, len(found))
	for _, s := range found {
		out = append(out, dto.FromService(s))
	}
	return dto.Paginate(out, q)
}

// Create registra un servicio. Sin tipo de cobro se asume UNIQUE.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "el nombre es obligatorio")
	}
	if in.BaseValue.IsNegative() {
		return nil, domain.NewValidationError("base_value", "el valor base no puede ser negativo")
	}
	billing := entity.BillingType(in.BillingType)
	if billing == "" {
		billing = entity.BillingUnique
	}
	if !billing.Valid() {
		return nil, domain.NewValidationError("billing_type", "tipo de cobro inválido")
	}
	svc := &entity.Service{
		ID:          uuid.New().String(),
		Name:        name,
		BaseValue:   in.BaseValue,
		BillingType: billing,
		Notes:       in.Notes,
	}
	if err := uc.repo.Create(ctx, svc); err != nil {
		uc.log.Error().Err(err).Msg("crm: no se pudo crear el servicio")
		return nil, err
	}
	refresh(ctx, uc.ws, uc.log)
	resp := dto.FromService(svc)
	return &resp, nil
}

// Update aplica solo los campos presentes.
func (uc *ServiceUseCase) Update(ctx context.Context, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	patch := entity.ServicePatch{Name: in.Name, BaseValue: in.BaseValue, Notes: in.Notes}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.NewValidationError("name", "el nombre es obligatorio")
	}
	if in.BaseValue != nil && in.BaseValue.IsNegative() {
		return nil, domain.NewValidationError("base_value", "el valor base no puede ser negativo")
	}
	if in.BillingType != nil {
		bt := entity.BillingType(*in.BillingType)
		if !bt.Valid() {
			return nil, domain.NewValidationError("billing_type", "tipo de cobro inválido")
		}
		patch.BillingType = &bt
	}
	current, ok := uc.ws.Snapshot().Service(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Update(ctx, id, patch); err != nil {
		uc.log.Error().Err(err).Str("service_id", id).Msg("crm: no se pudo actualizar el servicio")
		return nil, err
	}
	refresh(ctx, uc.ws, uc.log)
	updated := patch.Apply(*current)
	resp := dto.FromService(&updated)
	return &resp, nil
}

// Delete elimina el servicio del catálogo.
func (uc *ServiceUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("service_id", id).Msg("crm: no se pudo eliminar el servicio")
		return err
	}
	refresh(ctx, uc.ws, uc.log)
	return nil
}
