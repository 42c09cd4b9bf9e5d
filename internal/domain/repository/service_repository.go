package repository

import (
	"context"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// ServiceRepository puerto de persistencia para Service.
// List devuelve el catálogo ordenado por nombre ascendente.
type ServiceRepository interface {
	List(ctx context.Context) ([]*entity.Service, error)
	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, id string, patch entity.ServicePatch) error
	Delete(ctx context.Context, id string) error
}
