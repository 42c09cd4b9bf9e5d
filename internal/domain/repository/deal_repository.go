package repository

import (
	"context"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// DealRepository puerto de persistencia para Deal.
// List devuelve los negocios por fecha de creación descendente.
type DealRepository interface {
	List(ctx context.Context) ([]*entity.Deal, error)
	// Get lee el negocio directamente del almacén; domain.ErrNotFound si no existe.
	Get(ctx context.Context, id string) (*entity.Deal, error)
	Create(ctx context.Context, deal *entity.Deal) error
	// Update devuelve domain.ErrNotFound si ninguna fila coincide.
	Update(ctx context.Context, id string, patch entity.DealPatch) error
	// Delete elimina sin condiciones ni cascada sobre facturas.
	Delete(ctx context.Context, id string) error
}
