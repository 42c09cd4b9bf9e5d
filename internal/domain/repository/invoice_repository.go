package repository

import (
	"context"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// InvoiceRepository puerto de persistencia para Invoice.
// List devuelve las facturas por fecha de creación descendente.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*entity.Invoice, error)
	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, id string, patch entity.InvoicePatch) error
	Delete(ctx context.Context, id string) error
}
