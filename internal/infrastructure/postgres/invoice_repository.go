package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// List todas las facturas, más recientes primero.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	query := `
		SELECT id, client_id, service_id, value, due_date, status, pix_code, created_at
		FROM invoices ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, persistErr("list", "invoice", err)
	}
	defer rows.Close()
	list := make([]*entity.Invoice, 0)
	for rows.Next() {
		var inv entity.Invoice
		var status string
		if err := rows.Scan(&inv.ID, &inv.ClientID, &inv.ServiceID, &inv.Value, &inv.DueDate,
			&status, &inv.PixCode, &inv.CreatedAt); err != nil {
			return nil, persistErr("list", "invoice", fmt.Errorf("scan invoice: %w", err))
		}
		inv.Status = entity.InvoiceStatus(status)
		list = append(list, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("list", "invoice", err)
	}
	return list, nil
}

// Create persiste una factura (manual o generada por un negocio cerrado).
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, client_id, service_id, value, due_date, status, pix_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.ClientID, inv.ServiceID, inv.Value, inv.DueDate, string(inv.Status), inv.PixCode, inv.CreatedAt,
	)
	if err != nil {
		return persistErr("create", "invoice", err)
	}
	return nil
}

// Update aplica solo las columnas presentes en el patch.
func (r *InvoiceRepo) Update(ctx context.Context, id string, patch entity.InvoicePatch) error {
	query, args, ok := buildUpdate("invoices", id, patch.Changes())
	if !ok {
		return nil
	}
	return execOne(ctx, r.q, "update", "invoice", query, args...)
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete", "invoice", `DELETE FROM invoices WHERE id = $1`, id)
}
