package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// List todos los clientes, más recientes primero.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	query := `
		SELECT id, name, email, phone, company_name, notes, created_at
		FROM clients ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, persistErr("list", "client", err)
	}
	defer rows.Close()
	list := make([]*entity.Client, 0)
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CompanyName, &c.Notes, &c.CreatedAt); err != nil {
			return nil, persistErr("list", "client", fmt.Errorf("scan client: %w", err))
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("list", "client", err)
	}
	return list, nil
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, email, phone, company_name, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Email, c.Phone, c.CompanyName, c.Notes, c.CreatedAt); err != nil {
		return persistErr("create", "client", err)
	}
	return nil
}

// Update aplica solo las columnas presentes en el patch.
func (r *ClientRepo) Update(ctx context.Context, id string, patch entity.ClientPatch) error {
	query, args, ok := buildUpdate("clients", id, patch.Changes())
	if !ok {
		return nil
	}
	return execOne(ctx, r.q, "update", "client", query, args...)
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete", "client", `DELETE FROM clients WHERE id = $1`, id)
}
