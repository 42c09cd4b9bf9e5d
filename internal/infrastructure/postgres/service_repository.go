package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación de ServiceRepository.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// List catálogo ordenado por nombre.
func (r *ServiceRepo) List(ctx context.Context) ([]*entity.Service, error) {
	query := `SELECT id, name, base_value, billing_type, notes FROM services ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, persistErr("list", "service", err)
	}
	defer rows.Close()
	list := make([]*entity.Service, 0)
	for rows.Next() {
		var s entity.Service
		var billing string
		if err := rows.Scan(&s.ID, &s.Name, &s.BaseValue, &billing, &s.Notes); err != nil {
			return nil, persistErr("list", "service", fmt.Errorf("scan service: %w", err))
		}
		s.BillingType = entity.BillingType(billing)
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("list", "service", err)
	}
	return list, nil
}

// Create persiste un nuevo servicio.
func (r *ServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	query := `
		INSERT INTO services (id, name, base_value, billing_type, notes)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, s.ID, s.Name, s.BaseValue, string(s.BillingType), s.Notes); err != nil {
		return persistErr("create", "service", err)
	}
	return nil
}

// Update aplica solo las columnas presentes en el patch.
func (r *ServiceRepo) Update(ctx context.Context, id string, patch entity.ServicePatch) error {
	query, args, ok := buildUpdate("services", id, patch.Changes())
	if !ok {
		return nil
	}
	return execOne(ctx, r.q, "update", "service", query, args...)
}

// Delete elimina un servicio por ID.
func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete", "service", `DELETE FROM services WHERE id = $1`, id)
}
