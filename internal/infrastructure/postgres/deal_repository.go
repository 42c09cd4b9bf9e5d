package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/repository"
)

var _ repository.DealRepository = (*DealRepo)(nil)

// DealRepo implementación de DealRepository.
type DealRepo struct {
	q Querier
}

// NewDealRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDealRepository(q Querier) *DealRepo {
	return &DealRepo{q: q}
}

// List todos los negocios, más recientes primero.
func (r *DealRepo) List(ctx context.Context) ([]*entity.Deal, error) {
	query := `
		SELECT id, client_id, service_id, value, stage, temperature, details, payment_status, created_at
		FROM deals ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, persistErr("list", "deal", err)
	}
	defer rows.Close()
	list := make([]*entity.Deal, 0)
	for rows.Next() {
		var d entity.Deal
		var stage, temperature, payment string
		if err := rows.Scan(&d.ID, &d.ClientID, &d.ServiceID, &d.Value, &stage, &temperature,
			&d.Details, &payment, &d.CreatedAt); err != nil {
			return nil, persistErr("list", "deal", fmt.Errorf("scan deal: %w", err))
		}
		d.Stage = entity.Stage(stage)
		d.Temperature = entity.Temperature(temperature)
		d.PaymentStatus = entity.PaymentStatus(payment)
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("list", "deal", err)
	}
	return list, nil
}

// Get lee un negocio por id sin pasar por la caché.
func (r *DealRepo) Get(ctx context.Context, id string) (*entity.Deal, error) {
	query := `
		SELECT id, client_id, service_id, value, stage, temperature, details, payment_status, created_at
		FROM deals WHERE id = $1`
	var d entity.Deal
	var stage, temperature, payment string
	err := r.q.QueryRow(ctx, query, id).Scan(&d.ID, &d.ClientID, &d.ServiceID, &d.Value, &stage,
		&temperature, &d.Details, &payment, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, persistErr("get", "deal", err)
	}
	d.Stage = entity.Stage(stage)
	d.Temperature = entity.Temperature(temperature)
	d.PaymentStatus = entity.PaymentStatus(payment)
	return &d, nil
}

// Create persiste un nuevo negocio.
func (r *DealRepo) Create(ctx context.Context, d *entity.Deal) error {
	query := `
		INSERT INTO deals (id, client_id, service_id, value, stage, temperature, details, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.ClientID, d.ServiceID, d.Value, string(d.Stage), string(d.Temperature),
		d.Details, string(d.PaymentStatus), d.CreatedAt,
	)
	if err != nil {
		return persistErr("create", "deal", err)
	}
	return nil
}

// Update aplica solo las columnas presentes en el patch (incluida la etapa).
func (r *DealRepo) Update(ctx context.Context, id string, patch entity.DealPatch) error {
	query, args, ok := buildUpdate("deals", id, patch.Changes())
	if !ok {
		return nil
	}
	return execOne(ctx, r.q, "update", "deal", query, args...)
}

// Delete elimina el negocio; las facturas generadas no se tocan.
func (r *DealRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete", "deal", `DELETE FROM deals WHERE id = $1`, id)
}
