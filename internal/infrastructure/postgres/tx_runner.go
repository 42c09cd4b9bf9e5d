package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pipeday-api/internal/domain/repository"
)

// Repositories repos atados a una misma transacción.
type Repositories struct {
	Clients  repository.ClientRepository
	Services repository.ServiceRepository
	Deals    repository.DealRepository
	Invoices repository.InvoiceRepository
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Lo usa la carga de datos de ejemplo, que debe quedar completa o no quedar.
func (r *TxRunner) Run(ctx context.Context, fn func(repos Repositories) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := Repositories{
		Clients:  NewClientRepository(tx),
		Services: NewServiceRepository(tx),
		Deals:    NewDealRepository(tx),
		Invoices: NewInvoiceRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
