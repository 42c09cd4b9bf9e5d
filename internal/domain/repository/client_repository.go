package repository

import (
	"context"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// ClientRepository puerto de persistencia para Client.
// List devuelve los clientes por fecha de creación descendente.
type ClientRepository interface {
	List(ctx context.Context) ([]*entity.Client, error)
	Create(ctx context.Context, client *entity.Client) error
	Update(ctx context.Context, id string, patch entity.ClientPatch) error
	Delete(ctx context.Context, id string) error
}
