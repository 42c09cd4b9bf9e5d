// Package crm casos de uso del cadastro: clientes y catálogo de servicios.
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

// ClientUseCase casos de uso para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
	ws   workspace.Cache
	log  zerolog.Logger
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, ws workspace.Cache, log zerolog.Logger) *ClientUseCase {
	return &ClientUseCase{repo: repo, ws: ws, log: log}
}

// List clientes filtrados por nombre, email, teléfono u observaciones.
func (uc *ClientUseCase) List(ctx context.Context, q dto.ListQuery) dto.ListResponse[dto.ClientResponse] {
	found := stats.FilterClients(q.Q, uc.ws.Snapshot().Clients)
	out := make([]dto.ClientResponse, 0, len(found))
	for _, c := range found {
		out = append(out, dto.FromClient(c))
	}
	return dto.Paginate(out, q)
}

// Create registra un cliente; el nombre es obligatorio.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "el nombre es obligatorio")
	}
	client := &entity.Client{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		CompanyName: strings.TrimSpace(in.CompanyName),
		Notes:       in.Notes,
		CreatedAt:   nowFunc(),
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		uc.log.Error().Err(err).Msg("crm: no se pudo crear el cliente")
		return nil, err
	}
	refresh(ctx, uc.ws, uc.log)
	resp := dto.FromClient(client)
	return &resp, nil
}

// Update aplica solo los campos presentes.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.NewValidationError("name", "el nombre es obligatorio")
	}
	current, ok := uc.ws.Snapshot().Client(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	patch := entity.ClientPatch{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		CompanyName: in.CompanyName,
		Notes:       in.Notes,
	}
	if err := uc.repo.Update(ctx, id, patch); err != nil {
		uc.log.Error().Err(err).Str("client_id", id).Msg("crm: no se pudo actualizar el cliente")
		return nil, err
	}
	refresh(ctx, uc.ws, uc.log)
	updated := patch.Apply(*current)
	resp := dto.FromClient(&updated)
	return &resp, nil
}

// Delete elimina el cliente. Negocios y facturas asociados no se tocan.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("client_id", id).Msg("crm: no se pudo eliminar el cliente")
		return err
	}
	refresh(ctx, uc.ws, uc.log)
	return nil
}
