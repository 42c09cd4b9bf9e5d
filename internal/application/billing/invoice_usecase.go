package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/application/workspace"
	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/repository"
	"github.com/jhoicas/pipeday-api/internal/domain/stats"
)

// InvoiceUseCase casos de uso de facturas manuales y cambios de estado.
// Las facturas automáticas las crea el embudo (paquete pipeline).
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
	ws   workspace.Cache
	log  zerolog.Logger
	now  func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, ws workspace.Cache, log zerolog.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, ws: ws, log: log, now: time.Now}
}

// List facturas filtradas por id o cliente y por estado (ALL = todas).
func (uc *InvoiceUseCase) List(ctx context.Context, q dto.ListQuery) dto.ListResponse[dto.InvoiceResponse] {
	return dto.Paginate(uc.filtered(q), q)
}

func (uc *InvoiceUseCase) filtered(q dto.ListQuery) []dto.InvoiceResponse {
	snap := uc.ws.Snapshot()
	found := stats.FilterInvoices(q.Q, q.Status, snap.Invoices, snap.Clients)
	out := make([]dto.InvoiceResponse, 0, len(found))
	for _, inv := range found {
		out = append(out, toInvoiceResponse(snap, inv))
	}
	return out
}

// Create registra una factura manual. Cliente y servicio son obligatorios.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" {
		return nil, domain.NewValidationError("client_id", "selecciona un cliente")
	}
	if in.ServiceID == "" {
		return nil, domain.NewValidationError("service_id", "selecciona un servicio")
	}
	if in.Value.IsNegative() {
		return nil, domain.NewValidationError("value", "el valor no puede ser negativo")
	}
	status := entity.InvoiceStatus(in.Status)
	if status == "" {
		status = entity.InvoicePending
	}
	if !status.Valid() {
		return nil, domain.NewValidationError("status", "estado inválido")
	}
	now := uc.now()
	due := today(now)
	if in.DueDate != "" {
		d, err := time.ParseInLocation(dto.DateLayout, in.DueDate, now.Location())
		if err != nil {
			return nil, domain.NewValidationError("due_date", "fecha inválida, use AAAA-MM-DD")
		}
		due = d
	}

	inv := &entity.Invoice{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		ServiceID: in.ServiceID,
		Value:     in.Value,
		DueDate:   due,
		Status:    status,
		CreatedAt: now,
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		uc.log.Error().Err(err).Str("client_id", in.ClientID).Msg("billing: no se pudo crear la factura")
		return nil, err
	}
	uc.refresh(ctx)
	resp := toInvoiceResponse(uc.ws.Snapshot(), inv)
	return &resp, nil
}

// Update aplica solo los campos presentes.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	patch := entity.InvoicePatch{Value: in.Value, PixCode: in.PixCode}
	if in.Value != nil && in.Value.IsNegative() {
		return nil, domain.NewValidationError("value", "el valor no puede ser negativo")
	}
	if in.Status != nil {
		s := entity.InvoiceStatus(*in.Status)
		if !s.Valid() {
			return nil, domain.NewValidationError("status", "estado inválido")
		}
		patch.Status = &s
	}
	if in.DueDate != nil {
		d, err := time.ParseInLocation(dto.DateLayout, *in.DueDate, uc.now().Location())
		if err != nil {
			return nil, domain.NewValidationError("due_date", "fecha inválida, use AAAA-MM-DD")
		}
		patch.DueDate = &d
	}
	return uc.apply(ctx, id, patch)
}

// MarkPaid marca la factura como PAID ("Dar baixa").
func (uc *InvoiceUseCase) MarkPaid(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	paid := entity.InvoicePaid
	return uc.apply(ctx, id, entity.InvoicePatch{Status: &paid})
}

// Delete elimina la factura.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("invoice_id", id).Msg("billing: no se pudo eliminar la factura")
		return err
	}
	uc.refresh(ctx)
	return nil
}

func (uc *InvoiceUseCase) apply(ctx context.Context, id string, patch entity.InvoicePatch) (*dto.InvoiceResponse, error) {
	snap := uc.ws.Snapshot()
	current, ok := snap.Invoice(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Update(ctx, id, patch); err != nil {
		uc.log.Error().Err(err).Str("invoice_id", id).Msg("billing: no se pudo actualizar la factura")
		return nil, err
	}
	uc.refresh(ctx)
	updated := patch.Apply(*current)
	resp := toInvoiceResponse(snap, &updated)
	return &resp, nil
}

func (uc *InvoiceUseCase) refresh(ctx context.Context) {
	if err := uc.ws.Refresh(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("billing: caché desactualizada tras la mutación")
	}
}

func toInvoiceResponse(snap workspace.Snapshot, inv *entity.Invoice) dto.InvoiceResponse {
	return dto.FromInvoice(inv, snap.ClientName(inv.ClientID), snap.ServiceName(inv.ServiceID))
}

func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
