// Package pipeline casos de uso del embudo de ventas: alta, edición y baja de
// negocios, avance guiado con compuerta de decisión, arrastre en el tablero y la
// factura que se genera al entrar en CLOSED.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/application/ports"
	"github.com/jhoicas/pipeday-api/internal/application/workspace"
	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/funnel"
	"github.com/jhoicas/pipeday-api/internal/domain/repository"
	"github.com/jhoicas/pipeday-api/internal/domain/stats"
)

// UseCase embudo de ventas.
type UseCase struct {
	deals    repository.DealRepository
	invoices repository.InvoiceRepository
	ws       workspace.Cache
	notifier ports.Notifier
	metrics  ports.FunnelMetrics
	log      zerolog.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso. notifier y metrics pueden ser nil.
func NewUseCase(
	deals repository.DealRepository,
	invoices repository.InvoiceRepository,
	ws workspace.Cache,
	notifier ports.Notifier,
	metrics ports.FunnelMetrics,
	log zerolog.Logger,
) *UseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &UseCase{
		deals:    deals,
		invoices: invoices,
		ws:       ws,
		notifier: notifier,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// List negocios filtrados por cliente o servicio y paginados.
func (uc *UseCase) List(ctx context.Context, q dto.ListQuery) dto.ListResponse[dto.DealResponse] {
	snap := uc.ws.Snapshot()
	found := stats.FilterDeals(q.Q, snap.Deals, snap.Clients, snap.Services)
	out := make([]dto.DealResponse, 0, len(found))
	for _, d := range found {
		out = append(out, toDealResponse(snap, d))
	}
	return dto.Paginate(out, q)
}

// Board columnas del tablero kanban con conteo y total por etapa.
func (uc *UseCase) Board(ctx context.Context) []dto.BoardColumnResponse {
	snap := uc.ws.Snapshot()
	cols := funnel.Board(snap.Deals)
	out := make([]dto.BoardColumnResponse, 0, len(cols))
	for _, c := range cols {
		deals := make([]dto.DealResponse, 0, len(c.Deals))
		for _, d := range c.Deals {
			deals = append(deals, toDealResponse(snap, d))
		}
		out = append(out, dto.BoardColumnResponse{
			Stage: string(c.Stage),
			Label: c.Label,
			Count: c.Count,
			Total: c.Total,
			Deals: deals,
		})
	}
	return out
}

// Create registra un negocio nuevo en NEW_CONTACT. Cliente y servicio son obligatorios;
// sin valor explícito se toma el valor base del servicio.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateDealRequest) (*dto.DealResponse, error) {
	if in.ClientID == "" {
		return nil, domain.NewValidationError("client_id", "selecciona un cliente")
	}
	if in.ServiceID == "" {
		return nil, domain.NewValidationError("service_id", "selecciona un servicio")
	}
	temp := entity.Temperature(in.Temperature)
	if temp == "" {
		temp = entity.TemperatureWarm
	}
	if !temp.Valid() {
		return nil, domain.NewValidationError("temperature", "temperatura inválida")
	}

	snap := uc.ws.Snapshot()
	value := in.Value
	if value == nil {
		svc, ok := snap.Service(in.ServiceID)
		if !ok {
			return nil, domain.NewValidationError("service_id", "servicio no encontrado")
		}
		value = &svc.BaseValue
	}
	if value.IsNegative() {
		return nil, domain.NewValidationError("value", "el valor no puede ser negativo")
	}

	deal := &entity.Deal{
		ID:            uuid.New().String(),
		ClientID:      in.ClientID,
		ServiceID:     in.ServiceID,
		Value:         *value,
		Stage:         entity.StageNewContact,
		Temperature:   temp,
		Details:       in.Details,
		PaymentStatus: entity.PaymentPending,
		CreatedAt:     uc.now(),
	}
	if err := uc.deals.Create(ctx, deal); err != nil {
		uc.log.Error().Err(err).Str("client_id", deal.ClientID).Msg("pipeline: no se pudo crear el negocio")
		return nil, err
	}
	uc.refresh(ctx)

	resp := toDealResponse(uc.ws.Snapshot(), deal)
	return &resp, nil
}

// Update edita la ficha del negocio. La etapa no se toca aquí: para eso están
// Advance, Decide y Move, que aplican la regla de facturación.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateDealRequest) (*dto.DealResponse, error) {
	patch := entity.DealPatch{
		ClientID:  in.ClientID,
		ServiceID: in.ServiceID,
		Value:     in.Value,
		Details:   in.Details,
	}
	if in.ClientID != nil && *in.ClientID == "" {
		return nil, domain.NewValidationError("client_id", "selecciona un cliente")
	}
	if in.ServiceID != nil && *in.ServiceID == "" {
		return nil, domain.NewValidationError("service_id", "selecciona un servicio")
	}
	if in.Value != nil && in.Value.IsNegative() {
		return nil, domain.NewValidationError("value", "el valor no puede ser negativo")
	}
	if in.Temperature != nil {
		t := entity.Temperature(*in.Temperature)
		if !t.Valid() {
			return nil, domain.NewValidationError("temperature", "temperatura inválida")
		}
		patch.Temperature = &t
	}
	if in.PaymentStatus != nil {
		p := entity.PaymentStatus(*in.PaymentStatus)
		if !p.Valid() {
			return nil, domain.NewValidationError("payment_status", "estado de pago inválido")
		}
		patch.PaymentStatus = &p
	}

	current, err := uc.current(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.deals.Update(ctx, id, patch); err != nil {
		uc.log.Error().Err(err).Str("deal_id", id).Msg("pipeline: no se pudo actualizar el negocio")
		return nil, err
	}
	uc.refresh(ctx)

	updated := patch.Apply(*current)
	resp := toDealResponse(uc.ws.Snapshot(), &updated)
	return &resp, nil
}

// Delete elimina el negocio sin condiciones; sus facturas quedan intactas.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if err := uc.deals.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("deal_id", id).Msg("pipeline: no se pudo eliminar el negocio")
		return err
	}
	uc.refresh(ctx)
	return nil
}

// refresh relee el almacén. La mutación ya quedó persistida, así que un fallo aquí
// solo se registra: la caché se pondrá al día en el siguiente refresco.
func (uc *UseCase) refresh(ctx context.Context) {
	if err := uc.ws.Refresh(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("pipeline: caché desactualizada tras la mutación")
	}
}

func toDealResponse(snap workspace.Snapshot, d *entity.Deal) dto.DealResponse {
	return dto.FromDeal(d, snap.ClientName(d.ClientID), snap.ServiceName(d.ServiceID))
}
