package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/application/ports"
	"github.com/jhoicas/pipeday-api/internal/application/workspace"
	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/funnel"
)

// decisionOptions destinos válidos de la compuerta de negociación.
var decisionOptions = []string{string(entity.StageClosed), string(entity.StageLost)}

// Advance avance guiado ("Avançar Etapa"). Desde NEGOTIATION no muta nada y devuelve
// DecisionRequired; desde CLOSED o LOST devuelve domain.ErrTerminalStage.
func (uc *UseCase) Advance(ctx context.Context, id string) (*dto.TransitionResponse, error) {
	deal, err := uc.current(ctx, id)
	if err != nil {
		return nil, err
	}
	step, err := funnel.Next(deal.Stage)
	if err != nil {
		return nil, err
	}
	if step.NeedsDecision {
		return &dto.TransitionResponse{
			Deal:             toDealResponse(uc.ws.Snapshot(), deal),
			DecisionRequired: true,
			Options:          decisionOptions,
		}, nil
	}
	return uc.transition(ctx, *deal, step.Target)
}

// Decide resuelve la compuerta de negociación con CLOSED o LOST. Solo hay decisión
// pendiente si el negocio está en NEGOTIATION; los saltos libres van por Move.
func (uc *UseCase) Decide(ctx context.Context, id string, choice entity.Stage) (*dto.TransitionResponse, error) {
	if err := funnel.ValidateDecision(choice); err != nil {
		return nil, err
	}
	deal, err := uc.current(ctx, id)
	if err != nil {
		return nil, err
	}
	if deal.Stage != entity.StageNegotiation {
		return nil, domain.NewValidationError("stage", "el negocio no tiene una decisión pendiente")
	}
	return uc.transition(ctx, *deal, choice)
}

// Move arrastre directo en el tablero a cualquier etapa. Se persiste aunque la etapa
// no cambie.
func (uc *UseCase) Move(ctx context.Context, id string, target entity.Stage) (*dto.TransitionResponse, error) {
	if err := funnel.ValidateTarget(target); err != nil {
		return nil, err
	}
	deal, err := uc.current(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.transition(ctx, *deal, target)
}

// current lee el negocio del almacén y no de la caché: la etapa de partida decide si
// se factura, y la caché puede haber quedado atrasada tras un refresco fallido.
func (uc *UseCase) current(ctx context.Context, id string) (*entity.Deal, error) {
	deal, err := uc.deals.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			uc.log.Error().Err(err).Str("deal_id", id).Msg("pipeline: no se pudo leer el negocio")
		}
		return nil, err
	}
	return deal, nil
}

// transition único punto que persiste un cambio de etapa. Si el negocio entra en
// CLOSED desde otra etapa crea la factura pendiente con vencimiento hoy.
//
// Con *domain.InvoiceGenerationError la respuesta también viene: el negocio ya quedó
// cerrado y no se revierte.
func (uc *UseCase) transition(ctx context.Context, deal entity.Deal, target entity.Stage) (*dto.TransitionResponse, error) {
	from := deal.Stage
	patch := entity.StagePatch(target)
	if err := uc.deals.Update(ctx, deal.ID, patch); err != nil {
		uc.log.Error().Err(err).
			Str("deal_id", deal.ID).
			Str("from", string(from)).
			Str("to", string(target)).
			Msg("pipeline: no se pudo cambiar la etapa")
		return nil, err
	}
	uc.metrics.StageChanged(from, target)
	moved := patch.Apply(deal)

	snap := uc.ws.Snapshot()
	resp := &dto.TransitionResponse{Deal: toDealResponse(snap, &moved)}

	if !funnel.EntersClosed(from, target) {
		uc.refresh(ctx)
		return resp, nil
	}

	inv, err := uc.generateInvoice(ctx, moved)
	if err != nil {
		uc.metrics.InvoiceGenerationFailed()
		uc.log.Error().Err(err).Str("deal_id", deal.ID).Msg("pipeline: negocio cerrado sin factura")
		uc.refresh(ctx)
		return resp, &domain.InvoiceGenerationError{DealID: deal.ID, Err: err}
	}
	uc.metrics.InvoiceGenerated()

	invResp := toInvoiceResponse(snap, inv)
	resp.Invoice = &invResp
	uc.notify(ctx, inv, resp)
	uc.refresh(ctx)
	return resp, nil
}

func (uc *UseCase) generateInvoice(ctx context.Context, deal entity.Deal) (*entity.Invoice, error) {
	now := uc.now()
	inv := &entity.Invoice{
		ID:        uuid.New().String(),
		ClientID:  deal.ClientID,
		ServiceID: deal.ServiceID,
		Value:     deal.Value,
		DueDate:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Status:    entity.InvoicePending,
		CreatedAt: now,
	}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// notify avisa la factura automática. Un fallo solo se registra.
func (uc *UseCase) notify(ctx context.Context, inv *entity.Invoice, resp *dto.TransitionResponse) {
	if uc.notifier == nil {
		return
	}
	ev := ports.InvoiceEvent{
		InvoiceID:   inv.ID,
		DealID:      resp.Deal.ID,
		ClientID:    inv.ClientID,
		ClientName:  resp.Deal.ClientName,
		ServiceName: resp.Deal.ServiceName,
		Value:       inv.Value,
		DueDate:     inv.DueDate,
		OccurredAt:  inv.CreatedAt,
	}
	if err := uc.notifier.InvoiceGenerated(ctx, ev); err != nil {
		uc.log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("pipeline: aviso de factura no enviado")
	}
}

func toInvoiceResponse(snap workspace.Snapshot, inv *entity.Invoice) dto.InvoiceResponse {
	return dto.FromInvoice(inv, snap.ClientName(inv.ClientID), snap.ServiceName(inv.ServiceID))
}
