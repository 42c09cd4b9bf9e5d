// Package funnel reglas puras del embudo de ventas:
//
//	NEW_CONTACT → PROPOSAL_SENT → NEGOTIATION → {CLOSED | LOST}
//
// Desde NEGOTIATION el avance guiado no elige destino: exige una decisión explícita
// (ganado o perdido). El arrastre directo en el tablero puede llevar a cualquier etapa.
package funnel

import (
	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// Step resultado de pedir el siguiente paso guiado.
type Step struct {
	Target        entity.Stage // etapa destino cuando NeedsDecision es false
	NeedsDecision bool         // NEGOTIATION: hay que elegir CLOSED o LOST
}

// Next calcula el avance guiado desde la etapa actual. No muta nada.
func Next(current entity.Stage) (Step, error) {
	switch current {
	case entity.StageNewContact:
		return Step{Target: entity.StageProposalSent}, nil
	case entity.StageProposalSent:
		return Step{Target: entity.StageNegotiation}, nil
	case entity.StageNegotiation:
		return Step{NeedsDecision: true}, nil
	case entity.StageClosed, entity.StageLost:
		return Step{}, domain.ErrTerminalStage
	}
	return Step{}, domain.NewValidationError("stage", "etapa desconocida: "+string(current))
}

// ValidateDecision solo CLOSED y LOST resuelven la compuerta de decisión.
func ValidateDecision(choice entity.Stage) error {
	if choice == entity.StageClosed || choice == entity.StageLost {
		return nil
	}
	return domain.NewValidationError("stage", "la decisión debe ser CLOSED o LOST")
}

// ValidateTarget destino de un arrastre directo.
func ValidateTarget(target entity.Stage) error {
	if !target.Valid() {
		return domain.NewValidationError("stage", "etapa desconocida: "+string(target))
	}
	return nil
}

// EntersClosed indica si la transición genera factura: solo al entrar en CLOSED
// desde una etapa distinta. Soltar un negocio cerrado en su misma columna no factura.
func EntersClosed(from, to entity.Stage) bool {
	return to == entity.StageClosed && from != entity.StageClosed
}
