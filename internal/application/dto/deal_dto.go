package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDealRequest body para POST /api/deals.
// Si Value no viene se usa el valor base del servicio.
type CreateDealRequest struct {
	ClientID    string           `json:"client_id"`
	ServiceID   string           `json:"service_id"`
	Value       *decimal.Decimal `json:"value,omitempty"`
	Temperature string           `json:"temperature,omitempty"` // HOT|WARM|COLD (default WARM)
	Details     string           `json:"details,omitempty"`
}

// UpdateDealRequest body para PATCH /api/deals/:id (edición de ficha, no de etapa).
type UpdateDealRequest struct {
	ClientID      *string          `json:"client_id,omitempty"`
	ServiceID     *string          `json:"service_id,omitempty"`
	Value         *decimal.Decimal `json:"value,omitempty"`
	Temperature   *string          `json:"temperature,omitempty"`
	Details       *string          `json:"details,omitempty"`
	PaymentStatus *string          `json:"payment_status,omitempty"`
}

// StageRequest body para POST /api/deals/:id/decision y /move.
type StageRequest struct {
	Stage string `json:"stage"`
}

// DealResponse negocio con los nombres de cliente y servicio ya resueltos.
type DealResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	ClientName    string          `json:"client_name,omitempty"`
	ServiceID     string          `json:"service_id"`
	ServiceName   string          `json:"service_name,omitempty"`
	Value         decimal.Decimal `json:"value"`
	Stage         string          `json:"stage"`
	StageLabel    string          `json:"stage_label"`
	Temperature   string          `json:"temperature,omitempty"`
	Details       string          `json:"details,omitempty"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransitionResponse resultado de avanzar, decidir o mover un negocio.
//
// Con DecisionRequired=true no hubo cambios: el negocio está en negociación y hay que
// elegir una de Options. Invoice viene cuando la transición generó la factura.
type TransitionResponse struct {
	Deal             DealResponse     `json:"deal"`
	DecisionRequired bool             `json:"decision_required"`
	Options          []string         `json:"options,omitempty"`
	Invoice          *InvoiceResponse `json:"invoice,omitempty"`
}

// BoardColumnResponse columna del tablero kanban.
type BoardColumnResponse struct {
	Stage string          `json:"stage"`
	Label string          `json:"label"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
	Deals []DealResponse  `json:"deals"`
}

// TransitionErrorResponse el negocio quedó cerrado pero la factura no se pudo crear.
type TransitionErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Deal    DealResponse `json:"deal"`
}
