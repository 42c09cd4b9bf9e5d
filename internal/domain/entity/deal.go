package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stage posición del negocio en el embudo de ventas.
type Stage string

// Etapas del embudo, en el orden de las columnas del tablero.
const (
	StageNewContact   Stage = "NEW_CONTACT"
	StageProposalSent Stage = "PROPOSAL_SENT"
	StageNegotiation  Stage = "NEGOTIATION"
	StageClosed       Stage = "CLOSED"
	StageLost         Stage = "LOST"
)

// Stages lista completa de etapas (orden del tablero).
var Stages = []Stage{StageNewContact, StageProposalSent, StageNegotiation, StageClosed, StageLost}

var stageLabels = map[Stage]string{
	StageNewContact:   "Novo Contato",
	StageProposalSent: "Proposta Enviada",
	StageNegotiation:  "Em Negociação",
	StageClosed:       "Fechado",
	StageLost:         "Perdido",
}

// Valid indica si la etapa es una de las cinco definidas.
func (s Stage) Valid() bool {
	_, ok := stageLabels[s]
	return ok
}

// Terminal CLOSED y LOST no avanzan por el flujo guiado.
func (s Stage) Terminal() bool {
	return s == StageClosed || s == StageLost
}

// Label etiqueta de la columna en el tablero.
func (s Stage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}

// Temperature temperatura del lead (opcional).
type Temperature string

const (
	TemperatureHot  Temperature = "HOT"
	TemperatureWarm Temperature = "WARM"
	TemperatureCold Temperature = "COLD"
)

// Valid acepta vacío (sin temperatura) o uno de los tres valores.
func (t Temperature) Valid() bool {
	switch t {
	case "", TemperatureHot, TemperatureWarm, TemperatureCold:
		return true
	}
	return false
}

// PaymentStatus estado de pago del negocio.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentExpired PaymentStatus = "EXPIRED"
)

// Valid indica si el estado pertenece al catálogo.
func (p PaymentStatus) Valid() bool {
	return p == PaymentPending || p == PaymentPaid || p == PaymentExpired
}

// Deal oportunidad de venta: une un Client con un Service.
type Deal struct {
	ID            string
	ClientID      string
	ServiceID     string
	Value         decimal.Decimal
	Stage         Stage
	Temperature   Temperature
	Details       string
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
}

// DealPatch actualización parcial de un negocio.
type DealPatch struct {
	ClientID      *string
	ServiceID     *string
	Value         *decimal.Decimal
	Stage         *Stage
	Temperature   *Temperature
	Details       *string
	PaymentStatus *PaymentStatus
}

// StagePatch patch que solo cambia la etapa.
func StagePatch(s Stage) DealPatch {
	return DealPatch{Stage: &s}
}

// Changes devuelve las columnas a actualizar.
func (p DealPatch) Changes() []FieldChange {
	var out []FieldChange
	if p.ClientID != nil {
		out = append(out, FieldChange{Column: "client_id", Value: *p.ClientID})
	}
	if p.ServiceID != nil {
		out = append(out, FieldChange{Column: "service_id", Value: *p.ServiceID})
	}
	if p.Value != nil {
		out = append(out, FieldChange{Column: "value", Value: *p.Value})
	}
	if p.Stage != nil {
		out = append(out, FieldChange{Column: "stage", Value: string(*p.Stage)})
	}
	if p.Temperature != nil {
		out = append(out, FieldChange{Column: "temperature", Value: string(*p.Temperature)})
	}
	if p.Details != nil {
		out = append(out, FieldChange{Column: "details", Value: *p.Details})
	}
	if p.PaymentStatus != nil {
		out = append(out, FieldChange{Column: "payment_status", Value: string(*p.PaymentStatus)})
	}
	return out
}

// Apply aplica el patch sobre una copia en memoria.
func (p DealPatch) Apply(d Deal) Deal {
	if p.ClientID != nil {
		d.ClientID = *p.ClientID
	}
	if p.ServiceID != nil {
		d.ServiceID = *p.ServiceID
	}
	if p.Value != nil {
		d.Value = *p.Value
	}
	if p.Stage != nil {
		d.Stage = *p.Stage
	}
	if p.Temperature != nil {
		d.Temperature = *p.Temperature
	}
	if p.Details != nil {
		d.Details = *p.Details
	}
	if p.PaymentStatus != nil {
		d.PaymentStatus = *p.PaymentStatus
	}
	return d
}
