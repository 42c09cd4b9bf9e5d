package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de cobro de una factura.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceExpired   InvoiceStatus = "EXPIRED"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// Valid indica si el estado pertenece al catálogo.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoicePending, InvoicePaid, InvoiceExpired, InvoiceCancelled:
		return true
	}
	return false
}

// Invoice cobro asociado a un cliente y un servicio. Se crea manualmente o como
// efecto de un negocio que entra en CLOSED.
type Invoice struct {
	ID        string
	ClientID  string
	ServiceID string
	Value     decimal.Decimal // nunca negativo
	DueDate   time.Time       // solo fecha
	Status    InvoiceStatus
	PixCode   string // opcional
	CreatedAt time.Time
}

// InvoicePatch actualización parcial de una factura.
type InvoicePatch struct {
	Value   *decimal.Decimal
	DueDate *time.Time
	Status  *InvoiceStatus
	PixCode *string
}

// Changes devuelve las columnas a actualizar.
func (p InvoicePatch) Changes() []FieldChange {
	var out []FieldChange
	if p.Value != nil {
		out = append(out, FieldChange{Column: "value", Value: *p.Value})
	}
	if p.DueDate != nil {
		out = append(out, FieldChange{Column: "due_date", Value: *p.DueDate})
	}
	if p.Status != nil {
		out = append(out, FieldChange{Column: "status", Value: string(*p.Status)})
	}
	if p.PixCode != nil {
		out = append(out, FieldChange{Column: "pix_code", Value: *p.PixCode})
	}
	return out
}

// Apply aplica el patch sobre una copia en memoria.
func (p InvoicePatch) Apply(i Invoice) Invoice {
	if p.Value != nil {
		i.Value = *p.Value
	}
	if p.DueDate != nil {
		i.DueDate = *p.DueDate
	}
	if p.Status != nil {
		i.Status = *p.Status
	}
	if p.PixCode != nil {
		i.PixCode = *p.PixCode
	}
	return i
}
