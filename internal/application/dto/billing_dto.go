package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/invoices (factura manual).
// DueDate en formato 2006-01-02; vacío = hoy.
type CreateInvoiceRequest struct {
	ClientID  string          `json:"client_id"`
	ServiceID string          `json:"service_id"`
	Value     decimal.Decimal `json:"value"`
	DueDate   string          `json:"due_date,omitempty"`
	Status    string          `json:"status,omitempty"` // default PENDING
}

// UpdateInvoiceRequest body para PATCH /api/invoices/:id.
type UpdateInvoiceRequest struct {
	Value   *decimal.Decimal `json:"value,omitempty"`
	DueDate *string          `json:"due_date,omitempty"`
	Status  *string          `json:"status,omitempty"`
	PixCode *string          `json:"pix_code,omitempty"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	ClientName  string          `json:"client_name,omitempty"`
	ServiceID   string          `json:"service_id"`
	ServiceName string          `json:"service_name,omitempty"`
	Value       decimal.Decimal `json:"value"`
	DueDate     string          `json:"due_date"`
	Status      string          `json:"status"`
	PixCode     string          `json:"pix_code,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PixResponse cobro Pix "copia e cola" de una factura (GET /api/invoices/:id/pix).
type PixResponse struct {
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Key       string          `json:"key"`
	Payload   string          `json:"payload"` // BR Code EMV listo para QR
}
