package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceEvent aviso de "fatura gerada automaticamente" al cerrar un negocio.
type InvoiceEvent struct {
	InvoiceID   string          `json:"invoice_id"`
	DealID      string          `json:"deal_id"`
	ClientID    string          `json:"client_id"`
	ClientName  string          `json:"client_name"`
	ServiceName string          `json:"service_name"`
	Value       decimal.Decimal `json:"value"`
	DueDate     time.Time       `json:"due_date"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// Notifier puerto de salida para avisar que se generó una factura automática.
// Los adaptadores (AMQP, e-mail, log) no deben bloquear más allá del ctx recibido;
// un fallo aquí nunca revierte la transición del negocio.
type Notifier interface {
	InvoiceGenerated(ctx context.Context, ev InvoiceEvent) error
}
