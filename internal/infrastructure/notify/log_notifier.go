package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/pipeday-api/internal/application/ports"
)

// LogNotifier registra el evento; es el aviso mínimo cuando no hay AMQP ni SMTP.
type LogNotifier struct {
	log zerolog.Logger
}

var _ ports.Notifier = LogNotifier{}

func NewLogNotifier(log zerolog.Logger) LogNotifier {
	return LogNotifier{log: log}
}

func (n LogNotifier) InvoiceGenerated(_ context.Context, ev ports.InvoiceEvent) error {
	n.log.Info().
		Str("invoice_id", ev.InvoiceID).
		Str("deal_id", ev.DealID).
		Str("client", ev.ClientName).
		Str("value", ev.Value.StringFixed(2)).
		Msg("fatura gerada automaticamente")
	return nil
}
