// Package notify contiene los adaptadores de ports.Notifier: log, AMQP y e-mail.
package notify

import (
	"context"
	"errors"

	"github.com/jhoicas/pipeday-api/internal/application/ports"
)

// Multi reparte el evento a todos los notificadores; un fallo no impide los siguientes.
type Multi []ports.Notifier

var _ ports.Notifier = Multi(nil)

func (m Multi) InvoiceGenerated(ctx context.Context, ev ports.InvoiceEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.InvoiceGenerated(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
