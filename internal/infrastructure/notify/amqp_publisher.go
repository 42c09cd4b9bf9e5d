package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/pipeday-api/internal/application/ports"
)

// RoutingInvoiceGenerated routing key de las facturas generadas al cerrar un negocio.
const RoutingInvoiceGenerated = "invoice.generated"

// channel subconjunto de *amqp.Channel que usa el publicador.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publica InvoiceEvent como JSON persistente en un exchange topic.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
}

var _ ports.Notifier = (*AMQPPublisher)(nil)

// DialAMQP abre conexión y canal y declara el exchange (durable, topic).
func DialAMQP(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp: conectar: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp: abrir canal: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp: declarar exchange %s: %w", exchange, err)
	}
	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// NewAMQPPublisher construye el publicador sobre un canal ya abierto.
func NewAMQPPublisher(ch channel, exchange string) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, exchange: exchange}
}

// InvoiceGenerated publica el evento con el id de la factura como MessageId.
func (p *AMQPPublisher) InvoiceGenerated(ctx context.Context, ev ports.InvoiceEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("amqp: serializar evento: %w", err)
	}
	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		RoutingInvoiceGenerated,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    ev.InvoiceID,
			Timestamp:    ev.OccurredAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("amqp: publicar %s: %w", RoutingInvoiceGenerated, err)
	}
	return nil
}

// Close cierra canal y conexión.
func (p *AMQPPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
