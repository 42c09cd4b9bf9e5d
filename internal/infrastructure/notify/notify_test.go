package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/pipeday-api/internal/application/ports"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// ── Dobles ────────────────────────────────────────────────────────────────────

type mockChannel struct{ mock.Mock }

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *mockChannel) Close() error { return m.Called().Error(0) }

type mockSender struct{ mock.Mock }

func (m *mockSender) DialAndSend(msgs ...*gomail.Message) error {
	return m.Called(msgs).Error(0)
}

type staticSettings entity.Settings

func (s staticSettings) Current() entity.Settings { return entity.Settings(s) }

type stubNotifier struct {
	calls int
	err   error
}

func (s *stubNotifier) InvoiceGenerated(context.Context, ports.InvoiceEvent) error {
	s.calls++
	return s.err
}

func sampleEvent() ports.InvoiceEvent {
	return ports.InvoiceEvent{
		InvoiceID:   "inv-1",
		DealID:      "deal-1",
		ClientID:    "c-1",
		ClientName:  "João Silva",
		ServiceName: "Consultoria",
		Value:       decimal.NewFromInt(1500),
		DueDate:     time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		OccurredAt:  time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC),
	}
}

// ── AMQP ──────────────────────────────────────────────────────────────────────

func TestAMQPPublisher_PublicaJSONPersistente(t *testing.T) {
	ch := new(mockChannel)
	ch.On("PublishWithContext", mock.Anything, "pipeday.billing", RoutingInvoiceGenerated, false, false,
		mock.MatchedBy(func(msg amqp.Publishing) bool {
			var ev ports.InvoiceEvent
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				return false
			}
			return msg.ContentType == "application/json" &&
				msg.DeliveryMode == amqp.Persistent &&
				msg.MessageId == "inv-1" &&
				ev.DealID == "deal-1"
		})).Return(nil).Once()

	p := NewAMQPPublisher(ch, "pipeday.billing")
	require.NoError(t, p.InvoiceGenerated(context.Background(), sampleEvent()))
	ch.AssertExpectations(t)
}

func TestAMQPPublisher_ErrorDelBroker(t *testing.T) {
	ch := new(mockChannel)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(amqp.ErrClosed)

	p := NewAMQPPublisher(ch, "pipeday.billing")
	err := p.InvoiceGenerated(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

// ── E-mail ────────────────────────────────────────────────────────────────────

func TestMailer_EnviaAlOperador(t *testing.T) {
	settings := entity.DefaultSettings()
	settings.Profile.Email = "ana@pipeday.com"

	var sent *gomail.Message
	s := new(mockSender)
	s.On("DialAndSend", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).([]*gomail.Message)[0]
	}).Return(nil).Once()

	m := newMailer(s, "no-reply@pipeday.com", staticSettings(settings))
	require.NoError(t, m.InvoiceGenerated(context.Background(), sampleEvent()))

	require.NotNil(t, sent)
	assert.Equal(t, []string{"ana@pipeday.com"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"Fatura gerada: João Silva"}, sent.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := sent.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1500.00")
}

func TestMailer_PagosDesactivados_NoEnvia(t *testing.T) {
	settings := entity.DefaultSettings()
	settings.Notifications.Payments = false

	s := new(mockSender)
	m := newMailer(s, "no-reply@pipeday.com", staticSettings(settings))

	require.NoError(t, m.InvoiceGenerated(context.Background(), sampleEvent()))
	s.AssertNotCalled(t, "DialAndSend", mock.Anything)
}

func TestMailer_ErrorSMTP(t *testing.T) {
	s := new(mockSender)
	s.On("DialAndSend", mock.Anything).Return(errors.New("connection refused"))

	m := newMailer(s, "no-reply@pipeday.com", staticSettings(entity.DefaultSettings()))
	err := m.InvoiceGenerated(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mail: enviar SMTP")
}

// ── Log y Multi ───────────────────────────────────────────────────────────────

func TestLogNotifier_RegistraEvento(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	require.NoError(t, n.InvoiceGenerated(context.Background(), sampleEvent()))
	assert.Contains(t, buf.String(), `"invoice_id":"inv-1"`)
	assert.Contains(t, buf.String(), "fatura gerada automaticamente")
}

func TestMulti_LlamaATodosYUneErrores(t *testing.T) {
	boom := errors.New("boom")
	a := &stubNotifier{err: boom}
	b := &stubNotifier{}

	err := Multi{a, b}.InvoiceGenerated(context.Background(), sampleEvent())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestMulti_Vacio(t *testing.T) {
	assert.NoError(t, Multi(nil).InvoiceGenerated(context.Background(), sampleEvent()))
}
