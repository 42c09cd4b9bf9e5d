package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/pipeday-api/internal/application/ports"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/pkg/config"
)

// sender subconjunto de *gomail.Dialer.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// settingsReader configuración vigente del operador (destinatario y preferencias).
type settingsReader interface {
	Current() entity.Settings
}

var invoiceMailTmpl = template.Must(template.New("invoice").Parse(`<p>Olá, {{.Operator}}!</p>
<p>Fatura gerada automaticamente para <strong>{{.ClientName}}</strong>.</p>
<ul>
  <li>Serviço: {{.ServiceName}}</li>
  <li>Valor: R$ {{.Value}}</li>
  <li>Vencimento: {{.DueDate}}</li>
</ul>
<p>{{.Workspace}}</p>`))

type invoiceMailData struct {
	Operator    string
	ClientName  string
	ServiceName string
	Value       string
	DueDate     string
	Workspace   string
}

// Mailer avisa por e-mail al operador. Respeta Notifications.Payments: si está
// desactivado no envía nada y no es un error.
type Mailer struct {
	smtp     sender
	from     string
	settings settingsReader
}

var _ ports.Notifier = (*Mailer)(nil)

// NewMailer construye el mailer con un dialer SMTP de gomail.
func NewMailer(cfg config.SMTPConfig, settings settingsReader) *Mailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return newMailer(d, cfg.From, settings)
}

func newMailer(s sender, from string, settings settingsReader) *Mailer {
	return &Mailer{smtp: s, from: from, settings: settings}
}

func (m *Mailer) InvoiceGenerated(_ context.Context, ev ports.InvoiceEvent) error {
	st := m.settings.Current()
	if !st.Notifications.Payments || st.Profile.Email == "" {
		return nil
	}

	var body bytes.Buffer
	err := invoiceMailTmpl.Execute(&body, invoiceMailData{
		Operator:    st.Profile.Name,
		ClientName:  ev.ClientName,
		ServiceName: ev.ServiceName,
		Value:       ev.Value.StringFixed(2),
		DueDate:     ev.DueDate.Format("02/01/2006"),
		Workspace:   st.Workspace.Name,
	})
	if err != nil {
		return fmt.Errorf("mail: procesar plantilla: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", st.Profile.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Fatura gerada: %s", ev.ClientName))
	msg.SetBody("text/html", body.String())

	if err := m.smtp.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: enviar SMTP: %w", err)
	}
	return nil
}
