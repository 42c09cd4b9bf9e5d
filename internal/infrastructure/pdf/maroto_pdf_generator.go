// Package pdf genera la fatura (cobro) de una factura en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Workspace + operador │ FATURA N° + Emissão          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome / Empresa / contato                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Serviço | Cobrança | Vencimento | Valor            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + Status                                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIX: QR + copia e cola (solo si está pendiente)            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/pipeday-api/internal/application/billing"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorHeader  = &props.Color{Red: 37, Green: 99, Blue: 235}
)

var statusLabels = map[entity.InvoiceStatus]string{
	entity.InvoicePending:   "PENDENTE",
	entity.InvoicePaid:      "PAGO",
	entity.InvoiceExpired:   "VENCIDO",
	entity.InvoiceCancelled: "CANCELADO",
}

var billingLabels = map[entity.BillingType]string{
	entity.BillingUnique:  "Pagamento único",
	entity.BillingMonthly: "Mensal",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, doc appbilling.InvoiceDocument) ([]byte, error) {
	if doc.Invoice == nil {
		return nil, fmt.Errorf("pdf: factura nil")
	}
	issuer := nonEmpty(doc.Workspace.Name, doc.Profile.Name)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Fatura "+shortNumber(doc.Invoice.ID), true).
		WithAuthor(issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(doc.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(serviceRow(doc))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(doc.Invoice))

	if doc.PixPayload != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(pixRows(doc.PixPayload, doc.Profile.PixKey)...)
	}

	m.AddRows(footerRow(doc.Workspace))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(doc appbilling.InvoiceDocument, issuer string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(issuer, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(doc.Profile.Email, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FATURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+shortNumber(doc.Invoice.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emissão: "+doc.Invoice.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: el cliente pudo haber sido eliminado; la factura sigue siendo imprimible.
func clientRow(c *entity.Client) core.Row {
	name, contact := "Cliente removido", "-"
	if c != nil {
		name = c.Name
		if c.CompanyName != "" {
			name += " (" + c.CompanyName + ")"
		}
		contact = fmt.Sprintf("Email: %s   |   WhatsApp: %s",
			nonEmpty(c.Email, "-"),
			nonEmpty(c.Phone, "-"),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Serviço", 6, align.Left),
		h("Cobrança", 2, align.Center),
		h("Vencimento", 2, align.Center),
		h("Valor", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

func serviceRow(doc appbilling.InvoiceDocument) core.Row {
	name, billing := "Serviço removido", "-"
	if doc.Service != nil {
		name = doc.Service.Name
		billing = nonEmpty(billingLabels[doc.Service.BillingType], string(doc.Service.BillingType))
	}
	return row.New(7).Add(
		col.New(6).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(billing, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(doc.Invoice.DueDate.Format("02/01/2006"), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(formatBRL(doc.Invoice.Value), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

func totalRow(inv *entity.Invoice) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Status: "+nonEmpty(statusLabels[inv.Status], string(inv.Status)), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 3, Color: colorGray,
			}),
		),
		col.New(3).Add(text.New("TOTAL A PAGAR:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 3,
		})),
		col.New(3).Add(text.New(formatBRL(inv.Value), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 3,
		})),
	)
}

// pixRows: QR del BR Code + el payload partido para copiar.
func pixRows(payload, key string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("PAGAMENTO VIA PIX", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(50).Add(
			col.New(4).Add(code.NewQr(payload, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Escaneie o QR Code no app do seu banco\nou use o Pix copia e cola abaixo.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("Chave: "+key, props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 18, Left: 3,
				}),
			),
		),
		row.New(5).Add(col.New(12).Add(
			text.New("Pix copia e cola:", props.Text{Style: fontstyle.Bold, Size: 7, Top: 1}),
		)),
	}
	for _, chunk := range splitEvery(payload, 80) {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(chunk, props.Text{Size: 6.5, Color: colorGray, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}

func footerRow(ws entity.Workspace) core.Row {
	msg := "Documento gerado por " + nonEmpty(ws.Name, "Pipe Day")
	if ws.Domain != "" {
		msg += " - " + ws.Domain
	}
	return row.New(10).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 6.5, Color: colorGray, Top: 4, Align: align.Center}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatBRL "R$ 1.500,00".
func formatBRL(d decimal.Decimal) string {
	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	sign := ""
	if strings.HasPrefix(whole, "-") {
		sign, whole = "-", whole[1:]
	}
	return "R$ " + sign + formatMoney(whole) + "," + frac
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// splitEvery divide s en trozos de max n caracteres.
func splitEvery(s string, n int) []string {
	var parts []string
	for len(s) > n {
		parts = append(parts, s[:n])
		s = s[n:]
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}

// shortNumber número visible de la fatura: primeros 8 caracteres del id en mayúsculas.
func shortNumber(id string) string {
	id = strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
