package billing

import (
	"context"

	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// InvoiceDocument datos que necesita el generador para pintar una fatura.
type InvoiceDocument struct {
	Invoice    *entity.Invoice
	Client     *entity.Client  // nil si el cliente fue eliminado
	Service    *entity.Service // nil si el servicio fue eliminado
	Profile    entity.Profile
	Workspace  entity.Workspace
	PixPayload string // BR Code; vacío si no hay chave configurada
}

// InvoicePDFGenerator puerto de salida para el PDF de la fatura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc InvoiceDocument) ([]byte, error)
}

// InvoiceExporter puerto de salida para exportar el listado a hoja de cálculo.
type InvoiceExporter interface {
	ExportInvoices(ctx context.Context, rows []dto.InvoiceResponse) ([]byte, error)
}

// SettingsReader lectura de la configuración vigente del operador.
type SettingsReader interface {
	Current() entity.Settings
}
