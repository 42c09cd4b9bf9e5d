package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/application/workspace"
	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/pkg/pix"
)

// DocumentUseCase documentos derivados de una factura: PDF, cobro Pix y exportación.
type DocumentUseCase struct {
	ws        workspace.Cache
	settings  SettingsReader
	generator InvoicePDFGenerator
	exporter  InvoiceExporter
	invoices  *InvoiceUseCase
}

// NewDocumentUseCase construye el caso de uso inyectando todas sus dependencias.
func NewDocumentUseCase(
	ws workspace.Cache,
	settings SettingsReader,
	generator InvoicePDFGenerator,
	exporter InvoiceExporter,
	invoices *InvoiceUseCase,
) *DocumentUseCase {
	return &DocumentUseCase{
		ws:        ws,
		settings:  settings,
		generator: generator,
		exporter:  exporter,
		invoices:  invoices,
	}
}

// Pix arma el BR Code "copia e cola" con la chave del perfil del operador.
//
// Retorna domain.ErrNotFound si la factura no existe y un error de validación si
// el perfil no tiene chave Pix.
func (uc *DocumentUseCase) Pix(ctx context.Context, invoiceID string) (*dto.PixResponse, error) {
	inv, ok := uc.ws.Snapshot().Invoice(invoiceID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	payload, err := uc.pixPayload(inv)
	if err != nil {
		return nil, err
	}
	if payload == "" {
		return nil, domain.NewValidationError("pix_key", "configure a chave Pix no perfil")
	}
	return &dto.PixResponse{
		InvoiceID: inv.ID,
		Amount:    inv.Value,
		Key:       uc.settings.Current().Profile.PixKey,
		Payload:   payload,
	}, nil
}

// DownloadInvoicePDF genera la fatura en PDF. Si hay chave Pix, incluye el QR.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
func (uc *DocumentUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	snap := uc.ws.Snapshot()
	inv, ok := snap.Invoice(invoiceID)
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	cfg := uc.settings.Current()
	doc := InvoiceDocument{
		Invoice:   inv,
		Profile:   cfg.Profile,
		Workspace: cfg.Workspace,
	}
	if c, ok := snap.Client(inv.ClientID); ok {
		doc.Client = c
	}
	if s, ok := snap.Service(inv.ServiceID); ok {
		doc.Service = s
	}
	if inv.Status == entity.InvoicePending {
		payload, err := uc.pixPayload(inv)
		if err != nil {
			return nil, "", err
		}
		doc.PixPayload = payload
	}

	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("fatura_%s.pdf", shortID(inv.ID)), nil
}

// Export hoja de cálculo con las facturas que cumplen el filtro (sin paginar).
func (uc *DocumentUseCase) Export(ctx context.Context, q dto.ListQuery) ([]byte, string, error) {
	rows := uc.invoices.filtered(q)
	data, err := uc.exporter.ExportInvoices(ctx, rows)
	if err != nil {
		return nil, "", fmt.Errorf("export: %w", err)
	}
	return data, "faturas.xlsx", nil
}

// pixPayload "" cuando el operador no configuró chave.
func (uc *DocumentUseCase) pixPayload(inv *entity.Invoice) (string, error) {
	cfg := uc.settings.Current()
	if strings.TrimSpace(cfg.Profile.PixKey) == "" {
		return "", nil
	}
	merchant := cfg.Workspace.Name
	if merchant == "" {
		merchant = cfg.Profile.Name
	}
	payload, err := pix.Payload(pix.Charge{
		Key:          cfg.Profile.PixKey,
		MerchantName: merchant,
		Amount:       inv.Value,
		TxID:         inv.ID,
	})
	if err != nil {
		return "", domain.NewValidationError("pix_key", err.Error())
	}
	return payload, nil
}

func shortID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
