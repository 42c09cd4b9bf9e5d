package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pipeday-api/internal/application/billing"
	"github.com/jhoicas/pipeday-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	uc   *billing.InvoiceUseCase
	docs *billing.DocumentUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, docs *billing.DocumentUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, docs: docs}
}

// List godoc
// @Summary      Listar faturas
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        q          query  string  false  "Cliente o servicio"
// @Param        status     query  string  false  "PENDING|PAID|EXPIRED|CANCELLED|ALL"
// @Param        page       query  int     false  "Página (base 1)"
// @Param        page_size  query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.ListResponse[dto.InvoiceResponse]
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Context(), listQuery(c)))
}

// Create crea una factura manual.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	invoice, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "cliente o servicio no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// Update PATCH /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	invoice, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return c.JSON(invoice)
}

// MarkPaid POST /api/invoices/:id/pay
func (h *InvoiceHandler) MarkPaid(c *fiber.Ctx) error {
	invoice, err := h.uc.MarkPaid(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return c.JSON(invoice)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF godoc
// @Summary      Descargar la fatura en PDF
// @Description  Incluye el QR Pix si la factura está pendiente y hay chave configurada.
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.docs.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// Pix GET /api/invoices/:id/pix
func (h *InvoiceHandler) Pix(c *fiber.Ctx) error {
	resp, err := h.docs.Pix(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return c.JSON(resp)
}

// Export GET /api/invoices/export?q=&status= (sin paginar)
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.docs.Export(c.Context(), listQuery(c))
	if err != nil {
		return respondError(c, err, "")
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
