package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pipeday-api/internal/application/analytics"
	"github.com/jhoicas/pipeday-api/internal/application/crm"
	"github.com/jhoicas/pipeday-api/internal/application/dto"
)

// ClientHandler maneja las peticiones HTTP de clientes (protegido).
type ClientHandler struct {
	uc        *crm.ClientUseCase
	dashboard *analytics.DashboardUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *crm.ClientUseCase, dashboard *analytics.DashboardUseCase) *ClientHandler {
	return &ClientHandler{uc: uc, dashboard: dashboard}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        q          query  string  false  "Texto en nombre o email (sin distinguir mayúsculas)"
// @Param        page       query  int     false  "Página (base 1)"
// @Param        page_size  query  int     false  "10, 20, 30 o 999999 (todos)"
// @Success      200  {object}  dto.ListResponse[dto.ClientResponse]
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Context(), listQuery(c)))
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	client, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "cliente no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// Update PATCH /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	client, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "cliente no encontrado")
	}
	return c.JSON(client)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "cliente no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary      Resumen de un cliente
// @Description  Negocios, facturas y totales (pagado, pendiente) del cliente.
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/summary [get]
func (h *ClientHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.dashboard.ClientSummary(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "cliente no encontrado")
	}
	return c.JSON(summary)
}
