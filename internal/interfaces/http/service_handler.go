package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pipeday-api/internal/application/crm"
	"github.com/jhoicas/pipeday-api/internal/application/dto"
)

// ServiceHandler catálogo de servicios (protegido).
type ServiceHandler struct {
	uc *crm.ServiceUseCase
}

func NewServiceHandler(uc *crm.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// List GET /api/services?q=&page=&page_size=
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Context(), listQuery(c)))
}

// Create POST /api/services
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	svc, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "servicio no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(svc)
}

// Update PATCH /api/services/:id
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	svc, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "servicio no encontrado")
	}
	return c.JSON(svc)
}

// Delete DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "servicio no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
