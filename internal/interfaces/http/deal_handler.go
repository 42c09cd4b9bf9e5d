package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/application/pipeline"
	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// DealHandler embudo de ventas: CRUD de negocios, tablero y transiciones de etapa.
type DealHandler struct {
	uc *pipeline.UseCase
}

// NewDealHandler construye el handler.
func NewDealHandler(uc *pipeline.UseCase) *DealHandler {
	return &DealHandler{uc: uc}
}

// List GET /api/deals?q=&page=&page_size=
func (h *DealHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Context(), listQuery(c)))
}

// Board godoc
// @Summary      Tablero kanban
// @Description  Una columna por etapa, en orden del embudo, con cantidad y valor total.
// @Tags         deals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BoardColumnResponse
// @Router       /api/deals/board [get]
func (h *DealHandler) Board(c *fiber.Ctx) error {
	return c.JSON(h.uc.Board(c.Context()))
}

// Create POST /api/deals
func (h *DealHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDealRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	deal, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "negocio no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(deal)
}

// Update PATCH /api/deals/:id
func (h *DealHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDealRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	deal, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "negocio no encontrado")
	}
	return c.JSON(deal)
}

// Delete DELETE /api/deals/:id
func (h *DealHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "negocio no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Advance godoc
// @Summary      Avanzar etapa
// @Description  NEW_CONTACT → PROPOSAL_SENT → NEGOTIATION. Desde NEGOTIATION no cambia
// @Description  nada y responde decision_required=true con las opciones CLOSED y LOST.
// @Tags         deals
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del negocio"
// @Success      200  {object}  dto.TransitionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "etapa final"
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/deals/{id}/advance [post]
func (h *DealHandler) Advance(c *fiber.Ctx) error {
	resp, err := h.uc.Advance(c.Context(), c.Params("id"))
	return h.transitionResult(c, resp, err)
}

// Decide godoc
// @Summary      Resolver la negociación
// @Description  stage=CLOSED genera una factura PENDING con vencimiento hoy; stage=LOST no.
// @Tags         deals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "ID del negocio"
// @Param        body  body      dto.StageRequest  true  "CLOSED o LOST"
// @Success      200   {object}  dto.TransitionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.TransitionErrorResponse  "negocio cerrado sin factura"
// @Router       /api/deals/{id}/decision [post]
func (h *DealHandler) Decide(c *fiber.Ctx) error {
	var in dto.StageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Decide(c.Context(), c.Params("id"), entity.Stage(in.Stage))
	return h.transitionResult(c, resp, err)
}

// Move POST /api/deals/:id/move (arrastre en el tablero a cualquier etapa)
func (h *DealHandler) Move(c *fiber.Ctx) error {
	var in dto.StageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Move(c.Context(), c.Params("id"), entity.Stage(in.Stage))
	return h.transitionResult(c, resp, err)
}

// transitionResult con la factura fallida el negocio ya está cerrado: se devuelve
// junto al error para que el cliente refleje la etapa real.
func (h *DealHandler) transitionResult(c *fiber.Ctx, resp *dto.TransitionResponse, err error) error {
	if err == nil {
		return c.JSON(resp)
	}
	if resp != nil && errors.Is(err, domain.ErrInvoiceGeneration) {
		log.Error().Err(err).Str("deal_id", resp.Deal.ID).Msg("negocio cerrado sin factura")
		return c.Status(fiber.StatusBadGateway).JSON(dto.TransitionErrorResponse{
			Code:    "INVOICE_GENERATION_FAILED",
			Message: err.Error(),
			Deal:    resp.Deal,
		})
	}
	return respondError(c, err, "negocio no encontrado")
}
