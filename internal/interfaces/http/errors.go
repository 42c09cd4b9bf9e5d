package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/domain"
)

// respondError traduce los errores de dominio a HTTP. notFound es el mensaje para 404.
func respondError(c *fiber.Ctx, err error, notFound string) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: ve.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFound})
	case errors.Is(err, domain.ErrTerminalStage):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TERMINAL_STAGE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvoiceGeneration):
		log.Error().Err(err).Str("path", c.Path()).Msg("factura automática no generada")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "INVOICE_GENERATION_FAILED", Message: err.Error()})
	case errors.Is(err, domain.ErrPersistence):
		log.Error().Err(err).Str("path", c.Path()).Msg("el almacén rechazó la operación")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PERSISTENCE_ERROR", Message: err.Error()})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// listQuery lee ?q=&status=&page=&page_size=. Valores no numéricos quedan en 0 y el
// paginador los ajusta.
func listQuery(c *fiber.Ctx) dto.ListQuery {
	return dto.ListQuery{
		Q:        c.Query("q"),
		Status:   c.Query("status"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 0),
	}
}
