package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/pipeday-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los indicadores del embudo y de facturación.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_received, total_pending, total_lost,
// expired_invoices, lost_deals, active_clients, stale_leads, chart).
// Nunca falla: sin datos todo es 0.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary(c.Context()))
}

// Search búsqueda global en clientes (nombre y email).
// GET /api/dashboard/search?q=joão
//
// q vacío devuelve una lista vacía.
func (h *DashboardHandler) Search(c *fiber.Ctx) error {
	return c.JSON(h.uc.Search(c.Context(), c.Query("q")))
}
