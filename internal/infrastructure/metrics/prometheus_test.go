package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/infrastructure/metrics"
)

func scrape(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_ContadoresDelEmbudo(t *testing.T) {
	m := metrics.New()
	m.StageChanged(entity.StageNegotiation, entity.StageClosed)
	m.InvoiceGenerated()
	m.InvoiceGenerationFailed()

	app := fiber.New()
	app.Get("/metrics", m.Handler())
	out := scrape(t, app)

	assert.Contains(t, out, `pipeday_deal_stage_transitions_total{from="NEGOTIATION",to="CLOSED"} 1`)
	assert.Contains(t, out, "pipeday_invoices_auto_generated_total 1")
	assert.Contains(t, out, "pipeday_invoice_generation_failures_total 1")
}

func TestMetrics_MiddlewareUsaRutaRegistrada(t *testing.T) {
	m := metrics.New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/metrics", m.Handler())
	app.Get("/api/deals/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/deals/abc", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	out := scrape(t, app)
	assert.Contains(t, out, `http_requests_total{method="GET",path="/api/deals/:id",status="204"} 1`)
}

func TestMetrics_InstanciasIndependientes(t *testing.T) {
	// Cada New usa su propio registry: construir dos no entra en pánico.
	assert.NotPanics(t, func() {
		_ = metrics.New()
		_ = metrics.New()
	})
}
