// Package metrics expone contadores Prometheus del embudo y de la API HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/pipeday-api/internal/application/ports"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// Metrics agrupa los colectores registrados en un registry propio.
type Metrics struct {
	reg *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	activeRequests      prometheus.Gauge

	stageTransitions *prometheus.CounterVec
	invoicesCreated  prometheus.Counter
	invoiceFailures  prometheus.Counter
}

var _ ports.FunnelMetrics = (*Metrics)(nil)

// New registra los colectores (más los de proceso y runtime de Go).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		httpRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		activeRequests: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_active_requests",
				Help: "Number of in-flight HTTP requests",
			},
		),
		stageTransitions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pipeday_deal_stage_transitions_total",
				Help: "Persisted deal stage changes",
			},
			[]string{"from", "to"},
		),
		invoicesCreated: f.NewCounter(
			prometheus.CounterOpts{
				Name: "pipeday_invoices_auto_generated_total",
				Help: "Invoices generated by deals entering CLOSED",
			},
		),
		invoiceFailures: f.NewCounter(
			prometheus.CounterOpts{
				Name: "pipeday_invoice_generation_failures_total",
				Help: "Deals closed whose invoice could not be persisted",
			},
		),
	}
}

func (m *Metrics) StageChanged(from, to entity.Stage) {
	m.stageTransitions.WithLabelValues(string(from), string(to)).Inc()
}

func (m *Metrics) InvoiceGenerated() { m.invoicesCreated.Inc() }

func (m *Metrics) InvoiceGenerationFailed() { m.invoiceFailures.Inc() }

// Middleware mide cada petición. El path es la ruta registrada (/api/deals/:id),
// no la URL concreta, para no disparar la cardinalidad.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.activeRequests.Inc()
		defer m.activeRequests.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		m.httpRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler sirve /metrics en formato de exposición de Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(m.httpHandler())
}

func (m *Metrics) httpHandler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
