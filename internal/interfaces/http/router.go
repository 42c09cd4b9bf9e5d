package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pipeday-api/internal/application/analytics"
	"github.com/jhoicas/pipeday-api/internal/application/billing"
	"github.com/jhoicas/pipeday-api/internal/application/crm"
	"github.com/jhoicas/pipeday-api/internal/application/pipeline"
	"github.com/jhoicas/pipeday-api/internal/application/settings"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC    *crm.ClientUseCase
	ServiceUC   *crm.ServiceUseCase
	PipelineUC  *pipeline.UseCase
	InvoiceUC   *billing.InvoiceUseCase
	DocumentUC  *billing.DocumentUseCase
	DashboardUC *analytics.DashboardUseCase
	Settings    *settings.Service
	JWTSecret   string
	JWTIssuer   string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Clientes
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.DashboardUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id/summary", clientHandler.Summary)
	clients.Patch("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Servicios
	services := api.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/", serviceHandler.List)
	services.Post("/", serviceHandler.Create)
	services.Patch("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Embudo
	deals := api.Group("/deals")
	dealHandler := NewDealHandler(deps.PipelineUC)
	deals.Get("/", dealHandler.List)
	deals.Post("/", dealHandler.Create)
	deals.Get("/board", dealHandler.Board)
	deals.Patch("/:id", dealHandler.Update)
	deals.Delete("/:id", dealHandler.Delete)
	deals.Post("/:id/advance", dealHandler.Advance)
	deals.Post("/:id/decision", dealHandler.Decide)
	deals.Post("/:id/move", dealHandler.Move)

	// Faturas
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.DocumentUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/export", invoiceHandler.Export)
	invoices.Patch("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Post("/:id/pay", invoiceHandler.MarkPaid)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id/pix", invoiceHandler.Pix)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/search", dashboardHandler.Search)

	// Configuración
	settingsHandler := NewSettingsHandler(deps.Settings)
	api.Get("/settings", settingsHandler.Get)
	api.Put("/settings", settingsHandler.Update)
}
