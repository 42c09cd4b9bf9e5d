package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalReceived decimal.Decimal `json:"total_received"` // facturas pagadas
	TotalPending  decimal.Decimal `json:"total_pending"`  // facturas pendientes
	TotalLost     decimal.Decimal `json:"total_lost"`     // negocios perdidos

	ExpiredInvoices int `json:"expired_invoices"`
	LostDeals       int `json:"lost_deals"`
	ActiveClients   int `json:"active_clients"`
	StaleLeads      int `json:"stale_leads"` // NEW_CONTACT con más de 48h

	Chart []ChartPointDTO `json:"chart"`
}

// ChartPointDTO barra del gráfico del dashboard.
type ChartPointDTO struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// SearchResponse respuesta de GET /api/dashboard/search.
type SearchResponse struct {
	Clients []ClientResponse `json:"clients"`
	Deals   []DealResponse   `json:"deals"`
}

// ClientSummaryResponse ficha del cliente (GET /api/clients/:id/summary).
type ClientSummaryResponse struct {
	Client    ClientResponse    `json:"client"`
	TotalPaid decimal.Decimal   `json:"total_paid"`
	OpenDeals int               `json:"open_deals"`
	Deals     []DealResponse    `json:"deals"`
	Invoices  []InvoiceResponse `json:"invoices"`
}
