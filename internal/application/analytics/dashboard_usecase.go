// Package analytics casos de uso del dashboard: indicadores, búsqueda global y la
// ficha resumida de cada cliente.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/application/workspace"
	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/stats"
)

// DashboardUseCase indicadores derivados de la caché del workspace.
//
// No consulta el almacén: los cálculos se hacen en memoria sobre la última copia y
// se repiten en cada llamada (el estancamiento de leads depende de la hora actual).
type DashboardUseCase struct {
	ws  workspace.Cache
	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(ws workspace.Cache) *DashboardUseCase {
	return &DashboardUseCase{ws: ws, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) *dto.DashboardSummaryDTO {
	snap := uc.ws.Snapshot()
	s := stats.Compute(snap.Clients, snap.Deals, snap.Invoices, uc.now())

	chart := make([]dto.ChartPointDTO, 0, 3)
	for _, p := range s.Chart() {
		chart = append(chart, dto.ChartPointDTO{Name: p.Name, Value: p.Value.Round(2)})
	}
	return &dto.DashboardSummaryDTO{
		TotalReceived:   s.TotalReceived.Round(2),
		TotalPending:    s.TotalPending.Round(2),
		TotalLost:       s.TotalLost.Round(2),
		ExpiredInvoices: s.ExpiredInvoiceCount,
		LostDeals:       s.LostDealCount,
		ActiveClients:   s.ActiveClientCount,
		StaleLeads:      s.StaleLeadCount,
		Chart:           chart,
	}
}

// Search búsqueda global por nombre o email de cliente. Consulta vacía = sin resultados.
func (uc *DashboardUseCase) Search(ctx context.Context, query string) *dto.SearchResponse {
	snap := uc.ws.Snapshot()
	res := stats.Search(query, snap.Clients, snap.Deals)

	out := &dto.SearchResponse{
		Clients: make([]dto.ClientResponse, 0, len(res.Clients)),
		Deals:   make([]dto.DealResponse, 0, len(res.Deals)),
	}
	for _, c := range res.Clients {
		out.Clients = append(out.Clients, dto.FromClient(c))
	}
	for _, d := range res.Deals {
		out.Deals = append(out.Deals, dto.FromDeal(d, snap.ClientName(d.ClientID), snap.ServiceName(d.ServiceID)))
	}
	return out
}

// ClientSummary ficha del cliente: total pagado, negocios abiertos e historial.
func (uc *DashboardUseCase) ClientSummary(ctx context.Context, clientID string) (*dto.ClientSummaryResponse, error) {
	snap := uc.ws.Snapshot()
	client, ok := snap.Client(clientID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	sum := stats.ClientRollup(clientID, snap.Deals, snap.Invoices)

	out := &dto.ClientSummaryResponse{
		Client:    dto.FromClient(client),
		TotalPaid: sum.TotalPaid.Round(2),
		OpenDeals: sum.OpenDealCount,
		Deals:     make([]dto.DealResponse, 0, len(sum.Deals)),
		Invoices:  make([]dto.InvoiceResponse, 0, len(sum.Invoices)),
	}
	for _, d := range sum.Deals {
		out.Deals = append(out.Deals, dto.FromDeal(d, client.Name, snap.ServiceName(d.ServiceID)))
	}
	for _, inv := range sum.Invoices {
		out.Invoices = append(out.Invoices, dto.FromInvoice(inv, client.Name, snap.ServiceName(inv.ServiceID)))
	}
	return out, nil
}
