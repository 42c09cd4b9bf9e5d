package stats

import (
	"strings"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// StatusAll valor del filtro de estado que acepta cualquier factura.
const StatusAll = "ALL"

// Los filtros de listado, a diferencia de Search, devuelven todo con consulta vacía.

// FilterClients filtra por nombre, email, teléfono u observaciones.
func FilterClients(query string, clients []*entity.Client) []*entity.Client {
	term := fold(strings.TrimSpace(query))
	if term == "" {
		return clients
	}
	out := make([]*entity.Client, 0, len(clients))
	for _, c := range clients {
		if containsFold(c.Name, term) || containsFold(c.Email, term) ||
			containsFold(c.Phone, term) || containsFold(c.Notes, term) {
			out = append(out, c)
		}
	}
	return out
}

// FilterServices filtra por nombre u observaciones.
func FilterServices(query string, services []*entity.Service) []*entity.Service {
	term := fold(strings.TrimSpace(query))
	if term == "" {
		return services
	}
	out := make([]*entity.Service, 0, len(services))
	for _, s := range services {
		if containsFold(s.Name, term) || containsFold(s.Notes, term) {
			out = append(out, s)
		}
	}
	return out
}

// FilterInvoices filtra por id o nombre del cliente y por estado ("" o ALL = todos).
func FilterInvoices(query, status string, invoices []*entity.Invoice, clients []*entity.Client) []*entity.Invoice {
	term := fold(strings.TrimSpace(query))
	names := clientNames(clients)
	out := make([]*entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if status != "" && status != StatusAll && string(inv.Status) != status {
			continue
		}
		if term != "" && !containsFold(inv.ID, term) && !containsFold(names[inv.ClientID], term) {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// FilterDeals filtra por nombre del cliente o del servicio.
func FilterDeals(query string, deals []*entity.Deal, clients []*entity.Client, services []*entity.Service) []*entity.Deal {
	term := fold(strings.TrimSpace(query))
	if term == "" {
		return deals
	}
	names := clientNames(clients)
	serviceNames := make(map[string]string, len(services))
	for _, s := range services {
		serviceNames[s.ID] = s.Name
	}
	out := make([]*entity.Deal, 0, len(deals))
	for _, d := range deals {
		if containsFold(names[d.ClientID], term) || containsFold(serviceNames[d.ServiceID], term) {
			out = append(out, d)
		}
	}
	return out
}

func clientNames(clients []*entity.Client) map[string]string {
	m := make(map[string]string, len(clients))
	for _, c := range clients {
		m[c.ID] = c.Name
	}
	return m
}
