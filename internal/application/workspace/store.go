// Package workspace mantiene en memoria la última copia de las cuatro colecciones
// (clientes, servicios, negocios y facturas). Es solo una caché de lectura: el
// almacén es la fuente de verdad y tras cada mutación se vuelve a leer todo.
package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/repository"
)

// Snapshot copia inmutable de las colecciones tal como las devolvió el almacén.
type Snapshot struct {
	Clients   []*entity.Client
	Services  []*entity.Service
	Deals     []*entity.Deal
	Invoices  []*entity.Invoice
	FetchedAt time.Time
}

// Client busca un cliente por id.
func (s Snapshot) Client(id string) (*entity.Client, bool) {
	for _, c := range s.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Service busca un servicio por id.
func (s Snapshot) Service(id string) (*entity.Service, bool) {
	for _, sv := range s.Services {
		if sv.ID == id {
			return sv, true
		}
	}
	return nil, false
}

// Deal busca un negocio por id.
func (s Snapshot) Deal(id string) (*entity.Deal, bool) {
	for _, d := range s.Deals {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// Invoice busca una factura por id.
func (s Snapshot) Invoice(id string) (*entity.Invoice, bool) {
	for _, inv := range s.Invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return nil, false
}

// Cache lo que los casos de uso necesitan de Store.
type Cache interface {
	Snapshot() Snapshot
	Refresh(ctx context.Context) error
}

var _ Cache = (*Store)(nil)

// Store caché compartida por los casos de uso.
type Store struct {
	clients  repository.ClientRepository
	services repository.ServiceRepository
	deals    repository.DealRepository
	invoices repository.InvoiceRepository
	log      zerolog.Logger
	now      func() time.Time

	mu   sync.RWMutex
	snap Snapshot
}

// NewStore construye la caché vacía; llamar Refresh antes de servir.
func NewStore(
	clients repository.ClientRepository,
	services repository.ServiceRepository,
	deals repository.DealRepository,
	invoices repository.InvoiceRepository,
	log zerolog.Logger,
) *Store {
	return &Store{
		clients:  clients,
		services: services,
		deals:    deals,
		invoices: invoices,
		log:      log,
		now:      time.Now,
		snap: Snapshot{
			Clients:  []*entity.Client{},
			Services: []*entity.Service{},
			Deals:    []*entity.Deal{},
			Invoices: []*entity.Invoice{},
		},
	}
}

// Snapshot devuelve la copia vigente.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Refresh relee las cuatro colecciones en paralelo y reemplaza la copia vigente.
// Si alguna lectura falla se conserva la copia anterior. Con refrescos solapados
// gana el último en terminar.
func (s *Store) Refresh(ctx context.Context) error {
	type clientsResult struct {
		items []*entity.Client
		err   error
	}
	type servicesResult struct {
		items []*entity.Service
		err   error
	}
	type dealsResult struct {
		items []*entity.Deal
		err   error
	}
	type invoicesResult struct {
		items []*entity.Invoice
		err   error
	}

	clientsCh := make(chan clientsResult, 1)
	servicesCh := make(chan servicesResult, 1)
	dealsCh := make(chan dealsResult, 1)
	invoicesCh := make(chan invoicesResult, 1)

	go func() {
		items, err := s.clients.List(ctx)
		clientsCh <- clientsResult{items, err}
	}()
	go func() {
		items, err := s.services.List(ctx)
		servicesCh <- servicesResult{items, err}
	}()
	go func() {
		items, err := s.deals.List(ctx)
		dealsCh <- dealsResult{items, err}
	}()
	go func() {
		items, err := s.invoices.List(ctx)
		invoicesCh <- invoicesResult{items, err}
	}()

	clients := <-clientsCh
	services := <-servicesCh
	deals := <-dealsCh
	invoices := <-invoicesCh

	for _, err := range []error{clients.err, services.err, deals.err, invoices.err} {
		if err != nil {
			s.log.Error().Err(err).Msg("workspace: no se pudo releer el almacén")
			return err
		}
	}

	next := Snapshot{
		Clients:   orEmpty(clients.items),
		Services:  orEmpty(services.items),
		Deals:     orEmpty(deals.items),
		Invoices:  orEmpty(invoices.items),
		FetchedAt: s.now(),
	}

	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()

	s.log.Debug().
		Int("clients", len(next.Clients)).
		Int("services", len(next.Services)).
		Int("deals", len(next.Deals)).
		Int("invoices", len(next.Invoices)).
		Msg("workspace actualizado")
	return nil
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// ClientName nombre del cliente o "" si ya no existe.
func (s Snapshot) ClientName(id string) string {
	if c, ok := s.Client(id); ok {
		return c.Name
	}
	return ""
}

// ServiceName nombre del servicio o "" si ya no existe.
func (s Snapshot) ServiceName(id string) string {
	if sv, ok := s.Service(id); ok {
		return sv.Name
	}
	return ""
}
