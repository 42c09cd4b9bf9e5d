package stats

import (
	"strings"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// SearchResult resultados de la búsqueda global del dashboard.
type SearchResult struct {
	Clients []*entity.Client
	Deals   []*entity.Deal
}

// Search busca clientes por nombre o email y negocios por el nombre de su cliente.
// Una consulta vacía no es "todo": devuelve conjuntos vacíos.
func Search(query string, clients []*entity.Client, deals []*entity.Deal) SearchResult {
	res := SearchResult{Clients: []*entity.Client{}, Deals: []*entity.Deal{}}
	query = strings.TrimSpace(query)
	if query == "" {
		return res
	}
	term := fold(query)

	byID := make(map[string]*entity.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
		if containsFold(c.Name, term) || containsFold(c.Email, term) {
			res.Clients = append(res.Clients, c)
		}
	}
	for _, d := range deals {
		if c, ok := byID[d.ClientID]; ok && containsFold(c.Name, term) {
			res.Deals = append(res.Deals, d)
		}
	}
	return res
}
