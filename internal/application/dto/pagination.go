package dto

import "github.com/jhoicas/pipeday-api/pkg/pagination"

// Paginate corta items según la página pedida y arma la respuesta de listado.
func Paginate[T any](items []T, q ListQuery) ListResponse[T] {
	p := pagination.New(items, q.PageSize)
	p.Jump(q.Page)
	meta := p.Page()
	return ListResponse[T]{
		Items: p.Window(),
		Page: PageResponse{
			Page:     meta.Page,
			PageSize: meta.PageSize,
			MaxPage:  meta.MaxPage,
			Total:    meta.Total,
		},
	}
}
