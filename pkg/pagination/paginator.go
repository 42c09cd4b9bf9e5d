// Package pagination expone una ventana estable y acotada sobre una colección
// ordenada. Es una función pura: no valida ni rechaza entradas, las ajusta al rango.
package pagination

const (
	// DefaultPageSize tamaño de página por defecto de los listados.
	DefaultPageSize = 10
	// PageSizeAll valor reservado del selector "Todos" (sin límite práctico).
	PageSizeAll = 999999
)

// PageSizes opciones del selector de ítems por página.
var PageSizes = []int{10, 20, 30, PageSizeAll}

// Paginator mantiene la página actual (base 1) sobre items.
//
// Invariante tras cada SetItems/SetPageSize: 1 <= currentPage <= max(MaxPage(), 1).
// La página solo se ajusta cuando queda fuera de rango; no se reinicia a 1.
type Paginator[T any] struct {
	items       []T
	pageSize    int
	currentPage int
}

// New construye un paginador en la página 1.
func New[T any](items []T, pageSize int) *Paginator[T] {
	p := &Paginator[T]{items: items, pageSize: normalizeSize(pageSize), currentPage: 1}
	p.clamp()
	return p
}

func normalizeSize(n int) int {
	if n < 1 {
		return DefaultPageSize
	}
	return n
}

// MaxPage = ceil(len(items)/pageSize); 0 si no hay ítems.
func (p *Paginator[T]) MaxPage() int {
	n := len(p.items)
	if n == 0 {
		return 0
	}
	return (n + p.pageSize - 1) / p.pageSize
}

// CurrentPage página actual (base 1).
func (p *Paginator[T]) CurrentPage() int { return p.currentPage }

// PageSize tamaño de página vigente.
func (p *Paginator[T]) PageSize() int { return p.pageSize }

// Total número de ítems de la colección.
func (p *Paginator[T]) Total() int { return len(p.items) }

// upper límite superior válido para currentPage.
func (p *Paginator[T]) upper() int {
	if m := p.MaxPage(); m > 0 {
		return m
	}
	return 1
}

func (p *Paginator[T]) clamp() {
	if p.currentPage > p.upper() {
		p.currentPage = p.upper()
	}
	if p.currentPage < 1 {
		p.currentPage = 1
	}
}

// SetItems reemplaza la colección (por ejemplo tras un filtro) y reajusta la página.
func (p *Paginator[T]) SetItems(items []T) {
	p.items = items
	p.clamp()
}

// SetPageSize cambia el tamaño de página sin volver a la página 1.
func (p *Paginator[T]) SetPageSize(n int) {
	p.pageSize = normalizeSize(n)
	p.clamp()
}

// Next avanza una página sin pasar de MaxPage.
func (p *Paginator[T]) Next() {
	p.currentPage = min(p.currentPage+1, p.upper())
}

// Prev retrocede una página sin bajar de 1.
func (p *Paginator[T]) Prev() {
	p.currentPage = max(p.currentPage-1, 1)
}

// Jump salta a la página n ajustada a [1, MaxPage] (1 si la colección está vacía).
func (p *Paginator[T]) Jump(n int) {
	p.currentPage = max(1, min(n, p.upper()))
}

// Window devuelve items[(página-1)*tamaño : página*tamaño]. Se recalcula en cada llamada.
func (p *Paginator[T]) Window() []T {
	n := len(p.items)
	if n == 0 {
		return []T{}
	}
	begin := (p.currentPage - 1) * p.pageSize
	if begin >= n {
		return []T{}
	}
	end := min(begin+p.pageSize, n)
	return p.items[begin:end]
}

// Page metadatos de la página actual.
type Page struct {
	Page     int
	PageSize int
	MaxPage  int
	Total    int
}

// Page devuelve los metadatos para respuestas de listado.
func (p *Paginator[T]) Page() Page {
	return Page{
		Page:     p.currentPage,
		PageSize: p.pageSize,
		MaxPage:  p.MaxPage(),
		Total:    len(p.items),
	}
}
