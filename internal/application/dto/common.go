package dto

// ListQuery filtros y paginación comunes de los listados (?q=&page=&page_size=).
// page_size=999999 equivale a "Todos".
type ListQuery struct {
	Q        string `query:"q"`
	Status   string `query:"status"` // solo facturas: PENDING|PAID|EXPIRED|CANCELLED|ALL
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	MaxPage  int `json:"max_page"`
	Total    int `json:"total"`
}

// ListResponse ventana de resultados más sus metadatos.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
