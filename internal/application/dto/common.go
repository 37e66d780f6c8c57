package dto

// Paginacion metadatos de página para listados filtrados.
// totalPages = ceil(total/limit); el total cuenta filas padre distintas,
// nunca infladas por joins uno-a-muchos.
type Paginacion struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPaginacion calcula los metadatos a partir del total y la página pedida.
func NewPaginacion(total, page, limit int) Paginacion {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return Paginacion{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}
