package dto

import "time"

// CreateOfertaRequest datos para crear una oferta con sus descripciones.
type CreateOfertaRequest struct {
	IDContrato    int      `json:"id_contrato"`
	IDUsuario     int      `json:"id_usuario"`
	FechaInicio   string   `json:"fecha_inicio"`
	FechaFin      string   `json:"fecha_fin"`
	Estado        *string  `json:"estado"`
	Descripciones []string `json:"descripciones"`
}

// UpdateOfertaRequest datos para actualizar una oferta.
// Si Descripciones es nil las descripciones existentes se conservan; si viene
// (aunque sea vacío) el conjunto se reemplaza por completo.
type UpdateOfertaRequest struct {
	IDContrato    int       `json:"id_contrato"`
	IDUsuario     int       `json:"id_usuario"`
	FechaInicio   string    `json:"fecha_inicio"`
	FechaFin      string    `json:"fecha_fin"`
	Estado        *string   `json:"estado"`
	Descripciones *[]string `json:"descripciones"`
}

// FilterOfertasRequest criterios de filtrado de ofertas (todos opcionales).
type FilterOfertasRequest struct {
	IDContrato  *int   `json:"id_contrato"`
	IDUsuario   *int   `json:"id_usuario"`
	Estado      string `json:"estado"`
	Descripcion string `json:"descripcion"`
}

// OfertaDescripcionResponse línea de descripción en respuestas.
type OfertaDescripcionResponse struct {
	ID          int    `json:"id_oferta_descripcion"`
	Descripcion string `json:"descripcion"`
}

// OfertaResponse representación de una oferta con sus descripciones.
type OfertaResponse struct {
	ID            int                         `json:"id_oferta"`
	IDContrato    int                         `json:"id_contrato"`
	IDUsuario     int                         `json:"id_usuario"`
	FechaInicio   time.Time                   `json:"fecha_inicio"`
	FechaFin      time.Time                   `json:"fecha_fin"`
	Estado        *string                     `json:"estado"`
	Descripciones []OfertaDescripcionResponse `json:"descripciones"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

// OfertaListResponse página de ofertas filtradas.
type OfertaListResponse struct {
	Items      []OfertaResponse `json:"data"`
	Pagination Paginacion       `json:"pagination"`
}
