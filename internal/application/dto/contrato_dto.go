package dto

import "time"

// CreateContratoRequest datos para crear un contrato.
// Las fechas se aceptan como "2006-01-02" o RFC 3339.
type CreateContratoRequest struct {
	IDEntidad      int     `json:"id_entidad"`
	IDTipoContrato int     `json:"id_tipo_contrato"`
	FechaInicio    string  `json:"fecha_inicio"`
	FechaFin       string  `json:"fecha_fin"`
	NumConsecutivo int     `json:"num_consecutivo"`
	Clasificacion  string  `json:"clasificacion"`
	Nota           *string `json:"nota"`
}

// UpdateContratoRequest datos para actualizar un contrato.
type UpdateContratoRequest = CreateContratoRequest

// FilterContratosRequest criterios de filtrado de contratos (todos opcionales).
type FilterContratosRequest struct {
	NumConsecutivo     *int   `json:"num_consecutivo"`
	IDEntidad          *int   `json:"id_entidad"`
	IDTipoContrato     *int   `json:"id_tipo_contrato"`
	Clasificacion      string `json:"clasificacion"`
	Nota               string `json:"nota"`
	NombreEntidad      string `json:"nombre_entidad"`
	NombreTipoContrato string `json:"nombre_tipo_contrato"`
}

// ContratoResponse representación de un contrato en respuestas, con los
// nombres de la entidad y el tipo ya resueltos para los listados.
type ContratoResponse struct {
	ID                 int       `json:"id_contrato"`
	IDEntidad          int       `json:"id_entidad"`
	IDTipoContrato     int       `json:"id_tipo_contrato"`
	FechaInicio        time.Time `json:"fecha_inicio"`
	FechaFin           time.Time `json:"fecha_fin"`
	NumConsecutivo     int       `json:"num_consecutivo"`
	Clasificacion      string    `json:"clasificacion"`
	Nota               *string   `json:"nota"`
	NombreEntidad      string    `json:"nombre_entidad,omitempty"`
	NombreTipoContrato string    `json:"nombre_tipo_contrato,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ContratoListResponse página de contratos filtrados.
type ContratoListResponse struct {
	Items      []ContratoResponse `json:"data"`
	Pagination Paginacion         `json:"pagination"`
}

// ConsecutivoResponse respuesta del siguiente número consecutivo libre.
type ConsecutivoResponse struct {
	Year                 int `json:"year"`
	SiguienteConsecutivo int `json:"siguiente_consecutivo"`
}
