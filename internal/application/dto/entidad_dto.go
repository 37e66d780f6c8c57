package dto

import "time"

// CreateEntidadRequest datos para crear una entidad.
type CreateEntidadRequest struct {
	Nombre         string `json:"nombre"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
	CuentaBancaria string `json:"cuenta_bancaria"`
	TipoEntidad    string `json:"tipo_entidad"`
	CodigoREO      string `json:"codigo_reo"`
	CodigoNIT      string `json:"codigo_nit"`
	Activo         *bool  `json:"activo"`
}

// UpdateEntidadRequest datos para actualizar una entidad (mismos campos que crear).
type UpdateEntidadRequest = CreateEntidadRequest

// FilterEntidadesRequest criterios de filtrado (todos opcionales).
type FilterEntidadesRequest struct {
	Nombre         string `json:"nombre"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	CuentaBancaria string `json:"cuenta_bancaria"`
	TipoEntidad    string `json:"tipo_entidad"`
	CodigoREO      string `json:"codigo_reo"`
	CodigoNIT      string `json:"codigo_nit"`
}

// EntidadResponse representación de una entidad en respuestas.
type EntidadResponse struct {
	ID             int       `json:"id_entidad"`
	Nombre         string    `json:"nombre"`
	Direccion      string    `json:"direccion"`
	Telefono       string    `json:"telefono"`
	Email          string    `json:"email"`
	CuentaBancaria string    `json:"cuenta_bancaria"`
	TipoEntidad    string    `json:"tipo_entidad"`
	CodigoREO      string    `json:"codigo_reo"`
	CodigoNIT      string    `json:"codigo_nit"`
	Activo         bool      `json:"activo"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EntidadListResponse página de entidades filtradas.
type EntidadListResponse struct {
	Items      []EntidadResponse `json:"data"`
	Pagination Paginacion        `json:"pagination"`
}
