package dto

import "time"

// RegisterRequest datos para registrar un usuario.
type RegisterRequest struct {
	Nombre        string `json:"nombre"`
	NombreUsuario string `json:"nombre_usuario"`
	Cargo         string `json:"cargo"`
	Contrasenna   string `json:"contrasenna"`
	Rol           string `json:"rol"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	NombreUsuario string `json:"nombre_usuario"`
	Contrasenna   string `json:"contrasenna"`
}

// UpdateUsuarioRequest datos para actualizar un usuario. Contrasenna vacía = no cambiar.
type UpdateUsuarioRequest struct {
	Nombre        string `json:"nombre"`
	NombreUsuario string `json:"nombre_usuario"`
	Cargo         string `json:"cargo"`
	Contrasenna   string `json:"contrasenna"`
	Rol           string `json:"rol"`
	Activo        *bool  `json:"activo"`
}

// FilterUsuariosRequest criterios de búsqueda de usuarios. Campos vacíos no filtran.
type FilterUsuariosRequest struct {
	Nombre        string `json:"nombre"`
	NombreUsuario string `json:"nombre_usuario"`
	Cargo         string `json:"cargo"`
	Rol           string `json:"rol"`
	Activo        *bool  `json:"activo"`
}

// UsuarioResponse representación de un usuario (sin hash de contraseña).
type UsuarioResponse struct {
	ID            int       `json:"id_usuario"`
	Nombre        string    `json:"nombre"`
	NombreUsuario string    `json:"nombre_usuario"`
	Cargo         string    `json:"cargo"`
	Rol           string    `json:"rol"`
	Activo        bool      `json:"activo"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UsuarioListResponse página de usuarios filtrados.
type UsuarioListResponse struct {
	Items      []UsuarioResponse `json:"data"`
	Pagination Paginacion        `json:"pagination"`
}

// LoginResponse token JWT + usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
