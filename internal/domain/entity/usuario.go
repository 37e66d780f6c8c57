package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RolAdmin     = "admin"
	RolEconomico = "economico"
	RolConsultor = "consultor"
)

// Usuario cuenta de acceso al sistema.
type Usuario struct {
	ID            int
	Nombre        string
	NombreUsuario string // único
	Cargo         string
	Contrasenna   string // hash bcrypt, nunca se expone en respuestas
	Rol           string
	Activo        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
