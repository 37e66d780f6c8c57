package entity

import "time"

// Entidad representa una entidad externa con la que se firman contratos.
type Entidad struct {
	ID             int
	Nombre         string
	Direccion      string
	Telefono       string
	Email          string
	CuentaBancaria string
	TipoEntidad    string
	CodigoREO      string
	CodigoNIT      string
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
