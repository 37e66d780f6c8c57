package entity

import "time"

// TipoContrato catálogo de tipos de contrato (servicios, suministros, etc.).
type TipoContrato struct {
	ID        int
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
