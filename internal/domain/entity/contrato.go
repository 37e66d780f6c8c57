package entity

import "time"

// Contrato representa un contrato firmado con una entidad externa.
//
// Invariantes (se validan en el caso de uso, no aquí):
//   - FechaFin posterior a FechaInicio.
//   - NumConsecutivo único dentro del año natural de FechaInicio.
//   - A lo sumo un contrato vigente por par (entidad, tipo de contrato).
type Contrato struct {
	ID             int
	IDEntidad      int
	IDTipoContrato int
	FechaInicio    time.Time
	FechaFin       time.Time
	NumConsecutivo int
	Clasificacion  string
	Nota           *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Datos de las asociaciones cargadas solo en lecturas (nunca se persisten desde aquí)
	NombreEntidad      string
	NombreTipoContrato string
}

// Vigente indica si el contrato sigue activo en el instante dado.
func (c *Contrato) Vigente(ahora time.Time) bool {
	return c.FechaFin.After(ahora)
}
