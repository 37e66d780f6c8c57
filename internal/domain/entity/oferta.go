package entity

import "time"

// Estados posibles de una oferta. Estado es opcional (nil = sin estado).
const (
	EstadoOfertaVigente   = "vigente"
	EstadoOfertaFacturada = "facturada"
	EstadoOfertaVencida   = "vencida"
)

// EstadoOfertaValido verifica que el estado pertenezca al enumerado.
func EstadoOfertaValido(estado string) bool {
	switch estado {
	case EstadoOfertaVigente, EstadoOfertaFacturada, EstadoOfertaVencida:
		return true
	}
	return false
}

// Oferta es una oferta emitida bajo un contrato. Es la raíz del agregado
// Oferta + OfertaDescripcion: las descripciones se escriben y borran siempre
// junto con su oferta.
type Oferta struct {
	ID          int
	IDContrato  int
	IDUsuario   int
	FechaInicio time.Time
	FechaFin    time.Time
	Estado      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Descripciones []OfertaDescripcion
}

// OfertaDescripcion línea de descripción perteneciente a una oferta.
type OfertaDescripcion struct {
	ID          int
	IDOferta    int
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
