package usecase

import (
	"context"

	"github.com/tu-usuario/contratos-api/internal/domain/repository"
)

// ContratoTx ejecuta fn con un repositorio de contratos atado a una transacción.
// La validación de unicidad/solapamiento y el insert deben correr en la misma
// transacción para cerrar la ventana de carrera del consecutivo.
type ContratoTx interface {
	RunContrato(ctx context.Context, fn func(contratos repository.ContratoRepository) error) error
}

// OfertaTx ejecuta fn con los repositorios del agregado Oferta atados a una
// transacción: la cabecera y todas sus descripciones se escriben o ninguna.
type OfertaTx interface {
	RunOferta(ctx context.Context, fn func(
		ofertas repository.OfertaRepository,
		descripciones repository.OfertaDescripcionRepository,
	) error) error
}

// AsignacionTx ejecuta fn con el repositorio de asignaciones atado a una
// transacción (sincronización de contratos de un trabajador).
type AsignacionTx interface {
	RunAsignaciones(ctx context.Context, fn func(asignaciones repository.ContratoTrabajadorRepository) error) error
}
