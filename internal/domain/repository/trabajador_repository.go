package repository

import (
	"context"

	"github.com/tu-usuario/contratos-api/internal/domain/entity"
)

// TrabajadorRepository puerto de persistencia para trabajadores autorizados.
type TrabajadorRepository interface {
	Create(ctx context.Context, t *entity.TrabajadorAutorizado) error
	GetByID(ctx context.Context, id int) (*entity.TrabajadorAutorizado, error)
	GetAll(ctx context.Context) ([]*entity.TrabajadorAutorizado, error)
	Update(ctx context.Context, t *entity.TrabajadorAutorizado) error
	Delete(ctx context.Context, id int) error
	// ExistsByCarnet indica si otro trabajador (distinto de excludeID, si no es nil)
	// usa el mismo carnet de identidad.
	ExistsByCarnet(ctx context.Context, carnet string, excludeID *int) (bool, error)
}

// ContratoTrabajadorRepository puerto para las asignaciones contrato↔trabajador.
type ContratoTrabajadorRepository interface {
	Create(ctx context.Context, a *entity.ContratoTrabajador) error
	GetByID(ctx context.Context, id int) (*entity.ContratoTrabajador, error)
	GetAll(ctx context.Context) ([]*entity.ContratoTrabajador, error)
	Delete(ctx context.Context, id int) error
	DeleteByContratoYTrabajador(ctx context.Context, idContrato, idTrabajador int) error
	ListByContrato(ctx context.Context, idContrato int) ([]*entity.ContratoTrabajador, error)
	ListByTrabajador(ctx context.Context, idTrabajador int) ([]*entity.ContratoTrabajador, error)
}
