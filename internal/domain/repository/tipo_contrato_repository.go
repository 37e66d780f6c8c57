package repository

import (
	"context"

	"github.com/tu-usuario/contratos-api/internal/domain/entity"
)

// TipoContratoRepository puerto de persistencia para el catálogo de tipos de contrato.
type TipoContratoRepository interface {
	Create(ctx context.Context, t *entity.TipoContrato) error
	GetByID(ctx context.Context, id int) (*entity.TipoContrato, error)
	GetAll(ctx context.Context) ([]*entity.TipoContrato, error)
	Update(ctx context.Context, t *entity.TipoContrato) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
}
