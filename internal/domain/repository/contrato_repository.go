package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/contratos-api/internal/domain/entity"
)

// FiltroContratos criterios opcionales de búsqueda de contratos.
// NombreEntidad y NombreTipoContrato filtran por las tablas asociadas (join);
// el conteo de resultados debe seguir siendo de contratos distintos.
type FiltroContratos struct {
	NumConsecutivo     *int
	IDEntidad          *int
	IDTipoContrato     *int
	Clasificacion      string
	Nota               string
	NombreEntidad      string
	NombreTipoContrato string
}

// ContratoRepository puerto de persistencia para Contrato.
type ContratoRepository interface {
	Create(ctx context.Context, c *entity.Contrato) error
	GetByID(ctx context.Context, id int) (*entity.Contrato, error)
	GetAll(ctx context.Context) ([]*entity.Contrato, error)
	Update(ctx context.Context, c *entity.Contrato) error
	Delete(ctx context.Context, id int) error

	// MaxConsecutivoEnRango devuelve el mayor num_consecutivo entre los contratos
	// cuya fecha_inicio cae en [desde, hasta]; 0 si no hay ninguno.
	MaxConsecutivoEnRango(ctx context.Context, desde, hasta time.Time) (int, error)
	// ExisteConsecutivoEnRango indica si otro contrato (distinto de excludeID, si no
	// es nil) usa num en el mismo rango de fechas de inicio.
	ExisteConsecutivoEnRango(ctx context.Context, num int, desde, hasta time.Time, excludeID *int) (bool, error)
	// ExisteVigentePorEntidadTipo indica si otro contrato del mismo par
	// (entidad, tipo) tiene fecha_fin posterior a ahora.
	ExisteVigentePorEntidadTipo(ctx context.Context, idEntidad, idTipoContrato int, ahora time.Time, excludeID *int) (bool, error)

	ListByEntidad(ctx context.Context, idEntidad int) ([]*entity.Contrato, error)
	ListByTipoContrato(ctx context.Context, idTipoContrato int) ([]*entity.Contrato, error)
	// ProximosAVencer lista contratos con fecha_fin dentro de (desde, hasta].
	ProximosAVencer(ctx context.Context, desde, hasta time.Time) ([]*entity.Contrato, error)

	Filter(ctx context.Context, f FiltroContratos, limit, offset int) ([]*entity.Contrato, error)
	CountFilter(ctx context.Context, f FiltroContratos) (int, error)
}
