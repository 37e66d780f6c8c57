package repository

import (
	"context"

	"github.com/tu-usuario/contratos-api/internal/domain/entity"
)

// FiltroEntidades criterios opcionales de búsqueda de entidades.
// Los campos de texto se comparan como "contiene" sin distinguir mayúsculas.
type FiltroEntidades struct {
	Nombre         string
	Direccion      string
	Telefono       string
	CuentaBancaria string
	TipoEntidad    string
	CodigoREO      string
	CodigoNIT      string
}

// EntidadRepository puerto de persistencia para Entidad (DIP).
type EntidadRepository interface {
	Create(ctx context.Context, e *entity.Entidad) error
	GetByID(ctx context.Context, id int) (*entity.Entidad, error)
	GetAll(ctx context.Context) ([]*entity.Entidad, error)
	Update(ctx context.Context, e *entity.Entidad) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	// ExistsByEmail indica si otra entidad (distinta de excludeID, si no es nil) usa el email.
	ExistsByEmail(ctx context.Context, email string, excludeID *int) (bool, error)
	// ExistsByNombre indica si otra entidad (distinta de excludeID, si no es nil) usa el nombre.
	ExistsByNombre(ctx context.Context, nombre string, excludeID *int) (bool, error)
	Filter(ctx context.Context, f FiltroEntidades, limit, offset int) ([]*entity.Entidad, error)
	CountFilter(ctx context.Context, f FiltroEntidades) (int, error)
}
