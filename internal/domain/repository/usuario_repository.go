package repository

import (
	"context"

	"github.com/tu-usuario/contratos-api/internal/domain/entity"
)

// FiltroUsuarios criterios opcionales de búsqueda de usuarios.
type FiltroUsuarios struct {
	Nombre        string
	NombreUsuario string
	Cargo         string
	Rol           string
	Activo        *bool
}

// UsuarioRepository puerto de persistencia para usuarios de la aplicación.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id int) (*entity.Usuario, error)
	GetByNombreUsuario(ctx context.Context, nombreUsuario string) (*entity.Usuario, error)
	GetAll(ctx context.Context) ([]*entity.Usuario, error)
	Update(ctx context.Context, u *entity.Usuario) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	Filter(ctx context.Context, f FiltroUsuarios, limit, offset int) ([]*entity.Usuario, error)
	CountFilter(ctx context.Context, f FiltroUsuarios) (int, error)
}
