package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/domain"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
	"github.com/tu-usuario/contratos-api/internal/domain/repository"
	"github.com/tu-usuario/contratos-api/pkg/normalize"
)

// UsuarioUseCase administración de usuarios (el registro y login viven en
// application/auth).
type UsuarioUseCase struct {
	usuarios      repository.UsuarioRepository
	ofertas       repository.OfertaRepository
	descripciones repository.OfertaDescripcionRepository
	now           func() time.Time
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(
	usuarios repository.UsuarioRepository,
	ofertas repository.OfertaRepository,
	descripciones repository.OfertaDescripcionRepository,
) *UsuarioUseCase {
	return &UsuarioUseCase{
		usuarios:      usuarios,
		ofertas:       ofertas,
		descripciones: descripciones,
		now:           time.Now,
	}
}

// GetByID obtiene un usuario por ID (sin hash).
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id int) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return ToUsuarioResponse(u), nil
}

// GetAll lista todos los usuarios.
func (uc *UsuarioUseCase) GetAll(ctx context.Context) ([]dto.UsuarioResponse, error) {
	list, err := uc.usuarios.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUsuarioResponse(u))
	}
	return items, nil
}

// Update actualiza los datos de un usuario; contraseña vacía se conserva.
func (uc *UsuarioUseCase) Update(ctx context.Context, id int, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.NombreUsuario != "" && in.NombreUsuario != u.NombreUsuario {
		otro, oerr := uc.usuarios.GetByNombreUsuario(ctx, in.NombreUsuario)
		if oerr != nil {
			return nil, oerr
		}
		if otro != nil {
			return nil, fmt.Errorf("%w: ya existe un usuario con ese nombre de usuario", domain.ErrConflict)
		}
		u.NombreUsuario = in.NombreUsuario
	}
	if in.Nombre != "" {
		u.Nombre = in.Nombre
	}
	if in.Cargo != "" {
		u.Cargo = in.Cargo
	}
	if in.Rol != "" {
		u.Rol = in.Rol
	}
	if in.Activo != nil {
		u.Activo = *in.Activo
	}
	if in.Contrasenna != "" {
		hash, herr := bcrypt.GenerateFromPassword([]byte(in.Contrasenna), bcrypt.DefaultCost)
		if herr != nil {
			return nil, herr
		}
		u.Contrasenna = string(hash)
	}
	u.UpdatedAt = uc.now()
	if err := uc.usuarios.Update(ctx, u); err != nil {
		return nil, err
	}
	return ToUsuarioResponse(u), nil
}

// Delete elimina un usuario. Un usuario con ofertas registradas no se puede
// eliminar; se reportan las ofertas que lo bloquean.
func (uc *UsuarioUseCase) Delete(ctx context.Context, id int) error {
	u, err := uc.usuarios.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}

	ofertas, err := uc.ofertas.ListByUsuario(ctx, id)
	if err != nil {
		return err
	}
	if len(ofertas) > 0 {
		bloqueos := make([]domain.Bloqueo, 0, len(ofertas))
		for _, o := range ofertas {
			etiqueta := ""
			if descs, derr := uc.descripciones.ListByOferta(ctx, o.ID); derr == nil && len(descs) > 0 {
				etiqueta = descs[0].Descripcion
			}
			bloqueos = append(bloqueos, domain.Bloqueo{ID: o.ID, Etiqueta: etiqueta})
		}
		return &domain.ReferentialError{Recurso: "usuario", Relacion: "ofertas", Bloqueos: bloqueos}
	}

	return uc.usuarios.Delete(ctx, id)
}

// Filter lista usuarios según los criterios dados, paginados.
func (uc *UsuarioUseCase) Filter(ctx context.Context, in dto.FilterUsuariosRequest, page, limit int) (*dto.UsuarioListResponse, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: el número de página debe ser un entero positivo", domain.ErrInvalidParameter)
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: el límite debe ser un entero positivo", domain.ErrInvalidParameter)
	}

	f := repository.FiltroUsuarios{
		Nombre:        normalize.String(in.Nombre),
		NombreUsuario: normalize.String(in.NombreUsuario),
		Cargo:         normalize.String(in.Cargo),
		Rol:           in.Rol,
		Activo:        in.Activo,
	}

	total, err := uc.usuarios.CountFilter(ctx, f)
	if err != nil {
		return nil, err
	}
	list, err := uc.usuarios.Filter(ctx, f, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUsuarioResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items:      items,
		Pagination: dto.NewPaginacion(total, page, limit),
	}, nil
}

// ToUsuarioResponse proyección pública del usuario (sin hash de contraseña).
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:            u.ID,
		Nombre:        u.Nombre,
		NombreUsuario: u.NombreUsuario,
		Cargo:         u.Cargo,
		Rol:           u.Rol,
		Activo:        u.Activo,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
