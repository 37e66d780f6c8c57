package usecase

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/domain"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
	"github.com/tu-usuario/contratos-api/internal/domain/repository"
	"github.com/tu-usuario/contratos-api/pkg/normalize"
)

// Formatos admitidos en los campos de entidad.
var (
	reNombreEntidad  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ0-9\s.,&-]+$`)
	reDireccion      = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ0-9\s.,#-]+$`)
	reTelefono       = regexp.MustCompile(`^\+?[0-9\s-]{8,15}$`)
	reEmail          = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	reCodigoREO      = regexp.MustCompile(`^[A-Z0-9]{6,10}$`)
	reCuentaBancaria = regexp.MustCompile(`^[0-9-]{10,20}$`)
)

// EntidadUseCase CRUD de entidades con validaciones de formato, chequeo de
// email duplicado, filtrado paginado y guarda referencial en el borrado.
type EntidadUseCase struct {
	entidades repository.EntidadRepository
	contratos repository.ContratoRepository
	now       func() time.Time
}

// NewEntidadUseCase construye el caso de uso.
func NewEntidadUseCase(entidades repository.EntidadRepository, contratos repository.ContratoRepository) *EntidadUseCase {
	return &EntidadUseCase{entidades: entidades, contratos: contratos, now: time.Now}
}

// validar acumula todos los errores de formato de los campos.
func validarEntidad(in dto.CreateEntidadRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if in.Nombre == "" || in.Direccion == "" || in.Telefono == "" || in.Email == "" || in.TipoEntidad == "" {
		errs = append(errs, "todos los campos son obligatorios: nombre, direccion, telefono, email, tipo_entidad")
	}
	if in.Nombre != "" {
		if len(in.Nombre) < 3 || len(in.Nombre) > 100 {
			errs = append(errs, "el nombre debe tener entre 3 y 100 caracteres")
		}
		if !reNombreEntidad.MatchString(in.Nombre) {
			errs = append(errs, "el nombre solo puede contener letras, números, espacios y los caracteres: ., & -")
		}
	}
	if in.Direccion != "" {
		if len(in.Direccion) < 5 || len(in.Direccion) > 200 {
			errs = append(errs, "la dirección debe tener entre 5 y 200 caracteres")
		}
		if !reDireccion.MatchString(in.Direccion) {
			errs = append(errs, "la dirección solo puede contener letras, números, espacios y los caracteres: ., # -")
		}
	}
	if in.Telefono != "" && !reTelefono.MatchString(in.Telefono) {
		errs = append(errs, "el teléfono debe tener entre 8 y 15 dígitos y puede incluir +, espacios y guiones")
	}
	if in.Email != "" && !reEmail.MatchString(in.Email) {
		errs = append(errs, "el email debe tener un formato válido (ejemplo: usuario@dominio.com)")
	}
	if in.CodigoREO != "" && !reCodigoREO.MatchString(in.CodigoREO) {
		errs = append(errs, "el código REO debe tener entre 6 y 10 caracteres alfanuméricos en mayúsculas")
	}
	if in.CuentaBancaria != "" && !reCuentaBancaria.MatchString(in.CuentaBancaria) {
		errs = append(errs, "la cuenta bancaria debe tener entre 10 y 20 dígitos y puede incluir guiones")
	}
	return errs
}

// Create valida y persiste una entidad nueva. Nombre o email duplicados
// producen conflicto.
func (uc *EntidadUseCase) Create(ctx context.Context, in dto.CreateEntidadRequest) (*dto.EntidadResponse, error) {
	if errs := validarEntidad(in); len(errs) > 0 {
		return nil, errs
	}
	duplicado, err := uc.entidades.ExistsByEmail(ctx, in.Email, nil)
	if err != nil {
		return nil, err
	}
	if duplicado {
		return nil, fmt.Errorf("%w: ya existe una entidad con ese email", domain.ErrConflict)
	}
	duplicadoNombre, err := uc.entidades.ExistsByNombre(ctx, in.Nombre, nil)
	if err != nil {
		return nil, err
	}
	if duplicadoNombre {
		return nil, fmt.Errorf("%w: ya existe una entidad con ese nombre", domain.ErrConflict)
	}

	now := uc.now()
	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	e := &entity.Entidad{
		Nombre:         in.Nombre,
		Direccion:      in.Direccion,
		Telefono:       in.Telefono,
		Email:          in.Email,
		CuentaBancaria: in.CuentaBancaria,
		TipoEntidad:    in.TipoEntidad,
		CodigoREO:      in.CodigoREO,
		CodigoNIT:      in.CodigoNIT,
		Activo:         activo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.entidades.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEntidadResponse(e), nil
}

// Update valida y actualiza una entidad existente.
func (uc *EntidadUseCase) Update(ctx context.Context, id int, in dto.UpdateEntidadRequest) (*dto.EntidadResponse, error) {
	existente, err := uc.entidades.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrNotFound
	}
	if errs := validarEntidad(in); len(errs) > 0 {
		return nil, errs
	}
	if in.Email != existente.Email {
		duplicado, derr := uc.entidades.ExistsByEmail(ctx, in.Email, &id)
		if derr != nil {
			return nil, derr
		}
		if duplicado {
			return nil, fmt.Errorf("%w: ya existe una entidad con ese email", domain.ErrConflict)
		}
	}
	if in.Nombre != existente.Nombre {
		duplicado, derr := uc.entidades.ExistsByNombre(ctx, in.Nombre, &id)
		if derr != nil {
			return nil, derr
		}
		if duplicado {
			return nil, fmt.Errorf("%w: ya existe una entidad con ese nombre", domain.ErrConflict)
		}
	}

	existente.Nombre = in.Nombre
	existente.Direccion = in.Direccion
	existente.Telefono = in.Telefono
	existente.Email = in.Email
	existente.TipoEntidad = in.TipoEntidad
	if in.Activo != nil {
		existente.Activo = *in.Activo
	}
	if in.CodigoREO != "" {
		existente.CodigoREO = in.CodigoREO
	}
	if in.CodigoNIT != "" {
		existente.CodigoNIT = in.CodigoNIT
	}
	if in.CuentaBancaria != "" {
		existente.CuentaBancaria = in.CuentaBancaria
	}
	existente.UpdatedAt = uc.now()
	if err := uc.entidades.Update(ctx, existente); err != nil {
		return nil, err
	}
	return toEntidadResponse(existente), nil
}

// Delete elimina la entidad salvo que tenga contratos asociados; en ese caso
// devuelve la lista de contratos que bloquean el borrado.
func (uc *EntidadUseCase) Delete(ctx context.Context, id int) error {
	existente, err := uc.entidades.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existente == nil {
		return domain.ErrNotFound
	}
	contratos, err := uc.contratos.ListByEntidad(ctx, id)
	if err != nil {
		return err
	}
	if len(contratos) > 0 {
		bloqueos := make([]domain.Bloqueo, 0, len(contratos))
		for _, c := range contratos {
			bloqueos = append(bloqueos, domain.Bloqueo{ID: c.ID, Etiqueta: c.Clasificacion})
		}
		return &domain.ReferentialError{Recurso: "entidad", Relacion: "contratos", Bloqueos: bloqueos}
	}
	return uc.entidades.Delete(ctx, id)
}

// GetByID obtiene una entidad por ID.
func (uc *EntidadUseCase) GetByID(ctx context.Context, id int) (*dto.EntidadResponse, error) {
	e, err := uc.entidades.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEntidadResponse(e), nil
}

// GetAll lista todas las entidades.
func (uc *EntidadUseCase) GetAll(ctx context.Context) ([]dto.EntidadResponse, error) {
	list, err := uc.entidades.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EntidadResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEntidadResponse(e))
	}
	return items, nil
}

// Filter devuelve la página pedida de entidades que cumplen los criterios.
func (uc *EntidadUseCase) Filter(ctx context.Context, in dto.FilterEntidadesRequest, page, limit int) (*dto.EntidadListResponse, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: el número de página debe ser un entero positivo", domain.ErrInvalidParameter)
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: el límite debe ser un entero positivo", domain.ErrInvalidParameter)
	}

	f := repository.FiltroEntidades{
		Nombre:         normalize.String(in.Nombre),
		Direccion:      normalize.String(in.Direccion),
		Telefono:       normalize.String(in.Telefono),
		CuentaBancaria: normalize.String(in.CuentaBancaria),
		TipoEntidad:    normalize.String(in.TipoEntidad),
		CodigoREO:      normalize.String(in.CodigoREO),
		CodigoNIT:      normalize.String(in.CodigoNIT),
	}
	total, err := uc.entidades.CountFilter(ctx, f)
	if err != nil {
		return nil, err
	}
	list, err := uc.entidades.Filter(ctx, f, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EntidadResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEntidadResponse(e))
	}
	return &dto.EntidadListResponse{
		Items:      items,
		Pagination: dto.NewPaginacion(total, page, limit),
	}, nil
}

func toEntidadResponse(e *entity.Entidad) *dto.EntidadResponse {
	if e == nil {
		return nil
	}
	return &dto.EntidadResponse{
		ID:             e.ID,
		Nombre:         e.Nombre,
		Direccion:      e.Direccion,
		Telefono:       e.Telefono,
		Email:          e.Email,
		CuentaBancaria: e.CuentaBancaria,
		TipoEntidad:    e.TipoEntidad,
		CodigoREO:      e.CodigoREO,
		CodigoNIT:      e.CodigoNIT,
		Activo:         e.Activo,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
