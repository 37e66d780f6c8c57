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
)

var reCarnet = regexp.MustCompile(`^[0-9]{11}$`)

// TrabajadorUseCase CRUD de trabajadores autorizados y gestión de sus
// asignaciones a contratos, incluida la sincronización por diferencia.
type TrabajadorUseCase struct {
	trabajadores repository.TrabajadorRepository
	asignaciones repository.ContratoTrabajadorRepository
	contratos    repository.ContratoRepository
	tx           AsignacionTx
	now          func() time.Time
}

// NewTrabajadorUseCase construye el caso de uso.
func NewTrabajadorUseCase(
	trabajadores repository.TrabajadorRepository,
	asignaciones repository.ContratoTrabajadorRepository,
	contratos repository.ContratoRepository,
	tx AsignacionTx,
) *TrabajadorUseCase {
	return &TrabajadorUseCase{
		trabajadores: trabajadores,
		asignaciones: asignaciones,
		contratos:    contratos,
		tx:           tx,
		now:          time.Now,
	}
}

func validarTrabajador(in dto.CreateTrabajadorRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if in.Nombre == "" {
		errs = append(errs, "el nombre es requerido")
	}
	if in.Cargo == "" {
		errs = append(errs, "el cargo es requerido")
	}
	if !reCarnet.MatchString(in.CarnetIdentidad) {
		errs = append(errs, "el carnet de identidad debe tener exactamente 11 dígitos")
	}
	return errs
}

// Create valida y persiste un trabajador. Carnet duplicado produce conflicto.
func (uc *TrabajadorUseCase) Create(ctx context.Context, in dto.CreateTrabajadorRequest) (*dto.TrabajadorResponse, error) {
	if errs := validarTrabajador(in); len(errs) > 0 {
		return nil, errs
	}
	duplicado, err := uc.trabajadores.ExistsByCarnet(ctx, in.CarnetIdentidad, nil)
	if err != nil {
		return nil, err
	}
	if duplicado {
		return nil, fmt.Errorf("%w: ya existe un trabajador con ese carnet de identidad", domain.ErrConflict)
	}
	now := uc.now()
	t := &entity.TrabajadorAutorizado{
		Nombre:          in.Nombre,
		Cargo:           in.Cargo,
		CarnetIdentidad: in.CarnetIdentidad,
		NumTelefono:     in.NumTelefono,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.trabajadores.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTrabajadorResponse(t), nil
}

// Update valida y actualiza un trabajador existente.
func (uc *TrabajadorUseCase) Update(ctx context.Context, id int, in dto.UpdateTrabajadorRequest) (*dto.TrabajadorResponse, error) {
	t, err := uc.trabajadores.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if errs := validarTrabajador(in); len(errs) > 0 {
		return nil, errs
	}
	if in.CarnetIdentidad != t.CarnetIdentidad {
		duplicado, derr := uc.trabajadores.ExistsByCarnet(ctx, in.CarnetIdentidad, &id)
		if derr != nil {
			return nil, derr
		}
		if duplicado {
			return nil, fmt.Errorf("%w: ya existe un trabajador con ese carnet de identidad", domain.ErrConflict)
		}
	}
	t.Nombre = in.Nombre
	t.Cargo = in.Cargo
	t.CarnetIdentidad = in.CarnetIdentidad
	t.NumTelefono = in.NumTelefono
	t.UpdatedAt = uc.now()
	if err := uc.trabajadores.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTrabajadorResponse(t), nil
}

// Delete elimina el trabajador salvo que tenga contratos asignados; en tal
// caso devuelve la lista de contratos que bloquean el borrado.
func (uc *TrabajadorUseCase) Delete(ctx context.Context, id int) error {
	t, err := uc.trabajadores.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	asignados, err := uc.asignaciones.ListByTrabajador(ctx, id)
	if err != nil {
		return err
	}
	if len(asignados) > 0 {
		bloqueos := make([]domain.Bloqueo, 0, len(asignados))
		for _, a := range asignados {
			etiqueta := ""
			if c, cerr := uc.contratos.GetByID(ctx, a.IDContrato); cerr == nil && c != nil {
				etiqueta = c.Clasificacion
			}
			bloqueos = append(bloqueos, domain.Bloqueo{ID: a.IDContrato, Etiqueta: etiqueta})
		}
		return &domain.ReferentialError{Recurso: "trabajador autorizado", Relacion: "contratos", Bloqueos: bloqueos}
	}
	return uc.trabajadores.Delete(ctx, id)
}

// GetByID obtiene un trabajador por ID.
func (uc *TrabajadorUseCase) GetByID(ctx context.Context, id int) (*dto.TrabajadorResponse, error) {
	t, err := uc.trabajadores.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTrabajadorResponse(t), nil
}

// GetAll lista todos los trabajadores.
func (uc *TrabajadorUseCase) GetAll(ctx context.Context) ([]dto.TrabajadorResponse, error) {
	list, err := uc.trabajadores.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TrabajadorResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTrabajadorResponse(t))
	}
	return items, nil
}

// Asignar crea una asignación contrato↔trabajador individual.
func (uc *TrabajadorUseCase) Asignar(ctx context.Context, idContrato, idTrabajador int) (*dto.AsignacionResponse, error) {
	contrato, err := uc.contratos.GetByID(ctx, idContrato)
	if err != nil {
		return nil, err
	}
	trabajador, err := uc.trabajadores.GetByID(ctx, idTrabajador)
	if err != nil {
		return nil, err
	}
	var errs domain.ValidationErrors
	if contrato == nil {
		errs = append(errs, fmt.Sprintf("el contrato con ID %d no existe", idContrato))
	}
	if trabajador == nil {
		errs = append(errs, fmt.Sprintf("el trabajador con ID %d no existe", idTrabajador))
	}
	if len(errs) > 0 {
		return nil, errs
	}

	actuales, err := uc.asignaciones.ListByTrabajador(ctx, idTrabajador)
	if err != nil {
		return nil, err
	}
	for _, a := range actuales {
		if a.IDContrato == idContrato {
			return nil, fmt.Errorf("%w: el trabajador ya está asignado a ese contrato", domain.ErrConflict)
		}
	}

	a := &entity.ContratoTrabajador{
		IDContrato:             idContrato,
		IDTrabajadorAutorizado: idTrabajador,
		CreatedAt:              uc.now(),
	}
	if err := uc.asignaciones.Create(ctx, a); err != nil {
		return nil, err
	}
	return &dto.AsignacionResponse{ID: a.ID, IDContrato: a.IDContrato, IDTrabajadorAutorizado: a.IDTrabajadorAutorizado}, nil
}

// Desasignar elimina una asignación individual por su ID.
func (uc *TrabajadorUseCase) Desasignar(ctx context.Context, idAsignacion int) error {
	a, err := uc.asignaciones.GetByID(ctx, idAsignacion)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.asignaciones.Delete(ctx, idAsignacion)
}

// ContratosAsignados lista las asignaciones actuales de un trabajador.
func (uc *TrabajadorUseCase) ContratosAsignados(ctx context.Context, idTrabajador int) ([]dto.AsignacionResponse, error) {
	t, err := uc.trabajadores.GetByID(ctx, idTrabajador)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.asignaciones.ListByTrabajador(ctx, idTrabajador)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AsignacionResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.AsignacionResponse{ID: a.ID, IDContrato: a.IDContrato, IDTrabajadorAutorizado: a.IDTrabajadorAutorizado})
	}
	return items, nil
}

// SincronizarContratos reconcilia las asignaciones del trabajador con la lista
// objetivo: elimina las que sobran y crea las que faltan, en una transacción.
func (uc *TrabajadorUseCase) SincronizarContratos(ctx context.Context, idTrabajador int, objetivo []int) error {
	t, err := uc.trabajadores.GetByID(ctx, idTrabajador)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}

	// Todos los contratos objetivo deben existir antes de tocar nada.
	var errs domain.ValidationErrors
	deseados := make(map[int]bool, len(objetivo))
	for _, idContrato := range objetivo {
		if deseados[idContrato] {
			continue // duplicados en la lista objetivo se ignoran
		}
		c, cerr := uc.contratos.GetByID(ctx, idContrato)
		if cerr != nil {
			return cerr
		}
		if c == nil {
			errs = append(errs, fmt.Sprintf("el contrato con ID %d no existe", idContrato))
			continue
		}
		deseados[idContrato] = true
	}
	if len(errs) > 0 {
		return errs
	}

	actuales, err := uc.asignaciones.ListByTrabajador(ctx, idTrabajador)
	if err != nil {
		return err
	}
	vigentes := make(map[int]bool, len(actuales))
	for _, a := range actuales {
		vigentes[a.IDContrato] = true
	}

	ahora := uc.now()
	return uc.tx.RunAsignaciones(ctx, func(asignaciones repository.ContratoTrabajadorRepository) error {
		for _, a := range actuales {
			if !deseados[a.IDContrato] {
				if err := asignaciones.DeleteByContratoYTrabajador(ctx, a.IDContrato, idTrabajador); err != nil {
					return err
				}
			}
		}
		for idContrato := range deseados {
			if !vigentes[idContrato] {
				nueva := &entity.ContratoTrabajador{
					IDContrato:             idContrato,
					IDTrabajadorAutorizado: idTrabajador,
					CreatedAt:              ahora,
				}
				if err := asignaciones.Create(ctx, nueva); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func toTrabajadorResponse(t *entity.TrabajadorAutorizado) *dto.TrabajadorResponse {
	if t == nil {
		return nil
	}
	return &dto.TrabajadorResponse{
		ID:              t.ID,
		Nombre:          t.Nombre,
		Cargo:           t.Cargo,
		CarnetIdentidad: t.CarnetIdentidad,
		NumTelefono:     t.NumTelefono,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
