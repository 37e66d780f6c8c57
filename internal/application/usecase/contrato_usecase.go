package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/domain"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
	"github.com/tu-usuario/contratos-api/internal/domain/repository"
	"github.com/tu-usuario/contratos-api/pkg/normalize"
)

// Años admisibles para el consecutivo.
const (
	anioMinimo = 1900
	anioMaximo = 2200
)

// ContratoUseCase casos de uso de contratos: CRUD validado, consecutivo por año,
// filtrado paginado y guarda referencial en el borrado.
type ContratoUseCase struct {
	contratos     repository.ContratoRepository
	entidades     repository.EntidadRepository
	tipos         repository.TipoContratoRepository
	ofertas       repository.OfertaRepository
	descripciones repository.OfertaDescripcionRepository
	asignaciones  repository.ContratoTrabajadorRepository
	trabajadores  repository.TrabajadorRepository
	tx            ContratoTx
	now           func() time.Time // inyectable en pruebas
}

// NewContratoUseCase construye el caso de uso.
func NewContratoUseCase(
	contratos repository.ContratoRepository,
	entidades repository.EntidadRepository,
	tipos repository.TipoContratoRepository,
	ofertas repository.OfertaRepository,
	descripciones repository.OfertaDescripcionRepository,
	asignaciones repository.ContratoTrabajadorRepository,
	trabajadores repository.TrabajadorRepository,
	tx ContratoTx,
) *ContratoUseCase {
	return &ContratoUseCase{
		contratos:     contratos,
		entidades:     entidades,
		tipos:         tipos,
		ofertas:       ofertas,
		descripciones: descripciones,
		asignaciones:  asignaciones,
		trabajadores:  trabajadores,
		tx:            tx,
		now:           time.Now,
	}
}

// SiguienteConsecutivo calcula el próximo número consecutivo libre para el año
// dado: máximo de los contratos que inician ese año + 1, o 1 si no hay ninguno.
//
// El valor es orientativo para el formulario: dos llamadas concurrentes pueden
// recibir el mismo número. La unicidad real la garantiza la validación dentro
// de la transacción de escritura más el índice único por año.
func (uc *ContratoUseCase) SiguienteConsecutivo(ctx context.Context, year int) (int, error) {
	if year < anioMinimo || year > anioMaximo {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidYear, year)
	}
	desde, hasta := rangoAnio(year)
	max, err := uc.contratos.MaxConsecutivoEnRango(ctx, desde, hasta)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// validar ejecuta todas las comprobaciones de negocio sobre los datos del
// contrato y acumula cada violación; nunca corta en la primera para que una
// sola respuesta enumere todos los problemas. El orden es secuencial: las
// comprobaciones posteriores asumen que las previas pasaron (el solapamiento
// solo se evalúa si entidad y tipo existen).
func (uc *ContratoUseCase) validar(ctx context.Context, contratos repository.ContratoRepository, in dto.CreateContratoRequest, excludeID *int) (inicio, fin time.Time, errs domain.ValidationErrors, err error) {
	inicio, errInicio := parseFecha(in.FechaInicio)
	fin, errFin := parseFecha(in.FechaFin)
	if errInicio != nil {
		errs = append(errs, "la fecha de inicio es inválida")
	}
	if errFin != nil {
		errs = append(errs, "la fecha de fin es inválida")
	}
	fechasOK := errInicio == nil && errFin == nil
	if fechasOK && !fin.After(inicio) {
		errs = append(errs, "la fecha de fin debe ser posterior a la fecha de inicio")
	}

	if in.NumConsecutivo <= 0 {
		errs = append(errs, "el número consecutivo debe ser un entero positivo")
	} else if fechasOK {
		desde, hasta := rangoAnio(inicio.Year())
		duplicado, derr := contratos.ExisteConsecutivoEnRango(ctx, in.NumConsecutivo, desde, hasta, excludeID)
		if derr != nil {
			return inicio, fin, nil, derr
		}
		if duplicado {
			errs = append(errs, fmt.Sprintf("el número consecutivo %d ya está en uso en el año %d", in.NumConsecutivo, inicio.Year()))
		}
	}

	entidadExiste, eerr := uc.entidades.Exists(ctx, in.IDEntidad)
	if eerr != nil {
		return inicio, fin, nil, eerr
	}
	if !entidadExiste {
		errs = append(errs, fmt.Sprintf("la entidad con ID %d no existe", in.IDEntidad))
	}

	tipoExiste, terr := uc.tipos.Exists(ctx, in.IDTipoContrato)
	if terr != nil {
		return inicio, fin, nil, terr
	}
	if !tipoExiste {
		errs = append(errs, fmt.Sprintf("el tipo de contrato con ID %d no existe", in.IDTipoContrato))
	}

	// Solo tiene sentido buscar solapamiento si las referencias existen.
	if entidadExiste && tipoExiste {
		vigente, verr := contratos.ExisteVigentePorEntidadTipo(ctx, in.IDEntidad, in.IDTipoContrato, uc.now(), excludeID)
		if verr != nil {
			return inicio, fin, nil, verr
		}
		if vigente {
			errs = append(errs, "ya existe un contrato vigente para esa entidad y tipo de contrato")
		}
	}

	if in.Clasificacion == "" {
		errs = append(errs, "la clasificación es requerida")
	}

	return inicio, fin, errs, nil
}

// Create valida y persiste un contrato nuevo. La revalidación de unicidad y
// solapamiento corre dentro de la misma transacción que el insert.
func (uc *ContratoUseCase) Create(ctx context.Context, in dto.CreateContratoRequest) (*dto.ContratoResponse, error) {
	var creado *entity.Contrato
	err := uc.tx.RunContrato(ctx, func(contratos repository.ContratoRepository) error {
		inicio, fin, errs, err := uc.validar(ctx, contratos, in, nil)
		if err != nil {
			return err
		}
		if len(errs) > 0 {
			return errs
		}
		now := uc.now()
		c := &entity.Contrato{
			IDEntidad:      in.IDEntidad,
			IDTipoContrato: in.IDTipoContrato,
			FechaInicio:    inicio,
			FechaFin:       fin,
			NumConsecutivo: in.NumConsecutivo,
			Clasificacion:  in.Clasificacion,
			Nota:           in.Nota,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := contratos.Create(ctx, c); err != nil {
			return err
		}
		creado = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toContratoResponse(creado), nil
}

// Update revalida (excluyendo el propio contrato) y actualiza dentro de una transacción.
func (uc *ContratoUseCase) Update(ctx context.Context, id int, in dto.UpdateContratoRequest) (*dto.ContratoResponse, error) {
	existente, err := uc.contratos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrNotFound
	}

	var actualizado *entity.Contrato
	err = uc.tx.RunContrato(ctx, func(contratos repository.ContratoRepository) error {
		inicio, fin, errs, err := uc.validar(ctx, contratos, in, &id)
		if err != nil {
			return err
		}
		if len(errs) > 0 {
			return errs
		}
		c := &entity.Contrato{
			ID:             id,
			IDEntidad:      in.IDEntidad,
			IDTipoContrato: in.IDTipoContrato,
			FechaInicio:    inicio,
			FechaFin:       fin,
			NumConsecutivo: in.NumConsecutivo,
			Clasificacion:  in.Clasificacion,
			Nota:           in.Nota,
			CreatedAt:      existente.CreatedAt,
			UpdatedAt:      uc.now(),
		}
		if err := contratos.Update(ctx, c); err != nil {
			return err
		}
		actualizado = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toContratoResponse(actualizado), nil
}

// Delete elimina un contrato si ningún registro dependiente lo bloquea.
// Devuelve ReferentialError con la lista de ofertas o asignaciones que lo impiden.
func (uc *ContratoUseCase) Delete(ctx context.Context, id int) error {
	existente, err := uc.contratos.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existente == nil {
		return domain.ErrNotFound
	}

	ofertas, err := uc.ofertas.ListByContrato(ctx, id)
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
		return &domain.ReferentialError{Recurso: "contrato", Relacion: "ofertas", Bloqueos: bloqueos}
	}

	asignaciones, err := uc.asignaciones.ListByContrato(ctx, id)
	if err != nil {
		return err
	}
	if len(asignaciones) > 0 {
		bloqueos := make([]domain.Bloqueo, 0, len(asignaciones))
		for _, a := range asignaciones {
			etiqueta := ""
			if t, terr := uc.trabajadores.GetByID(ctx, a.IDTrabajadorAutorizado); terr == nil && t != nil {
				etiqueta = t.Nombre
			}
			bloqueos = append(bloqueos, domain.Bloqueo{ID: a.IDTrabajadorAutorizado, Etiqueta: etiqueta})
		}
		return &domain.ReferentialError{Recurso: "contrato", Relacion: "trabajadores autorizados", Bloqueos: bloqueos}
	}

	return uc.contratos.Delete(ctx, id)
}

// GetByID obtiene un contrato por ID.
func (uc *ContratoUseCase) GetByID(ctx context.Context, id int) (*dto.ContratoResponse, error) {
	c, err := uc.contratos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toContratoResponse(c), nil
}

// GetAll lista todos los contratos con nombres de entidad y tipo resueltos.
func (uc *ContratoUseCase) GetAll(ctx context.Context) ([]dto.ContratoResponse, error) {
	list, err := uc.contratos.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContratoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContratoResponse(c))
	}
	return items, nil
}

// ProximosAVencer lista los contratos cuya fecha de fin cae dentro de los
// próximos días (30 por defecto).
func (uc *ContratoUseCase) ProximosAVencer(ctx context.Context, dias int) ([]dto.ContratoResponse, error) {
	if dias <= 0 {
		dias = 30
	}
	ahora := uc.now()
	list, err := uc.contratos.ProximosAVencer(ctx, ahora, ahora.AddDate(0, 0, dias))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContratoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContratoResponse(c))
	}
	return items, nil
}

// Filter devuelve la página pedida de contratos que cumplen los criterios,
// con el total de contratos distintos (sin inflar por joins).
func (uc *ContratoUseCase) Filter(ctx context.Context, in dto.FilterContratosRequest, page, limit int) (*dto.ContratoListResponse, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: el número de página debe ser un entero positivo", domain.ErrInvalidParameter)
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: el límite debe ser un entero positivo", domain.ErrInvalidParameter)
	}

	f := repository.FiltroContratos{
		NumConsecutivo:     in.NumConsecutivo,
		IDEntidad:          in.IDEntidad,
		IDTipoContrato:     in.IDTipoContrato,
		Clasificacion:      normalize.String(in.Clasificacion),
		Nota:               normalize.String(in.Nota),
		NombreEntidad:      normalize.String(in.NombreEntidad),
		NombreTipoContrato: normalize.String(in.NombreTipoContrato),
	}

	total, err := uc.contratos.CountFilter(ctx, f)
	if err != nil {
		return nil, err
	}
	list, err := uc.contratos.Filter(ctx, f, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContratoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContratoResponse(c))
	}
	return &dto.ContratoListResponse{
		Items:      items,
		Pagination: dto.NewPaginacion(total, page, limit),
	}, nil
}

func toContratoResponse(c *entity.Contrato) *dto.ContratoResponse {
	if c == nil {
		return nil
	}
	return &dto.ContratoResponse{
		ID:                 c.ID,
		IDEntidad:          c.IDEntidad,
		IDTipoContrato:     c.IDTipoContrato,
		FechaInicio:        c.FechaInicio,
		FechaFin:           c.FechaFin,
		NumConsecutivo:     c.NumConsecutivo,
		Clasificacion:      c.Clasificacion,
		Nota:               c.Nota,
		NombreEntidad:      c.NombreEntidad,
		NombreTipoContrato: c.NombreTipoContrato,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
