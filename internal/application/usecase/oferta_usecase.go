package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/domain"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
	"github.com/tu-usuario/contratos-api/internal/domain/repository"
	"github.com/tu-usuario/contratos-api/pkg/normalize"
)

// OfertaUseCase escribe el agregado Oferta + descripciones como una unidad:
// o se persisten la cabecera y todas sus líneas, o ninguna.
type OfertaUseCase struct {
	ofertas       repository.OfertaRepository
	descripciones repository.OfertaDescripcionRepository
	contratos     repository.ContratoRepository
	usuarios      repository.UsuarioRepository
	tx            OfertaTx
	now           func() time.Time
}

// NewOfertaUseCase construye el caso de uso.
func NewOfertaUseCase(
	ofertas repository.OfertaRepository,
	descripciones repository.OfertaDescripcionRepository,
	contratos repository.ContratoRepository,
	usuarios repository.UsuarioRepository,
	tx OfertaTx,
) *OfertaUseCase {
	return &OfertaUseCase{
		ofertas:       ofertas,
		descripciones: descripciones,
		contratos:     contratos,
		usuarios:      usuarios,
		tx:            tx,
		now:           time.Now,
	}
}

// validar comprueba fechas, referencias, estado y descripciones, acumulando
// todos los mensajes. El contrato referenciado no puede estar vencido.
func (uc *OfertaUseCase) validar(ctx context.Context, idContrato, idUsuario int, fechaInicio, fechaFin string, estado *string, descripciones []string) (inicio, fin time.Time, errs domain.ValidationErrors, err error) {
	inicio, errInicio := parseFecha(fechaInicio)
	fin, errFin := parseFecha(fechaFin)
	if errInicio != nil {
		errs = append(errs, "la fecha de inicio es inválida")
	}
	if errFin != nil {
		errs = append(errs, "la fecha de fin es inválida")
	}
	if errInicio == nil && errFin == nil && !fin.After(inicio) {
		errs = append(errs, "la fecha de fin debe ser posterior a la fecha de inicio")
	}

	contrato, cerr := uc.contratos.GetByID(ctx, idContrato)
	if cerr != nil {
		return inicio, fin, nil, cerr
	}
	switch {
	case contrato == nil:
		errs = append(errs, fmt.Sprintf("el contrato con ID %d no existe", idContrato))
	case !contrato.FechaFin.After(uc.now()):
		errs = append(errs, "no se puede crear una oferta para un contrato vencido")
	}

	usuarioExiste, uerr := uc.usuarios.Exists(ctx, idUsuario)
	if uerr != nil {
		return inicio, fin, nil, uerr
	}
	if !usuarioExiste {
		errs = append(errs, fmt.Sprintf("el usuario con ID %d no existe", idUsuario))
	}

	if estado != nil && *estado != "" && !entity.EstadoOfertaValido(*estado) {
		errs = append(errs, fmt.Sprintf("estado inválido: %q (valores permitidos: vigente, facturada, vencida)", *estado))
	}

	for i, d := range descripciones {
		if strings.TrimSpace(d) == "" {
			errs = append(errs, fmt.Sprintf("la descripción #%d no puede estar vacía", i+1))
		}
	}

	return inicio, fin, errs, nil
}

// normalizarEstado trata la cadena vacía como "sin estado".
func normalizarEstado(estado *string) *string {
	if estado == nil || *estado == "" {
		return nil
	}
	return estado
}

// Create valida y persiste la oferta con todas sus descripciones en una
// transacción. Ante cualquier fallo no queda ni la cabecera ni líneas sueltas.
func (uc *OfertaUseCase) Create(ctx context.Context, in dto.CreateOfertaRequest) (*dto.OfertaResponse, error) {
	inicio, fin, errs, err := uc.validar(ctx, in.IDContrato, in.IDUsuario, in.FechaInicio, in.FechaFin, in.Estado, in.Descripciones)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errs
	}

	now := uc.now()
	o := &entity.Oferta{
		IDContrato:  in.IDContrato,
		IDUsuario:   in.IDUsuario,
		FechaInicio: inicio,
		FechaFin:    fin,
		Estado:      normalizarEstado(in.Estado),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.RunOferta(ctx, func(ofertas repository.OfertaRepository, descripciones repository.OfertaDescripcionRepository) error {
		if err := ofertas.Create(ctx, o); err != nil {
			return err
		}
		for _, texto := range in.Descripciones {
			d := entity.OfertaDescripcion{
				IDOferta:    o.ID,
				Descripcion: strings.TrimSpace(texto),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := descripciones.Create(ctx, &d); err != nil {
				return err
			}
			o.Descripciones = append(o.Descripciones, d)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOfertaResponse(o), nil
}

// Update actualiza la cabecera y, si Descripciones no es nil, reemplaza el
// conjunto completo de descripciones en la misma transacción (nunca mezcla).
// Con Descripciones nil las líneas existentes quedan intactas.
func (uc *OfertaUseCase) Update(ctx context.Context, id int, in dto.UpdateOfertaRequest) (*dto.OfertaResponse, error) {
	existente, err := uc.ofertas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrNotFound
	}

	var nuevas []string
	if in.Descripciones != nil {
		nuevas = *in.Descripciones
	}
	inicio, fin, errs, err := uc.validar(ctx, in.IDContrato, in.IDUsuario, in.FechaInicio, in.FechaFin, in.Estado, nuevas)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errs
	}

	now := uc.now()
	o := &entity.Oferta{
		ID:          id,
		IDContrato:  in.IDContrato,
		IDUsuario:   in.IDUsuario,
		FechaInicio: inicio,
		FechaFin:    fin,
		Estado:      normalizarEstado(in.Estado),
		CreatedAt:   existente.CreatedAt,
		UpdatedAt:   now,
	}
	err = uc.tx.RunOferta(ctx, func(ofertas repository.OfertaRepository, descripciones repository.OfertaDescripcionRepository) error {
		if err := ofertas.Update(ctx, o); err != nil {
			return err
		}
		if in.Descripciones == nil {
			existentes, lerr := descripciones.ListByOferta(ctx, id)
			if lerr != nil {
				return lerr
			}
			o.Descripciones = existentes
			return nil
		}
		// Reemplazo total: borrar el conjunto anterior e insertar el nuevo.
		if err := descripciones.DeleteByOferta(ctx, id); err != nil {
			return err
		}
		for _, texto := range *in.Descripciones {
			d := entity.OfertaDescripcion{
				IDOferta:    id,
				Descripcion: strings.TrimSpace(texto),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := descripciones.Create(ctx, &d); err != nil {
				return err
			}
			o.Descripciones = append(o.Descripciones, d)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOfertaResponse(o), nil
}

// Delete elimina la oferta y todas sus descripciones en una transacción.
func (uc *OfertaUseCase) Delete(ctx context.Context, id int) error {
	existente, err := uc.ofertas.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existente == nil {
		return domain.ErrNotFound
	}
	return uc.tx.RunOferta(ctx, func(ofertas repository.OfertaRepository, descripciones repository.OfertaDescripcionRepository) error {
		if err := descripciones.DeleteByOferta(ctx, id); err != nil {
			return err
		}
		return ofertas.Delete(ctx, id)
	})
}

// GetByID obtiene una oferta con sus descripciones.
func (uc *OfertaUseCase) GetByID(ctx context.Context, id int) (*dto.OfertaResponse, error) {
	o, err := uc.ofertas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	descs, err := uc.descripciones.ListByOferta(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Descripciones = descs
	return toOfertaResponse(o), nil
}

// GetAll lista todas las ofertas con sus descripciones.
func (uc *OfertaUseCase) GetAll(ctx context.Context) ([]dto.OfertaResponse, error) {
	list, err := uc.ofertas.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfertaResponse, 0, len(list))
	for _, o := range list {
		descs, derr := uc.descripciones.ListByOferta(ctx, o.ID)
		if derr != nil {
			return nil, derr
		}
		o.Descripciones = descs
		items = append(items, *toOfertaResponse(o))
	}
	return items, nil
}

// Filter devuelve la página pedida de ofertas; el total cuenta ofertas
// distintas aunque el criterio de descripción multiplique filas en el join.
func (uc *OfertaUseCase) Filter(ctx context.Context, in dto.FilterOfertasRequest, page, limit int) (*dto.OfertaListResponse, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: el número de página debe ser un entero positivo", domain.ErrInvalidParameter)
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: el límite debe ser un entero positivo", domain.ErrInvalidParameter)
	}

	f := repository.FiltroOfertas{
		IDContrato:  in.IDContrato,
		IDUsuario:   in.IDUsuario,
		Estado:      in.Estado,
		Descripcion: normalize.String(in.Descripcion),
	}
	total, err := uc.ofertas.CountFilter(ctx, f)
	if err != nil {
		return nil, err
	}
	list, err := uc.ofertas.Filter(ctx, f, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfertaResponse, 0, len(list))
	for _, o := range list {
		descs, derr := uc.descripciones.ListByOferta(ctx, o.ID)
		if derr != nil {
			return nil, derr
		}
		o.Descripciones = descs
		items = append(items, *toOfertaResponse(o))
	}
	return &dto.OfertaListResponse{
		Items:      items,
		Pagination: dto.NewPaginacion(total, page, limit),
	}, nil
}

func toOfertaResponse(o *entity.Oferta) *dto.OfertaResponse {
	if o == nil {
		return nil
	}
	descs := make([]dto.OfertaDescripcionResponse, 0, len(o.Descripciones))
	for _, d := range o.Descripciones {
		descs = append(descs, dto.OfertaDescripcionResponse{ID: d.ID, Descripcion: d.Descripcion})
	}
	return &dto.OfertaResponse{
		ID:            o.ID,
		IDContrato:    o.IDContrato,
		IDUsuario:     o.IDUsuario,
		FechaInicio:   o.FechaInicio,
		FechaFin:      o.FechaFin,
		Estado:        o.Estado,
		Descripciones: descs,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
