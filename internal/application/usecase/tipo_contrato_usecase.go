package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/contratos-api/internal/domain"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
	"github.com/tu-usuario/contratos-api/internal/domain/repository"
)

// TipoContratoUseCase CRUD del catálogo de tipos de contrato.
type TipoContratoUseCase struct {
	tipos     repository.TipoContratoRepository
	contratos repository.ContratoRepository
	now       func() time.Time
}

// NewTipoContratoUseCase construye el caso de uso.
func NewTipoContratoUseCase(tipos repository.TipoContratoRepository, contratos repository.ContratoRepository) *TipoContratoUseCase {
	return &TipoContratoUseCase{tipos: tipos, contratos: contratos, now: time.Now}
}

// Create crea un tipo de contrato.
func (uc *TipoContratoUseCase) Create(ctx context.Context, nombre string) (*entity.TipoContrato, error) {
	if nombre == "" {
		return nil, domain.ValidationErrors{"el nombre es requerido"}
	}
	now := uc.now()
	t := &entity.TipoContrato{Nombre: nombre, CreatedAt: now, UpdatedAt: now}
	if err := uc.tipos.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetByID obtiene un tipo de contrato por ID.
func (uc *TipoContratoUseCase) GetByID(ctx context.Context, id int) (*entity.TipoContrato, error) {
	t, err := uc.tipos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

// GetAll lista el catálogo completo.
func (uc *TipoContratoUseCase) GetAll(ctx context.Context) ([]*entity.TipoContrato, error) {
	return uc.tipos.GetAll(ctx)
}

// Update renombra un tipo de contrato.
func (uc *TipoContratoUseCase) Update(ctx context.Context, id int, nombre string) (*entity.TipoContrato, error) {
	if nombre == "" {
		return nil, domain.ValidationErrors{"el nombre es requerido"}
	}
	t, err := uc.tipos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	t.Nombre = nombre
	t.UpdatedAt = uc.now()
	if err := uc.tipos.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete elimina el tipo salvo que existan contratos de ese tipo; en tal caso
// devuelve la lista de contratos que bloquean el borrado.
func (uc *TipoContratoUseCase) Delete(ctx context.Context, id int) error {
	t, err := uc.tipos.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	contratos, err := uc.contratos.ListByTipoContrato(ctx, id)
	if err != nil {
		return err
	}
	if len(contratos) > 0 {
		bloqueos := make([]domain.Bloqueo, 0, len(contratos))
		for _, c := range contratos {
			bloqueos = append(bloqueos, domain.Bloqueo{ID: c.ID, Etiqueta: c.Clasificacion})
		}
		return &domain.ReferentialError{Recurso: "tipo de contrato", Relacion: "contratos", Bloqueos: bloqueos}
	}
	return uc.tipos.Delete(ctx, id)
}
