package repository

import (
	"context"

	"github.com/tu-usuario/contratos-api/internal/domain/entity"
)

// FiltroOfertas criterios opcionales de búsqueda de ofertas.
type FiltroOfertas struct {
	IDContrato  *int
	IDUsuario   *int
	Estado      string
	Descripcion string // busca en las descripciones asociadas (join)
}

// OfertaRepository puerto de persistencia para Oferta (cabecera del agregado).
type OfertaRepository interface {
	Create(ctx context.Context, o *entity.Oferta) error
	GetByID(ctx context.Context, id int) (*entity.Oferta, error)
	GetAll(ctx context.Context) ([]*entity.Oferta, error)
	Update(ctx context.Context, o *entity.Oferta) error
	Delete(ctx context.Context, id int) error
	ListByContrato(ctx context.Context, idContrato int) ([]*entity.Oferta, error)
	ListByUsuario(ctx context.Context, idUsuario int) ([]*entity.Oferta, error)
	Filter(ctx context.Context, f FiltroOfertas, limit, offset int) ([]*entity.Oferta, error)
	CountFilter(ctx context.Context, f FiltroOfertas) (int, error)
}

// OfertaDescripcionRepository puerto para las líneas de descripción.
// Solo se escribe dentro de la transacción del agregado Oferta.
type OfertaDescripcionRepository interface {
	Create(ctx context.Context, d *entity.OfertaDescripcion) error
	ListByOferta(ctx context.Context, idOferta int) ([]entity.OfertaDescripcion, error)
	DeleteByOferta(ctx context.Context, idOferta int) error
}
