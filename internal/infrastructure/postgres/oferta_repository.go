package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/contratos-api/internal/domain"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
	"github.com/tu-usuario/contratos-api/internal/domain/repository"
)

var _ repository.OfertaRepository = (*OfertaRepo)(nil)
var _ repository.OfertaDescripcionRepository = (*OfertaDescripcionRepo)(nil)

// OfertaRepo implementación del puerto OfertaRepository sobre PostgreSQL (usable con pool o tx).
type OfertaRepo struct {
	q Querier
}

// NewOfertaRepository construye el adaptador de persistencia para ofertas. Pasar pool o tx (Querier).
func NewOfertaRepository(q Querier) *OfertaRepo {
	return &OfertaRepo{q: q}
}

const ofertaColumns = `o.id_oferta, o.id_contrato, o.id_usuario, o.fecha_inicio, o.fecha_fin, o.estado, o.created_at, o.updated_at`

func scanOferta(row pgx.Row) (*entity.Oferta, error) {
	var o entity.Oferta
	err := row.Scan(
		&o.ID, &o.IDContrato, &o.IDUsuario, &o.FechaInicio, &o.FechaFin,
		&o.Estado, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func collectOfertas(rows pgx.Rows) ([]*entity.Oferta, error) {
	var items []*entity.Oferta
	for rows.Next() {
		o, err := scanOferta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan oferta: %w", err)
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar ofertas: %w", err)
	}
	return items, nil
}

// Create persiste la cabecera de una oferta y asigna el ID generado.
// Las descripciones se insertan aparte, dentro de la misma transacción.
func (r *OfertaRepo) Create(ctx context.Context, o *entity.Oferta) error {
	query := `
		INSERT INTO ofertas (id_contrato, id_usuario, fecha_inicio, fecha_fin, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_oferta`
	err := r.q.QueryRow(ctx, query,
		o.IDContrato, o.IDUsuario, o.FechaInicio, o.FechaFin, o.Estado, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert oferta: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una oferta por ID. Devuelve (nil, nil) si no existe.
func (r *OfertaRepo) GetByID(ctx context.Context, id int) (*entity.Oferta, error) {
	o, err := scanOferta(r.q.QueryRow(ctx,
		`SELECT `+ofertaColumns+` FROM ofertas o WHERE o.id_oferta = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get oferta: %w", err)
	}
	return o, nil
}

// GetAll lista todas las ofertas, más recientes primero.
func (r *OfertaRepo) GetAll(ctx context.Context) ([]*entity.Oferta, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+ofertaColumns+` FROM ofertas o ORDER BY o.fecha_inicio DESC, o.id_oferta DESC`)
	if err != nil {
		return nil, fmt.Errorf("list ofertas: %w", err)
	}
	defer rows.Close()
	return collectOfertas(rows)
}

// Update actualiza la cabecera de una oferta.
func (r *OfertaRepo) Update(ctx context.Context, o *entity.Oferta) error {
	query := `
		UPDATE ofertas
		SET id_contrato = $2, id_usuario = $3, fecha_inicio = $4, fecha_fin = $5, estado = $6, updated_at = $7
		WHERE id_oferta = $1`
	cmd, err := r.q.Exec(ctx, query,
		o.ID, o.IDContrato, o.IDUsuario, o.FechaInicio, o.FechaFin, o.Estado, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update oferta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la cabecera de una oferta. Las descripciones se borran antes,
// dentro de la misma transacción.
func (r *OfertaRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM ofertas WHERE id_oferta = $1`, id)
	if err != nil {
		return fmt.Errorf("delete oferta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByContrato lista las ofertas emitidas bajo un contrato.
func (r *OfertaRepo) ListByContrato(ctx context.Context, idContrato int) ([]*entity.Oferta, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+ofertaColumns+` FROM ofertas o WHERE o.id_contrato = $1 ORDER BY o.fecha_inicio DESC`,
		idContrato,
	)
	if err != nil {
		return nil, fmt.Errorf("list ofertas por contrato: %w", err)
	}
	defer rows.Close()
	return collectOfertas(rows)
}

// ListByUsuario devuelve las ofertas registradas por un usuario.
func (r *OfertaRepo) ListByUsuario(ctx context.Context, idUsuario int) ([]*entity.Oferta, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+ofertaColumns+` FROM ofertas o WHERE o.id_usuario = $1 ORDER BY o.id_oferta`,
		idUsuario,
	)
	if err != nil {
		return nil, fmt.Errorf("list ofertas por usuario: %w", err)
	}
	defer rows.Close()
	return collectOfertas(rows)
}

// filtroOfertasWhere arma el WHERE dinámico y decide si hace falta el join con
// las descripciones. El criterio Descripcion llega normalizado (minúsculas, sin
// acentos).
func filtroOfertasWhere(f repository.FiltroOfertas) (join, where string, args []any) {
	var conds []string
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.IDContrato != nil {
		add(`o.id_contrato = $%d`, *f.IDContrato)
	}
	if f.IDUsuario != nil {
		add(`o.id_usuario = $%d`, *f.IDUsuario)
	}
	if f.Estado != "" {
		add(`o.estado = $%d`, f.Estado)
	}
	if f.Descripcion != "" {
		join = ` JOIN oferta_descripciones d ON d.id_oferta = o.id_oferta`
		add(`unaccent(lower(d.descripcion)) LIKE $%d`, likePattern(f.Descripcion))
	}
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	return join, where, args
}

// Filter lista ofertas que cumplen todos los criterios, paginadas. Cuando se
// filtra por descripción el join puede repetir la cabecera, por eso DISTINCT.
func (r *OfertaRepo) Filter(ctx context.Context, f repository.FiltroOfertas, limit, offset int) ([]*entity.Oferta, error) {
	join, where, args := filtroOfertasWhere(f)
	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT DISTINCT `+ofertaColumns+` FROM ofertas o%s%s ORDER BY o.fecha_inicio DESC, o.id_oferta DESC LIMIT $%d OFFSET $%d`,
		join, where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter ofertas: %w", err)
	}
	defer rows.Close()
	return collectOfertas(rows)
}

// CountFilter cuenta ofertas distintas que cumplen todos los criterios.
func (r *OfertaRepo) CountFilter(ctx context.Context, f repository.FiltroOfertas) (int, error) {
	join, where, args := filtroOfertasWhere(f)
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(DISTINCT o.id_oferta) FROM ofertas o`+join+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count ofertas: %w", err)
	}
	return total, nil
}

// OfertaDescripcionRepo implementación del puerto OfertaDescripcionRepository.
type OfertaDescripcionRepo struct {
	q Querier
}

// NewOfertaDescripcionRepository construye el adaptador para las líneas de descripción.
func NewOfertaDescripcionRepository(q Querier) *OfertaDescripcionRepo {
	return &OfertaDescripcionRepo{q: q}
}

// Create inserta una línea de descripción y asigna el ID generado.
func (r *OfertaDescripcionRepo) Create(ctx context.Context, d *entity.OfertaDescripcion) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO oferta_descripciones (id_oferta, descripcion, created_at, updated_at)
		 VALUES ($1, $2, $3, $4) RETURNING id_descripcion`,
		d.IDOferta, d.Descripcion, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert descripción de oferta: %w", err)
	}
	return nil
}

// ListByOferta lista las descripciones de una oferta en orden de inserción.
func (r *OfertaDescripcionRepo) ListByOferta(ctx context.Context, idOferta int) ([]entity.OfertaDescripcion, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id_descripcion, id_oferta, descripcion, created_at, updated_at
		 FROM oferta_descripciones WHERE id_oferta = $1 ORDER BY id_descripcion`,
		idOferta,
	)
	if err != nil {
		return nil, fmt.Errorf("list descripciones de oferta: %w", err)
	}
	defer rows.Close()

	var items []entity.OfertaDescripcion
	for rows.Next() {
		var d entity.OfertaDescripcion
		if err := rows.Scan(&d.ID, &d.IDOferta, &d.Descripcion, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan descripción de oferta: %w", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar descripciones de oferta: %w", err)
	}
	return items, nil
}

// DeleteByOferta borra todas las descripciones de una oferta.
func (r *OfertaDescripcionRepo) DeleteByOferta(ctx context.Context, idOferta int) error {
	_, err := r.q.Exec(ctx, `DELETE FROM oferta_descripciones WHERE id_oferta = $1`, idOferta)
	if err != nil {
		return fmt.Errorf("delete descripciones de oferta: %w", err)
	}
	return nil
}
