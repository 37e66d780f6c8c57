package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/contratos-api/internal/domain"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
	"github.com/tu-usuario/contratos-api/internal/domain/repository"
)

var _ repository.ContratoRepository = (*ContratoRepo)(nil)

// ContratoRepo implementación del puerto ContratoRepository sobre PostgreSQL (usable con pool o tx).
type ContratoRepo struct {
	q Querier
}

// NewContratoRepository construye el adaptador de persistencia para contratos. Pasar pool o tx (Querier).
func NewContratoRepository(q Querier) *ContratoRepo {
	return &ContratoRepo{q: q}
}

// Las lecturas traen los nombres de entidad y tipo para no obligar a otra consulta.
const contratoSelect = `
	SELECT c.id_contrato, c.id_entidad, c.id_tipo_contrato, c.fecha_inicio, c.fecha_fin,
	       c.num_consecutivo, c.clasificacion, c.nota, c.created_at, c.updated_at,
	       e.nombre, t.nombre
	FROM contratos c
	JOIN entidades e ON e.id_entidad = c.id_entidad
	JOIN tipos_contrato t ON t.id_tipo_contrato = c.id_tipo_contrato`

func scanContrato(row pgx.Row) (*entity.Contrato, error) {
	var c entity.Contrato
	err := row.Scan(
		&c.ID, &c.IDEntidad, &c.IDTipoContrato, &c.FechaInicio, &c.FechaFin,
		&c.NumConsecutivo, &c.Clasificacion, &c.Nota, &c.CreatedAt, &c.UpdatedAt,
		&c.NombreEntidad, &c.NombreTipoContrato,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectContratos(rows pgx.Rows) ([]*entity.Contrato, error) {
	var items []*entity.Contrato
	for rows.Next() {
		c, err := scanContrato(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contrato: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar contratos: %w", err)
	}
	return items, nil
}

// Create persiste un contrato nuevo y asigna el ID generado. El índice único
// sobre (num_consecutivo, año de fecha_inicio) respalda la revalidación en tx:
// si dos transacciones pasan la validación con el mismo número, una recibe 23505.
func (r *ContratoRepo) Create(ctx context.Context, c *entity.Contrato) error {
	query := `
		INSERT INTO contratos (id_entidad, id_tipo_contrato, fecha_inicio, fecha_fin, num_consecutivo, clasificacion, nota, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id_contrato`
	err := r.q.QueryRow(ctx, query,
		c.IDEntidad, c.IDTipoContrato, c.FechaInicio, c.FechaFin,
		c.NumConsecutivo, c.Clasificacion, c.Nota, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el número consecutivo %d ya está usado en ese año", domain.ErrConflict, c.NumConsecutivo)
		}
		return fmt.Errorf("insert contrato: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID con los nombres asociados. Devuelve (nil, nil) si no existe.
func (r *ContratoRepo) GetByID(ctx context.Context, id int) (*entity.Contrato, error) {
	c, err := scanContrato(r.q.QueryRow(ctx, contratoSelect+` WHERE c.id_contrato = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contrato: %w", err)
	}
	return c, nil
}

// GetAll lista todos los contratos, más recientes primero.
func (r *ContratoRepo) GetAll(ctx context.Context) ([]*entity.Contrato, error) {
	rows, err := r.q.Query(ctx, contratoSelect+` ORDER BY c.fecha_inicio DESC, c.id_contrato DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contratos: %w", err)
	}
	defer rows.Close()
	return collectContratos(rows)
}

// Update actualiza un contrato existente.
func (r *ContratoRepo) Update(ctx context.Context, c *entity.Contrato) error {
	query := `
		UPDATE contratos
		SET id_entidad = $2, id_tipo_contrato = $3, fecha_inicio = $4, fecha_fin = $5,
		    num_consecutivo = $6, clasificacion = $7, nota = $8, updated_at = $9
		WHERE id_contrato = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.ID, c.IDEntidad, c.IDTipoContrato, c.FechaInicio, c.FechaFin,
		c.NumConsecutivo, c.Clasificacion, c.Nota, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el número consecutivo %d ya está usado en ese año", domain.ErrConflict, c.NumConsecutivo)
		}
		return fmt.Errorf("update contrato: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un contrato por ID. Las reglas de integridad referencial se
// verifican antes en el caso de uso; el FK de la base es la última defensa.
func (r *ContratoRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM contratos WHERE id_contrato = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contrato: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MaxConsecutivoEnRango devuelve el mayor num_consecutivo entre los contratos
// cuya fecha_inicio cae en [desde, hasta]; 0 si no hay ninguno.
func (r *ContratoRepo) MaxConsecutivoEnRango(ctx context.Context, desde, hasta time.Time) (int, error) {
	var max int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(MAX(num_consecutivo), 0) FROM contratos WHERE fecha_inicio BETWEEN $1 AND $2`,
		desde, hasta,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max consecutivo: %w", err)
	}
	return max, nil
}

// ExisteConsecutivoEnRango indica si otro contrato (distinto de excludeID, si no
// es nil) usa num con fecha_inicio dentro del rango.
func (r *ContratoRepo) ExisteConsecutivoEnRango(ctx context.Context, num int, desde, hasta time.Time, excludeID *int) (bool, error) {
	var exists bool
	var err error
	if excludeID != nil {
		err = r.q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM contratos WHERE num_consecutivo = $1 AND fecha_inicio BETWEEN $2 AND $3 AND id_contrato <> $4)`,
			num, desde, hasta, *excludeID,
		).Scan(&exists)
	} else {
		err = r.q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM contratos WHERE num_consecutivo = $1 AND fecha_inicio BETWEEN $2 AND $3)`,
			num, desde, hasta,
		).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("existe consecutivo: %w", err)
	}
	return exists, nil
}

// ExisteVigentePorEntidadTipo indica si otro contrato del mismo par (entidad, tipo)
// tiene fecha_fin posterior a ahora.
func (r *ContratoRepo) ExisteVigentePorEntidadTipo(ctx context.Context, idEntidad, idTipoContrato int, ahora time.Time, excludeID *int) (bool, error) {
	var exists bool
	var err error
	if excludeID != nil {
		err = r.q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM contratos WHERE id_entidad = $1 AND id_tipo_contrato = $2 AND fecha_fin > $3 AND id_contrato <> $4)`,
			idEntidad, idTipoContrato, ahora, *excludeID,
		).Scan(&exists)
	} else {
		err = r.q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM contratos WHERE id_entidad = $1 AND id_tipo_contrato = $2 AND fecha_fin > $3)`,
			idEntidad, idTipoContrato, ahora,
		).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("existe contrato vigente: %w", err)
	}
	return exists, nil
}

// ListByEntidad lista los contratos de una entidad.
func (r *ContratoRepo) ListByEntidad(ctx context.Context, idEntidad int) ([]*entity.Contrato, error) {
	rows, err := r.q.Query(ctx, contratoSelect+` WHERE c.id_entidad = $1 ORDER BY c.fecha_inicio DESC`, idEntidad)
	if err != nil {
		return nil, fmt.Errorf("list contratos por entidad: %w", err)
	}
	defer rows.Close()
	return collectContratos(rows)
}

// ListByTipoContrato lista los contratos de un tipo.
func (r *ContratoRepo) ListByTipoContrato(ctx context.Context, idTipoContrato int) ([]*entity.Contrato, error) {
	rows, err := r.q.Query(ctx, contratoSelect+` WHERE c.id_tipo_contrato = $1 ORDER BY c.fecha_inicio DESC`, idTipoContrato)
	if err != nil {
		return nil, fmt.Errorf("list contratos por tipo: %w", err)
	}
	defer rows.Close()
	return collectContratos(rows)
}

// ProximosAVencer lista contratos con fecha_fin dentro de (desde, hasta], ordenados
// por cercanía del vencimiento.
func (r *ContratoRepo) ProximosAVencer(ctx context.Context, desde, hasta time.Time) ([]*entity.Contrato, error) {
	rows, err := r.q.Query(ctx,
		contratoSelect+` WHERE c.fecha_fin > $1 AND c.fecha_fin <= $2 ORDER BY c.fecha_fin`,
		desde, hasta,
	)
	if err != nil {
		return nil, fmt.Errorf("list contratos próximos a vencer: %w", err)
	}
	defer rows.Close()
	return collectContratos(rows)
}

// filtroContratosWhere arma el WHERE dinámico del filtro. Los criterios de texto
// llegan normalizados (minúsculas, sin acentos) y se comparan con
// unaccent(lower(col)); los nombres asociados filtran sobre las tablas unidas.
func filtroContratosWhere(f repository.FiltroContratos) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.NumConsecutivo != nil {
		add(`c.num_consecutivo = $%d`, *f.NumConsecutivo)
	}
	if f.IDEntidad != nil {
		add(`c.id_entidad = $%d`, *f.IDEntidad)
	}
	if f.IDTipoContrato != nil {
		add(`c.id_tipo_contrato = $%d`, *f.IDTipoContrato)
	}
	if f.Clasificacion != "" {
		add(`unaccent(lower(c.clasificacion)) LIKE $%d`, likePattern(f.Clasificacion))
	}
	if f.Nota != "" {
		add(`unaccent(lower(c.nota)) LIKE $%d`, likePattern(f.Nota))
	}
	if f.NombreEntidad != "" {
		add(`unaccent(lower(e.nombre)) LIKE $%d`, likePattern(f.NombreEntidad))
	}
	if f.NombreTipoContrato != "" {
		add(`unaccent(lower(t.nombre)) LIKE $%d`, likePattern(f.NombreTipoContrato))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Filter lista contratos que cumplen todos los criterios, paginados.
func (r *ContratoRepo) Filter(ctx context.Context, f repository.FiltroContratos, limit, offset int) ([]*entity.Contrato, error) {
	where, args := filtroContratosWhere(f)
	args = append(args, limit, offset)
	query := fmt.Sprintf(contratoSelect+`%s ORDER BY c.fecha_inicio DESC, c.id_contrato DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter contratos: %w", err)
	}
	defer rows.Close()
	return collectContratos(rows)
}

// CountFilter cuenta contratos distintos que cumplen todos los criterios.
func (r *ContratoRepo) CountFilter(ctx context.Context, f repository.FiltroContratos) (int, error) {
	where, args := filtroContratosWhere(f)
	query := `
		SELECT COUNT(DISTINCT c.id_contrato)
		FROM contratos c
		JOIN entidades e ON e.id_entidad = c.id_entidad
		JOIN tipos_contrato t ON t.id_tipo_contrato = c.id_tipo_contrato` + where
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count contratos: %w", err)
	}
	return total, nil
}
