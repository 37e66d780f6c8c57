package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tu-usuario/contratos-api/internal/domain"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
	"github.com/tu-usuario/contratos-api/internal/domain/repository"
)

var _ repository.EntidadRepository = (*EntidadRepo)(nil)

// EntidadRepo implementación del puerto EntidadRepository sobre PostgreSQL (usable con pool o tx).
type EntidadRepo struct {
	q Querier
}

// NewEntidadRepository construye el adaptador de persistencia para entidades. Pasar pool o tx (Querier).
func NewEntidadRepository(q Querier) *EntidadRepo {
	return &EntidadRepo{q: q}
}

const entidadColumns = `id_entidad, nombre, direccion, telefono, email, cuenta_bancaria, tipo_entidad, codigo_reo, codigo_nit, activo, created_at, updated_at`

func scanEntidad(row pgx.Row) (*entity.Entidad, error) {
	var e entity.Entidad
	err := row.Scan(
		&e.ID, &e.Nombre, &e.Direccion, &e.Telefono, &e.Email, &e.CuentaBancaria,
		&e.TipoEntidad, &e.CodigoREO, &e.CodigoNIT, &e.Activo, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste una entidad nueva y asigna el ID generado.
func (r *EntidadRepo) Create(ctx context.Context, e *entity.Entidad) error {
	query := `
		INSERT INTO entidades (nombre, direccion, telefono, email, cuenta_bancaria, tipo_entidad, codigo_reo, codigo_nit, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id_entidad`
	err := r.q.QueryRow(ctx, query,
		e.Nombre, e.Direccion, e.Telefono, e.Email, e.CuentaBancaria,
		e.TipoEntidad, e.CodigoREO, e.CodigoNIT, e.Activo, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrConflict, mensajeEntidadDuplicada(err))
		}
		return fmt.Errorf("insert entidad: %w", err)
	}
	return nil
}

// mensajeEntidadDuplicada distingue qué índice único disparó el 23505.
func mensajeEntidadDuplicada(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName == "ux_entidades_nombre" {
		return "ya existe una entidad con ese nombre"
	}
	return "ya existe una entidad con ese email"
}

// GetByID obtiene una entidad por ID. Devuelve (nil, nil) si no existe.
func (r *EntidadRepo) GetByID(ctx context.Context, id int) (*entity.Entidad, error) {
	e, err := scanEntidad(r.q.QueryRow(ctx,
		`SELECT `+entidadColumns+` FROM entidades WHERE id_entidad = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entidad: %w", err)
	}
	return e, nil
}

// GetAll lista todas las entidades ordenadas por nombre.
func (r *EntidadRepo) GetAll(ctx context.Context) ([]*entity.Entidad, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+entidadColumns+` FROM entidades ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list entidades: %w", err)
	}
	defer rows.Close()
	return collectEntidades(rows)
}

// Update actualiza una entidad existente.
func (r *EntidadRepo) Update(ctx context.Context, e *entity.Entidad) error {
	query := `
		UPDATE entidades
		SET nombre = $2, direccion = $3, telefono = $4, email = $5, cuenta_bancaria = $6,
		    tipo_entidad = $7, codigo_reo = $8, codigo_nit = $9, activo = $10, updated_at = $11
		WHERE id_entidad = $1`
	cmd, err := r.q.Exec(ctx, query,
		e.ID, e.Nombre, e.Direccion, e.Telefono, e.Email, e.CuentaBancaria,
		e.TipoEntidad, e.CodigoREO, e.CodigoNIT, e.Activo, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrConflict, mensajeEntidadDuplicada(err))
		}
		return fmt.Errorf("update entidad: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una entidad por ID.
func (r *EntidadRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM entidades WHERE id_entidad = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entidad: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Exists indica si existe una entidad con el ID dado.
func (r *EntidadRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM entidades WHERE id_entidad = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists entidad: %w", err)
	}
	return exists, nil
}

// ExistsByEmail indica si otra entidad (distinta de excludeID, si no es nil) usa el email.
func (r *EntidadRepo) ExistsByEmail(ctx context.Context, email string, excludeID *int) (bool, error) {
	var exists bool
	var err error
	if excludeID != nil {
		err = r.q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM entidades WHERE lower(email) = lower($1) AND id_entidad <> $2)`,
			email, *excludeID).Scan(&exists)
	} else {
		err = r.q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM entidades WHERE lower(email) = lower($1))`,
			email).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("exists entidad por email: %w", err)
	}
	return exists, nil
}

// ExistsByNombre indica si otra entidad (distinta de excludeID, si no es nil) usa el nombre.
func (r *EntidadRepo) ExistsByNombre(ctx context.Context, nombre string, excludeID *int) (bool, error) {
	var exists bool
	var err error
	if excludeID != nil {
		err = r.q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM entidades WHERE lower(nombre) = lower($1) AND id_entidad <> $2)`,
			nombre, *excludeID).Scan(&exists)
	} else {
		err = r.q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM entidades WHERE lower(nombre) = lower($1))`,
			nombre).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("exists entidad por nombre: %w", err)
	}
	return exists, nil
}

// filtroEntidadesWhere arma el WHERE dinámico del filtro. Los criterios de texto
// llegan ya normalizados (minúsculas, sin acentos); del lado SQL se pliega con
// unaccent(lower(col)) para que ambos lados comparen igual.
func filtroEntidadesWhere(f repository.FiltroEntidades) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Nombre != "" {
		add(`unaccent(lower(nombre)) LIKE $%d`, likePattern(f.Nombre))
	}
	if f.Direccion != "" {
		add(`unaccent(lower(direccion)) LIKE $%d`, likePattern(f.Direccion))
	}
	if f.Telefono != "" {
		add(`telefono LIKE $%d`, likePattern(f.Telefono))
	}
	if f.CuentaBancaria != "" {
		add(`cuenta_bancaria LIKE $%d`, likePattern(f.CuentaBancaria))
	}
	if f.TipoEntidad != "" {
		add(`unaccent(lower(tipo_entidad)) LIKE $%d`, likePattern(f.TipoEntidad))
	}
	if f.CodigoREO != "" {
		add(`codigo_reo LIKE $%d`, likePattern(f.CodigoREO))
	}
	if f.CodigoNIT != "" {
		add(`codigo_nit LIKE $%d`, likePattern(f.CodigoNIT))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Filter lista entidades que cumplen todos los criterios, paginadas.
func (r *EntidadRepo) Filter(ctx context.Context, f repository.FiltroEntidades, limit, offset int) ([]*entity.Entidad, error) {
	where, args := filtroEntidadesWhere(f)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+entidadColumns+` FROM entidades%s ORDER BY nombre LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter entidades: %w", err)
	}
	defer rows.Close()
	return collectEntidades(rows)
}

// CountFilter cuenta las entidades que cumplen todos los criterios.
func (r *EntidadRepo) CountFilter(ctx context.Context, f repository.FiltroEntidades) (int, error) {
	where, args := filtroEntidadesWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM entidades`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count entidades: %w", err)
	}
	return total, nil
}

func collectEntidades(rows pgx.Rows) ([]*entity.Entidad, error) {
	var items []*entity.Entidad
	for rows.Next() {
		e, err := scanEntidad(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entidad: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar entidades: %w", err)
	}
	return items, nil
}
