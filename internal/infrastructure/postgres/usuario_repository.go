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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioColumns = `id_usuario, nombre, nombre_usuario, cargo, contrasenna, rol, activo, created_at, updated_at`

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nombre, &u.NombreUsuario, &u.Cargo, &u.Contrasenna, &u.Rol, &u.Activo, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un usuario nuevo y asigna el ID generado.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO usuarios (nombre, nombre_usuario, cargo, contrasenna, rol, activo, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id_usuario`,
		u.Nombre, u.NombreUsuario, u.Cargo, u.Contrasenna, u.Rol, u.Activo, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un usuario con ese nombre de usuario", domain.ErrConflict)
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int) (*entity.Usuario, error) {
	u, err := scanUsuario(r.q.QueryRow(ctx,
		`SELECT `+usuarioColumns+` FROM usuarios WHERE id_usuario = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// GetByNombreUsuario obtiene un usuario por su nombre de usuario. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByNombreUsuario(ctx context.Context, nombreUsuario string) (*entity.Usuario, error) {
	u, err := scanUsuario(r.q.QueryRow(ctx,
		`SELECT `+usuarioColumns+` FROM usuarios WHERE nombre_usuario = $1`, nombreUsuario))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por nombre de usuario: %w", err)
	}
	return u, nil
}

// GetAll lista todos los usuarios ordenados por nombre.
func (r *UsuarioRepo) GetAll(ctx context.Context) ([]*entity.Usuario, error) {
	rows, err := r.q.Query(ctx, `SELECT `+usuarioColumns+` FROM usuarios ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var items []*entity.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar usuarios: %w", err)
	}
	return items, nil
}

// Update actualiza un usuario existente.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE usuarios
		 SET nombre = $2, nombre_usuario = $3, cargo = $4, contrasenna = $5, rol = $6, activo = $7, updated_at = $8
		 WHERE id_usuario = $1`,
		u.ID, u.Nombre, u.NombreUsuario, u.Cargo, u.Contrasenna, u.Rol, u.Activo, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un usuario con ese nombre de usuario", domain.ErrConflict)
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUsuarioNotFound
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UsuarioRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id_usuario = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUsuarioNotFound
	}
	return nil
}

// filtroUsuariosWhere arma el WHERE dinámico del filtro. Los criterios de texto
// llegan normalizados; del lado SQL se pliega con unaccent(lower(col)).
func filtroUsuariosWhere(f repository.FiltroUsuarios) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Nombre != "" {
		add(`unaccent(lower(nombre)) LIKE $%d`, likePattern(f.Nombre))
	}
	if f.NombreUsuario != "" {
		add(`lower(nombre_usuario) LIKE $%d`, likePattern(f.NombreUsuario))
	}
	if f.Cargo != "" {
		add(`unaccent(lower(cargo)) LIKE $%d`, likePattern(f.Cargo))
	}
	if f.Rol != "" {
		add(`rol = $%d`, f.Rol)
	}
	if f.Activo != nil {
		add(`activo = $%d`, *f.Activo)
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Filter lista usuarios que cumplen todos los criterios, paginados.
func (r *UsuarioRepo) Filter(ctx context.Context, f repository.FiltroUsuarios, limit, offset int) ([]*entity.Usuario, error) {
	where, args := filtroUsuariosWhere(f)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+usuarioColumns+` FROM usuarios%s ORDER BY nombre LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter usuarios: %w", err)
	}
	defer rows.Close()

	var items []*entity.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar usuarios: %w", err)
	}
	return items, nil
}

// CountFilter cuenta los usuarios que cumplen todos los criterios.
func (r *UsuarioRepo) CountFilter(ctx context.Context, f repository.FiltroUsuarios) (int, error) {
	where, args := filtroUsuariosWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM usuarios`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count usuarios: %w", err)
	}
	return total, nil
}

// Exists indica si existe un usuario con el ID dado.
func (r *UsuarioRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE id_usuario = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists usuario: %w", err)
	}
	return exists, nil
}
