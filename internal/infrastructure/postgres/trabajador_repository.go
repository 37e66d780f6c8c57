package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/contratos-api/internal/domain"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
	"github.com/tu-usuario/contratos-api/internal/domain/repository"
)

var _ repository.TrabajadorRepository = (*TrabajadorRepo)(nil)
var _ repository.ContratoTrabajadorRepository = (*ContratoTrabajadorRepo)(nil)

// TrabajadorRepo implementación del puerto TrabajadorRepository sobre PostgreSQL.
type TrabajadorRepo struct {
	q Querier
}

// NewTrabajadorRepository construye el adaptador de persistencia para trabajadores autorizados.
func NewTrabajadorRepository(q Querier) *TrabajadorRepo {
	return &TrabajadorRepo{q: q}
}

const trabajadorColumns = `id_trabajador_autorizado, nombre, cargo, carnet_identidad, num_telefono, created_at, updated_at`

func scanTrabajador(row pgx.Row) (*entity.TrabajadorAutorizado, error) {
	var t entity.TrabajadorAutorizado
	err := row.Scan(&t.ID, &t.Nombre, &t.Cargo, &t.CarnetIdentidad, &t.NumTelefono, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste un trabajador nuevo y asigna el ID generado.
func (r *TrabajadorRepo) Create(ctx context.Context, t *entity.TrabajadorAutorizado) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO trabajadores_autorizados (nombre, cargo, carnet_identidad, num_telefono, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id_trabajador_autorizado`,
		t.Nombre, t.Cargo, t.CarnetIdentidad, t.NumTelefono, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un trabajador con ese carnet de identidad", domain.ErrConflict)
		}
		return fmt.Errorf("insert trabajador: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID. Devuelve (nil, nil) si no existe.
func (r *TrabajadorRepo) GetByID(ctx context.Context, id int) (*entity.TrabajadorAutorizado, error) {
	t, err := scanTrabajador(r.q.QueryRow(ctx,
		`SELECT `+trabajadorColumns+` FROM trabajadores_autorizados WHERE id_trabajador_autorizado = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trabajador: %w", err)
	}
	return t, nil
}

// GetAll lista todos los trabajadores ordenados por nombre.
func (r *TrabajadorRepo) GetAll(ctx context.Context) ([]*entity.TrabajadorAutorizado, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+trabajadorColumns+` FROM trabajadores_autorizados ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list trabajadores: %w", err)
	}
	defer rows.Close()

	var items []*entity.TrabajadorAutorizado
	for rows.Next() {
		t, err := scanTrabajador(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trabajador: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar trabajadores: %w", err)
	}
	return items, nil
}

// Update actualiza un trabajador existente.
func (r *TrabajadorRepo) Update(ctx context.Context, t *entity.TrabajadorAutorizado) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE trabajadores_autorizados
		 SET nombre = $2, cargo = $3, carnet_identidad = $4, num_telefono = $5, updated_at = $6
		 WHERE id_trabajador_autorizado = $1`,
		t.ID, t.Nombre, t.Cargo, t.CarnetIdentidad, t.NumTelefono, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un trabajador con ese carnet de identidad", domain.ErrConflict)
		}
		return fmt.Errorf("update trabajador: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un trabajador por ID.
func (r *TrabajadorRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM trabajadores_autorizados WHERE id_trabajador_autorizado = $1`, id)
	if err != nil {
		return fmt.Errorf("delete trabajador: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExistsByCarnet indica si otro trabajador (distinto de excludeID, si no es nil)
// usa el mismo carnet de identidad.
func (r *TrabajadorRepo) ExistsByCarnet(ctx context.Context, carnet string, excludeID *int) (bool, error) {
	var exists bool
	var err error
	if excludeID != nil {
		err = r.q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM trabajadores_autorizados WHERE carnet_identidad = $1 AND id_trabajador_autorizado <> $2)`,
			carnet, *excludeID).Scan(&exists)
	} else {
		err = r.q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM trabajadores_autorizados WHERE carnet_identidad = $1)`,
			carnet).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("exists trabajador por carnet: %w", err)
	}
	return exists, nil
}

// ContratoTrabajadorRepo implementación del puerto de asignaciones contrato↔trabajador.
type ContratoTrabajadorRepo struct {
	q Querier
}

// NewContratoTrabajadorRepository construye el adaptador para asignaciones. Pasar pool o tx (Querier).
func NewContratoTrabajadorRepository(q Querier) *ContratoTrabajadorRepo {
	return &ContratoTrabajadorRepo{q: q}
}

const asignacionColumns = `id_contrato_trabajador, id_contrato, id_trabajador_autorizado, created_at`

func scanAsignacion(row pgx.Row) (*entity.ContratoTrabajador, error) {
	var a entity.ContratoTrabajador
	if err := row.Scan(&a.ID, &a.IDContrato, &a.IDTrabajadorAutorizado, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAsignaciones(rows pgx.Rows) ([]*entity.ContratoTrabajador, error) {
	var items []*entity.ContratoTrabajador
	for rows.Next() {
		a, err := scanAsignacion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asignación: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar asignaciones: %w", err)
	}
	return items, nil
}

// Create inserta una asignación y asigna el ID generado. El índice único sobre
// (id_contrato, id_trabajador_autorizado) impide duplicados.
func (r *ContratoTrabajadorRepo) Create(ctx context.Context, a *entity.ContratoTrabajador) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO contrato_trabajadores (id_contrato, id_trabajador_autorizado, created_at)
		 VALUES ($1, $2, $3) RETURNING id_contrato_trabajador`,
		a.IDContrato, a.IDTrabajadorAutorizado, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el trabajador ya está asignado a ese contrato", domain.ErrConflict)
		}
		return fmt.Errorf("insert asignación: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID. Devuelve (nil, nil) si no existe.
func (r *ContratoTrabajadorRepo) GetByID(ctx context.Context, id int) (*entity.ContratoTrabajador, error) {
	a, err := scanAsignacion(r.q.QueryRow(ctx,
		`SELECT `+asignacionColumns+` FROM contrato_trabajadores WHERE id_contrato_trabajador = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asignación: %w", err)
	}
	return a, nil
}

// GetAll lista todas las asignaciones.
func (r *ContratoTrabajadorRepo) GetAll(ctx context.Context) ([]*entity.ContratoTrabajador, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+asignacionColumns+` FROM contrato_trabajadores ORDER BY id_contrato_trabajador`)
	if err != nil {
		return nil, fmt.Errorf("list asignaciones: %w", err)
	}
	defer rows.Close()
	return collectAsignaciones(rows)
}

// Delete elimina una asignación por ID.
func (r *ContratoTrabajadorRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM contrato_trabajadores WHERE id_contrato_trabajador = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asignación: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByContratoYTrabajador elimina la asignación de un trabajador a un contrato.
func (r *ContratoTrabajadorRepo) DeleteByContratoYTrabajador(ctx context.Context, idContrato, idTrabajador int) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM contrato_trabajadores WHERE id_contrato = $1 AND id_trabajador_autorizado = $2`,
		idContrato, idTrabajador,
	)
	if err != nil {
		return fmt.Errorf("delete asignación por contrato y trabajador: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByContrato lista las asignaciones de un contrato.
func (r *ContratoTrabajadorRepo) ListByContrato(ctx context.Context, idContrato int) ([]*entity.ContratoTrabajador, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+asignacionColumns+` FROM contrato_trabajadores WHERE id_contrato = $1 ORDER BY id_contrato_trabajador`,
		idContrato,
	)
	if err != nil {
		return nil, fmt.Errorf("list asignaciones por contrato: %w", err)
	}
	defer rows.Close()
	return collectAsignaciones(rows)
}

// ListByTrabajador lista las asignaciones de un trabajador.
func (r *ContratoTrabajadorRepo) ListByTrabajador(ctx context.Context, idTrabajador int) ([]*entity.ContratoTrabajador, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+asignacionColumns+` FROM contrato_trabajadores WHERE id_trabajador_autorizado = $1 ORDER BY id_contrato_trabajador`,
		idTrabajador,
	)
	if err != nil {
		return nil, fmt.Errorf("list asignaciones por trabajador: %w", err)
	}
	defer rows.Close()
	return collectAsignaciones(rows)
}
