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

var _ repository.TipoContratoRepository = (*TipoContratoRepo)(nil)

// TipoContratoRepo implementación del puerto TipoContratoRepository sobre PostgreSQL.
type TipoContratoRepo struct {
	q Querier
}

// NewTipoContratoRepository construye el adaptador de persistencia para tipos de contrato.
func NewTipoContratoRepository(q Querier) *TipoContratoRepo {
	return &TipoContratoRepo{q: q}
}

// Create persiste un tipo de contrato nuevo y asigna el ID generado.
func (r *TipoContratoRepo) Create(ctx context.Context, t *entity.TipoContrato) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO tipos_contrato (nombre, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id_tipo_contrato`,
		t.Nombre, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un tipo de contrato con ese nombre", domain.ErrConflict)
		}
		return fmt.Errorf("insert tipo de contrato: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de contrato por ID. Devuelve (nil, nil) si no existe.
func (r *TipoContratoRepo) GetByID(ctx context.Context, id int) (*entity.TipoContrato, error) {
	var t entity.TipoContrato
	err := r.q.QueryRow(ctx,
		`SELECT id_tipo_contrato, nombre, created_at, updated_at FROM tipos_contrato WHERE id_tipo_contrato = $1`,
		id,
	).Scan(&t.ID, &t.Nombre, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo de contrato: %w", err)
	}
	return &t, nil
}

// GetAll lista el catálogo completo ordenado por nombre.
func (r *TipoContratoRepo) GetAll(ctx context.Context) ([]*entity.TipoContrato, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id_tipo_contrato, nombre, created_at, updated_at FROM tipos_contrato ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list tipos de contrato: %w", err)
	}
	defer rows.Close()

	var items []*entity.TipoContrato
	for rows.Next() {
		var t entity.TipoContrato
		if err := rows.Scan(&t.ID, &t.Nombre, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tipo de contrato: %w", err)
		}
		items = append(items, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar tipos de contrato: %w", err)
	}
	return items, nil
}

// Update actualiza un tipo de contrato existente.
func (r *TipoContratoRepo) Update(ctx context.Context, t *entity.TipoContrato) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE tipos_contrato SET nombre = $2, updated_at = $3 WHERE id_tipo_contrato = $1`,
		t.ID, t.Nombre, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un tipo de contrato con ese nombre", domain.ErrConflict)
		}
		return fmt.Errorf("update tipo de contrato: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un tipo de contrato por ID.
func (r *TipoContratoRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM tipos_contrato WHERE id_tipo_contrato = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tipo de contrato: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Exists indica si existe un tipo de contrato con el ID dado.
func (r *TipoContratoRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tipos_contrato WHERE id_tipo_contrato = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists tipo de contrato: %w", err)
	}
	return exists, nil
}
