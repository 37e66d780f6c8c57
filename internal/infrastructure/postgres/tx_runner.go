package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/contratos-api/internal/application/usecase"
	"github.com/tu-usuario/contratos-api/internal/domain/repository"
)

var _ usecase.ContratoTx = (*TxRunner)(nil)
var _ usecase.OfertaTx = (*TxRunner)(nil)
var _ usecase.AsignacionTx = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunContrato inicia una transacción, ejecuta fn con el repo de contratos atado
// a la tx y hace Commit o Rollback. La revalidación del consecutivo corre aquí
// junto con el insert para cerrar la ventana de carrera.
func (r *TxRunner) RunContrato(ctx context.Context, fn func(contratos repository.ContratoRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewContratoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOferta inicia una transacción con los repos del agregado Oferta: la
// cabecera y todas sus descripciones se escriben o ninguna.
func (r *TxRunner) RunOferta(ctx context.Context, fn func(
	ofertas repository.OfertaRepository,
	descripciones repository.OfertaDescripcionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOfertaRepository(tx), NewOfertaDescripcionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAsignaciones inicia una transacción con el repo de asignaciones
// contrato↔trabajador (sincronización de contratos de un trabajador).
func (r *TxRunner) RunAsignaciones(ctx context.Context, fn func(asignaciones repository.ContratoTrabajadorRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewContratoTrabajadorRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
