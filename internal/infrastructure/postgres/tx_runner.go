package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cafeteria-api/internal/application/ledger"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta la unidad atómica del libro dentro de una transacción
// PostgreSQL: Commit si todo ok, Rollback si algo falla. Junto al SELECT FOR
// UPDATE del repositorio de insumos, da la serialización por insumo que exige
// el proyector.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia la transacción y pasa repositorios atados a ella.
func (r *TxRunner) Run(ctx context.Context, fn func(
	txRepo repository.InventoryTransactionRepository,
	itemRepo repository.InventoryItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInventoryTransactionRepository(tx), NewInventoryItemRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
