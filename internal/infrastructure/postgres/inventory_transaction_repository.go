package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo implementación del libro de inventario sobre
// PostgreSQL. Append-only: solo INSERT y SELECT. seq (bigserial) preserva el
// orden de registro para el replay.
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

const txColumns = `
	id, item_id, date, type, quantity, unit_cost, total_cost,
	supplier, invoice_ref, notes, created_at, created_by`

// Create agrega una transacción al libro.
func (r *InventoryTransactionRepo) Create(tx *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (` + txColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ItemID, tx.Date, tx.Type, tx.Quantity, tx.UnitCost,
		tx.TotalCost, tx.Supplier, tx.InvoiceRef, tx.Notes, tx.CreatedAt,
		tx.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create inventory transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción; (nil, nil) si no existe.
func (r *InventoryTransactionRepo) GetByID(id string) (*entity.InventoryTransaction, error) {
	query := `SELECT ` + txColumns + ` FROM inventory_transactions WHERE id = $1`
	var t entity.InventoryTransaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ItemID, &t.Date, &t.Type, &t.Quantity, &t.UnitCost,
		&t.TotalCost, &t.Supplier, &t.InvoiceRef, &t.Notes, &t.CreatedAt,
		&t.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory transaction: %w", err)
	}
	return &t, nil
}

// ListByItem devuelve el historial del insumo filtrado por fechas, paginado,
// en orden de registro.
func (r *InventoryTransactionRepo) ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryTransaction, error) {
	query := `
		SELECT ` + txColumns + ` FROM inventory_transactions
		WHERE item_id = $1
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		ORDER BY seq LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, itemID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// ListAllByItem devuelve el historial completo del insumo en orden de registro.
func (r *InventoryTransactionRepo) ListAllByItem(itemID string) ([]*entity.InventoryTransaction, error) {
	query := `
		SELECT ` + txColumns + ` FROM inventory_transactions
		WHERE item_id = $1 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list full ledger: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*entity.InventoryTransaction, error) {
	var out []*entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		if err := rows.Scan(
			&t.ID, &t.ItemID, &t.Date, &t.Type, &t.Quantity, &t.UnitCost,
			&t.TotalCost, &t.Supplier, &t.InvoiceRef, &t.Notes, &t.CreatedAt,
			&t.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
