package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación de InventoryItemRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const itemColumns = `
	id, name, category, unit, current_stock, reorder_point, ideal_stock,
	cost_per_unit, supplier, location, last_restocked, expiry_date, active,
	created_at, updated_at`

// Create inserta un insumo.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Unit, item.CurrentStock,
		item.ReorderPoint, item.IdealStock, item.CostPerUnit, item.Supplier,
		item.Location, item.LastRestocked, item.ExpiryDate, item.Active,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo; (nil, nil) si no existe.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el insumo y bloquea la fila (SELECT FOR UPDATE).
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// Update reemplaza todos los campos del insumo.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET
			name = $2, category = $3, unit = $4, current_stock = $5,
			reorder_point = $6, ideal_stock = $7, cost_per_unit = $8,
			supplier = $9, location = $10, last_restocked = $11,
			expiry_date = $12, active = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Unit, item.CurrentStock,
		item.ReorderPoint, item.IdealStock, item.CostPerUnit, item.Supplier,
		item.Location, item.LastRestocked, item.ExpiryDate, item.Active,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve insumos en orden de alta, con paginación.
func (r *InventoryItemRepo) List(limit, offset int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + ` FROM inventory_items
		ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListBelowReorderPoint devuelve los insumos activos en o bajo el punto de reorden.
func (r *InventoryItemRepo) ListBelowReorderPoint() ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + ` FROM inventory_items
		WHERE active AND current_stock <= reorder_point
		ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items below reorder point: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *InventoryItemRepo) scanOne(query string, args ...any) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&i.ID, &i.Name, &i.Category, &i.Unit, &i.CurrentStock, &i.ReorderPoint,
		&i.IdealStock, &i.CostPerUnit, &i.Supplier, &i.Location,
		&i.LastRestocked, &i.ExpiryDate, &i.Active, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &i, nil
}

func scanItems(rows pgx.Rows) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for rows.Next() {
		var i entity.InventoryItem
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Category, &i.Unit, &i.CurrentStock, &i.ReorderPoint,
			&i.IdealStock, &i.CostPerUnit, &i.Supplier, &i.Location,
			&i.LastRestocked, &i.ExpiryDate, &i.Active, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}
