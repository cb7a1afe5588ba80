package repository

import (
	"time"

	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
)

// InventoryTransactionRepository define el puerto de persistencia del libro de
// inventario. El libro es append-only: no expone Update ni Delete.
type InventoryTransactionRepository interface {
	Create(tx *entity.InventoryTransaction) error
	GetByID(id string) (*entity.InventoryTransaction, error)
	ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryTransaction, error)
	// ListAllByItem devuelve el historial completo del insumo en orden de registro (para replay).
	ListAllByItem(itemID string) ([]*entity.InventoryTransaction, error)
}
