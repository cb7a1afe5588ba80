package repository

import "github.com/jhoicas/cafeteria-api/internal/domain/entity"

// InventoryItemRepository define el puerto de persistencia del catálogo de insumos (DIP).
// GetByID devuelve (nil, nil) cuando el insumo no existe.
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	List(limit, offset int) ([]*entity.InventoryItem, error)
	// ListBelowReorderPoint devuelve los insumos activos con stock en o bajo el punto de reorden.
	ListBelowReorderPoint() ([]*entity.InventoryItem, error)
	// GetForUpdate opcional: bloquea la fila para update (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(id string) (*entity.InventoryItem, error)
}
