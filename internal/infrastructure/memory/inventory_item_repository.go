package memory

import (
	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación en memoria de InventoryItemRepository.
type InventoryItemRepo struct {
	store *Store
}

// NewInventoryItemRepository construye el adaptador sobre el store.
func NewInventoryItemRepository(store *Store) *InventoryItemRepo {
	return &InventoryItemRepo{store: store}
}

// Create registra un insumo nuevo.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.items[item.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.items[item.ID] = item.Clone()
	r.store.itemOrder = append(r.store.itemOrder, item.ID)
	return nil
}

// GetByID devuelve una copia del insumo, o (nil, nil) si no existe.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.items[id].Clone(), nil
}

// GetForUpdate en memoria equivale a GetByID: la exclusión la da el TxRunner.
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}

// Update reemplaza el insumo completo.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.items[item.ID] = item.Clone()
	return nil
}

// List devuelve insumos en orden de alta, con paginación.
func (r *InventoryItemRepo) List(limit, offset int) ([]*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	start, end := paginate(len(r.store.itemOrder), limit, offset)
	out := make([]*entity.InventoryItem, 0, end-start)
	for _, id := range r.store.itemOrder[start:end] {
		out = append(out, r.store.items[id].Clone())
	}
	return out, nil
}

// ListBelowReorderPoint devuelve los insumos activos con stock en o bajo el
// punto de reorden, en orden de alta.
func (r *InventoryItemRepo) ListBelowReorderPoint() ([]*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.InventoryItem
	for _, id := range r.store.itemOrder {
		item := r.store.items[id]
		if item.Active && item.CurrentStock.LessThanOrEqual(item.ReorderPoint) {
			out = append(out, item.Clone())
		}
	}
	return out, nil
}
