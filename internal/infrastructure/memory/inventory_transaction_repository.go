package memory

import (
	"time"

	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo implementación en memoria del libro de inventario.
// Append-only: no hay Update ni Delete.
type InventoryTransactionRepo struct {
	store *Store
}

// NewInventoryTransactionRepository construye el adaptador sobre el store.
func NewInventoryTransactionRepository(store *Store) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{store: store}
}

// Create agrega una transacción al final del libro.
func (r *InventoryTransactionRepo) Create(tx *entity.InventoryTransaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.ledgerByID[tx.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *tx
	r.store.ledger = append(r.store.ledger, &cp)
	r.store.ledgerByID[tx.ID] = &cp
	return nil
}

// GetByID devuelve una copia de la transacción, o (nil, nil) si no existe.
func (r *InventoryTransactionRepo) GetByID(id string) (*entity.InventoryTransaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	tx, ok := r.store.ledgerByID[id]
	if !ok {
		return nil, nil
	}
	cp := *tx
	return &cp, nil
}

// ListByItem devuelve el historial del insumo filtrado por fechas, paginado,
// en orden de registro.
func (r *InventoryTransactionRepo) ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryTransaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var filtered []*entity.InventoryTransaction
	for _, tx := range r.store.ledger {
		if tx.ItemID != itemID {
			continue
		}
		if from != nil && tx.Date.Before(*from) {
			continue
		}
		if to != nil && tx.Date.After(*to) {
			continue
		}
		filtered = append(filtered, tx)
	}
	start, end := paginate(len(filtered), limit, offset)
	out := make([]*entity.InventoryTransaction, 0, end-start)
	for _, tx := range filtered[start:end] {
		cp := *tx
		out = append(out, &cp)
	}
	return out, nil
}

// ListAllByItem devuelve el historial completo del insumo en orden de registro.
func (r *InventoryTransactionRepo) ListAllByItem(itemID string) ([]*entity.InventoryTransaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.InventoryTransaction
	for _, tx := range r.store.ledger {
		if tx.ItemID == itemID {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out, nil
}
