package memory

import (
	"context"

	"github.com/jhoicas/cafeteria-api/internal/application/ledger"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta la función como unidad atómica sobre el store en memoria:
// toma el lock de escritor único, de modo que ninguna otra unidad observe un
// libro y una proyección a medio aplicar. No hay rollback real; la disciplina
// del caller (calcular sobre copias, persistir al final) cubre ese caso.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run serializa la unidad y le pasa repositorios del mismo store.
func (r *TxRunner) Run(_ context.Context, fn func(
	txRepo repository.InventoryTransactionRepository,
	itemRepo repository.InventoryItemRepository,
) error) error {
	r.store.writerMu.Lock()
	defer r.store.writerMu.Unlock()
	return fn(NewInventoryTransactionRepository(r.store), NewInventoryItemRepository(r.store))
}
