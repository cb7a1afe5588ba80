package ledger

import (
	"context"

	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

// TxRunner ejecuta una función como unidad atómica, pasando repositorios
// atados a esa unidad. En PostgreSQL es una transacción con bloqueo de fila;
// en memoria, una sección crítica del escritor único.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.InventoryTransactionRepository,
		itemRepo repository.InventoryItemRepository,
	) error) error
}
