package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
)

// Proyector de stock (servicio de dominio): pliega transacciones del libro
// sobre CurrentStock. Regla de signo por tipo:
//
//	restock    → +cantidad (y actualiza LastRestocked a la fecha de la tx)
//	usage      → -cantidad
//	adjustment → +cantidad (la cantidad puede venir negativa: corrección a la baja)
//	write-off  → -cantidad
//
// Tras aplicar el delta, el resultado se recorta a max(0, resultado).

// Delta devuelve el efecto con signo de una transacción sobre el stock.
func Delta(txType string, quantity decimal.Decimal) (decimal.Decimal, error) {
	switch txType {
	case entity.TransactionTypeRestock:
		return quantity, nil
	case entity.TransactionTypeUsage:
		return quantity.Neg(), nil
	case entity.TransactionTypeAdjustment:
		return quantity, nil
	case entity.TransactionTypeWriteOff:
		return quantity.Neg(), nil
	}
	return decimal.Zero, &domain.InvariantViolation{
		Entity: "InventoryTransaction",
		Detail: "tipo de transacción desconocido: " + txType,
	}
}

// Apply pliega una transacción sobre el insumo de forma incremental.
// Muta CurrentStock (con recorte a 0) y LastRestocked; no toca ningún otro campo.
func Apply(item *entity.InventoryItem, tx *entity.InventoryTransaction) error {
	delta, err := Delta(tx.Type, tx.Quantity)
	if err != nil {
		return err
	}
	next := item.CurrentStock.Add(delta)
	if next.IsNegative() {
		next = decimal.Zero
	}
	item.CurrentStock = next
	if tx.Type == entity.TransactionTypeRestock {
		item.LastRestocked = tx.Date
	}
	return nil
}

// Replay reconstruye CurrentStock desde cero plegando el historial ordenado
// completo. Por la propiedad de auditoría del libro, debe producir el mismo
// resultado que la aplicación incremental de cada transacción.
func Replay(item *entity.InventoryItem, history []*entity.InventoryTransaction) error {
	item.CurrentStock = decimal.Zero
	for _, tx := range history {
		if tx.ItemID != item.ID {
			return &domain.InvariantViolation{
				Entity: "InventoryLedger",
				Detail: "transacción " + tx.ID + " no pertenece al insumo " + item.ID,
			}
		}
		if err := Apply(item, tx); err != nil {
			return err
		}
	}
	return nil
}

// Status clasifica el stock actual contra los umbrales del insumo:
// low si stock <= reorden; medium si reorden < stock <= ideal*0.5; ok en el resto.
func Status(currentStock, reorderPoint, idealStock decimal.Decimal) string {
	if currentStock.LessThanOrEqual(reorderPoint) {
		return entity.StockStatusLow
	}
	half := idealStock.Mul(decimal.NewFromFloat(0.5))
	if currentStock.LessThanOrEqual(half) {
		return entity.StockStatusMedium
	}
	return entity.StockStatusOK
}
