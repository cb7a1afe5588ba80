package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario.
const (
	TransactionTypeRestock    = "restock"    // entrada por compra a proveedor
	TransactionTypeUsage      = "usage"      // consumo en producción
	TransactionTypeAdjustment = "adjustment" // corrección de conteo (cantidad con signo)
	TransactionTypeWriteOff   = "write-off"  // merma, vencimiento, daño
)

// KnownTransactionType indica si el tipo es uno de los cuatro conocidos.
func KnownTransactionType(t string) bool {
	switch t {
	case TransactionTypeRestock, TransactionTypeUsage, TransactionTypeAdjustment, TransactionTypeWriteOff:
		return true
	}
	return false
}

// InventoryTransaction representa un evento que afecta el stock de un insumo.
// El libro es append-only: una transacción registrada es inmutable y las
// correcciones se expresan como nuevas transacciones de ajuste.
type InventoryTransaction struct {
	ID         string
	ItemID     string
	Date       time.Time
	Type       string
	Quantity   decimal.Decimal // magnitud positiva; en adjustment puede ser negativa (corrección a la baja)
	UnitCost   decimal.Decimal
	TotalCost  decimal.Decimal // Quantity * UnitCost
	Supplier   string
	InvoiceRef string
	Notes      string
	CreatedAt  time.Time
	CreatedBy  string
}
