package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de clasificación de stock (value object conceptual).
const (
	StockStatusLow    = "low"    // en o bajo el punto de reorden
	StockStatusMedium = "medium" // sobre el reorden pero a media capacidad o menos
	StockStatusOK     = "ok"     // nivel saludable
)

// InventoryItem representa un insumo del catálogo de la cafetería (café, leche, vasos...).
// CurrentStock es derivado del libro de transacciones: solo el proyector lo modifica;
// el resto de los campos se editan con operaciones explícitas de catálogo.
type InventoryItem struct {
	ID            string
	Name          string
	Category      string
	Unit          string          // unidad de medida: kg, l, unidad, bolsa...
	CurrentStock  decimal.Decimal // derivado, nunca negativo
	ReorderPoint  decimal.Decimal // >= 0
	IdealStock    decimal.Decimal // > 0
	CostPerUnit   decimal.Decimal // >= 0
	Supplier      string
	Location      string
	LastRestocked time.Time
	ExpiryDate    *time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Clone devuelve una copia profunda del insumo. Los casos de uso trabajan
// sobre copias y persisten al final, para que una operación fallida no deje
// campos derivados a medio aplicar.
func (i *InventoryItem) Clone() *InventoryItem {
	if i == nil {
		return nil
	}
	cp := *i
	if i.ExpiryDate != nil {
		d := *i.ExpiryDate
		cp.ExpiryDate = &d
	}
	return &cp
}
