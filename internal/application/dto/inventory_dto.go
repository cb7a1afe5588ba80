package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest body para POST /api/inventory/items.
// CurrentStock nunca viene del payload: lo deriva el proyector desde el libro.
type CreateInventoryItemRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	IdealStock   decimal.Decimal `json:"ideal_stock"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	Supplier     string          `json:"supplier"`
	Location     string          `json:"location,omitempty"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
}

// UpdateInventoryItemRequest body para PUT /api/inventory/items/:id (campos opcionales).
type UpdateInventoryItemRequest struct {
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	ReorderPoint *decimal.Decimal `json:"reorder_point,omitempty"`
	IdealStock   *decimal.Decimal `json:"ideal_stock,omitempty"`
	CostPerUnit  *decimal.Decimal `json:"cost_per_unit,omitempty"`
	Supplier     *string          `json:"supplier,omitempty"`
	Location     *string          `json:"location,omitempty"`
	ExpiryDate   *time.Time       `json:"expiry_date,omitempty"`
}

// InventoryItemResponse representación de un insumo con sus campos derivados.
type InventoryItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	StockStatus   string          `json:"stock_status"` // low, medium, ok
	ReorderPoint  decimal.Decimal `json:"reorder_point"`
	IdealStock    decimal.Decimal `json:"ideal_stock"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
	Supplier      string          `json:"supplier"`
	Location      string          `json:"location,omitempty"`
	LastRestocked *time.Time      `json:"last_restocked,omitempty"`
	ExpiryDate    *time.Time      `json:"expiry_date,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InventoryItemListResponse listado paginado de insumos.
type InventoryItemListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// RecordTransactionRequest body para POST /api/inventory/transactions.
// UnitCost es obligatorio en restock; en el resto, si se omite se usa el
// costo unitario vigente del insumo.
type RecordTransactionRequest struct {
	ItemID     string           `json:"item_id"`
	Date       *time.Time       `json:"date,omitempty"`
	Type       string           `json:"type"`
	Quantity   decimal.Decimal  `json:"quantity"`
	UnitCost   *decimal.Decimal `json:"unit_cost,omitempty"`
	Supplier   string           `json:"supplier,omitempty"`
	InvoiceRef string           `json:"invoice_ref,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

// TransactionResponse transacción registrada más el insumo ya proyectado.
type TransactionResponse struct {
	ID         string                `json:"id"`
	ItemID     string                `json:"item_id"`
	Date       time.Time             `json:"date"`
	Type       string                `json:"type"`
	Quantity   decimal.Decimal       `json:"quantity"`
	UnitCost   decimal.Decimal       `json:"unit_cost"`
	TotalCost  decimal.Decimal       `json:"total_cost"`
	Supplier   string                `json:"supplier,omitempty"`
	InvoiceRef string                `json:"invoice_ref,omitempty"`
	Notes      string                `json:"notes,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
	Item       InventoryItemResponse `json:"item"`
}

// TransactionListResponse historial paginado de un insumo.
type TransactionListResponse struct {
	Transactions []TransactionRecord `json:"transactions"`
	Page         PageResponse        `json:"page"`
}

// TransactionRecord entrada del historial (sin re-proyectar el insumo).
type TransactionRecord struct {
	ID         string          `json:"id"`
	ItemID     string          `json:"item_id"`
	Date       time.Time       `json:"date"`
	Type       string          `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	Supplier   string          `json:"supplier,omitempty"`
	InvoiceRef string          `json:"invoice_ref,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un insumo bajo su
// punto de reorden.
type ReplenishmentSuggestionDTO struct {
	ItemID             string          `json:"item_id"`
	Name               string          `json:"name"`
	Unit               string          `json:"unit"`
	Supplier           string          `json:"supplier"`
	CurrentStock       decimal.Decimal `json:"current_stock"`
	ReorderPoint       decimal.Decimal `json:"reorder_point"`
	IdealStock         decimal.Decimal `json:"ideal_stock"`
	SuggestedOrderQty  decimal.Decimal `json:"suggested_order_qty"`  // IdealStock - CurrentStock
	UnitCost           decimal.Decimal `json:"unit_cost"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * UnitCost
	Priority           int             `json:"priority"`             // 1 = más urgente
}
