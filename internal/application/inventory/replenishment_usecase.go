package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafeteria-api/internal/application/dto"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición de la cafetería: los
// insumos activos en o bajo su punto de reorden, con la cantidad sugerida de
// pedido para volver al stock ideal y un ranking de prioridad por urgencia.
type ReplenishmentUseCase struct {
	itemRepo repository.InventoryItemRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(itemRepo repository.InventoryItemRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{itemRepo: itemRepo}
}

// GenerateReplenishmentList devuelve las sugerencias de reposición. supplier
// filtra por proveedor (vacío = todos), útil para armar la orden de compra.
// Prioridad: mayor déficit relativo bajo el reorden primero.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, supplier string) ([]dto.ReplenishmentSuggestionDTO, error) {
	items, err := uc.itemRepo.ListBelowReorderPoint()
	if err != nil {
		return nil, err
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(items))
	for _, item := range items {
		if supplier != "" && item.Supplier != supplier {
			continue
		}
		suggestedQty := item.IdealStock.Sub(item.CurrentStock)
		if suggestedQty.LessThanOrEqual(decimal.Zero) {
			suggestedQty = decimal.Zero
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ItemID:             item.ID,
			Name:               item.Name,
			Unit:               item.Unit,
			Supplier:           item.Supplier,
			CurrentStock:       item.CurrentStock,
			ReorderPoint:       item.ReorderPoint,
			IdealStock:         item.IdealStock,
			SuggestedOrderQty:  suggestedQty,
			UnitCost:           item.CostPerUnit,
			EstimatedOrderCost: suggestedQty.Mul(item.CostPerUnit),
		})
	}

	// Ordenar por déficit relativo bajo el reorden (más vacío primero);
	// desempate por mayor costo estimado de pedido.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		defA := deficitRatio(a.CurrentStock, a.ReorderPoint)
		defB := deficitRatio(b.CurrentStock, b.ReorderPoint)
		if !defA.Equal(defB) {
			return defA.GreaterThan(defB)
		}
		return a.EstimatedOrderCost.GreaterThan(b.EstimatedOrderCost)
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}

// deficitRatio mide cuán por debajo del reorden está el stock, en fracción
// del propio reorden. Con reorden 0 el déficit relativo es 1 (stock agotado).
func deficitRatio(currentStock, reorderPoint decimal.Decimal) decimal.Decimal {
	if reorderPoint.IsZero() {
		return decimal.NewFromInt(1)
	}
	return reorderPoint.Sub(currentStock).Div(reorderPoint)
}
