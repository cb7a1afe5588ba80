package dto

import (
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/domain/inventory"
)

// Mapeo entidad → respuesta. Los campos derivados salen siempre de la entidad
// ya proyectada/recalculada; aquí no se calcula nada salvo la clasificación
// de stock, que es función pura de los umbrales.

// FromInventoryItem convierte la entidad a su representación de salida.
func FromInventoryItem(i *entity.InventoryItem) *InventoryItemResponse {
	if i == nil {
		return nil
	}
	resp := &InventoryItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		Unit:         i.Unit,
		CurrentStock: i.CurrentStock,
		StockStatus:  inventory.Status(i.CurrentStock, i.ReorderPoint, i.IdealStock),
		ReorderPoint: i.ReorderPoint,
		IdealStock:   i.IdealStock,
		CostPerUnit:  i.CostPerUnit,
		Supplier:     i.Supplier,
		Location:     i.Location,
		ExpiryDate:   i.ExpiryDate,
		Active:       i.Active,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
	if !i.LastRestocked.IsZero() {
		t := i.LastRestocked
		resp.LastRestocked = &t
	}
	return resp
}

// FromTransaction convierte una transacción del libro a registro de historial.
func FromTransaction(tx *entity.InventoryTransaction) TransactionRecord {
	return TransactionRecord{
		ID:         tx.ID,
		ItemID:     tx.ItemID,
		Date:       tx.Date,
		Type:       tx.Type,
		Quantity:   tx.Quantity,
		UnitCost:   tx.UnitCost,
		TotalCost:  tx.TotalCost,
		Supplier:   tx.Supplier,
		InvoiceRef: tx.InvoiceRef,
		Notes:      tx.Notes,
		CreatedAt:  tx.CreatedAt,
	}
}

// FromRecipe convierte la entidad a su representación de salida.
func FromRecipe(r *entity.Recipe) *RecipeResponse {
	if r == nil {
		return nil
	}
	ingredients := make([]IngredientResponse, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, IngredientResponse{
			ID:              ing.ID,
			InventoryItemID: ing.InventoryItemID,
			Name:            ing.Name,
			Unit:            ing.Unit,
			Quantity:        ing.Quantity,
			Cost:            ing.Cost,
		})
	}
	return &RecipeResponse{
		ID:               r.ID,
		Name:             r.Name,
		Category:         r.Category,
		Ingredients:      ingredients,
		PreparationSteps: r.PreparationSteps,
		ServingSize:      r.ServingSize,
		TotalCost:        r.TotalCost,
		CostPerServing:   r.CostPerServing,
		Nutritional:      fromNutritional(r.Nutritional),
		Active:           r.Active,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// FromMenuItem convierte la entidad a su representación de salida.
func FromMenuItem(m *entity.MenuItem) *MenuItemResponse {
	if m == nil {
		return nil
	}
	return &MenuItemResponse{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Price:        m.Price,
		RecipeID:     m.RecipeID,
		Cost:         m.Cost,
		Profit:       m.Profit,
		ProfitMargin: m.ProfitMargin,
		SeasonStart:  m.SeasonStart,
		SeasonEnd:    m.SeasonEnd,
		Active:       m.Active,
		Nutritional:  fromNutritional(m.Nutritional),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToNutritional convierte el DTO nutricional a entidad.
func ToNutritional(n *NutritionalInfoDTO) *entity.NutritionalInfo {
	if n == nil {
		return nil
	}
	return &entity.NutritionalInfo{
		Calories: n.Calories,
		Protein:  n.Protein,
		Carbs:    n.Carbs,
		Fat:      n.Fat,
	}
}

func fromNutritional(n *entity.NutritionalInfo) *NutritionalInfoDTO {
	if n == nil {
		return nil
	}
	return &NutritionalInfoDTO{
		Calories: n.Calories,
		Protein:  n.Protein,
		Carbs:    n.Carbs,
		Fat:      n.Fat,
	}
}
