package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NutritionalInfo valores nutricionales por porción.
type NutritionalInfo struct {
	Calories decimal.Decimal
	Protein  decimal.Decimal
	Carbs    decimal.Decimal
	Fat      decimal.Decimal
}

// RecipeIngredient referencia un insumo del catálogo por ID (clave débil,
// nunca un puntero vivo). Name y Unit son snapshot tomado al agregarlo y se
// refrescan cuando cambia el insumo referenciado; Cost es derivado.
type RecipeIngredient struct {
	ID              string
	InventoryItemID string
	Name            string          // snapshot del insumo
	Unit            string          // snapshot del insumo
	Quantity        decimal.Decimal // > 0
	Cost            decimal.Decimal // derivado: Quantity * CostPerUnit al último recálculo
}

// Recipe representa una receta de la carta con su lista de ingredientes.
// TotalCost y CostPerServing son derivados: se recalculan en cada mutación
// de ingredientes o del tamaño de porción, nunca se asignan directamente.
type Recipe struct {
	ID               string
	Name             string
	Category         string
	Ingredients      []RecipeIngredient
	PreparationSteps []string
	ServingSize      int             // > 0, porciones que rinde la receta
	TotalCost        decimal.Decimal // derivado: suma de costos de ingredientes
	CostPerServing   decimal.Decimal // derivado: TotalCost / ServingSize
	Nutritional      *NutritionalInfo
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Clone devuelve una copia profunda de la receta (ingredientes incluidos).
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Ingredients = make([]RecipeIngredient, len(r.Ingredients))
	copy(cp.Ingredients, r.Ingredients)
	cp.PreparationSteps = make([]string, len(r.PreparationSteps))
	copy(cp.PreparationSteps, r.PreparationSteps)
	if r.Nutritional != nil {
		n := *r.Nutritional
		cp.Nutritional = &n
	}
	return &cp
}

// FindIngredient devuelve el índice del ingrediente por ID, o -1.
func (r *Recipe) FindIngredient(ingredientID string) int {
	for i := range r.Ingredients {
		if r.Ingredients[i].ID == ingredientID {
			return i
		}
	}
	return -1
}

// ReferencesItem indica si algún ingrediente referencia el insumo dado.
func (r *Recipe) ReferencesItem(itemID string) bool {
	for i := range r.Ingredients {
		if r.Ingredients[i].InventoryItemID == itemID {
			return true
		}
	}
	return false
}
