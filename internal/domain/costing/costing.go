package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
)

// Servicios de dominio de costeo: funciones puras sobre valores ya resueltos.
// Los motores de recetas y carta las invocan tras cada mutación; el recálculo
// es determinista e idempotente.

// IngredientCost calcula el costo de un ingrediente al costo unitario vigente.
func IngredientCost(quantity, costPerUnit decimal.Decimal) decimal.Decimal {
	return quantity.Mul(costPerUnit)
}

// RecipeTotals calcula el costo total y el costo por porción de una receta.
// CostPerServing es 0 si servingSize no es positivo (el guardado de receta
// exige ServingSize > 0; el 0 aquí evita una división inválida en datos viejos).
func RecipeTotals(ingredients []entity.RecipeIngredient, servingSize int) (totalCost, costPerServing decimal.Decimal) {
	totalCost = decimal.Zero
	for i := range ingredients {
		totalCost = totalCost.Add(ingredients[i].Cost)
	}
	if servingSize > 0 {
		costPerServing = totalCost.Div(decimal.NewFromInt(int64(servingSize)))
	} else {
		costPerServing = decimal.Zero
	}
	return totalCost, costPerServing
}

// Profitability deriva ganancia y margen de un ítem de carta a partir del
// precio y el costo por porción de su receta. Margen 0 cuando el precio es 0.
func Profitability(price, costPerServing decimal.Decimal) (profit, margin decimal.Decimal) {
	profit = price.Sub(costPerServing)
	if price.IsZero() {
		return profit, decimal.Zero
	}
	return profit, profit.Div(price)
}
