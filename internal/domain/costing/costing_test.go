package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cafeteria-api/internal/domain/costing"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestIngredientCost_CantidadPorCostoUnitario(t *testing.T) {
	got := costing.IngredientCost(dec("3"), dec("2.00"))
	assert.True(t, got.Equal(dec("6.00")), "3 x 2.00 = 6.00, fue %s", got)
}

func TestIngredientCost_Fraccionario(t *testing.T) {
	// 0.2 kg a 12.50/kg: exacto en decimal, sin redondeo binario.
	got := costing.IngredientCost(dec("0.2"), dec("12.50"))
	assert.True(t, got.Equal(dec("2.50")), "0.2 x 12.50 = 2.50, fue %s", got)
}

func TestRecipeTotals_TotalYPorcion(t *testing.T) {
	ingredients := []entity.RecipeIngredient{
		{Cost: dec("6.00")},
		{Cost: dec("1.50")},
		{Cost: dec("0.50")},
	}

	total, perServing := costing.RecipeTotals(ingredients, 2)

	assert.True(t, total.Equal(dec("8.00")), "6.00+1.50+0.50 = 8.00, fue %s", total)
	assert.True(t, perServing.Equal(dec("4.00")), "8.00 / 2 porciones = 4.00, fue %s", perServing)
}

func TestRecipeTotals_SinIngredientes(t *testing.T) {
	total, perServing := costing.RecipeTotals(nil, 4)
	assert.True(t, total.IsZero())
	assert.True(t, perServing.IsZero())
}

func TestRecipeTotals_ServingSizeNoPositivo(t *testing.T) {
	ingredients := []entity.RecipeIngredient{{Cost: dec("10")}}

	total, perServing := costing.RecipeTotals(ingredients, 0)

	assert.True(t, total.Equal(dec("10")))
	assert.True(t, perServing.IsZero(), "con porciones 0 no se divide; CostPerServing queda en 0")
}

func TestProfitability_GananciaYMargen(t *testing.T) {
	profit, margin := costing.Profitability(dec("5.00"), dec("3.00"))

	assert.True(t, profit.Equal(dec("2.00")), "5.00 - 3.00 = 2.00, fue %s", profit)
	assert.True(t, margin.Equal(dec("0.4")), "2.00 / 5.00 = 0.4, fue %s", margin)
}

func TestProfitability_MargenNegativoSiVendeAPerdida(t *testing.T) {
	profit, margin := costing.Profitability(dec("2.00"), dec("3.00"))

	assert.True(t, profit.Equal(dec("-1.00")))
	assert.True(t, margin.Equal(dec("-0.5")), "el margen puede ser negativo, fue %s", margin)
}

func TestProfitability_PrecioCeroNoDivide(t *testing.T) {
	profit, margin := costing.Profitability(decimal.Zero, dec("3.00"))

	assert.True(t, profit.Equal(dec("-3.00")))
	assert.True(t, margin.IsZero(), "precio 0 no debe dividir; margen 0")
}
