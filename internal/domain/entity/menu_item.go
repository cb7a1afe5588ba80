package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem representa un producto de la carta vinculado a una receta.
// Cost, Profit y ProfitMargin son función pura de {Price, CostPerServing de
// la receta vinculada}: se recalculan, jamás se editan de forma independiente.
type MenuItem struct {
	ID           string
	Name         string
	Category     string
	Price        decimal.Decimal // > 0
	RecipeID     string          // clave débil hacia Recipe
	Cost         decimal.Decimal // derivado = CostPerServing de la receta
	Profit       decimal.Decimal // derivado = Price - Cost
	ProfitMargin decimal.Decimal // derivado = Profit / Price (0 si Price es 0)
	SeasonStart  *time.Time
	SeasonEnd    *time.Time
	Active       bool
	Nutritional  *NutritionalInfo // snapshot copiado de la receta al vincular
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Clone devuelve una copia profunda del ítem de carta.
func (m *MenuItem) Clone() *MenuItem {
	if m == nil {
		return nil
	}
	cp := *m
	if m.SeasonStart != nil {
		t := *m.SeasonStart
		cp.SeasonStart = &t
	}
	if m.SeasonEnd != nil {
		t := *m.SeasonEnd
		cp.SeasonEnd = &t
	}
	if m.Nutritional != nil {
		n := *m.Nutritional
		cp.Nutritional = &n
	}
	return &cp
}
