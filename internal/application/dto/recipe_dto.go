package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// NutritionalInfoDTO valores nutricionales por porción.
type NutritionalInfoDTO struct {
	Calories decimal.Decimal `json:"calories"`
	Protein  decimal.Decimal `json:"protein"`
	Carbs    decimal.Decimal `json:"carbs"`
	Fat      decimal.Decimal `json:"fat"`
}

// IngredientInput ingrediente de entrada al crear una receta.
type IngredientInput struct {
	InventoryItemID string          `json:"inventory_item_id"`
	Quantity        decimal.Decimal `json:"quantity"`
}

// CreateRecipeRequest body para POST /api/recipes.
type CreateRecipeRequest struct {
	Name             string              `json:"name"`
	Category         string              `json:"category"`
	Ingredients      []IngredientInput   `json:"ingredients,omitempty"`
	PreparationSteps []string            `json:"preparation_steps,omitempty"`
	ServingSize      int                 `json:"serving_size"`
	Nutritional      *NutritionalInfoDTO `json:"nutritional,omitempty"`
}

// UpdateRecipeRequest body para PUT /api/recipes/:id (campos opcionales;
// ingredientes y tamaño de porción se editan con sus operaciones propias).
type UpdateRecipeRequest struct {
	Name             *string             `json:"name,omitempty"`
	Category         *string             `json:"category,omitempty"`
	PreparationSteps *[]string           `json:"preparation_steps,omitempty"`
	Nutritional      *NutritionalInfoDTO `json:"nutritional,omitempty"`
	Active           *bool               `json:"active,omitempty"`
}

// AddIngredientRequest body para POST /api/recipes/:id/ingredients.
type AddIngredientRequest struct {
	InventoryItemID string          `json:"inventory_item_id"`
	Quantity        decimal.Decimal `json:"quantity"`
}

// UpdateIngredientRequest body para PUT /api/recipes/:id/ingredients/:ingredientId.
type UpdateIngredientRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// UpdateServingSizeRequest body para PUT /api/recipes/:id/serving-size.
type UpdateServingSizeRequest struct {
	ServingSize int `json:"serving_size"`
}

// IngredientResponse ingrediente con su costo derivado.
type IngredientResponse struct {
	ID              string          `json:"id"`
	InventoryItemID string          `json:"inventory_item_id"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	Cost            decimal.Decimal `json:"cost"`
}

// RecipeResponse receta con sus totales derivados.
type RecipeResponse struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Category         string               `json:"category"`
	Ingredients      []IngredientResponse `json:"ingredients"`
	PreparationSteps []string             `json:"preparation_steps,omitempty"`
	ServingSize      int                  `json:"serving_size"`
	TotalCost        decimal.Decimal      `json:"total_cost"`
	CostPerServing   decimal.Decimal      `json:"cost_per_serving"`
	Nutritional      *NutritionalInfoDTO  `json:"nutritional,omitempty"`
	Active           bool                 `json:"active"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// RecipeListResponse listado paginado de recetas.
type RecipeListResponse struct {
	Recipes []RecipeResponse `json:"recipes"`
	Page    PageResponse     `json:"page"`
}
