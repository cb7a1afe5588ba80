package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest body para POST /api/menu.
type CreateMenuItemRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	RecipeID    string          `json:"recipe_id"`
	SeasonStart *time.Time      `json:"season_start,omitempty"`
	SeasonEnd   *time.Time      `json:"season_end,omitempty"`
}

// UpdateMenuItemRequest body para PUT /api/menu/:id (campos opcionales; el
// precio y la receta vinculada se editan con sus operaciones propias).
type UpdateMenuItemRequest struct {
	Name        *string    `json:"name,omitempty"`
	Category    *string    `json:"category,omitempty"`
	SeasonStart *time.Time `json:"season_start,omitempty"`
	SeasonEnd   *time.Time `json:"season_end,omitempty"`
	Active      *bool      `json:"active,omitempty"`
}

// SetPriceRequest body para PUT /api/menu/:id/price.
type SetPriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

// LinkRecipeRequest body para PUT /api/menu/:id/recipe.
type LinkRecipeRequest struct {
	RecipeID string `json:"recipe_id"`
}

// MenuItemResponse ítem de carta con rentabilidad derivada.
type MenuItemResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Category     string              `json:"category"`
	Price        decimal.Decimal     `json:"price"`
	RecipeID     string              `json:"recipe_id"`
	Cost         decimal.Decimal     `json:"cost"`
	Profit       decimal.Decimal     `json:"profit"`
	ProfitMargin decimal.Decimal     `json:"profit_margin"`
	SeasonStart  *time.Time          `json:"season_start,omitempty"`
	SeasonEnd    *time.Time          `json:"season_end,omitempty"`
	Active       bool                `json:"active"`
	Nutritional  *NutritionalInfoDTO `json:"nutritional,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// MenuListResponse listado paginado de la carta.
type MenuListResponse struct {
	Items []MenuItemResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
