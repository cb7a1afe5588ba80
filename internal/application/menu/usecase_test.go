package menu_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafeteria-api/internal/application/dto"
	"github.com/jhoicas/cafeteria-api/internal/application/menu"
	"github.com/jhoicas/cafeteria-api/internal/application/recipes"
	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fixture cablea carta + recetas + catálogo sobre un mismo store, con la
// propagación receta→carta enganchada igual que en el arranque real.
type fixture struct {
	menuUC   *menu.MenuUseCase
	recipeUC *recipes.RecipeUseCase
	itemRepo *memory.InventoryItemRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	itemRepo := memory.NewInventoryItemRepository(store)
	recipeRepo := memory.NewRecipeRepository(store)
	menuUC := menu.NewMenuUseCase(memory.NewMenuItemRepository(store), recipeRepo)
	recipeUC := recipes.NewRecipeUseCase(recipeRepo, itemRepo, nil)
	recipeUC.SetMenuRefresher(menuUC)
	return &fixture{menuUC: menuUC, recipeUC: recipeUC, itemRepo: itemRepo}
}

// seedRecipe crea un insumo y una receta con CostPerServing = 3.00.
func (f *fixture) seedRecipe(t *testing.T) *dto.RecipeResponse {
	t.Helper()
	now := time.Now()
	err := f.itemRepo.Create(&entity.InventoryItem{
		ID:           "cafe",
		Name:         "Café en grano",
		Category:     "granos",
		Unit:         "kg",
		ReorderPoint: dec("5"),
		IdealStock:   dec("50"),
		CostPerUnit:  dec("2.00"),
		Supplier:     "Proveedor Central",
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	recipe, err := f.recipeUC.CreateRecipe(dto.CreateRecipeRequest{
		Name:        "Café filtrado doble",
		Category:    "bebidas calientes",
		ServingSize: 2,
		Ingredients: []dto.IngredientInput{
			{InventoryItemID: "cafe", Quantity: dec("3")},
		},
		Nutritional: &dto.NutritionalInfoDTO{Calories: dec("5")},
	})
	require.NoError(t, err)
	return recipe
}

func (f *fixture) seedMenuItem(t *testing.T, recipeID, price string) *dto.MenuItemResponse {
	t.Helper()
	item, err := f.menuUC.CreateMenuItem(dto.CreateMenuItemRequest{
		Name:     "Café de la casa",
		Category: "bebidas",
		Price:    dec(price),
		RecipeID: recipeID,
	})
	require.NoError(t, err)
	return item
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateMenuItem
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateMenuItem_DerivaRentabilidad(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)

	item := f.seedMenuItem(t, recipe.ID, "5.00")

	assert.True(t, item.Cost.Equal(dec("3.00")), "cost = CostPerServing de la receta")
	assert.True(t, item.Profit.Equal(dec("2.00")), "5.00 - 3.00")
	assert.True(t, item.ProfitMargin.Equal(dec("0.4")), "2.00 / 5.00, fue %s", item.ProfitMargin)
	require.NotNil(t, item.Nutritional, "toma el snapshot nutricional de la receta")
	assert.True(t, item.Nutritional.Calories.Equal(dec("5")))
}

func TestCreateMenuItem_AcumulaViolaciones(t *testing.T) {
	f := newFixture(t)

	_, err := f.menuUC.CreateMenuItem(dto.CreateMenuItemRequest{Price: decimal.Zero})
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	fields := make([]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"name", "category", "price", "recipe_id"}, fields)
}

func TestCreateMenuItem_RecetaInactivaRechazada(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)

	inactive := false
	_, err := f.recipeUC.UpdateRecipe(recipe.ID, dto.UpdateRecipeRequest{Active: &inactive})
	require.NoError(t, err)

	_, err = f.menuUC.CreateMenuItem(dto.CreateMenuItemRequest{
		Name:     "Café de la casa",
		Category: "bebidas",
		Price:    dec("5.00"),
		RecipeID: recipe.ID,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownRecipe)
}

// ──────────────────────────────────────────────────────────────────────────────
// SetPrice
// ──────────────────────────────────────────────────────────────────────────────

func TestSetPrice_RecalculaSinTocarCosto(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)
	item := f.seedMenuItem(t, recipe.ID, "5.00")

	got, err := f.menuUC.SetPrice(item.ID, dec("6.00"))
	require.NoError(t, err)

	assert.True(t, got.Cost.Equal(dec("3.00")), "el costo no cambia al cambiar el precio")
	assert.True(t, got.Profit.Equal(dec("3.00")))
	assert.True(t, got.ProfitMargin.Equal(dec("0.5")))
}

func TestSetPrice_NoPositivoRechazado(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)
	item := f.seedMenuItem(t, recipe.ID, "5.00")

	_, err := f.menuUC.SetPrice(item.ID, decimal.Zero)
	require.Error(t, err)
	_, ok := domain.AsValidationError(err)
	assert.True(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propagación receta → carta
// ──────────────────────────────────────────────────────────────────────────────

func TestCambioDeReceta_RefrescaLaCarta(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)
	item := f.seedMenuItem(t, recipe.ID, "5.00")

	// La receta pasa de 2 a 3 porciones: CostPerServing 6.00/3 = 2.00.
	_, err := f.recipeUC.UpdateServingSize(recipe.ID, 3)
	require.NoError(t, err)

	got, err := f.menuUC.GetMenuItem(item.ID)
	require.NoError(t, err)
	assert.True(t, got.Cost.Equal(dec("2.00")),
		"el ítem vinculado se refresca solo; costo fue %s", got.Cost)
	assert.True(t, got.Price.Equal(dec("5.00")), "el precio nunca se toca en la propagación")
	assert.True(t, got.Profit.Equal(dec("3.00")))
	assert.True(t, got.ProfitMargin.Equal(dec("0.6")))
}

func TestRefreshForRecipe_EsIdempotente(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)
	item := f.seedMenuItem(t, recipe.ID, "5.00")

	require.NoError(t, f.menuUC.RefreshForRecipe(recipe.ID))
	first, err := f.menuUC.GetMenuItem(item.ID)
	require.NoError(t, err)

	require.NoError(t, f.menuUC.RefreshForRecipe(recipe.ID))
	second, err := f.menuUC.GetMenuItem(item.ID)
	require.NoError(t, err)

	assert.True(t, first.Cost.Equal(second.Cost))
	assert.True(t, first.Profit.Equal(second.Profit))
	assert.True(t, first.ProfitMargin.Equal(second.ProfitMargin))
}

// ──────────────────────────────────────────────────────────────────────────────
// LinkRecipe / RefreshFromRecipe
// ──────────────────────────────────────────────────────────────────────────────

func TestLinkRecipe_TomaCostoDeLaNuevaReceta(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)
	item := f.seedMenuItem(t, recipe.ID, "5.00")

	other, err := f.recipeUC.CreateRecipe(dto.CreateRecipeRequest{
		Name:        "Café filtrado sencillo",
		Category:    "bebidas calientes",
		ServingSize: 4,
		Ingredients: []dto.IngredientInput{
			{InventoryItemID: "cafe", Quantity: dec("3")},
		},
	})
	require.NoError(t, err)

	got, err := f.menuUC.LinkRecipe(item.ID, other.ID)
	require.NoError(t, err)

	assert.Equal(t, other.ID, got.RecipeID)
	assert.True(t, got.Cost.Equal(dec("1.5")), "6.00 / 4 porciones, fue %s", got.Cost)
	assert.True(t, got.Profit.Equal(dec("3.5")))
	assert.Nil(t, got.Nutritional, "la nueva receta no trae snapshot nutricional")
}

func TestGetMenuItem_NoExiste(t *testing.T) {
	f := newFixture(t)
	_, err := f.menuUC.GetMenuItem("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
