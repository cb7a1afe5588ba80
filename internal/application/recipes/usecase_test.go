package recipes_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafeteria-api/internal/application/dto"
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

// menuSpy registra las propagaciones hacia la carta.
type menuSpy struct {
	calls []string
}

func (m *menuSpy) RefreshForRecipe(recipeID string) error {
	m.calls = append(m.calls, recipeID)
	return nil
}

type fixture struct {
	uc       *recipes.RecipeUseCase
	itemRepo *memory.InventoryItemRepo
	spy      *menuSpy
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	itemRepo := memory.NewInventoryItemRepository(store)
	spy := &menuSpy{}
	uc := recipes.NewRecipeUseCase(memory.NewRecipeRepository(store), itemRepo, spy)
	return &fixture{uc: uc, itemRepo: itemRepo, spy: spy}
}

func (f *fixture) seedItem(t *testing.T, id, name, unit, cost string) {
	t.Helper()
	now := time.Now()
	err := f.itemRepo.Create(&entity.InventoryItem{
		ID:           id,
		Name:         name,
		Category:     "granos",
		Unit:         unit,
		ReorderPoint: dec("5"),
		IdealStock:   dec("50"),
		CostPerUnit:  dec(cost),
		Supplier:     "Proveedor Central",
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
}

// seedRecipe crea una receta de 2 porciones con 3 unidades de café a 2.00.
func (f *fixture) seedRecipe(t *testing.T) *dto.RecipeResponse {
	t.Helper()
	f.seedItem(t, "cafe", "Café en grano", "kg", "2.00")
	resp, err := f.uc.CreateRecipe(dto.CreateRecipeRequest{
		Name:        "Café filtrado doble",
		Category:    "bebidas calientes",
		ServingSize: 2,
		Ingredients: []dto.IngredientInput{
			{InventoryItemID: "cafe", Quantity: dec("3")},
		},
	})
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateRecipe
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateRecipe_DerivaTotales(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)

	require.Len(t, recipe.Ingredients, 1)
	ing := recipe.Ingredients[0]
	assert.Equal(t, "Café en grano", ing.Name, "snapshot del nombre al momento de agregar")
	assert.Equal(t, "kg", ing.Unit)
	assert.True(t, ing.Cost.Equal(dec("6.00")), "3 x 2.00 = 6.00, fue %s", ing.Cost)
	assert.True(t, recipe.TotalCost.Equal(dec("6.00")))
	assert.True(t, recipe.CostPerServing.Equal(dec("3.00")), "6.00 / 2 porciones")
	assert.True(t, recipe.Active)
}

func TestCreateRecipe_AcumulaViolaciones(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateRecipe(dto.CreateRecipeRequest{
		ServingSize: 0,
		Ingredients: []dto.IngredientInput{{InventoryItemID: "x", Quantity: decimal.Zero}},
	})
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	fields := make([]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"name", "category", "serving_size", "ingredients"}, fields)
}

func TestCreateRecipe_InsumoInactivoRechazado(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "cafe", "Café en grano", "kg", "2.00")
	item, err := f.itemRepo.GetByID("cafe")
	require.NoError(t, err)
	item.Active = false
	require.NoError(t, f.itemRepo.Update(item))

	_, err = f.uc.CreateRecipe(dto.CreateRecipeRequest{
		Name:        "Café filtrado",
		Category:    "bebidas",
		ServingSize: 1,
		Ingredients: []dto.IngredientInput{{InventoryItemID: "cafe", Quantity: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownItem,
		"un insumo inactivo no puede entrar a una receta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingredientes: agregar, editar cantidad, quitar
// ──────────────────────────────────────────────────────────────────────────────

func TestAddIngredient_RecalculaTotales(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)
	f.seedItem(t, "leche", "Leche entera", "l", "1.10")

	got, err := f.uc.AddIngredient(recipe.ID, dto.AddIngredientRequest{
		InventoryItemID: "leche",
		Quantity:        dec("2"),
	})
	require.NoError(t, err)

	require.Len(t, got.Ingredients, 2)
	assert.True(t, got.TotalCost.Equal(dec("8.20")), "6.00 + 2x1.10 = 8.20, fue %s", got.TotalCost)
	assert.True(t, got.CostPerServing.Equal(dec("4.10")))
}

func TestAddRemove_VuelveAlTotalExacto(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)
	f.seedItem(t, "canela", "Canela molida", "g", "0.03")

	withExtra, err := f.uc.AddIngredient(recipe.ID, dto.AddIngredientRequest{
		InventoryItemID: "canela",
		Quantity:        dec("7"),
	})
	require.NoError(t, err)
	require.Len(t, withExtra.Ingredients, 2)

	var addedID string
	for _, ing := range withExtra.Ingredients {
		if ing.InventoryItemID == "canela" {
			addedID = ing.ID
		}
	}
	require.NotEmpty(t, addedID)

	after, err := f.uc.RemoveIngredient(recipe.ID, addedID)
	require.NoError(t, err)

	assert.True(t, after.TotalCost.Equal(recipe.TotalCost),
		"agregar y quitar el mismo ingrediente devuelve el total exacto: %s vs %s",
		after.TotalCost, recipe.TotalCost)
	assert.True(t, after.CostPerServing.Equal(recipe.CostPerServing))
}

func TestUpdateIngredientQuantity_UsaCostoVigente(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)

	// El costo del insumo sube después de crear la receta.
	item, err := f.itemRepo.GetByID("cafe")
	require.NoError(t, err)
	item.CostPerUnit = dec("2.50")
	require.NoError(t, f.itemRepo.Update(item))

	got, err := f.uc.UpdateIngredientQuantity(recipe.ID, recipe.Ingredients[0].ID, dec("4"))
	require.NoError(t, err)

	ing := got.Ingredients[0]
	assert.True(t, ing.Cost.Equal(dec("10.00")),
		"la edición usa el costo VIGENTE: 4 x 2.50 = 10.00, fue %s", ing.Cost)
	assert.Equal(t, "Café en grano", ing.Name, "el snapshot de nombre no cambia al editar cantidad")
	assert.True(t, got.TotalCost.Equal(dec("10.00")))
	assert.True(t, got.CostPerServing.Equal(dec("5.00")))
}

func TestRemoveIngredient_NoExiste(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)

	_, err := f.uc.RemoveIngredient(recipe.ID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateServingSize_RecalculaPorcion(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)

	got, err := f.uc.UpdateServingSize(recipe.ID, 4)
	require.NoError(t, err)

	assert.True(t, got.TotalCost.Equal(dec("6.00")), "el total no cambia")
	assert.True(t, got.CostPerServing.Equal(dec("1.50")), "6.00 / 4 porciones, fue %s", got.CostPerServing)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecalculateForItem: propagación desde el catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestRecalculateForItem_RefrescaCostoYSnapshots(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)

	// Cambian nombre, unidad y costo del insumo en el catálogo.
	item, err := f.itemRepo.GetByID("cafe")
	require.NoError(t, err)
	item.Name = "Café en grano premium"
	item.Unit = "kg (tostado)"
	item.CostPerUnit = dec("3.00")
	require.NoError(t, f.itemRepo.Update(item))

	require.NoError(t, f.uc.RecalculateForItem("cafe"))

	got, err := f.uc.GetRecipe(recipe.ID)
	require.NoError(t, err)
	ing := got.Ingredients[0]
	assert.Equal(t, "Café en grano premium", ing.Name, "el recálculo refresca el snapshot de nombre")
	assert.Equal(t, "kg (tostado)", ing.Unit)
	assert.True(t, ing.Cost.Equal(dec("9.00")), "3 x 3.00 = 9.00, fue %s", ing.Cost)
	assert.True(t, got.TotalCost.Equal(dec("9.00")))
	assert.True(t, got.CostPerServing.Equal(dec("4.50")))
}

func TestRecalculateForItem_NoTocaOtrasRecetas(t *testing.T) {
	f := newFixture(t)
	f.seedRecipe(t)
	f.seedItem(t, "leche", "Leche entera", "l", "1.10")

	other, err := f.uc.CreateRecipe(dto.CreateRecipeRequest{
		Name:        "Vaso de leche",
		Category:    "bebidas frías",
		ServingSize: 1,
		Ingredients: []dto.IngredientInput{{InventoryItemID: "leche", Quantity: dec("1")}},
	})
	require.NoError(t, err)

	item, err := f.itemRepo.GetByID("cafe")
	require.NoError(t, err)
	item.CostPerUnit = dec("9.99")
	require.NoError(t, f.itemRepo.Update(item))

	require.NoError(t, f.uc.RecalculateForItem("cafe"))

	got, err := f.uc.GetRecipe(other.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalCost.Equal(dec("1.10")), "la receta sin café queda intacta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Propagación hacia la carta
// ──────────────────────────────────────────────────────────────────────────────

func TestMutacionesDeCosto_PropaganALaCarta(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)
	assert.Empty(t, f.spy.calls, "crear la receta no propaga: aún no hay carta vinculada")

	_, err := f.uc.UpdateServingSize(recipe.ID, 3)
	require.NoError(t, err)
	require.Len(t, f.spy.calls, 1)
	assert.Equal(t, recipe.ID, f.spy.calls[0])

	f.seedItem(t, "leche", "Leche entera", "l", "1.10")
	_, err = f.uc.AddIngredient(recipe.ID, dto.AddIngredientRequest{
		InventoryItemID: "leche", Quantity: dec("1"),
	})
	require.NoError(t, err)
	assert.Len(t, f.spy.calls, 2, "cada mutación de costo dispara una propagación")
}

func TestUpdateRecipe_CamposDescriptivosNoPropagan(t *testing.T) {
	f := newFixture(t)
	recipe := f.seedRecipe(t)

	name := "Café filtrado clásico"
	_, err := f.uc.UpdateRecipe(recipe.ID, dto.UpdateRecipeRequest{Name: &name})
	require.NoError(t, err)
	assert.Empty(t, f.spy.calls, "editar el nombre no cambia el costo: no hay propagación")
}
