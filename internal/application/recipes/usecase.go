package recipes

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafeteria-api/internal/application/dto"
	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/costing"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

// MenuRefresher propaga un cambio de costo de receta a los ítems de carta
// vinculados. Lo implementa el motor de carta; la interfaz vive aquí para
// evitar el acoplamiento directo entre ambos paquetes.
type MenuRefresher interface {
	RefreshForRecipe(recipeID string) error
}

// RecipeUseCase motor de costeo de recetas: mantiene la lista de ingredientes
// y recalcula TotalCost/CostPerServing tras cada mutación. Solo LEE el
// catálogo de insumos; jamás lo modifica.
type RecipeUseCase struct {
	recipeRepo repository.RecipeRepository
	itemRepo   repository.InventoryItemRepository
	refresher  MenuRefresher // opcional; nil desactiva la propagación a carta
}

// NewRecipeUseCase construye el motor de recetas.
func NewRecipeUseCase(
	recipeRepo repository.RecipeRepository,
	itemRepo repository.InventoryItemRepository,
	refresher MenuRefresher,
) *RecipeUseCase {
	return &RecipeUseCase{recipeRepo: recipeRepo, itemRepo: itemRepo, refresher: refresher}
}

// SetMenuRefresher engancha la propagación hacia la carta después del cableado
// inicial (carta y recetas se construyen en orden inverso a su dependencia).
func (uc *RecipeUseCase) SetMenuRefresher(r MenuRefresher) { uc.refresher = r }

// CreateRecipe crea una receta; los ingredientes iniciales se resuelven contra
// el catálogo y los totales se derivan antes de persistir.
func (uc *RecipeUseCase) CreateRecipe(in dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	var v domain.Validation
	if in.Name == "" {
		v.Add("name", "no puede estar vacío")
	}
	if in.Category == "" {
		v.Add("category", "no puede estar vacía")
	}
	if in.ServingSize <= 0 {
		v.Add("serving_size", "debe ser mayor a 0")
	}
	for i, ing := range in.Ingredients {
		if !ing.Quantity.GreaterThan(decimal.Zero) {
			v.Add("ingredients", "la cantidad del ingrediente "+strconv.Itoa(i)+" debe ser mayor a 0")
		}
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	recipe := &entity.Recipe{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Category:         in.Category,
		PreparationSteps: in.PreparationSteps,
		ServingSize:      in.ServingSize,
		Nutritional:      dto.ToNutritional(in.Nutritional),
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, ing := range in.Ingredients {
		resolved, err := uc.resolveIngredient(ing.InventoryItemID, ing.Quantity)
		if err != nil {
			return nil, err
		}
		recipe.Ingredients = append(recipe.Ingredients, *resolved)
	}
	if err := recompute(recipe); err != nil {
		return nil, err
	}
	if err := uc.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}
	return dto.FromRecipe(recipe), nil
}

// GetRecipe obtiene una receta con sus totales derivados.
func (uc *RecipeUseCase) GetRecipe(id string) (*dto.RecipeResponse, error) {
	recipe, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrUnknownRecipe
	}
	return dto.FromRecipe(recipe), nil
}

// ListRecipes lista recetas con paginación.
func (uc *RecipeUseCase) ListRecipes(limit, offset int) (*dto.RecipeListResponse, error) {
	list, err := uc.recipeRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *dto.FromRecipe(r))
	}
	return &dto.RecipeListResponse{
		Recipes: out,
		Page:    dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateRecipe edita los campos descriptivos. Ingredientes y tamaño de porción
// tienen operaciones propias porque disparan recálculo.
func (uc *RecipeUseCase) UpdateRecipe(id string, in dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	current, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrUnknownRecipe
	}
	recipe := current.Clone()
	if in.Name != nil {
		if *in.Name == "" {
			var v domain.Validation
			v.Add("name", "no puede estar vacío")
			return nil, v.Err()
		}
		recipe.Name = *in.Name
	}
	if in.Category != nil {
		recipe.Category = *in.Category
	}
	if in.PreparationSteps != nil {
		recipe.PreparationSteps = *in.PreparationSteps
	}
	if in.Nutritional != nil {
		recipe.Nutritional = dto.ToNutritional(in.Nutritional)
	}
	if in.Active != nil {
		recipe.Active = *in.Active
	}
	recipe.UpdatedAt = time.Now()
	if err := uc.recipeRepo.Update(recipe); err != nil {
		return nil, err
	}
	return dto.FromRecipe(recipe), nil
}

// AddIngredient resuelve el insumo, toma snapshot de nombre/unidad, deriva el
// costo al costo unitario vigente y recalcula los totales.
func (uc *RecipeUseCase) AddIngredient(recipeID string, in dto.AddIngredientRequest) (*dto.RecipeResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		var v domain.Validation
		v.Add("quantity", "debe ser mayor a 0")
		return nil, v.Err()
	}
	current, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrUnknownRecipe
	}
	resolved, err := uc.resolveIngredient(in.InventoryItemID, in.Quantity)
	if err != nil {
		return nil, err
	}
	recipe := current.Clone()
	recipe.Ingredients = append(recipe.Ingredients, *resolved)
	return uc.saveRecomputed(recipe)
}

// UpdateIngredientQuantity cambia la cantidad de un ingrediente y recalcula su
// costo con el costo unitario VIGENTE del insumo (no el del snapshot), de modo
// que la edición refleje el precio actual.
func (uc *RecipeUseCase) UpdateIngredientQuantity(recipeID, ingredientID string, quantity decimal.Decimal) (*dto.RecipeResponse, error) {
	if !quantity.GreaterThan(decimal.Zero) {
		var v domain.Validation
		v.Add("quantity", "debe ser mayor a 0")
		return nil, v.Err()
	}
	current, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrUnknownRecipe
	}
	idx := current.FindIngredient(ingredientID)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	item, err := uc.itemRepo.GetByID(current.Ingredients[idx].InventoryItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrUnknownItem
	}
	recipe := current.Clone()
	recipe.Ingredients[idx].Quantity = quantity
	recipe.Ingredients[idx].Cost = costing.IngredientCost(quantity, item.CostPerUnit)
	return uc.saveRecomputed(recipe)
}

// RemoveIngredient quita un ingrediente y recalcula. Agregar y quitar el mismo
// ingrediente devuelve TotalCost exactamente a su valor anterior.
func (uc *RecipeUseCase) RemoveIngredient(recipeID, ingredientID string) (*dto.RecipeResponse, error) {
	current, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrUnknownRecipe
	}
	idx := current.FindIngredient(ingredientID)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	recipe := current.Clone()
	recipe.Ingredients = append(recipe.Ingredients[:idx], recipe.Ingredients[idx+1:]...)
	return uc.saveRecomputed(recipe)
}

// UpdateServingSize cambia el tamaño de porción y recalcula CostPerServing.
func (uc *RecipeUseCase) UpdateServingSize(recipeID string, servingSize int) (*dto.RecipeResponse, error) {
	if servingSize <= 0 {
		var v domain.Validation
		v.Add("serving_size", "debe ser mayor a 0")
		return nil, v.Err()
	}
	current, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrUnknownRecipe
	}
	recipe := current.Clone()
	recipe.ServingSize = servingSize
	return uc.saveRecomputed(recipe)
}

// RecalculateForItem refresca, en toda receta que referencia el insumo, el
// costo de sus ingredientes al costo unitario vigente y los snapshots de
// nombre/unidad; luego propaga a los ítems de carta vinculados. Es el punto de
// entrada de la propagación cuando cambia CostPerUnit en el catálogo.
func (uc *RecipeUseCase) RecalculateForItem(itemID string) error {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrUnknownItem
	}
	affected, err := uc.recipeRepo.ListByInventoryItem(itemID)
	if err != nil {
		return err
	}
	for _, current := range affected {
		recipe := current.Clone()
		for i := range recipe.Ingredients {
			if recipe.Ingredients[i].InventoryItemID != itemID {
				continue
			}
			recipe.Ingredients[i].Name = item.Name
			recipe.Ingredients[i].Unit = item.Unit
			recipe.Ingredients[i].Cost = costing.IngredientCost(recipe.Ingredients[i].Quantity, item.CostPerUnit)
		}
		if _, err := uc.saveRecomputed(recipe); err != nil {
			return err
		}
	}
	return nil
}

// resolveIngredient resuelve la referencia débil contra el catálogo: el insumo
// debe existir y estar activo para entrar a una receta.
func (uc *RecipeUseCase) resolveIngredient(itemID string, quantity decimal.Decimal) (*entity.RecipeIngredient, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.Active {
		return nil, domain.ErrUnknownItem
	}
	return &entity.RecipeIngredient{
		ID:              uuid.New().String(),
		InventoryItemID: item.ID,
		Name:            item.Name,
		Unit:            item.Unit,
		Quantity:        quantity,
		Cost:            costing.IngredientCost(quantity, item.CostPerUnit),
	}, nil
}

// saveRecomputed recalcula totales, persiste y propaga a la carta.
func (uc *RecipeUseCase) saveRecomputed(recipe *entity.Recipe) (*dto.RecipeResponse, error) {
	if err := recompute(recipe); err != nil {
		return nil, err
	}
	recipe.UpdatedAt = time.Now()
	if err := uc.recipeRepo.Update(recipe); err != nil {
		return nil, err
	}
	if uc.refresher != nil {
		if err := uc.refresher.RefreshForRecipe(recipe.ID); err != nil {
			return nil, err
		}
	}
	return dto.FromRecipe(recipe), nil
}

// recompute deriva TotalCost y CostPerServing. Un total negativo indica un
// defecto del motor, no una condición de usuario.
func recompute(recipe *entity.Recipe) error {
	total, perServing := costing.RecipeTotals(recipe.Ingredients, recipe.ServingSize)
	if total.IsNegative() {
		return &domain.InvariantViolation{Entity: "Recipe", Detail: "costo total negativo tras recálculo"}
	}
	recipe.TotalCost = total
	recipe.CostPerServing = perServing
	return nil
}
