package menu

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafeteria-api/internal/application/dto"
	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/costing"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

// MenuUseCase motor de rentabilidad de la carta: Cost/Profit/ProfitMargin son
// siempre función pura de {Price, CostPerServing de la receta vinculada}. El
// recálculo es idempotente e independiente del orden.
type MenuUseCase struct {
	menuRepo   repository.MenuItemRepository
	recipeRepo repository.RecipeRepository
}

// NewMenuUseCase construye el motor de carta.
func NewMenuUseCase(menuRepo repository.MenuItemRepository, recipeRepo repository.RecipeRepository) *MenuUseCase {
	return &MenuUseCase{menuRepo: menuRepo, recipeRepo: recipeRepo}
}

// CreateMenuItem crea un ítem de carta vinculado a una receta activa y deriva
// su rentabilidad inicial.
func (uc *MenuUseCase) CreateMenuItem(in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	var v domain.Validation
	if in.Name == "" {
		v.Add("name", "no puede estar vacío")
	}
	if in.Category == "" {
		v.Add("category", "no puede estar vacía")
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		v.Add("price", "debe ser mayor a 0")
	}
	if in.RecipeID == "" {
		v.Add("recipe_id", "no puede estar vacío")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	recipe, err := uc.activeRecipe(in.RecipeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &entity.MenuItem{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		RecipeID:    recipe.ID,
		SeasonStart: in.SeasonStart,
		SeasonEnd:   in.SeasonEnd,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyRecipe(item, recipe)
	if err := uc.menuRepo.Create(item); err != nil {
		return nil, err
	}
	return dto.FromMenuItem(item), nil
}

// GetMenuItem obtiene un ítem de carta con su rentabilidad derivada.
func (uc *MenuUseCase) GetMenuItem(id string) (*dto.MenuItemResponse, error) {
	item, err := uc.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return dto.FromMenuItem(item), nil
}

// ListMenuItems lista la carta con paginación.
func (uc *MenuUseCase) ListMenuItems(limit, offset int) (*dto.MenuListResponse, error) {
	list, err := uc.menuRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuItemResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.FromMenuItem(m))
	}
	return &dto.MenuListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateMenuItem edita los campos descriptivos. Precio y receta vinculada
// tienen operaciones propias porque disparan recálculo.
func (uc *MenuUseCase) UpdateMenuItem(id string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	current, err := uc.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	item := current.Clone()
	if in.Name != nil {
		if *in.Name == "" {
			var v domain.Validation
			v.Add("name", "no puede estar vacío")
			return nil, v.Err()
		}
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.SeasonStart != nil {
		item.SeasonStart = in.SeasonStart
	}
	if in.SeasonEnd != nil {
		item.SeasonEnd = in.SeasonEnd
	}
	if in.Active != nil {
		item.Active = *in.Active
	}
	item.UpdatedAt = time.Now()
	if err := uc.menuRepo.Update(item); err != nil {
		return nil, err
	}
	return dto.FromMenuItem(item), nil
}

// LinkRecipe vincula el ítem a otra receta activa, toma su CostPerServing y
// su snapshot nutricional, y recalcula la rentabilidad.
func (uc *MenuUseCase) LinkRecipe(id, recipeID string) (*dto.MenuItemResponse, error) {
	current, err := uc.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	recipe, err := uc.activeRecipe(recipeID)
	if err != nil {
		return nil, err
	}
	item := current.Clone()
	item.RecipeID = recipe.ID
	applyRecipe(item, recipe)
	item.UpdatedAt = time.Now()
	if err := uc.menuRepo.Update(item); err != nil {
		return nil, err
	}
	return dto.FromMenuItem(item), nil
}

// SetPrice fija el precio de venta y recalcula Profit/ProfitMargin.
func (uc *MenuUseCase) SetPrice(id string, price decimal.Decimal) (*dto.MenuItemResponse, error) {
	if !price.GreaterThan(decimal.Zero) {
		var v domain.Validation
		v.Add("price", "debe ser mayor a 0")
		return nil, v.Err()
	}
	current, err := uc.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	item := current.Clone()
	item.Price = price
	item.Profit, item.ProfitMargin = costing.Profitability(item.Price, item.Cost)
	item.UpdatedAt = time.Now()
	if err := uc.menuRepo.Update(item); err != nil {
		return nil, err
	}
	return dto.FromMenuItem(item), nil
}

// RefreshFromRecipe re-lee el CostPerServing de la receta vinculada y
// recalcula la rentabilidad sin tocar el precio.
func (uc *MenuUseCase) RefreshFromRecipe(id string) (*dto.MenuItemResponse, error) {
	current, err := uc.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	recipe, err := uc.recipeRepo.GetByID(current.RecipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrUnknownRecipe
	}
	item := current.Clone()
	applyRecipe(item, recipe)
	item.UpdatedAt = time.Now()
	if err := uc.menuRepo.Update(item); err != nil {
		return nil, err
	}
	return dto.FromMenuItem(item), nil
}

// RefreshForRecipe refresca todos los ítems de carta vinculados a la receta.
// Implementa recipes.MenuRefresher: se invoca cada vez que cambia el costo de
// una receta (edición de ingredientes, porciones o costo de un insumo).
func (uc *MenuUseCase) RefreshForRecipe(recipeID string) error {
	recipe, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return err
	}
	if recipe == nil {
		return domain.ErrUnknownRecipe
	}
	linked, err := uc.menuRepo.ListByRecipe(recipeID)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, current := range linked {
		item := current.Clone()
		applyRecipe(item, recipe)
		item.UpdatedAt = now
		if err := uc.menuRepo.Update(item); err != nil {
			return err
		}
	}
	return nil
}

// activeRecipe resuelve la referencia débil: la receta debe existir y estar activa.
func (uc *MenuUseCase) activeRecipe(recipeID string) (*entity.Recipe, error) {
	recipe, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil || !recipe.Active {
		return nil, domain.ErrUnknownRecipe
	}
	return recipe, nil
}

// applyRecipe vuelca el costo por porción y el snapshot nutricional de la
// receta sobre el ítem y deriva Profit/ProfitMargin.
func applyRecipe(item *entity.MenuItem, recipe *entity.Recipe) {
	item.Cost = recipe.CostPerServing
	item.Profit, item.ProfitMargin = costing.Profitability(item.Price, item.Cost)
	if recipe.Nutritional != nil {
		n := *recipe.Nutritional
		item.Nutritional = &n
	} else {
		item.Nutritional = nil
	}
}
