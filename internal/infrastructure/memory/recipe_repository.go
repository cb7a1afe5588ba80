package memory

import (
	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación en memoria de RecipeRepository.
type RecipeRepo struct {
	store *Store
}

// NewRecipeRepository construye el adaptador sobre el store.
func NewRecipeRepository(store *Store) *RecipeRepo {
	return &RecipeRepo{store: store}
}

// Create registra una receta nueva.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.recipes[recipe.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.recipes[recipe.ID] = recipe.Clone()
	r.store.recipeOrder = append(r.store.recipeOrder, recipe.ID)
	return nil
}

// GetByID devuelve una copia de la receta, o (nil, nil) si no existe.
func (r *RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.recipes[id].Clone(), nil
}

// Update reemplaza la receta completa (ingredientes incluidos).
func (r *RecipeRepo) Update(recipe *entity.Recipe) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.recipes[recipe.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.recipes[recipe.ID] = recipe.Clone()
	return nil
}

// List devuelve recetas en orden de alta, con paginación.
func (r *RecipeRepo) List(limit, offset int) ([]*entity.Recipe, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	start, end := paginate(len(r.store.recipeOrder), limit, offset)
	out := make([]*entity.Recipe, 0, end-start)
	for _, id := range r.store.recipeOrder[start:end] {
		out = append(out, r.store.recipes[id].Clone())
	}
	return out, nil
}

// ListByInventoryItem devuelve las recetas con algún ingrediente que
// referencia el insumo, en orden de alta.
func (r *RecipeRepo) ListByInventoryItem(itemID string) ([]*entity.Recipe, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.Recipe
	for _, id := range r.store.recipeOrder {
		recipe := r.store.recipes[id]
		if recipe.ReferencesItem(itemID) {
			out = append(out, recipe.Clone())
		}
	}
	return out, nil
}
