package memory

import (
	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación en memoria de MenuItemRepository.
type MenuItemRepo struct {
	store *Store
}

// NewMenuItemRepository construye el adaptador sobre el store.
func NewMenuItemRepository(store *Store) *MenuItemRepo {
	return &MenuItemRepo{store: store}
}

// Create registra un ítem de carta nuevo.
func (r *MenuItemRepo) Create(item *entity.MenuItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.menuItems[item.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.menuItems[item.ID] = item.Clone()
	r.store.menuOrder = append(r.store.menuOrder, item.ID)
	return nil
}

// GetByID devuelve una copia del ítem, o (nil, nil) si no existe.
func (r *MenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.menuItems[id].Clone(), nil
}

// Update reemplaza el ítem completo.
func (r *MenuItemRepo) Update(item *entity.MenuItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.menuItems[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.menuItems[item.ID] = item.Clone()
	return nil
}

// List devuelve la carta en orden de alta, con paginación.
func (r *MenuItemRepo) List(limit, offset int) ([]*entity.MenuItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	start, end := paginate(len(r.store.menuOrder), limit, offset)
	out := make([]*entity.MenuItem, 0, end-start)
	for _, id := range r.store.menuOrder[start:end] {
		out = append(out, r.store.menuItems[id].Clone())
	}
	return out, nil
}

// ListByRecipe devuelve los ítems vinculados a la receta, en orden de alta.
func (r *MenuItemRepo) ListByRecipe(recipeID string) ([]*entity.MenuItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.MenuItem
	for _, id := range r.store.menuOrder {
		item := r.store.menuItems[id]
		if item.RecipeID == recipeID {
			out = append(out, item.Clone())
		}
	}
	return out, nil
}
