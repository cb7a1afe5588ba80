package repository

import "github.com/jhoicas/cafeteria-api/internal/domain/entity"

// MenuItemRepository define el puerto de persistencia de la carta.
// GetByID devuelve (nil, nil) cuando el ítem no existe.
type MenuItemRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
	List(limit, offset int) ([]*entity.MenuItem, error)
	// ListByRecipe devuelve los ítems de carta vinculados a la receta.
	ListByRecipe(recipeID string) ([]*entity.MenuItem, error)
}
