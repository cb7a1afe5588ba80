package repository

import "github.com/jhoicas/cafeteria-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia de recetas.
// GetByID devuelve (nil, nil) cuando la receta no existe.
type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	GetByID(id string) (*entity.Recipe, error)
	Update(recipe *entity.Recipe) error
	List(limit, offset int) ([]*entity.Recipe, error)
	// ListByInventoryItem devuelve las recetas con algún ingrediente que referencia el insumo.
	ListByInventoryItem(itemID string) ([]*entity.Recipe, error)
}
