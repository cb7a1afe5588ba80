package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL. La lista de
// ingredientes, los pasos y la info nutricional van como JSONB: la receta es
// el agregado completo y siempre se lee/escribe entera.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create inserta una receta.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	ingredients, steps, nutritional, err := marshalRecipeParts(recipe)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO recipes (
			id, name, category, ingredients, preparation_steps, serving_size,
			total_cost, cost_per_serving, nutritional, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		recipe.ID, recipe.Name, recipe.Category, ingredients, steps,
		recipe.ServingSize, recipe.TotalCost, recipe.CostPerServing,
		nutritional, recipe.Active, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create recipe: %w", err)
	}
	return nil
}

// GetByID obtiene una receta; (nil, nil) si no existe.
func (r *RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	query := `
		SELECT id, name, category, ingredients, preparation_steps, serving_size,
		       total_cost, cost_per_serving, nutritional, active, created_at, updated_at
		FROM recipes WHERE id = $1`
	recipe, err := scanRecipe(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return recipe, nil
}

// Update reemplaza el agregado completo.
func (r *RecipeRepo) Update(recipe *entity.Recipe) error {
	ingredients, steps, nutritional, err := marshalRecipeParts(recipe)
	if err != nil {
		return err
	}
	query := `
		UPDATE recipes SET
			name = $2, category = $3, ingredients = $4, preparation_steps = $5,
			serving_size = $6, total_cost = $7, cost_per_serving = $8,
			nutritional = $9, active = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.Name, recipe.Category, ingredients, steps,
		recipe.ServingSize, recipe.TotalCost, recipe.CostPerServing,
		nutritional, recipe.Active, recipe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve recetas en orden de alta, con paginación.
func (r *RecipeRepo) List(limit, offset int) ([]*entity.Recipe, error) {
	query := `
		SELECT id, name, category, ingredients, preparation_steps, serving_size,
		       total_cost, cost_per_serving, nutritional, active, created_at, updated_at
		FROM recipes ORDER BY created_at, id LIMIT $1 OFFSET $2`
	return r.queryRecipes(query, limit, offset)
}

// ListByInventoryItem devuelve las recetas con algún ingrediente que
// referencia el insumo (búsqueda por clave débil dentro del JSONB).
func (r *RecipeRepo) ListByInventoryItem(itemID string) ([]*entity.Recipe, error) {
	query := `
		SELECT id, name, category, ingredients, preparation_steps, serving_size,
		       total_cost, cost_per_serving, nutritional, active, created_at, updated_at
		FROM recipes
		WHERE ingredients @> jsonb_build_array(jsonb_build_object('inventory_item_id', $1::text))
		ORDER BY created_at, id`
	return r.queryRecipes(query, itemID)
}

func (r *RecipeRepo) queryRecipes(query string, args ...any) ([]*entity.Recipe, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var out []*entity.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		out = append(out, recipe)
	}
	return out, rows.Err()
}

// ingredientRow forma JSON persistida de un ingrediente.
type ingredientRow struct {
	ID              string `json:"id"`
	InventoryItemID string `json:"inventory_item_id"`
	Name            string `json:"name"`
	Unit            string `json:"unit"`
	Quantity        string `json:"quantity"`
	Cost            string `json:"cost"`
}

func marshalRecipeParts(recipe *entity.Recipe) (ingredients, steps, nutritional []byte, err error) {
	rows := make([]ingredientRow, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		rows = append(rows, ingredientRow{
			ID:              ing.ID,
			InventoryItemID: ing.InventoryItemID,
			Name:            ing.Name,
			Unit:            ing.Unit,
			Quantity:        ing.Quantity.String(),
			Cost:            ing.Cost.String(),
		})
	}
	if ingredients, err = json.Marshal(rows); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal ingredients: %w", err)
	}
	if steps, err = json.Marshal(recipe.PreparationSteps); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal steps: %w", err)
	}
	if recipe.Nutritional != nil {
		if nutritional, err = json.Marshal(recipe.Nutritional); err != nil {
			return nil, nil, nil, fmt.Errorf("marshal nutritional: %w", err)
		}
	}
	return ingredients, steps, nutritional, nil
}

func scanRecipe(row pgx.Row) (*entity.Recipe, error) {
	var (
		recipe          entity.Recipe
		ingredientsJSON []byte
		stepsJSON       []byte
		nutritionalJSON []byte
	)
	if err := row.Scan(
		&recipe.ID, &recipe.Name, &recipe.Category, &ingredientsJSON,
		&stepsJSON, &recipe.ServingSize, &recipe.TotalCost,
		&recipe.CostPerServing, &nutritionalJSON, &recipe.Active,
		&recipe.CreatedAt, &recipe.UpdatedAt,
	); err != nil {
		return nil, err
	}
	var rows []ingredientRow
	if err := json.Unmarshal(ingredientsJSON, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal ingredients: %w", err)
	}
	for _, ir := range rows {
		ing, err := ir.toEntity()
		if err != nil {
			return nil, err
		}
		recipe.Ingredients = append(recipe.Ingredients, ing)
	}
	if err := json.Unmarshal(stepsJSON, &recipe.PreparationSteps); err != nil {
		return nil, fmt.Errorf("unmarshal steps: %w", err)
	}
	if len(nutritionalJSON) > 0 {
		recipe.Nutritional = &entity.NutritionalInfo{}
		if err := json.Unmarshal(nutritionalJSON, recipe.Nutritional); err != nil {
			return nil, fmt.Errorf("unmarshal nutritional: %w", err)
		}
	}
	return &recipe, nil
}

func (ir ingredientRow) toEntity() (entity.RecipeIngredient, error) {
	qty, err := decimalFromString(ir.Quantity)
	if err != nil {
		return entity.RecipeIngredient{}, fmt.Errorf("parse quantity: %w", err)
	}
	cost, err := decimalFromString(ir.Cost)
	if err != nil {
		return entity.RecipeIngredient{}, fmt.Errorf("parse cost: %w", err)
	}
	return entity.RecipeIngredient{
		ID:              ir.ID,
		InventoryItemID: ir.InventoryItemID,
		Name:            ir.Name,
		Unit:            ir.Unit,
		Quantity:        qty,
		Cost:            cost,
	}, nil
}
