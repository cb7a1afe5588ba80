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

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación de MenuItemRepository sobre PostgreSQL.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

const menuColumns = `
	id, name, category, price, recipe_id, cost, profit, profit_margin,
	season_start, season_end, active, nutritional, created_at, updated_at`

// Create inserta un ítem de carta.
func (r *MenuItemRepo) Create(item *entity.MenuItem) error {
	nutritional, err := marshalNutritional(item.Nutritional)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO menu_items (` + menuColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Price, item.RecipeID,
		item.Cost, item.Profit, item.ProfitMargin, item.SeasonStart,
		item.SeasonEnd, item.Active, nutritional, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create menu item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem; (nil, nil) si no existe.
func (r *MenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = $1`
	item, err := scanMenuItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

// Update reemplaza el ítem completo.
func (r *MenuItemRepo) Update(item *entity.MenuItem) error {
	nutritional, err := marshalNutritional(item.Nutritional)
	if err != nil {
		return err
	}
	query := `
		UPDATE menu_items SET
			name = $2, category = $3, price = $4, recipe_id = $5, cost = $6,
			profit = $7, profit_margin = $8, season_start = $9, season_end = $10,
			active = $11, nutritional = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Price, item.RecipeID,
		item.Cost, item.Profit, item.ProfitMargin, item.SeasonStart,
		item.SeasonEnd, item.Active, nutritional, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve la carta en orden de alta, con paginación.
func (r *MenuItemRepo) List(limit, offset int) ([]*entity.MenuItem, error) {
	query := `
		SELECT ` + menuColumns + ` FROM menu_items
		ORDER BY created_at, id LIMIT $1 OFFSET $2`
	return r.queryMenuItems(query, limit, offset)
}

// ListByRecipe devuelve los ítems vinculados a la receta.
func (r *MenuItemRepo) ListByRecipe(recipeID string) ([]*entity.MenuItem, error) {
	query := `
		SELECT ` + menuColumns + ` FROM menu_items
		WHERE recipe_id = $1 ORDER BY created_at, id`
	return r.queryMenuItems(query, recipeID)
}

func (r *MenuItemRepo) queryMenuItems(query string, args ...any) ([]*entity.MenuItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	var out []*entity.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func marshalNutritional(n *entity.NutritionalInfo) ([]byte, error) {
	if n == nil {
		return nil, nil
	}
	b, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("marshal nutritional: %w", err)
	}
	return b, nil
}

func scanMenuItem(row pgx.Row) (*entity.MenuItem, error) {
	var (
		item            entity.MenuItem
		nutritionalJSON []byte
	)
	if err := row.Scan(
		&item.ID, &item.Name, &item.Category, &item.Price, &item.RecipeID,
		&item.Cost, &item.Profit, &item.ProfitMargin, &item.SeasonStart,
		&item.SeasonEnd, &item.Active, &nutritionalJSON, &item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(nutritionalJSON) > 0 {
		item.Nutritional = &entity.NutritionalInfo{}
		if err := json.Unmarshal(nutritionalJSON, item.Nutritional); err != nil {
			return nil, fmt.Errorf("unmarshal nutritional: %w", err)
		}
	}
	return &item, nil
}
