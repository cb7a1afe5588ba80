package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafeteria-api/internal/application/catalog"
	"github.com/jhoicas/cafeteria-api/internal/application/inventory"
	"github.com/jhoicas/cafeteria-api/internal/application/ledger"
	"github.com/jhoicas/cafeteria-api/internal/application/menu"
	"github.com/jhoicas/cafeteria-api/internal/application/recipes"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC      *catalog.CatalogUseCase
	LedgerUC       *ledger.LedgerUseCase
	RecipeUC       *recipes.RecipeUseCase
	MenuUC         *menu.MenuUseCase
	Replenishment  *inventory.ReplenishmentUseCase
	PurchaseOrders PurchaseOrderGenerator
}

// Router registra las rutas de la API del back-office.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventario: catálogo, libro y reposición
	inv := api.Group("/inventory")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	inv.Post("/items", catalogHandler.Create)
	inv.Get("/items", catalogHandler.List)
	inv.Get("/items/:id", catalogHandler.GetByID)
	inv.Put("/items/:id", catalogHandler.Update)
	inv.Post("/items/:id/deactivate", catalogHandler.Deactivate)

	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	inv.Post("/transactions", ledgerHandler.RecordTransaction)
	inv.Get("/items/:id/transactions", ledgerHandler.ListByItem)
	inv.Post("/items/:id/rebuild", ledgerHandler.RebuildProjection)

	replenishmentHandler := NewReplenishmentHandler(deps.Replenishment, deps.PurchaseOrders)
	inv.Get("/replenishment-list", replenishmentHandler.GetReplenishmentList)
	inv.Get("/purchase-order.pdf", replenishmentHandler.GetPurchaseOrderPDF)

	// Recetas
	rec := api.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	rec.Post("/", recipeHandler.Create)
	rec.Get("/", recipeHandler.List)
	rec.Get("/:id", recipeHandler.GetByID)
	rec.Put("/:id", recipeHandler.Update)
	rec.Post("/:id/ingredients", recipeHandler.AddIngredient)
	rec.Put("/:id/ingredients/:ingredientId", recipeHandler.UpdateIngredient)
	rec.Delete("/:id/ingredients/:ingredientId", recipeHandler.RemoveIngredient)
	rec.Put("/:id/serving-size", recipeHandler.UpdateServingSize)

	// Carta
	mn := api.Group("/menu")
	menuHandler := NewMenuHandler(deps.MenuUC)
	mn.Post("/", menuHandler.Create)
	mn.Get("/", menuHandler.List)
	mn.Get("/:id", menuHandler.GetByID)
	mn.Put("/:id", menuHandler.Update)
	mn.Put("/:id/price", menuHandler.SetPrice)
	mn.Put("/:id/recipe", menuHandler.LinkRecipe)
	mn.Post("/:id/refresh", menuHandler.Refresh)
}
