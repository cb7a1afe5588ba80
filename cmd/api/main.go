package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/cafeteria-api/internal/application/catalog"
	"github.com/jhoicas/cafeteria-api/internal/application/inventory"
	"github.com/jhoicas/cafeteria-api/internal/application/ledger"
	"github.com/jhoicas/cafeteria-api/internal/application/menu"
	"github.com/jhoicas/cafeteria-api/internal/application/recipes"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
	"github.com/jhoicas/cafeteria-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/cafeteria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cafeteria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cafeteria-api/internal/interfaces/http"
	"github.com/jhoicas/cafeteria-api/pkg/config"
	"github.com/jhoicas/cafeteria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	var (
		itemRepo   repository.InventoryItemRepository
		txRepo     repository.InventoryTransactionRepository
		recipeRepo repository.RecipeRepository
		menuRepo   repository.MenuItemRepository
		txRunner   ledger.TxRunner
	)

	switch cfg.Storage.Driver {
	case "postgres":
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		itemRepo = postgres.NewInventoryItemRepository(pool)
		txRepo = postgres.NewInventoryTransactionRepository(pool)
		recipeRepo = postgres.NewRecipeRepository(pool)
		menuRepo = postgres.NewMenuItemRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	default:
		store := memory.NewStore()
		itemRepo = memory.NewInventoryItemRepository(store)
		txRepo = memory.NewInventoryTransactionRepository(store)
		recipeRepo = memory.NewRecipeRepository(store)
		menuRepo = memory.NewMenuItemRepository(store)
		txRunner = memory.NewTxRunner(store)
	}

	// Cadena de propagación: catálogo -> recetas -> carta. La carta se
	// construye primero y se engancha a recetas tras el cableado inicial.
	menuUC := menu.NewMenuUseCase(menuRepo, recipeRepo)
	recipeUC := recipes.NewRecipeUseCase(recipeRepo, itemRepo, nil)
	recipeUC.SetMenuRefresher(menuUC)
	catalogUC := catalog.NewCatalogUseCase(itemRepo, recipeUC)
	ledgerUC := ledger.NewLedgerUseCase(txRunner, itemRepo, txRepo)
	replenishmentUC := inventory.NewReplenishmentUseCase(itemRepo)

	// PDF: orden de compra generada desde la lista de reposición
	poGenerator := infrapdf.NewMarotoPurchaseOrderGenerator(cfg.Shop.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cafetería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:      catalogUC,
		LedgerUC:       ledgerUC,
		RecipeUC:       recipeUC,
		MenuUC:         menuUC,
		Replenishment:  replenishmentUC,
		PurchaseOrders: poGenerator,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
