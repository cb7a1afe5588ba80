package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafeteria-api/internal/application/inventory"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type seed struct {
	id       string
	stock    string
	reorder  string
	ideal    string
	cost     string
	supplier string
	active   bool
}

func newUseCase(t *testing.T, seeds []seed) *inventory.ReplenishmentUseCase {
	t.Helper()
	store := memory.NewStore()
	repo := memory.NewInventoryItemRepository(store)
	now := time.Now()
	for _, s := range seeds {
		err := repo.Create(&entity.InventoryItem{
			ID:           s.id,
			Name:         "Insumo " + s.id,
			Category:     "varios",
			Unit:         "kg",
			CurrentStock: dec(s.stock),
			ReorderPoint: dec(s.reorder),
			IdealStock:   dec(s.ideal),
			CostPerUnit:  dec(s.cost),
			Supplier:     s.supplier,
			Active:       s.active,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		require.NoError(t, err)
	}
	return inventory.NewReplenishmentUseCase(repo)
}

func TestGenerateReplenishmentList_SoloBajoReorden(t *testing.T) {
	uc := newUseCase(t, []seed{
		{id: "bajo", stock: "5", reorder: "10", ideal: "50", cost: "2", supplier: "A", active: true},
		{id: "en-reorden", stock: "10", reorder: "10", ideal: "50", cost: "2", supplier: "A", active: true},
		{id: "sobrado", stock: "40", reorder: "10", ideal: "50", cost: "2", supplier: "A", active: true},
		{id: "inactivo", stock: "0", reorder: "10", ideal: "50", cost: "2", supplier: "A", active: false},
	})

	got, err := uc.GenerateReplenishmentList(context.Background(), "")
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ItemID)
	}
	assert.ElementsMatch(t, []string{"bajo", "en-reorden"}, ids,
		"entra lo que está EN o BAJO el reorden; inactivos nunca")
}

func TestGenerateReplenishmentList_CantidadYCostoSugeridos(t *testing.T) {
	uc := newUseCase(t, []seed{
		{id: "cafe", stock: "5", reorder: "10", ideal: "50", cost: "2.50", supplier: "A", active: true},
	})

	got, err := uc.GenerateReplenishmentList(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 1)

	s := got[0]
	assert.True(t, s.SuggestedOrderQty.Equal(dec("45")), "50 - 5 = 45, fue %s", s.SuggestedOrderQty)
	assert.True(t, s.EstimatedOrderCost.Equal(dec("112.50")), "45 x 2.50, fue %s", s.EstimatedOrderCost)
	assert.Equal(t, 1, s.Priority)
}

func TestGenerateReplenishmentList_PrioridadPorDeficitRelativo(t *testing.T) {
	uc := newUseCase(t, []seed{
		{id: "medio-vacio", stock: "5", reorder: "10", ideal: "50", cost: "2", supplier: "A", active: true},
		{id: "agotado", stock: "0", reorder: "10", ideal: "50", cost: "2", supplier: "A", active: true},
		{id: "justo", stock: "10", reorder: "10", ideal: "50", cost: "2", supplier: "A", active: true},
	})

	got, err := uc.GenerateReplenishmentList(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "agotado", got[0].ItemID, "déficit 100% primero")
	assert.Equal(t, "medio-vacio", got[1].ItemID)
	assert.Equal(t, "justo", got[2].ItemID, "en el reorden exacto: déficit 0, al final")
	for i, s := range got {
		assert.Equal(t, i+1, s.Priority)
	}
}

func TestGenerateReplenishmentList_FiltraPorProveedor(t *testing.T) {
	uc := newUseCase(t, []seed{
		{id: "a1", stock: "0", reorder: "10", ideal: "50", cost: "2", supplier: "Lácteos del Valle", active: true},
		{id: "b1", stock: "0", reorder: "10", ideal: "50", cost: "2", supplier: "Tostadores del Sur", active: true},
	})

	got, err := uc.GenerateReplenishmentList(context.Background(), "Tostadores del Sur")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ItemID)
	assert.Equal(t, 1, got[0].Priority, "la prioridad se numera sobre la lista filtrada")
}
