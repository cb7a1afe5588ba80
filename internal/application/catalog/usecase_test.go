package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafeteria-api/internal/application/catalog"
	"github.com/jhoicas/cafeteria-api/internal/application/dto"
	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// refresherSpy registra las propagaciones de cambio de costo.
type refresherSpy struct {
	calls []string
	err   error
}

func (r *refresherSpy) RecalculateForItem(itemID string) error {
	r.calls = append(r.calls, itemID)
	return r.err
}

func validCreate() dto.CreateInventoryItemRequest {
	return dto.CreateInventoryItemRequest{
		Name:         "Leche entera",
		Category:     "lácteos",
		Unit:         "l",
		ReorderPoint: dec("10"),
		IdealStock:   dec("60"),
		CostPerUnit:  dec("1.10"),
		Supplier:     "Lácteos del Valle",
	}
}

func newUseCase(t *testing.T) (*catalog.CatalogUseCase, *refresherSpy) {
	t.Helper()
	store := memory.NewStore()
	spy := &refresherSpy{}
	return catalog.NewCatalogUseCase(memory.NewInventoryItemRepository(store), spy), spy
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateItem
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateItem_StockInicialCero(t *testing.T) {
	uc, _ := newUseCase(t)

	got, err := uc.CreateItem(validCreate())
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.True(t, got.CurrentStock.IsZero(),
		"el stock inicia en 0; las existencias iniciales entran como restock")
	assert.Nil(t, got.LastRestocked)
	assert.True(t, got.Active)
	assert.Equal(t, entity.StockStatusLow, got.StockStatus, "stock 0 <= reorden → low")
}

func TestCreateItem_AcumulaTodasLasViolaciones(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CreateItem(dto.CreateInventoryItemRequest{
		CostPerUnit: dec("-1"),
	})
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok, "debe ser un ValidationError, fue %T", err)

	fields := make([]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		fields = append(fields, v.Field)
	}
	// Todas las violaciones juntas, no solo la primera.
	assert.ElementsMatch(t,
		[]string{"name", "category", "unit", "supplier", "ideal_stock", "cost_per_unit"},
		fields)
}

func TestCreateItem_CostoCeroEsValido(t *testing.T) {
	uc, _ := newUseCase(t)

	in := validCreate()
	in.CostPerUnit = decimal.Zero

	_, err := uc.CreateItem(in)
	assert.NoError(t, err, "costo unitario 0 es válido (insumo donado o sin costear)")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateItem
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateItem_NoExiste(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.UpdateItem("no-existe", dto.UpdateInventoryItemRequest{Name: strp("X")})
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
}

func TestUpdateItem_CampoInvalidoNoPersiste(t *testing.T) {
	uc, _ := newUseCase(t)
	created, err := uc.CreateItem(validCreate())
	require.NoError(t, err)

	_, err = uc.UpdateItem(created.ID, dto.UpdateInventoryItemRequest{Name: strp("")})
	require.Error(t, err)
	_, ok := domain.AsValidationError(err)
	assert.True(t, ok)

	// La entidad queda exactamente como estaba.
	got, err := uc.GetItem(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leche entera", got.Name)
}

func TestUpdateItem_CambioDeCostoPropaga(t *testing.T) {
	uc, spy := newUseCase(t)
	created, err := uc.CreateItem(validCreate())
	require.NoError(t, err)

	_, err = uc.UpdateItem(created.ID, dto.UpdateInventoryItemRequest{CostPerUnit: decp("1.35")})
	require.NoError(t, err)

	require.Len(t, spy.calls, 1, "el cambio de costo unitario debe disparar el recálculo")
	assert.Equal(t, created.ID, spy.calls[0])
}

func TestUpdateItem_MismoCostoNoPropaga(t *testing.T) {
	uc, spy := newUseCase(t)
	created, err := uc.CreateItem(validCreate())
	require.NoError(t, err)

	_, err = uc.UpdateItem(created.ID, dto.UpdateInventoryItemRequest{CostPerUnit: decp("1.10")})
	require.NoError(t, err)
	assert.Empty(t, spy.calls, "sin cambio de costo no hay propagación")

	_, err = uc.UpdateItem(created.ID, dto.UpdateInventoryItemRequest{Name: strp("Leche deslactosada")})
	require.NoError(t, err)
	assert.Empty(t, spy.calls, "editar otros campos tampoco propaga")
}

// ──────────────────────────────────────────────────────────────────────────────
// DeactivateItem
// ──────────────────────────────────────────────────────────────────────────────

func TestDeactivateItem_EsIdempotente(t *testing.T) {
	uc, _ := newUseCase(t)
	created, err := uc.CreateItem(validCreate())
	require.NoError(t, err)

	first, err := uc.DeactivateItem(created.ID)
	require.NoError(t, err)
	assert.False(t, first.Active)

	second, err := uc.DeactivateItem(created.ID)
	require.NoError(t, err, "desactivar dos veces no es error")
	assert.False(t, second.Active)
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt,
		"la segunda desactivación no debe re-escribir la entidad")
}

func TestDeactivateItem_NoExiste(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.DeactivateItem("no-existe")
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListItems
// ──────────────────────────────────────────────────────────────────────────────

func TestListItems_OrdenDeAltaYPaginacion(t *testing.T) {
	uc, _ := newUseCase(t)
	names := []string{"Café en grano", "Leche entera", "Azúcar", "Cacao"}
	for _, n := range names {
		in := validCreate()
		in.Name = n
		_, err := uc.CreateItem(in)
		require.NoError(t, err)
	}

	page, err := uc.ListItems(2, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Leche entera", page.Items[0].Name)
	assert.Equal(t, "Azúcar", page.Items[1].Name)
	assert.Equal(t, 2, page.Page.Limit)
	assert.Equal(t, 1, page.Page.Offset)
}

func strp(s string) *string { return &s }
