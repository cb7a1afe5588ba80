package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafeteria-api/internal/application/dto"
	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

// CostRefresher propaga un cambio de costo unitario a las recetas (y de ahí
// a la carta) que referencian el insumo. Lo implementa el motor de recetas;
// la interfaz vive aquí para no acoplar el catálogo a ese paquete.
type CostRefresher interface {
	RecalculateForItem(itemID string) error
}

// CatalogUseCase casos de uso del catálogo de insumos. CurrentStock y
// LastRestocked se manejan exclusivamente vía libro + proyector.
type CatalogUseCase struct {
	itemRepo  repository.InventoryItemRepository
	refresher CostRefresher // opcional; nil desactiva la propagación
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(itemRepo repository.InventoryItemRepository, refresher CostRefresher) *CatalogUseCase {
	return &CatalogUseCase{itemRepo: itemRepo, refresher: refresher}
}

// CreateItem da de alta un insumo. El stock inicia en 0: las existencias
// iniciales se registran como una transacción restock.
func (uc *CatalogUseCase) CreateItem(in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if err := validateItemFields(in.Name, in.Category, in.Unit, in.Supplier, in.ReorderPoint, in.IdealStock, in.CostPerUnit); err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Unit:         in.Unit,
		CurrentStock: decimal.Zero,
		ReorderPoint: in.ReorderPoint,
		IdealStock:   in.IdealStock,
		CostPerUnit:  in.CostPerUnit,
		Supplier:     in.Supplier,
		Location:     in.Location,
		ExpiryDate:   in.ExpiryDate,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return dto.FromInventoryItem(item), nil
}

// UpdateItem edita los campos de catálogo de un insumo. No permite tocar
// CurrentStock ni LastRestocked. Si cambia CostPerUnit, dispara el recálculo
// de todas las recetas (y por cascada, ítems de carta) que lo referencian.
func (uc *CatalogUseCase) UpdateItem(id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	current, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrUnknownItem
	}

	item := current.Clone()
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.ReorderPoint != nil {
		item.ReorderPoint = *in.ReorderPoint
	}
	if in.IdealStock != nil {
		item.IdealStock = *in.IdealStock
	}
	if in.CostPerUnit != nil {
		item.CostPerUnit = *in.CostPerUnit
	}
	if in.ExpiryDate != nil {
		item.ExpiryDate = in.ExpiryDate
	}
	if err := validateItemFields(item.Name, item.Category, item.Unit, item.Supplier, item.ReorderPoint, item.IdealStock, item.CostPerUnit); err != nil {
		return nil, err
	}

	costChanged := in.CostPerUnit != nil && !in.CostPerUnit.Equal(current.CostPerUnit)

	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}

	if costChanged && uc.refresher != nil {
		if err := uc.refresher.RecalculateForItem(item.ID); err != nil {
			return nil, err
		}
	}
	return dto.FromInventoryItem(item), nil
}

// GetItem obtiene un insumo con sus derivados (stock actual, clasificación).
func (uc *CatalogUseCase) GetItem(id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrUnknownItem
	}
	return dto.FromInventoryItem(item), nil
}

// ListItems lista insumos con paginación.
func (uc *CatalogUseCase) ListItems(limit, offset int) (*dto.InventoryItemListResponse, error) {
	list, err := uc.itemRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *dto.FromInventoryItem(it))
	}
	return &dto.InventoryItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// DeactivateItem desactiva un insumo. Es idempotente y no borra nada: las
// transacciones históricas y las recetas que lo referencian quedan intactas.
func (uc *CatalogUseCase) DeactivateItem(id string) (*dto.InventoryItemResponse, error) {
	current, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrUnknownItem
	}
	if !current.Active {
		return dto.FromInventoryItem(current), nil
	}
	item := current.Clone()
	item.Active = false
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return dto.FromInventoryItem(item), nil
}

// validateItemFields valida las reglas de guardado del catálogo acumulando
// TODAS las violaciones, no solo la primera.
func validateItemFields(name, category, unit, supplier string, reorderPoint, idealStock, costPerUnit decimal.Decimal) error {
	var v domain.Validation
	if name == "" {
		v.Add("name", "no puede estar vacío")
	}
	if category == "" {
		v.Add("category", "no puede estar vacía")
	}
	if unit == "" {
		v.Add("unit", "no puede estar vacía")
	}
	if supplier == "" {
		v.Add("supplier", "no puede estar vacío")
	}
	if reorderPoint.IsNegative() {
		v.Add("reorder_point", "debe ser mayor o igual a 0")
	}
	if !idealStock.IsPositive() {
		v.Add("ideal_stock", "debe ser mayor a 0")
	}
	if costPerUnit.IsNegative() {
		v.Add("cost_per_unit", "debe ser mayor o igual a 0")
	}
	return v.Err()
}
