package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafeteria-api/internal/application/dto"
	"github.com/jhoicas/cafeteria-api/internal/domain"
	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/cafeteria-api/internal/domain/inventory"
	"github.com/jhoicas/cafeteria-api/internal/domain/repository"
)

// LedgerUseCase registra transacciones del libro de inventario y proyecta el
// stock del insumo en la misma unidad atómica (Commit/Rollback vía TxRunner).
// El libro es el único escritor de CurrentStock.
type LedgerUseCase struct {
	txRunner TxRunner
	itemRepo repository.InventoryItemRepository
	txRepo   repository.InventoryTransactionRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	txRepo repository.InventoryTransactionRepository,
) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, itemRepo: itemRepo, txRepo: txRepo}
}

// RecordTransaction valida y registra una transacción, pliega su efecto sobre
// el stock del insumo y devuelve la transacción junto al insumo proyectado.
// Si algo falla, ningún campo queda a medio aplicar.
func (uc *LedgerUseCase) RecordTransaction(ctx context.Context, in dto.RecordTransactionRequest, createdBy string) (*dto.TransactionResponse, error) {
	if err := validateTransaction(in); err != nil {
		return nil, err
	}

	// El insumo debe existir y estar activo antes de tocar el libro.
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.Active {
		return nil, domain.ErrUnknownItem
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}

	var resp *dto.TransactionResponse
	err = uc.txRunner.Run(ctx, func(
		txRepo repository.InventoryTransactionRepository,
		itemRepo repository.InventoryItemRepository,
	) error {
		// Relee con bloqueo: la transacción debe observar el último CurrentStock.
		locked, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if locked == nil || !locked.Active {
			return domain.ErrUnknownItem
		}

		unitCost := locked.CostPerUnit
		if in.UnitCost != nil {
			unitCost = *in.UnitCost
		}

		tx := &entity.InventoryTransaction{
			ID:         uuid.New().String(),
			ItemID:     in.ItemID,
			Date:       date,
			Type:       in.Type,
			Quantity:   in.Quantity,
			UnitCost:   unitCost,
			TotalCost:  in.Quantity.Mul(unitCost),
			Supplier:   in.Supplier,
			InvoiceRef: in.InvoiceRef,
			Notes:      in.Notes,
			CreatedAt:  now,
			CreatedBy:  createdBy,
		}

		projected := locked.Clone()
		if err := inventory.Apply(projected, tx); err != nil {
			return err
		}
		projected.UpdatedAt = now

		if err := txRepo.Create(tx); err != nil {
			return err
		}
		if err := itemRepo.Update(projected); err != nil {
			return err
		}

		resp = &dto.TransactionResponse{
			ID:         tx.ID,
			ItemID:     tx.ItemID,
			Date:       tx.Date,
			Type:       tx.Type,
			Quantity:   tx.Quantity,
			UnitCost:   tx.UnitCost,
			TotalCost:  tx.TotalCost,
			Supplier:   tx.Supplier,
			InvoiceRef: tx.InvoiceRef,
			Notes:      tx.Notes,
			CreatedAt:  tx.CreatedAt,
			Item:       *dto.FromInventoryItem(projected),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListTransactions devuelve el historial de un insumo con rango de fechas y paginación.
func (uc *LedgerUseCase) ListTransactions(itemID string, from, to *time.Time, limit, offset int) (*dto.TransactionListResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrUnknownItem
	}
	list, err := uc.txRepo.ListByItem(itemID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	records := make([]dto.TransactionRecord, 0, len(list))
	for _, tx := range list {
		records = append(records, dto.FromTransaction(tx))
	}
	return &dto.TransactionListResponse{
		Transactions: records,
		Page:         dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// RebuildProjection reproyecta el stock de un insumo replegando su historial
// completo desde cero. Por la propiedad de replay del libro, el resultado debe
// coincidir con el valor mantenido incrementalmente.
func (uc *LedgerUseCase) RebuildProjection(ctx context.Context, itemID string) (*dto.InventoryItemResponse, error) {
	var resp *dto.InventoryItemResponse
	err := uc.txRunner.Run(ctx, func(
		txRepo repository.InventoryTransactionRepository,
		itemRepo repository.InventoryItemRepository,
	) error {
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrUnknownItem
		}
		history, err := txRepo.ListAllByItem(itemID)
		if err != nil {
			return err
		}
		rebuilt := item.Clone()
		if err := inventory.Replay(rebuilt, history); err != nil {
			return err
		}
		rebuilt.UpdatedAt = time.Now()
		if err := itemRepo.Update(rebuilt); err != nil {
			return err
		}
		resp = dto.FromInventoryItem(rebuilt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// validateTransaction acumula todas las violaciones del payload.
// restock/usage/write-off exigen magnitud positiva; adjustment admite signo
// (negativo = corrección a la baja) pero nunca cero.
func validateTransaction(in dto.RecordTransactionRequest) error {
	var v domain.Validation
	if in.ItemID == "" {
		v.Add("item_id", "no puede estar vacío")
	}
	if !entity.KnownTransactionType(in.Type) {
		v.Add("type", "debe ser restock, usage, adjustment o write-off")
	}
	switch in.Type {
	case entity.TransactionTypeAdjustment:
		if in.Quantity.IsZero() {
			v.Add("quantity", "no puede ser 0 en un ajuste")
		}
	case entity.TransactionTypeRestock, entity.TransactionTypeUsage, entity.TransactionTypeWriteOff:
		if !in.Quantity.GreaterThan(decimal.Zero) {
			v.Add("quantity", "debe ser una magnitud positiva")
		}
	}
	if in.Type == entity.TransactionTypeRestock && in.UnitCost == nil {
		v.Add("unit_cost", "es obligatorio en un restock")
	}
	if in.UnitCost != nil && in.UnitCost.IsNegative() {
		v.Add("unit_cost", "debe ser mayor o igual a 0")
	}
	return v.Err()
}
