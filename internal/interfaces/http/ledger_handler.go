package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafeteria-api/internal/application/dto"
	"github.com/jhoicas/cafeteria-api/internal/application/ledger"
)

// LedgerHandler maneja las peticiones HTTP del libro de inventario.
type LedgerHandler struct {
	uc *ledger.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RecordTransaction godoc
// @Summary      Registrar una transacción de inventario
// @Description  restock, usage, adjustment (cantidad con signo) o write-off.
//
//	Devuelve la transacción y el insumo ya proyectado.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordTransactionRequest  true  "item_id, type, quantity, unit_cost (restock)"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/transactions [post]
func (h *LedgerHandler) RecordTransaction(c *fiber.Ctx) error {
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.RecordTransaction(c.Context(), in, c.Get("X-User", "back-office"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListByItem godoc
// @Summary      Historial de transacciones de un insumo
// @Tags         inventory
// @Produce      json
// @Param        id      path   string  true   "ID del insumo"
// @Param        from    query  string  false  "Desde (RFC3339)"
// @Param        to      query  string  false  "Hasta (RFC3339)"
// @Param        limit   query  int     false  "Tamaño de página"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/transactions [get]
func (h *LedgerHandler) ListByItem(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()

	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return badBody(c)
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return badBody(c)
	}

	resp, err := h.uc.ListTransactions(c.Params("id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// RebuildProjection godoc
// @Summary      Reproyectar el stock de un insumo desde su historial completo
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del insumo"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/rebuild [post]
func (h *LedgerHandler) RebuildProjection(c *fiber.Ctx) error {
	resp, err := h.uc.RebuildProjection(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
