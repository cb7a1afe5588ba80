package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafeteria-api/internal/application/dto"
	"github.com/jhoicas/cafeteria-api/internal/application/inventory"
)

// PurchaseOrderGenerator genera la orden de compra en PDF desde la lista de
// reposición (implementada en infrastructure/pdf con Maroto).
type PurchaseOrderGenerator interface {
	GeneratePurchaseOrder(ctx context.Context, supplier string, issuedAt time.Time, suggestions []dto.ReplenishmentSuggestionDTO) ([]byte, error)
}

// ReplenishmentHandler maneja la lista de reposición y la orden de compra.
type ReplenishmentHandler struct {
	uc  *inventory.ReplenishmentUseCase
	pdf PurchaseOrderGenerator
}

// NewReplenishmentHandler construye el handler.
func NewReplenishmentHandler(uc *inventory.ReplenishmentUseCase, pdf PurchaseOrderGenerator) *ReplenishmentHandler {
	return &ReplenishmentHandler{uc: uc, pdf: pdf}
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Insumos en o bajo el punto de reorden con la cantidad sugerida
//
//	para volver al stock ideal, priorizados por urgencia.
//
// @Tags         inventory
// @Produce      json
// @Param        supplier  query  string  false  "Filtrar por proveedor. Vacío = todos."
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/replenishment-list [get]
func (h *ReplenishmentHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.uc.GenerateReplenishmentList(c.Context(), c.Query("supplier"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}

// GetPurchaseOrderPDF godoc
// @Summary      Orden de compra en PDF
// @Tags         inventory
// @Produce      application/pdf
// @Param        supplier  query  string  false  "Filtrar por proveedor. Vacío = orden consolidada."
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/purchase-order.pdf [get]
func (h *ReplenishmentHandler) GetPurchaseOrderPDF(c *fiber.Ctx) error {
	supplier := c.Query("supplier")
	list, err := h.uc.GenerateReplenishmentList(c.Context(), supplier)
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, err := h.pdf.GeneratePurchaseOrder(c.Context(), supplier, time.Now(), list)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orden-de-compra.pdf"`)
	return c.Send(pdfBytes)
}
