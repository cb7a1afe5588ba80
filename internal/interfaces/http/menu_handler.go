package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafeteria-api/internal/application/dto"
	"github.com/jhoicas/cafeteria-api/internal/application/menu"
)

// MenuHandler maneja las peticiones HTTP de la carta.
type MenuHandler struct {
	uc *menu.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *menu.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// Create godoc
// @Summary      Crear un ítem de carta vinculado a una receta
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMenuItemRequest  true  "name, category, price, recipe_id"
// @Success      201   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.CreateMenuItem(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener un ítem de carta con su rentabilidad derivada
// @Tags         menu
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.MenuItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/{id} [get]
func (h *MenuHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetMenuItem(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar la carta
// @Tags         menu
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.MenuListResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	resp, err := h.uc.ListMenuItems(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Editar campos descriptivos de un ítem de carta
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.UpdateMenuItemRequest  true  "campos a editar"
// @Success      200   {object}  dto.MenuItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menu/{id} [put]
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.UpdateMenuItem(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// SetPrice godoc
// @Summary      Fijar el precio de venta y recalcular la rentabilidad
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.SetPriceRequest  true  "price > 0"
// @Success      200   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menu/{id}/price [put]
func (h *MenuHandler) SetPrice(c *fiber.Ctx) error {
	var in dto.SetPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.SetPrice(c.Params("id"), in.Price)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// LinkRecipe godoc
// @Summary      Vincular el ítem a otra receta activa
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.LinkRecipeRequest  true  "recipe_id"
// @Success      200   {object}  dto.MenuItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menu/{id}/recipe [put]
func (h *MenuHandler) LinkRecipe(c *fiber.Ctx) error {
	var in dto.LinkRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.LinkRecipe(c.Params("id"), in.RecipeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Refresh godoc
// @Summary      Refrescar el costo desde la receta vinculada (precio intacto)
// @Tags         menu
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.MenuItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/{id}/refresh [post]
func (h *MenuHandler) Refresh(c *fiber.Ctx) error {
	resp, err := h.uc.RefreshFromRecipe(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
