package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafeteria-api/internal/application/dto"
	"github.com/jhoicas/cafeteria-api/internal/application/recipes"
)

// RecipeHandler maneja las peticiones HTTP del motor de recetas.
type RecipeHandler struct {
	uc *recipes.RecipeUseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(uc *recipes.RecipeUseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear una receta
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRecipeRequest  true  "name, category, serving_size, ingredientes iniciales"
// @Success      201   {object}  dto.RecipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recipes [post]
func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.CreateRecipe(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener una receta con sus totales derivados
// @Tags         recipes
// @Produce      json
// @Param        id  path  string  true  "ID de la receta"
// @Success      200  {object}  dto.RecipeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [get]
func (h *RecipeHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetRecipe(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar recetas
// @Tags         recipes
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.RecipeListResponse
// @Router       /api/recipes [get]
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	resp, err := h.uc.ListRecipes(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Editar campos descriptivos de una receta
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la receta"
// @Param        body  body  dto.UpdateRecipeRequest  true  "campos a editar"
// @Success      200   {object}  dto.RecipeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [put]
func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.UpdateRecipe(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// AddIngredient godoc
// @Summary      Agregar un ingrediente (resuelve insumo y recalcula totales)
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la receta"
// @Param        body  body  dto.AddIngredientRequest  true  "inventory_item_id, quantity"
// @Success      200   {object}  dto.RecipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recipes/{id}/ingredients [post]
func (h *RecipeHandler) AddIngredient(c *fiber.Ctx) error {
	var in dto.AddIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.AddIngredient(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UpdateIngredient godoc
// @Summary      Cambiar la cantidad de un ingrediente (costo unitario vigente)
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id            path  string  true  "ID de la receta"
// @Param        ingredientId  path  string  true  "ID del ingrediente"
// @Param        body          body  dto.UpdateIngredientRequest  true  "quantity"
// @Success      200   {object}  dto.RecipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recipes/{id}/ingredients/{ingredientId} [put]
func (h *RecipeHandler) UpdateIngredient(c *fiber.Ctx) error {
	var in dto.UpdateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.UpdateIngredientQuantity(c.Params("id"), c.Params("ingredientId"), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// RemoveIngredient godoc
// @Summary      Quitar un ingrediente y recalcular totales
// @Tags         recipes
// @Produce      json
// @Param        id            path  string  true  "ID de la receta"
// @Param        ingredientId  path  string  true  "ID del ingrediente"
// @Success      200  {object}  dto.RecipeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id}/ingredients/{ingredientId} [delete]
func (h *RecipeHandler) RemoveIngredient(c *fiber.Ctx) error {
	resp, err := h.uc.RemoveIngredient(c.Params("id"), c.Params("ingredientId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UpdateServingSize godoc
// @Summary      Cambiar el tamaño de porción y recalcular costo por porción
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la receta"
// @Param        body  body  dto.UpdateServingSizeRequest  true  "serving_size"
// @Success      200   {object}  dto.RecipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recipes/{id}/serving-size [put]
func (h *RecipeHandler) UpdateServingSize(c *fiber.Ctx) error {
	var in dto.UpdateServingSizeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.UpdateServingSize(c.Params("id"), in.ServingSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
