package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Index godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /products [get]
func (h *ProductHandler) Index(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Show godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Show(c *fiber.Ctx) error {
	out, err := h.uc.FindByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ByCategory godoc
// @Summary      Listar productos de una categoría
// @Tags         products
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {array}  dto.ProductResponse
// @Router       /products/category/{categoryId} [get]
func (h *ProductHandler) ByCategory(c *fiber.Ctx) error {
	out, err := h.uc.FindByCategory(c.Params("categoryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Store godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        name         formData  string  true   "nombre"
// @Param        category_id  formData  string  true   "categoría"
// @Param        price        formData  string  false  "precio decimal"
// @Param        file         formData  file    false  "banner"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Store(c *fiber.Ctx) error {
	in, err := parseCreateProduct(c)
	if err != nil {
		return respondError(c, err)
	}
	in.File = GetUpload(c)
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id    path      string  true   "ID del producto"
// @Param        file  formData  file    false  "nuevo banner"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	in, err := parseUpdateProduct(c)
	if err != nil {
		return respondError(c, err)
	}
	in.File = GetUpload(c)
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStock godoc
// @Summary      Sobrescribir stock
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del producto"
// @Param        body  body  dto.UpdateStockRequest  true  "stock"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id}/stock [patch]
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStock(c.Params("id"), in.Stock)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto con sus variaciones e imágenes
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204  "eliminado"
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
