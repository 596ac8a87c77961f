package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// VariationHandler maneja las peticiones HTTP para las variaciones de producto.
type VariationHandler struct {
	uc *usecase.VariationUseCase
}

// NewVariationHandler construye el handler de variaciones.
func NewVariationHandler(uc *usecase.VariationUseCase) *VariationHandler {
	return &VariationHandler{uc: uc}
}

// IndexByProduct godoc
// @Summary      Listar variaciones activas de un producto
// @Tags         variations
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.VariationResponse
// @Router       /products/{productId}/variations [get]
func (h *VariationHandler) IndexByProduct(c *fiber.Ctx) error {
	out, err := h.uc.FindByProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Show godoc
// @Summary      Obtener variación por ID
// @Tags         variations
// @Produce      json
// @Param        id  path  string  true  "ID de la variación"
// @Success      200  {object}  dto.VariationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /variations/{id} [get]
func (h *VariationHandler) Show(c *fiber.Ctx) error {
	out, err := h.uc.FindByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Store godoc
// @Summary      Crear variación de un producto
// @Tags         variations
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        productId  path      string  true   "ID del producto"
// @Param        name       formData  string  true   "nombre"
// @Param        file       formData  file    false  "imagen"
// @Success      201  {object}  dto.VariationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{productId}/variations [post]
func (h *VariationHandler) Store(c *fiber.Ctx) error {
	in, err := parseCreateVariation(c)
	if err != nil {
		return respondError(c, err)
	}
	in.File = GetUpload(c)
	out, err := h.uc.Create(c.Context(), c.Params("productId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar variación
// @Tags         variations
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id    path      string  true   "ID de la variación"
// @Param        file  formData  file    false  "imagen adicional"
// @Success      200  {object}  dto.VariationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /variations/{id} [put]
func (h *VariationHandler) Update(c *fiber.Ctx) error {
	in, err := parseUpdateVariation(c)
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

// Delete godoc
// @Summary      Eliminar variación con sus imágenes
// @Tags         variations
// @Security     Bearer
// @Param        id  path  string  true  "ID de la variación"
// @Success      204  "eliminada"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /variations/{id} [delete]
func (h *VariationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
