package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/storage"
)

// Tabla de traducción error de dominio -> respuesta HTTP, keyed por centinela.
// Único punto de mapeo: los handlers no deciden códigos de estado por su cuenta.
var errorTable = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrMissingFields, fiber.StatusBadRequest, "MISSING_FIELDS"},
	{domain.ErrInvalidID, fiber.StatusBadRequest, "INVALID_ID"},
	{domain.ErrInvalidPassword, fiber.StatusBadRequest, "INVALID_PASSWORD"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{storage.ErrTooLarge, fiber.StatusBadRequest, "FILE_TOO_LARGE"},
	{storage.ErrNotImage, fiber.StatusBadRequest, "INVALID_IMAGE"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrAccessDenied, fiber.StatusForbidden, "ACCESS_DENIED"},
	{domain.ErrAdminOnly, fiber.StatusForbidden, "ADMIN_ONLY"},
	{domain.ErrSelfDelete, fiber.StatusForbidden, "SELF_DELETE"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUserExists, fiber.StatusConflict, "USER_EXISTS"},
	{domain.ErrCategoryExists, fiber.StatusConflict, "CATEGORY_EXISTS"},
	{domain.ErrProductExists, fiber.StatusConflict, "PRODUCT_EXISTS"},
}

// respondError traduce un error de caso de uso a la respuesta HTTP.
// Los errores no clasificados responden 500 con cuerpo genérico: el detalle
// interno se registra, nunca se expone al cliente.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.err.Error()})
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no clasificado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno del servidor",
	})
}
