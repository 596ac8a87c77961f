package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// urlParam devuelve el parámetro de ruta decodificado (los nombres de
// categoría pueden traer espacios percent-encoded).
func urlParam(c *fiber.Ctx, key string) (string, error) {
	v, err := url.PathUnescape(c.Params(key))
	if err != nil {
		return "", domain.ErrInvalidInput
	}
	return v, nil
}
