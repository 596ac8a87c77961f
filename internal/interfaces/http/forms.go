package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// Las rutas con imagen aceptan multipart/form-data además de JSON. El parseo
// multipart es explícito campo a campo: los merges parciales necesitan
// distinguir "campo ausente" de "campo vacío", y decimal.Decimal no pasa por
// el decodificador de formularios de Fiber.

// formValues devuelve los campos del formulario cuando la petición es
// multipart, o nil para cuerpos JSON.
func formValues(c *fiber.Ctx) map[string][]string {
	ct := string(c.Request().Header.ContentType())
	if !strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		return nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	return form.Value
}

func formString(vals map[string][]string, key string) (string, bool) {
	v, ok := vals[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

func formDecimal(vals map[string][]string, key string) (*decimal.Decimal, error) {
	v, ok := formString(vals, key)
	if !ok || v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &d, nil
}

func formInt(vals map[string][]string, key string) (*int, error) {
	v, ok := formString(vals, key)
	if !ok || v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &n, nil
}

func formBool(vals map[string][]string, key string) (*bool, error) {
	v, ok := formString(vals, key)
	if !ok || v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &b, nil
}

func parseCreateProduct(c *fiber.Ctx) (dto.CreateProductRequest, error) {
	var in dto.CreateProductRequest
	vals := formValues(c)
	if vals == nil {
		if err := c.BodyParser(&in); err != nil {
			return in, domain.ErrInvalidInput
		}
		return in, nil
	}
	in.Name, _ = formString(vals, "name")
	in.Description, _ = formString(vals, "description")
	in.Status, _ = formString(vals, "status")
	in.CategoryID, _ = formString(vals, "category_id")
	in.Slug, _ = formString(vals, "slug")
	in.SKU, _ = formString(vals, "sku")
	in.Code, _ = formString(vals, "code")
	price, err := formDecimal(vals, "price")
	if err != nil {
		return in, err
	}
	if price != nil {
		in.Price = *price
	}
	stock, err := formInt(vals, "stock")
	if err != nil {
		return in, err
	}
	if stock != nil {
		in.Stock = *stock
	}
	return in, nil
}

func parseUpdateProduct(c *fiber.Ctx) (dto.UpdateProductRequest, error) {
	var in dto.UpdateProductRequest
	vals := formValues(c)
	if vals == nil {
		if err := c.BodyParser(&in); err != nil {
			return in, domain.ErrInvalidInput
		}
		return in, nil
	}
	if v, ok := formString(vals, "name"); ok {
		in.Name = &v
	}
	if v, ok := formString(vals, "description"); ok {
		in.Description = &v
	}
	if v, ok := formString(vals, "status"); ok {
		in.Status = &v
	}
	if v, ok := formString(vals, "category_id"); ok {
		in.CategoryID = &v
	}
	var err error
	if in.Price, err = formDecimal(vals, "price"); err != nil {
		return in, err
	}
	if in.Stock, err = formInt(vals, "stock"); err != nil {
		return in, err
	}
	return in, nil
}

func parseCreateVariation(c *fiber.Ctx) (dto.CreateVariationRequest, error) {
	var in dto.CreateVariationRequest
	vals := formValues(c)
	if vals == nil {
		if err := c.BodyParser(&in); err != nil {
			return in, domain.ErrInvalidInput
		}
		return in, nil
	}
	in.Name, _ = formString(vals, "name")
	in.Color, _ = formString(vals, "color")
	price, err := formDecimal(vals, "price")
	if err != nil {
		return in, err
	}
	if price != nil {
		in.Price = *price
	}
	stock, err := formInt(vals, "stock")
	if err != nil {
		return in, err
	}
	if stock != nil {
		in.Stock = *stock
	}
	return in, nil
}

func parseUpdateVariation(c *fiber.Ctx) (dto.UpdateVariationRequest, error) {
	var in dto.UpdateVariationRequest
	vals := formValues(c)
	if vals == nil {
		if err := c.BodyParser(&in); err != nil {
			return in, domain.ErrInvalidInput
		}
		return in, nil
	}
	if v, ok := formString(vals, "name"); ok {
		in.Name = &v
	}
	if v, ok := formString(vals, "color"); ok {
		in.Color = &v
	}
	var err error
	if in.Price, err = formDecimal(vals, "price"); err != nil {
		return in, err
	}
	if in.Stock, err = formInt(vals, "stock"); err != nil {
		return in, err
	}
	if in.Active, err = formBool(vals, "active"); err != nil {
		return in, err
	}
	return in, nil
}
