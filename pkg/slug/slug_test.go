package slug_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/pkg/slug"
)

func TestSlugify_NormalizaAcentosYEspacios(t *testing.T) {
	assert.Equal(t, "camiseta-basica", slug.Slugify("Camiseta Básica"))
	assert.Equal(t, "tenis-run-2", slug.Slugify("  Tênis   Run! 2 "))
	assert.Equal(t, "nino", slug.Slugify("Niño"))
}

func TestSlugify_SoloSimbolos(t *testing.T) {
	assert.Equal(t, "", slug.Slugify("!!! ???"))
}

func TestNewSlug_AgregaSufijoHex(t *testing.T) {
	s := slug.NewSlug("Camiseta Básica")
	assert.Regexp(t, regexp.MustCompile(`^camiseta-basica-[0-9a-f]{4}$`), s)

	// Dos llamadas con el mismo nombre no deben colisionar (sufijo aleatorio)
	assert.NotEqual(t, s, slug.NewSlug("Camiseta Básica"))
}

func TestNewSKU_Formato(t *testing.T) {
	sku := slug.NewSKU()
	assert.Regexp(t, regexp.MustCompile(`^SKU-[1-9][0-9]{5}$`), sku)
}

func TestNewCode_Formato(t *testing.T) {
	code := slug.NewCode()
	assert.Regexp(t, regexp.MustCompile(`^PRD-[0-9A-F]{8}$`), code)
	assert.Equal(t, code, strings.ToUpper(code))
}
