// Package slug genera los identificadores derivados de Product: slug URL-safe,
// SKU interno y código comercial. Los tres se asignan una sola vez; los casos
// de uso solo los generan cuando el campo está vacío.
package slug

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeMarks descompone (NFD), elimina las marcas diacríticas y recompone,
// de modo que "Camiseta Básica" -> "Camiseta Basica".
var removeMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify convierte un nombre en un slug en minúsculas con guiones.
// Los caracteres no alfanuméricos colapsan en un solo guion.
func Slugify(name string) string {
	clean, _, err := transform.String(removeMarks, name)
	if err != nil {
		clean = name
	}
	clean = strings.ToLower(clean)

	var b strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range clean {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// NewSlug devuelve el slug del nombre con un sufijo aleatorio de 2 bytes en
// hex, para garantizar unicidad global sin sacrificar legibilidad.
func NewSlug(name string) string {
	return Slugify(name) + "-" + randomHex(2)
}

// NewSKU devuelve un SKU interno con formato SKU-NNNNNN (6 dígitos).
func NewSKU() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		n = big.NewInt(0)
	}
	return "SKU-" + big.NewInt(0).Add(n, big.NewInt(100000)).String()
}

// NewCode devuelve un código comercial con formato PRD-XXXXXXXX (4 bytes hex, mayúsculas).
func NewCode() string {
	return "PRD-" + strings.ToUpper(randomHex(4))
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand no falla en la práctica; un sufijo fijo es preferible a un panic
		return strings.Repeat("0", n*2)
	}
	return hex.EncodeToString(buf)
}
