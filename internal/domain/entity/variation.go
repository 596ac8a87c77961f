package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variation representa una variación de un producto (color, talla, etc.).
// Pertenece a exactamente un Product. Images guarda rutas relativas en orden.
type Variation struct {
	ID        string
	ProductID string
	Name      string
	Color     string
	Price     decimal.Decimal // >= 0
	Images    []string
	Stock     int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
