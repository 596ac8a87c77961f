package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Product representa un producto del catálogo.
// Slug, SKU y Code se asignan una sola vez en la creación y son inmutables
// después (únicos globalmente, con índice en la capa de almacenamiento).
// HasVariation es un cache desnormalizado de "existe al menos una Variation":
// se mantiene dentro de la misma transacción que cambia la membresía.
type Product struct {
	ID           string
	Name         string
	Slug         string
	SKU          string // código interno (control / stock)
	Code         string // código comercial (exhibición / ERP)
	Banner       string // ruta relativa de la imagen principal
	Description  string
	Price        decimal.Decimal // >= 0
	Stock        int
	HasVariation bool
	Status       string // ACTIVE, INACTIVE
	CategoryID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
