package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVariationRequest entrada para crear una variación de producto.
type CreateVariationRequest struct {
	Name  string          `json:"name" form:"name" validate:"required,min=1,max=200"`
	Color string          `json:"color" form:"color"`
	Price decimal.Decimal `json:"price" form:"price"`
	Stock int             `json:"stock" form:"stock"`
	File  *UploadedFile   `json:"-" form:"-"`
}

// UpdateVariationRequest entrada para actualizar una variación (merge parcial).
type UpdateVariationRequest struct {
	Name   *string          `json:"name" form:"name" validate:"omitempty,min=1,max=200"`
	Color  *string          `json:"color" form:"color"`
	Price  *decimal.Decimal `json:"price" form:"price"`
	Stock  *int             `json:"stock" form:"stock"`
	Active *bool            `json:"active" form:"active"`
	File   *UploadedFile    `json:"-" form:"-"`
}

// VariationResponse salida de una variación.
type VariationResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Color     string          `json:"color,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Images    []string        `json:"images"`
	Stock     int             `json:"stock"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
