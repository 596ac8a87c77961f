package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Slug, SKU y Code son opcionales: si faltan se generan antes de persistir.
// File viene del middleware de subida cuando la petición trae imagen.
type CreateProductRequest struct {
	Name        string          `json:"name" form:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" form:"description"`
	Price       decimal.Decimal `json:"price" form:"price"`
	Stock       int             `json:"stock" form:"stock"`
	Status      string          `json:"status" form:"status"`
	CategoryID  string          `json:"category_id" form:"category_id" validate:"required"`
	Slug        string          `json:"slug" form:"slug"`
	SKU         string          `json:"sku" form:"sku"`
	Code        string          `json:"code" form:"code"`
	File        *UploadedFile   `json:"-" form:"-"`
}

// UpdateProductRequest entrada para actualizar un producto (merge parcial).
// Slug, SKU y Code no son actualizables: se asignan una sola vez en la creación.
type UpdateProductRequest struct {
	Name        *string          `json:"name" form:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" form:"description"`
	Price       *decimal.Decimal `json:"price" form:"price"`
	Stock       *int             `json:"stock" form:"stock"`
	Status      *string          `json:"status" form:"status"`
	CategoryID  *string          `json:"category_id" form:"category_id"`
	File        *UploadedFile    `json:"-" form:"-"`
}

// UpdateStockRequest sobrescritura directa del stock.
type UpdateStockRequest struct {
	Stock int `json:"stock" validate:"min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	SKU          string          `json:"sku"`
	Code         string          `json:"code"`
	Banner       string          `json:"banner,omitempty"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	HasVariation bool            `json:"has_variation"`
	Status       string          `json:"status"`
	CategoryID   string          `json:"category_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
