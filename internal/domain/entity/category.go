package entity

import "time"

// Category representa una categoría del catálogo. El nombre es único
// (constraint en la capa de almacenamiento).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
