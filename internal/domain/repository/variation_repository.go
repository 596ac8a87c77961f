package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// VariationRepository define el puerto de persistencia para Variation (DIP).
type VariationRepository interface {
	Create(variation *entity.Variation) error
	GetByID(id string) (*entity.Variation, error)
	ListByProduct(productID string, activeOnly bool) ([]*entity.Variation, error)
	CountByProduct(productID string) (int, error)
	Update(variation *entity.Variation) error
	Delete(id string) error
	DeleteByProduct(productID string) error
}
