package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByNameAndCategory(name, categoryID string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, stock int) error
	SetHasVariation(id string, has bool) error
	Delete(id string) error
}
