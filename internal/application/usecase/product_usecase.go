package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/slug"
)

// ProductUseCase casos de uso CRUD para productos, incluida la limpieza de
// archivos al eliminar y la generación de slug/SKU/code en la creación.
type ProductUseCase struct {
	repo       repository.ProductRepository
	variations repository.VariationRepository
	tx         TxRunner
	files      FileRemover
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, variations repository.VariationRepository, tx TxRunner, files FileRemover) *ProductUseCase {
	return &ProductUseCase{repo: repo, variations: variations, tx: tx, files: files}
}

// Create crea un producto. Slug, SKU y Code se generan aquí, antes de
// persistir y solo si vienen vacíos: así quedan inmutables después de la
// primera asignación (Update nunca los toca). La verificación de
// name+category es un rechazo temprano; el índice único es el respaldo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.CategoryID == "" {
		return nil, domain.ErrMissingFields
	}
	if in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	if status != entity.StatusActive && status != entity.StatusInactive {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByNameAndCategory(in.Name, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrProductExists
	}

	banner := ""
	if in.File != nil {
		banner = in.File.RelPath
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Slug:        in.Slug,
		SKU:         in.SKU,
		Code:        in.Code,
		Banner:      banner,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		Status:      status,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// Solo-si-ausente: un valor ya provisto nunca se regenera.
	if product.Slug == "" {
		product.Slug = slug.NewSlug(product.Name)
	}
	if product.SKU == "" {
		product.SKU = slug.NewSKU()
	}
	if product.Code == "" {
		product.Code = slug.NewCode()
	}

	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// FindAll lista todos los productos.
func (uc *ProductUseCase) FindAll() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// FindByID obtiene un producto por ID.
func (uc *ProductUseCase) FindByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// FindByCategory lista los productos de una categoría.
func (uc *ProductUseCase) FindByCategory(categoryID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update aplica un merge parcial. Slug, SKU y Code no se modifican nunca,
// aunque cambie el nombre.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.Status != nil {
		if *in.Status != entity.StatusActive && *in.Status != entity.StatusInactive {
			return nil, domain.ErrInvalidInput
		}
		product.Status = *in.Status
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.File != nil {
		product.Banner = in.File.RelPath
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateStock sobrescribe el stock directamente.
func (uc *ProductUseCase) UpdateStock(id string, stock int) (*dto.ProductResponse, error) {
	if stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStock(id, stock); err != nil {
		return nil, err
	}
	product.Stock = stock
	return toProductResponse(product), nil
}

// Delete elimina un producto con sus variaciones. Si el producto no existe
// es un no-op. La limpieza de archivos (banner e imágenes de variaciones) va
// antes y por fuera de la transacción de registros: un fallo al borrar un
// archivo no bloquea el borrado del registro, y nunca queda un registro
// apuntando a archivos ya eliminados.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return nil
	}

	if product.Banner != "" {
		uc.files.Remove(product.Banner)
	}
	variations, err := uc.variations.ListByProduct(id, false)
	if err != nil {
		return err
	}
	for _, v := range variations {
		for _, img := range v.Images {
			uc.files.Remove(img)
		}
	}

	return uc.tx.Run(ctx, func(products repository.ProductRepository, vars repository.VariationRepository) error {
		if err := vars.DeleteByProduct(id); err != nil {
			return err
		}
		return products.Delete(id)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		SKU:          p.SKU,
		Code:         p.Code,
		Banner:       p.Banner,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		HasVariation: p.HasVariation,
		Status:       p.Status,
		CategoryID:   p.CategoryID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
