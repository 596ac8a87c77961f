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
)

// VariationUseCase casos de uso para variaciones de producto.
// has_variation del producto dueño es un cache desnormalizado de
// "conteo de variaciones > 0" y se mantiene en la misma transacción
// que cambia la membresía.
type VariationUseCase struct {
	products repository.ProductRepository
	repo     repository.VariationRepository
	tx       TxRunner
	files    FileRemover
}

// NewVariationUseCase construye el caso de uso.
func NewVariationUseCase(products repository.ProductRepository, repo repository.VariationRepository, tx TxRunner, files FileRemover) *VariationUseCase {
	return &VariationUseCase{products: products, repo: repo, tx: tx, files: files}
}

// FindByProduct lista solo las variaciones activas de un producto.
func (uc *VariationUseCase) FindByProduct(productID string) ([]dto.VariationResponse, error) {
	list, err := uc.repo.ListByProduct(productID, true)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VariationResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVariationResponse(v))
	}
	return items, nil
}

// FindByID obtiene una variación por ID.
func (uc *VariationUseCase) FindByID(id string) (*dto.VariationResponse, error) {
	variation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variation == nil {
		return nil, domain.ErrNotFound
	}
	return toVariationResponse(variation), nil
}

// Create crea una variación para un producto existente y marca
// has_variation=true del dueño dentro de la misma transacción.
func (uc *VariationUseCase) Create(ctx context.Context, productID string, in dto.CreateVariationRequest) (*dto.VariationResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrMissingFields
	}
	if in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var images []string
	if in.File != nil {
		images = []string{in.File.RelPath}
	}

	now := time.Now()
	variation := &entity.Variation{
		ID:        uuid.New().String(),
		ProductID: productID,
		Name:      strings.TrimSpace(in.Name),
		Color:     strings.TrimSpace(in.Color),
		Price:     in.Price,
		Images:    images,
		Stock:     in.Stock,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.tx.Run(ctx, func(products repository.ProductRepository, variations repository.VariationRepository) error {
		if err := variations.Create(variation); err != nil {
			return err
		}
		return products.SetHasVariation(productID, true)
	})
	if err != nil {
		return nil, err
	}
	return toVariationResponse(variation), nil
}

// Update aplica un merge parcial. Un archivo nuevo agrega su ruta al final
// de la secuencia de imágenes.
func (uc *VariationUseCase) Update(id string, in dto.UpdateVariationRequest) (*dto.VariationResponse, error) {
	variation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variation == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		variation.Name = strings.TrimSpace(*in.Name)
	}
	if in.Color != nil {
		variation.Color = strings.TrimSpace(*in.Color)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		variation.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		variation.Stock = *in.Stock
	}
	if in.Active != nil {
		variation.Active = *in.Active
	}
	if in.File != nil {
		variation.Images = append(variation.Images, in.File.RelPath)
	}
	variation.UpdatedAt = time.Now()

	if err := uc.repo.Update(variation); err != nil {
		return nil, err
	}
	return toVariationResponse(variation), nil
}

// Delete elimina la variación y, si era la última del producto, apaga
// has_variation en la misma transacción. Sus archivos de imagen se eliminan
// best-effort antes de tocar los registros.
func (uc *VariationUseCase) Delete(ctx context.Context, id string) error {
	variation, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if variation == nil {
		return domain.ErrNotFound
	}

	for _, img := range variation.Images {
		uc.files.Remove(img)
	}

	return uc.tx.Run(ctx, func(products repository.ProductRepository, variations repository.VariationRepository) error {
		if err := variations.Delete(id); err != nil {
			return err
		}
		count, err := variations.CountByProduct(variation.ProductID)
		if err != nil {
			return err
		}
		if count == 0 {
			return products.SetHasVariation(variation.ProductID, false)
		}
		return nil
	})
}

func toVariationResponse(v *entity.Variation) *dto.VariationResponse {
	if v == nil {
		return nil
	}
	images := v.Images
	if images == nil {
		images = []string{}
	}
	return &dto.VariationResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		Name:      v.Name,
		Color:     v.Color,
		Price:     v.Price,
		Images:    images,
		Stock:     v.Stock,
		Active:    v.Active,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
