package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func newVariationUC() (*usecase.VariationUseCase, *fakeProductRepo, *fakeVariationRepo, *fakeFiles) {
	products := &fakeProductRepo{}
	variations := &fakeVariationRepo{}
	tx := &fakeTxRunner{products: products, variations: variations}
	files := &fakeFiles{}
	return usecase.NewVariationUseCase(products, variations, tx, files), products, variations, files
}

func seedProduct(t *testing.T, products *fakeProductRepo) string {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, products.Create(&entity.Product{
		ID:         id,
		Name:       "Camiseta",
		Status:     entity.StatusActive,
		CategoryID: uuid.New().String(),
	}))
	return id
}

func TestVariationCreate_EnciendeHasVariation(t *testing.T) {
	uc, products, _, _ := newVariationUC()
	productID := seedProduct(t, products)

	out, err := uc.Create(context.Background(), productID, dto.CreateVariationRequest{
		Name:  "Roja / M",
		Color: "rojo",
		Price: decimal.NewFromInt(120),
		Stock: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, productID, out.ProductID)
	assert.True(t, out.Active, "las variaciones nacen activas")

	owner, _ := products.GetByID(productID)
	assert.True(t, owner.HasVariation, "crear la primera variación marca el producto")
}

func TestVariationCreate_ProductoInexistente(t *testing.T) {
	uc, _, _, _ := newVariationUC()

	_, err := uc.Create(context.Background(), uuid.New().String(), dto.CreateVariationRequest{Name: "Roja"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVariationCreate_NombreRequerido(t *testing.T) {
	uc, products, _, _ := newVariationUC()
	productID := seedProduct(t, products)

	_, err := uc.Create(context.Background(), productID, dto.CreateVariationRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestVariationCreate_StockNegativo(t *testing.T) {
	uc, products, variations, _ := newVariationUC()
	productID := seedProduct(t, products)

	_, err := uc.Create(context.Background(), productID, dto.CreateVariationRequest{
		Name:  "Roja",
		Stock: -3,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	count, _ := variations.CountByProduct(productID)
	assert.Zero(t, count, "nada se persiste")
	owner, _ := products.GetByID(productID)
	assert.False(t, owner.HasVariation, "el producto no se marca")
}

func TestVariationFindByProduct_SoloActivas(t *testing.T) {
	uc, products, variations, _ := newVariationUC()
	productID := seedProduct(t, products)

	require.NoError(t, variations.Create(&entity.Variation{
		ID: uuid.New().String(), ProductID: productID, Name: "Activa", Active: true,
	}))
	require.NoError(t, variations.Create(&entity.Variation{
		ID: uuid.New().String(), ProductID: productID, Name: "Apagada", Active: false,
	}))

	out, err := uc.FindByProduct(productID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Activa", out[0].Name)
}

func TestVariationUpdate_ArchivoNuevoAgregaImagen(t *testing.T) {
	uc, products, variations, _ := newVariationUC()
	productID := seedProduct(t, products)

	id := uuid.New().String()
	require.NoError(t, variations.Create(&entity.Variation{
		ID:        id,
		ProductID: productID,
		Name:      "Roja",
		Images:    []string{"variations/2026/08/30/2026-08-30-111111111111.jpg"},
		Active:    true,
	}))

	out, err := uc.Update(id, dto.UpdateVariationRequest{
		File: &dto.UploadedFile{
			Filename: "2026-08-30-222222222222.jpg",
			RelPath:  "variations/2026/08/30/2026-08-30-222222222222.jpg",
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Images, 2, "la imagen nueva se agrega, no reemplaza")
	assert.Equal(t, "variations/2026/08/30/2026-08-30-111111111111.jpg", out.Images[0])
	assert.Equal(t, "variations/2026/08/30/2026-08-30-222222222222.jpg", out.Images[1],
		"se persiste la ruta exacta bajo la que el pipeline escribió el archivo")
}

func TestVariationDelete_UltimaApagaHasVariation(t *testing.T) {
	uc, products, variations, files := newVariationUC()
	productID := seedProduct(t, products)
	require.NoError(t, products.SetHasVariation(productID, true))

	first := uuid.New().String()
	second := uuid.New().String()
	require.NoError(t, variations.Create(&entity.Variation{
		ID: first, ProductID: productID, Name: "Roja", Active: true,
		Images: []string{"variations/2026/08/30/2026-08-30-111111111111.jpg"},
	}))
	require.NoError(t, variations.Create(&entity.Variation{
		ID: second, ProductID: productID, Name: "Azul", Active: true,
	}))

	// Quedando una variación, el producto sigue marcado.
	require.NoError(t, uc.Delete(context.Background(), first))
	owner, _ := products.GetByID(productID)
	assert.True(t, owner.HasVariation)
	assert.Equal(t, []string{"variations/2026/08/30/2026-08-30-111111111111.jpg"}, files.removed)

	// Eliminar la última lo apaga.
	require.NoError(t, uc.Delete(context.Background(), second))
	owner, _ = products.GetByID(productID)
	assert.False(t, owner.HasVariation)
}

func TestVariationDelete_NoExiste(t *testing.T) {
	uc, _, _, _ := newVariationUC()

	err := uc.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
