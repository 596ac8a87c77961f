package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.VariationRepository = (*VariationRepo)(nil)

// VariationRepo implementación del puerto VariationRepository sobre PostgreSQL (usable con pool o tx).
type VariationRepo struct {
	q Querier
}

// NewVariationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariationRepository(q Querier) *VariationRepo {
	return &VariationRepo{q: q}
}

const variationColumns = `id, product_id, name, color, price, images, stock, active, created_at, updated_at`

// Create persiste una variación.
func (r *VariationRepo) Create(variation *entity.Variation) error {
	query := `
		INSERT INTO variations (` + variationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		variation.ID, variation.ProductID, variation.Name, variation.Color, variation.Price,
		variation.Images, variation.Stock, variation.Active, variation.CreatedAt, variation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert variation: %w", err)
	}
	return nil
}

// GetByID obtiene una variación por ID. Devuelve nil sin error si no existe.
func (r *VariationRepo) GetByID(id string) (*entity.Variation, error) {
	query := `SELECT ` + variationColumns + ` FROM variations WHERE id = $1`
	var v entity.Variation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ProductID, &v.Name, &v.Color, &v.Price, &v.Images, &v.Stock,
		&v.Active, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variation: %w", err)
	}
	return &v, nil
}

// ListByProduct lista las variaciones de un producto, opcionalmente solo las activas.
func (r *VariationRepo) ListByProduct(productID string, activeOnly bool) ([]*entity.Variation, error) {
	query := `SELECT ` + variationColumns + ` FROM variations WHERE product_id = $1`
	if activeOnly {
		query += ` AND active`
	}
	query += ` ORDER BY created_at`

	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list variations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Variation
	for rows.Next() {
		var v entity.Variation
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.Name, &v.Color, &v.Price, &v.Images, &v.Stock,
			&v.Active, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan variation: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// CountByProduct cuenta las variaciones (activas o no) de un producto.
func (r *VariationRepo) CountByProduct(productID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM variations WHERE product_id = $1`, productID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count variations: %w", err)
	}
	return total, nil
}

// Update actualiza una variación.
func (r *VariationRepo) Update(variation *entity.Variation) error {
	query := `
		UPDATE variations SET name = $2, color = $3, price = $4, images = $5,
			stock = $6, active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		variation.ID, variation.Name, variation.Color, variation.Price, variation.Images,
		variation.Stock, variation.Active, variation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update variation: %w", err)
	}
	return nil
}

// Delete elimina una variación por ID.
func (r *VariationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM variations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete variation: %w", err)
	}
	return nil
}

// DeleteByProduct elimina todas las variaciones de un producto.
func (r *VariationRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM variations WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete variations by product: %w", err)
	}
	return nil
}
