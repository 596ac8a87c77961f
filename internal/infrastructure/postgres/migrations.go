package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap crea el esquema si no existe. Los índices únicos son el mecanismo
// real de unicidad: las verificaciones read-then-write de los casos de uso
// son solo rechazo temprano y dejan una ventana de carrera que estos índices
// cierran (el 23505 resultante se remapea al conflicto de dominio).
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL DEFAULT 'CLIENT',
			active        BOOLEAN NOT NULL DEFAULT TRUE,
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (email)`,

		`CREATE TABLE IF NOT EXISTS categories (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories (name)`,

		`CREATE TABLE IF NOT EXISTS products (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			slug          TEXT NOT NULL,
			sku           TEXT NOT NULL,
			code          TEXT NOT NULL,
			banner        TEXT NOT NULL DEFAULT '',
			description   TEXT NOT NULL DEFAULT '',
			price         NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
			stock         INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
			has_variation BOOLEAN NOT NULL DEFAULT FALSE,
			status        TEXT NOT NULL DEFAULT 'ACTIVE',
			category_id   TEXT NOT NULL REFERENCES categories (id),
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_products_slug ON products (slug)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_products_sku ON products (sku)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_products_code ON products (code)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_products_name_category ON products (name, category_id)`,

		`CREATE TABLE IF NOT EXISTS variations (
			id         TEXT PRIMARY KEY,
			product_id TEXT NOT NULL REFERENCES products (id),
			name       TEXT NOT NULL,
			color      TEXT NOT NULL DEFAULT '',
			price      NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
			images     TEXT[] NOT NULL DEFAULT '{}',
			stock      INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
			active     BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_variations_product ON variations (product_id)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
