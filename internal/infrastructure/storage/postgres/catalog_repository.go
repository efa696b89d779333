package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"fieldassets/internal/domain/catalog"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCatalogRepository(storage *Storage, log *slog.Logger) *CatalogRepository {
	return &CatalogRepository{
		pool: storage.Pool(),
		log:  log.With("component", "catalog_repository"),
	}
}

func (r *CatalogRepository) Brands(ctx context.Context) ([]catalog.Brand, error) {
	const query = `SELECT id, name FROM brands ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list brands", "error", err)
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var brands []catalog.Brand
	for rows.Next() {
		var b catalog.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return brands, nil
}

func (r *CatalogRepository) Locations(ctx context.Context) ([]catalog.Location, error) {
	const query = `SELECT id, name FROM locations ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list locations", "error", err)
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []catalog.Location
	for rows.Next() {
		var l catalog.Location
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

func (r *CatalogRepository) Products(ctx context.Context) ([]catalog.Product, error) {
	const query = `SELECT id, name FROM products ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list products", "error", err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
