package catalog

import (
	"context"
)

type Repository interface {
	Brands(ctx context.Context) ([]Brand, error)
	Locations(ctx context.Context) ([]Location, error)
	Products(ctx context.Context) ([]Product, error)
}
