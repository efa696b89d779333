package asset

import (
	"context"
)

// Repository is the persistence contract for assets. List returns the
// full collection in stable server order; there is no server-side
// pagination.
type Repository interface {
	List(ctx context.Context) ([]Asset, error)
	Create(ctx context.Context, a *Asset) error
	Update(ctx context.Context, a *Asset) error
	Delete(ctx context.Context, id string) error
}
