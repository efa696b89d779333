package battery

import (
	"context"
)

type Repository interface {
	List(ctx context.Context) ([]Battery, error)
	Create(ctx context.Context, b *Battery) error
	Update(ctx context.Context, b *Battery) error
	Delete(ctx context.Context, id string) error
}
