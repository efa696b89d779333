package schedule

import (
	"context"
)

// Repository is the persistence contract for schedules. ListYear returns
// every schedule whose interval intersects the given year, in stable
// server order.
type Repository interface {
	List(ctx context.Context) ([]Schedule, error)
	ListYear(ctx context.Context, year int) ([]Schedule, error)
	Create(ctx context.Context, s *Schedule) error
	Update(ctx context.Context, s *Schedule) error
	Delete(ctx context.Context, id string) error
}
