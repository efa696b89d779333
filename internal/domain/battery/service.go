package battery

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Battery, error)
	Create(ctx context.Context, b Battery) (string, error)
	Update(ctx context.Context, b Battery) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "battery_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Battery, error) {
	batteries, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list batteries", "error", err)
		return nil, fmt.Errorf("list batteries: %w", err)
	}
	return batteries, nil
}

func (s *Service) Create(ctx context.Context, b Battery) (string, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}

	b.ID = uuid.NewString()
	if err := s.repo.Create(ctx, &b); err != nil {
		s.log.Error("failed to create battery", "product_name", b.ProductName, "error", err)
		return "", fmt.Errorf("create battery: %w", err)
	}

	s.log.Info("battery created", "battery_id", b.ID, "product_name", b.ProductName)
	return b.ID, nil
}

func (s *Service) Update(ctx context.Context, b Battery) error {
	if b.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidData)
	}
	if err := b.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, &b); err != nil {
		s.log.Error("failed to update battery", "battery_id", b.ID, "error", err)
		return fmt.Errorf("update battery: %w", err)
	}

	s.log.Info("battery updated", "battery_id", b.ID)
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete battery", "battery_id", id, "error", err)
		return fmt.Errorf("delete battery: %w", err)
	}

	s.log.Info("battery deleted", "battery_id", id)
	return nil
}
