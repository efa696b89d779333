package asset

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Servicer defines the business logic for asset operations.
type Servicer interface {
	List(ctx context.Context) ([]Asset, error)
	Create(ctx context.Context, a Asset) (string, error)
	Update(ctx context.Context, a Asset) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "asset_service"),
	}
}

// List returns the full asset collection.
func (s *Service) List(ctx context.Context) ([]Asset, error) {
	assets, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list assets", "error", err)
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

// Create validates the asset, assigns a fresh id and stores it. The
// generated id is returned to the caller.
func (s *Service) Create(ctx context.Context, a Asset) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}

	a.ID = uuid.NewString()
	if err := s.repo.Create(ctx, &a); err != nil {
		s.log.Error("failed to create asset", "asset_name", a.AssetName, "error", err)
		return "", fmt.Errorf("create asset: %w", err)
	}

	s.log.Info("asset created", "asset_id", a.ID, "asset_name", a.AssetName)
	return a.ID, nil
}

// Update replaces the stored asset wholesale. Partial patches are not
// supported; the caller always sends the full field set.
func (s *Service) Update(ctx context.Context, a Asset) error {
	if a.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidData)
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, &a); err != nil {
		s.log.Error("failed to update asset", "asset_id", a.ID, "error", err)
		return fmt.Errorf("update asset: %w", err)
	}

	s.log.Info("asset updated", "asset_id", a.ID)
	return nil
}

// Delete removes the asset permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete asset", "asset_id", id, "error", err)
		return fmt.Errorf("delete asset: %w", err)
	}

	s.log.Info("asset deleted", "asset_id", id)
	return nil
}
