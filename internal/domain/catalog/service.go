package catalog

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Brands(ctx context.Context) ([]Brand, error)
	Locations(ctx context.Context) ([]Location, error)
	Products(ctx context.Context) ([]Product, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "catalog_service"),
	}
}

func (s *Service) Brands(ctx context.Context) ([]Brand, error) {
	brands, err := s.repo.Brands(ctx)
	if err != nil {
		s.log.Error("failed to list brands", "error", err)
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return brands, nil
}

func (s *Service) Locations(ctx context.Context) ([]Location, error) {
	locations, err := s.repo.Locations(ctx)
	if err != nil {
		s.log.Error("failed to list locations", "error", err)
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

func (s *Service) Products(ctx context.Context) ([]Product, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		s.log.Error("failed to list products", "error", err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
