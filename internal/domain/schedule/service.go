package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Schedule, error)
	ListYear(ctx context.Context, year int) ([]Schedule, error)
	Create(ctx context.Context, s Schedule) (string, error)
	Update(ctx context.Context, s Schedule) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "schedule_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Schedule, error) {
	schedules, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list schedules", "error", err)
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

// ListYear returns schedules whose interval touches the given year,
// feeding the calendar view.
func (s *Service) ListYear(ctx context.Context, year int) ([]Schedule, error) {
	if year < 1 {
		return nil, fmt.Errorf("%w: year %d", ErrInvalidData, year)
	}

	schedules, err := s.repo.ListYear(ctx, year)
	if err != nil {
		s.log.Error("failed to list schedules for year", "year", year, "error", err)
		return nil, fmt.Errorf("list schedules for year %d: %w", year, err)
	}
	return schedules, nil
}

func (s *Service) Create(ctx context.Context, sch Schedule) (string, error) {
	if err := sch.Validate(); err != nil {
		return "", err
	}

	sch.ID = uuid.NewString()
	if err := s.repo.Create(ctx, &sch); err != nil {
		s.log.Error("failed to create schedule", "title", sch.Title, "error", err)
		return "", fmt.Errorf("create schedule: %w", err)
	}

	s.log.Info("schedule created", "schedule_id", sch.ID, "title", sch.Title)
	return sch.ID, nil
}

func (s *Service) Update(ctx context.Context, sch Schedule) error {
	if sch.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidData)
	}
	if err := sch.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, &sch); err != nil {
		s.log.Error("failed to update schedule", "schedule_id", sch.ID, "error", err)
		return fmt.Errorf("update schedule: %w", err)
	}

	s.log.Info("schedule updated", "schedule_id", sch.ID)
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete schedule", "schedule_id", id, "error", err)
		return fmt.Errorf("delete schedule: %w", err)
	}

	s.log.Info("schedule deleted", "schedule_id", id)
	return nil
}
