package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"fieldassets/internal/domain/schedule"
)

type ScheduleRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewScheduleRepository(storage *Storage, log *slog.Logger) *ScheduleRepository {
	return &ScheduleRepository{
		pool: storage.Pool(),
		log:  log.With("component", "schedule_repository"),
	}
}

const scheduleColumns = `id, title, start_date, end_date, color`

func (r *ScheduleRepository) List(ctx context.Context) ([]schedule.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list schedules", "error", err)
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// ListYear returns schedules whose interval overlaps the year. Rows with
// a NULL start or end never match, mirroring the calendar's exclusion of
// records without a complete interval.
func (r *ScheduleRepository) ListYear(ctx context.Context, year int) ([]schedule.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE start_date <= $1 AND end_date >= $2
		ORDER BY created_at, id`

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	rows, err := r.pool.Query(ctx, query, yearEnd, yearStart)
	if err != nil {
		r.log.Error("failed to list schedules for year", "year", year, "error", err)
		return nil, fmt.Errorf("list schedules for year %d: %w", year, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

func (r *ScheduleRepository) scanSchedules(rows pgx.Rows) ([]schedule.Schedule, error) {
	var schedules []schedule.Schedule
	for rows.Next() {
		var (
			s     schedule.Schedule
			start *time.Time
			end   *time.Time
			color *string
		)
		if err := rows.Scan(&s.ID, &s.Title, &start, &end, &color); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		s.Start = dayColumn(start)
		s.End = dayColumn(end)
		s.Color = textColumn(color)
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read schedules: %w", err)
	}
	return schedules, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, s *schedule.Schedule) error {
	const query = `
		INSERT INTO schedules (id, title, start_date, end_date, color)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Title, dayParam(s.Start), dayParam(s.End), textParam(s.Color),
	)
	if err != nil {
		r.log.Error("failed to create schedule", "schedule_id", s.ID, "error", err)
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) Update(ctx context.Context, s *schedule.Schedule) error {
	const query = `
		UPDATE schedules
		SET title = $1, start_date = $2, end_date = $3, color = $4
		WHERE id = $5`

	result, err := r.pool.Exec(ctx, query,
		s.Title, dayParam(s.Start), dayParam(s.End), textParam(s.Color), s.ID,
	)
	if err != nil {
		r.log.Error("failed to update schedule", "schedule_id", s.ID, "error", err)
		return fmt.Errorf("update schedule: %w", err)
	}
	if result.RowsAffected() == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM schedules WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete schedule", "schedule_id", id, "error", err)
		return fmt.Errorf("delete schedule: %w", err)
	}
	if result.RowsAffected() == 0 {
		return schedule.ErrNotFound
	}
	return nil
}
