package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"fieldassets/internal/domain/battery"
)

type BatteryRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewBatteryRepository(storage *Storage, log *slog.Logger) *BatteryRepository {
	return &BatteryRepository{
		pool: storage.Pool(),
		log:  log.With("component", "battery_repository"),
	}
}

func (r *BatteryRepository) List(ctx context.Context) ([]battery.Battery, error) {
	const query = `
		SELECT id, product_name, location_name, state, due_date, folder_name, marks
		FROM batteries
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list batteries", "error", err)
		return nil, fmt.Errorf("list batteries: %w", err)
	}
	defer rows.Close()

	var batteries []battery.Battery
	for rows.Next() {
		var (
			b      battery.Battery
			due    *time.Time
			folder *string
			marks  *string
		)
		if err := rows.Scan(&b.ID, &b.ProductName, &b.LocationName, &b.State,
			&due, &folder, &marks); err != nil {
			return nil, fmt.Errorf("scan battery: %w", err)
		}
		b.DueDate = dayColumn(due)
		b.FolderName = textColumn(folder)
		b.Marks = textColumn(marks)
		batteries = append(batteries, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list batteries: %w", err)
	}
	return batteries, nil
}

func (r *BatteryRepository) Create(ctx context.Context, b *battery.Battery) error {
	const query = `
		INSERT INTO batteries (id, product_name, location_name, state, due_date, folder_name, marks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		b.ID, b.ProductName, b.LocationName, b.State,
		dayParam(b.DueDate), textParam(b.FolderName), textParam(b.Marks),
	)
	if err != nil {
		r.log.Error("failed to create battery", "battery_id", b.ID, "error", err)
		return fmt.Errorf("create battery: %w", err)
	}
	return nil
}

func (r *BatteryRepository) Update(ctx context.Context, b *battery.Battery) error {
	const query = `
		UPDATE batteries
		SET product_name = $1, location_name = $2, state = $3,
		    due_date = $4, folder_name = $5, marks = $6
		WHERE id = $7`

	result, err := r.pool.Exec(ctx, query,
		b.ProductName, b.LocationName, b.State,
		dayParam(b.DueDate), textParam(b.FolderName), textParam(b.Marks),
		b.ID,
	)
	if err != nil {
		r.log.Error("failed to update battery", "battery_id", b.ID, "error", err)
		return fmt.Errorf("update battery: %w", err)
	}
	if result.RowsAffected() == 0 {
		return battery.ErrNotFound
	}
	return nil
}

func (r *BatteryRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM batteries WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete battery", "battery_id", id, "error", err)
		return fmt.Errorf("delete battery: %w", err)
	}
	if result.RowsAffected() == 0 {
		return battery.ErrNotFound
	}
	return nil
}
