package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"fieldassets/internal/domain/asset"
)

type AssetRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAssetRepository(storage *Storage, log *slog.Logger) *AssetRepository {
	return &AssetRepository{
		pool: storage.Pool(),
		log:  log.With("component", "asset_repository"),
	}
}

// List returns the full collection in insertion order; the clients rely
// on a stable server order.
func (r *AssetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	const query = `
		SELECT id, brand_name, asset_name, state, location_name,
		       calibration_date, next_calibration_date, rent_state, marks
		FROM assets
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list assets", "error", err)
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		var (
			a           asset.Asset
			calibration *time.Time
			next        *time.Time
			marks       *string
		)
		if err := rows.Scan(&a.ID, &a.BrandName, &a.AssetName, &a.State, &a.LocationName,
			&calibration, &next, &a.RentState, &marks); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		a.CalibrationDate = dayColumn(calibration)
		a.NextCalibration = dayColumn(next)
		a.Marks = textColumn(marks)
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	const query = `
		INSERT INTO assets (id, brand_name, asset_name, state, location_name,
		                    calibration_date, next_calibration_date, rent_state, marks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.BrandName, a.AssetName, a.State, a.LocationName,
		dayParam(a.CalibrationDate), dayParam(a.NextCalibration), a.RentState, textParam(a.Marks),
	)
	if err != nil {
		r.log.Error("failed to create asset", "asset_id", a.ID, "error", err)
		return fmt.Errorf("create asset: %w", err)
	}
	return nil
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	const query = `
		UPDATE assets
		SET brand_name = $1, asset_name = $2, state = $3, location_name = $4,
		    calibration_date = $5, next_calibration_date = $6, rent_state = $7, marks = $8
		WHERE id = $9`

	result, err := r.pool.Exec(ctx, query,
		a.BrandName, a.AssetName, a.State, a.LocationName,
		dayParam(a.CalibrationDate), dayParam(a.NextCalibration), a.RentState, textParam(a.Marks),
		a.ID,
	)
	if err != nil {
		r.log.Error("failed to update asset", "asset_id", a.ID, "error", err)
		return fmt.Errorf("update asset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return asset.ErrNotFound
	}
	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM assets WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete asset", "asset_id", id, "error", err)
		return fmt.Errorf("delete asset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return asset.ErrNotFound
	}
	return nil
}
