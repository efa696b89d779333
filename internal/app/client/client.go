package client

import (
	"context"
	"time"

	"golang.org/x/exp/slog"

	"fieldassets/internal/app/client/calendar"
	"fieldassets/internal/app/client/config"
	"fieldassets/internal/app/client/listsync"
	"fieldassets/internal/domain/asset"
	"fieldassets/internal/domain/battery"
	"fieldassets/internal/domain/schedule"
)

// App wires one store per resource type plus the calendar index. Stores
// are independent: no mutable state crosses them.
type App struct {
	config *config.Config
	log    *slog.Logger
	http   *httpClient

	Assets    *listsync.Store[asset.Asset]
	Batteries *listsync.Store[battery.Battery]
	Schedules *listsync.Store[schedule.Schedule]
	Calendar  *calendar.Index
}

func New(cfg *config.Config, log *slog.Logger) *App {
	h := newHTTPClient(cfg, log)

	assets := listsync.New[asset.Asset](newResource[asset.Asset](h, "asset"),
		listsync.WithRequired[asset.Asset](asset.RequiredColumns()...),
		listsync.WithLookup[asset.Asset](asset.ColBrandName, h.BrandNames),
		listsync.WithLookup[asset.Asset](asset.ColLocationName, h.LocationNames),
		listsync.WithPageSize[asset.Asset](cfg.PageSize),
		listsync.WithLogger[asset.Asset](log),
	)

	batteries := listsync.New[battery.Battery](newResource[battery.Battery](h, "battery"),
		listsync.WithRequired[battery.Battery](battery.RequiredColumns()...),
		listsync.WithLookup[battery.Battery](battery.ColProductName, h.ProductNames),
		listsync.WithLookup[battery.Battery](battery.ColLocationName, h.LocationNames),
		listsync.WithPageSize[battery.Battery](cfg.PageSize),
		listsync.WithLogger[battery.Battery](log),
	)

	schedules := newScheduleResource(h)
	scheduleStore := listsync.New[schedule.Schedule](schedules,
		listsync.WithRequired[schedule.Schedule](schedule.RequiredColumns()...),
		listsync.WithPageSize[schedule.Schedule](cfg.PageSize),
		listsync.WithLogger[schedule.Schedule](log),
	)

	return &App{
		config:    cfg,
		log:       log,
		http:      h,
		Assets:    assets,
		Batteries: batteries,
		Schedules: scheduleStore,
		Calendar:  calendar.New(schedules, time.Now().Year(), log),
	}
}

// HealthCheck verifies the backend is reachable before any table loads.
func (a *App) HealthCheck(ctx context.Context) error {
	return a.http.HealthCheck(ctx)
}
