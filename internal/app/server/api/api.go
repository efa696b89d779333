package api

import (
	assetAPI "fieldassets/internal/app/server/api/http/asset"
	batteryAPI "fieldassets/internal/app/server/api/http/battery"
	catalogAPI "fieldassets/internal/app/server/api/http/catalog"
	healthAPI "fieldassets/internal/app/server/api/http/health"
	"fieldassets/internal/app/server/api/http/middleware"
	"fieldassets/internal/app/server/api/http/middleware/logger"
	scheduleAPI "fieldassets/internal/app/server/api/http/schedule"
	"fieldassets/internal/domain/asset"
	"fieldassets/internal/domain/battery"
	"fieldassets/internal/domain/catalog"
	"fieldassets/internal/domain/schedule"
	"fieldassets/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health   *healthAPI.Handler
	Asset    *assetAPI.Handler
	Battery  *batteryAPI.Handler
	Schedule *scheduleAPI.Handler
	Catalog  *catalogAPI.Handler
}

// New builds a *chi.Mux with all operations registered through huma.Register
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Fieldassets API", "1.0.0")

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.Asset.SetupRoutes(API)
	h.Battery.SetupRoutes(API)
	h.Schedule.SetupRoutes(API)
	h.Catalog.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	assetRepo := postgres.NewAssetRepository(storage, log)
	assetService := asset.NewService(assetRepo, log)
	middlewares.Add(loggerMW.Middleware())
	assetHandler := assetAPI.NewHandler(assetService, log, middlewares.GetAllAndClear())

	batteryRepo := postgres.NewBatteryRepository(storage, log)
	batteryService := battery.NewService(batteryRepo, log)
	middlewares.Add(loggerMW.Middleware())
	batteryHandler := batteryAPI.NewHandler(batteryService, log, middlewares.GetAllAndClear())

	scheduleRepo := postgres.NewScheduleRepository(storage, log)
	scheduleService := schedule.NewService(scheduleRepo, log)
	middlewares.Add(loggerMW.Middleware())
	scheduleHandler := scheduleAPI.NewHandler(scheduleService, log, middlewares.GetAllAndClear())

	catalogRepo := postgres.NewCatalogRepository(storage, log)
	catalogService := catalog.NewService(catalogRepo, log)
	middlewares.Add(loggerMW.Middleware())
	catalogHandler := catalogAPI.NewHandler(catalogService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Asset:    assetHandler,
		Battery:  batteryHandler,
		Schedule: scheduleHandler,
		Catalog:  catalogHandler,
	}
}
