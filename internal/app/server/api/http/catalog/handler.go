package catalog

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"fieldassets/internal/domain/catalog"
)

type Handler struct {
	service    catalog.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service catalog.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "catalog_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.brandsOp(), h.brands)
	huma.Register(api, h.locationsOp(), h.locations)
	huma.Register(api, h.productsOp(), h.products)
}

func (h *Handler) brands(ctx context.Context, _ *ListInput) (*BrandsOutput, error) {
	brands, err := h.service.Brands(ctx)
	if err != nil {
		h.log.Error("failed to list brands", "error", err)
		return nil, huma.Error500InternalServerError("failed to list brands")
	}
	if brands == nil {
		brands = []catalog.Brand{}
	}

	return &BrandsOutput{Body: brands}, nil
}

func (h *Handler) locations(ctx context.Context, _ *ListInput) (*LocationsOutput, error) {
	locations, err := h.service.Locations(ctx)
	if err != nil {
		h.log.Error("failed to list locations", "error", err)
		return nil, huma.Error500InternalServerError("failed to list locations")
	}
	if locations == nil {
		locations = []catalog.Location{}
	}

	return &LocationsOutput{Body: locations}, nil
}

func (h *Handler) products(ctx context.Context, _ *ListInput) (*ProductsOutput, error) {
	products, err := h.service.Products(ctx)
	if err != nil {
		h.log.Error("failed to list products", "error", err)
		return nil, huma.Error500InternalServerError("failed to list products")
	}
	if products == nil {
		products = []catalog.Product{}
	}

	return &ProductsOutput{Body: products}, nil
}
