package asset

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"fieldassets/internal/domain/asset"
)

type Handler struct {
	service    asset.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service asset.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "asset_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	assets, err := h.service.List(ctx)
	if err != nil {
		h.log.Error("failed to list assets", "error", err)
		return nil, huma.Error500InternalServerError("failed to list assets")
	}
	if assets == nil {
		assets = []asset.Asset{}
	}

	return &ListOutput{Body: assets}, nil
}

func (h *Handler) create(ctx context.Context, input *CreateInput) (*MutationOutput, error) {
	id, err := h.service.Create(ctx, input.Body)
	if err != nil {
		if errors.Is(err, asset.ErrInvalidData) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("failed to create asset", "error", err)
		return nil, huma.Error500InternalServerError("failed to create asset")
	}

	return &MutationOutput{
		Body: Response{
			ID:     id,
			Status: "Created",
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateInput) (*MutationOutput, error) {
	if err := h.service.Update(ctx, input.Body); err != nil {
		switch {
		case errors.Is(err, asset.ErrInvalidData):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		case errors.Is(err, asset.ErrNotFound):
			return nil, huma.Error404NotFound("asset not found")
		}
		h.log.Error("failed to update asset", "error", err)
		return nil, huma.Error500InternalServerError("failed to update asset")
	}

	return &MutationOutput{
		Body: Response{
			ID:     input.Body.ID,
			Status: "Updated",
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *DeleteInput) (*MutationOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, asset.ErrNotFound) {
			return nil, huma.Error404NotFound("asset not found")
		}
		h.log.Error("failed to delete asset", "error", err)
		return nil, huma.Error500InternalServerError("failed to delete asset")
	}

	return &MutationOutput{
		Body: Response{
			ID:     input.ID,
			Status: "Deleted",
		},
	}, nil
}
