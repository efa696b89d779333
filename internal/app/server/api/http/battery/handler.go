package battery

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"fieldassets/internal/domain/battery"
)

type Handler struct {
	service    battery.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service battery.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "battery_handler"),
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
	batteries, err := h.service.List(ctx)
	if err != nil {
		h.log.Error("failed to list batteries", "error", err)
		return nil, huma.Error500InternalServerError("failed to list batteries")
	}
	if batteries == nil {
		batteries = []battery.Battery{}
	}

	return &ListOutput{Body: batteries}, nil
}

func (h *Handler) create(ctx context.Context, input *CreateInput) (*MutationOutput, error) {
	id, err := h.service.Create(ctx, input.Body)
	if err != nil {
		if errors.Is(err, battery.ErrInvalidData) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("failed to create battery", "error", err)
		return nil, huma.Error500InternalServerError("failed to create battery")
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
		case errors.Is(err, battery.ErrInvalidData):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		case errors.Is(err, battery.ErrNotFound):
			return nil, huma.Error404NotFound("battery not found")
		}
		h.log.Error("failed to update battery", "error", err)
		return nil, huma.Error500InternalServerError("failed to update battery")
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
		if errors.Is(err, battery.ErrNotFound) {
			return nil, huma.Error404NotFound("battery not found")
		}
		h.log.Error("failed to delete battery", "error", err)
		return nil, huma.Error500InternalServerError("failed to delete battery")
	}

	return &MutationOutput{
		Body: Response{
			ID:     input.ID,
			Status: "Deleted",
		},
	}, nil
}
