package schedule

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"fieldassets/internal/domain/schedule"
)

type Handler struct {
	service    schedule.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service schedule.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "schedule_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.yearOp(), h.year)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	schedules, err := h.service.List(ctx)
	if err != nil {
		h.log.Error("failed to list schedules", "error", err)
		return nil, huma.Error500InternalServerError("failed to list schedules")
	}
	if schedules == nil {
		schedules = []schedule.Schedule{}
	}

	return &ListOutput{Body: schedules}, nil
}

func (h *Handler) year(ctx context.Context, input *YearInput) (*ListOutput, error) {
	schedules, err := h.service.ListYear(ctx, input.Year)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidData) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("failed to list schedules for year", "year", input.Year, "error", err)
		return nil, huma.Error500InternalServerError("failed to list schedules")
	}
	if schedules == nil {
		schedules = []schedule.Schedule{}
	}

	return &ListOutput{Body: schedules}, nil
}

func (h *Handler) create(ctx context.Context, input *CreateInput) (*MutationOutput, error) {
	id, err := h.service.Create(ctx, input.Body)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidData) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("failed to create schedule", "error", err)
		return nil, huma.Error500InternalServerError("failed to create schedule")
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
		case errors.Is(err, schedule.ErrInvalidData):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		case errors.Is(err, schedule.ErrNotFound):
			return nil, huma.Error404NotFound("schedule not found")
		}
		h.log.Error("failed to update schedule", "error", err)
		return nil, huma.Error500InternalServerError("failed to update schedule")
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
		if errors.Is(err, schedule.ErrNotFound) {
			return nil, huma.Error404NotFound("schedule not found")
		}
		h.log.Error("failed to delete schedule", "error", err)
		return nil, huma.Error500InternalServerError("failed to delete schedule")
	}

	return &MutationOutput{
		Body: Response{
			ID:     input.ID,
			Status: "Deleted",
		},
	}, nil
}
