package schedule

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "schedule-list",
		Method:      http.MethodGet,
		Path:        "/schedule/",
		Summary:     "List schedules",
		Tags:        []string{"schedule"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) yearOp() huma.Operation {
	return huma.Operation{
		OperationID: "schedule-year",
		Method:      http.MethodGet,
		Path:        "/schedule/year/{year}",
		Summary:     "List schedules overlapping a year",
		Description: "Returns schedules whose date interval intersects the given calendar year",
		Tags:        []string{"schedule"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "schedule-create",
		Method:        http.MethodPost,
		Path:          "/schedule/add/",
		Summary:       "Create schedule",
		Tags:          []string{"schedule"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "schedule-update",
		Method:      http.MethodPut,
		Path:        "/schedule/put/",
		Summary:     "Update schedule",
		Tags:        []string{"schedule"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "schedule-delete",
		Method:      http.MethodDelete,
		Path:        "/schedule/delete/{id}",
		Summary:     "Delete schedule",
		Tags:        []string{"schedule"},
		Middlewares: h.middleware,
	}
}
