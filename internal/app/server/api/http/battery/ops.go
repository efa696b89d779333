package battery

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "battery-list",
		Method:      http.MethodGet,
		Path:        "/battery/",
		Summary:     "List batteries",
		Tags:        []string{"battery"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "battery-create",
		Method:        http.MethodPost,
		Path:          "/battery/add/",
		Summary:       "Create battery",
		Tags:          []string{"battery"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "battery-update",
		Method:      http.MethodPut,
		Path:        "/battery/put/",
		Summary:     "Update battery",
		Tags:        []string{"battery"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "battery-delete",
		Method:      http.MethodDelete,
		Path:        "/battery/delete/{id}",
		Summary:     "Delete battery",
		Tags:        []string{"battery"},
		Middlewares: h.middleware,
	}
}
