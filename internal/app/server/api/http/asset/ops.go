package asset

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "asset-list",
		Method:      http.MethodGet,
		Path:        "/asset/",
		Summary:     "List assets",
		Description: "Returns the full asset collection",
		Tags:        []string{"asset"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "asset-create",
		Method:        http.MethodPost,
		Path:          "/asset/add/",
		Summary:       "Create asset",
		Description:   "Creates a new asset and returns its identifier",
		Tags:          []string{"asset"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "asset-update",
		Method:      http.MethodPut,
		Path:        "/asset/put/",
		Summary:     "Update asset",
		Description: "Replaces an existing asset with the provided field set",
		Tags:        []string{"asset"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "asset-delete",
		Method:      http.MethodDelete,
		Path:        "/asset/delete/{id}",
		Summary:     "Delete asset",
		Description: "Removes an asset by identifier",
		Tags:        []string{"asset"},
		Middlewares: h.middleware,
	}
}
