package catalog

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) brandsOp() huma.Operation {
	return huma.Operation{
		OperationID: "brand-list",
		Method:      http.MethodGet,
		Path:        "/brand/",
		Summary:     "List brands",
		Tags:        []string{"catalog"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) locationsOp() huma.Operation {
	return huma.Operation{
		OperationID: "location-list",
		Method:      http.MethodGet,
		Path:        "/location/",
		Summary:     "List locations",
		Tags:        []string{"catalog"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) productsOp() huma.Operation {
	return huma.Operation{
		OperationID: "product-list",
		Method:      http.MethodGet,
		Path:        "/product/",
		Summary:     "List products",
		Tags:        []string{"catalog"},
		Middlewares: h.middleware,
	}
}
