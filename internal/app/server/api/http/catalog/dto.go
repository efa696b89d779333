package catalog

import (
	"fieldassets/internal/domain/catalog"
)

type ListInput struct{}

type BrandsOutput struct {
	Body []catalog.Brand
}

type LocationsOutput struct {
	Body []catalog.Location
}

type ProductsOutput struct {
	Body []catalog.Product
}
