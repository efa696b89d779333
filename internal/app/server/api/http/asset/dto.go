package asset

import (
	"fieldassets/internal/domain/asset"
)

// ListInput represents the input for the asset list endpoint
type ListInput struct{}

// ListOutput represents the full asset collection
type ListOutput struct {
	Body []asset.Asset
}

// CreateInput carries a new asset. The id field is ignored and
// assigned by the server.
type CreateInput struct {
	Body asset.Asset
}

// UpdateInput carries the full replacement field set including id
type UpdateInput struct {
	Body asset.Asset
}

// DeleteInput identifies the asset to remove
type DeleteInput struct {
	ID string `path:"id" doc:"Asset identifier"`
}

// MutationOutput represents the outcome of a write operation
type MutationOutput struct {
	Body Response
}

// Response represents the mutation response
type Response struct {
	ID     string `json:"id,omitempty" doc:"Identifier of the affected asset"`
	Status string `json:"status" example:"Created" doc:"Operation status"`
}
