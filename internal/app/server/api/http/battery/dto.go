package battery

import (
	"fieldassets/internal/domain/battery"
)

type ListInput struct{}

type ListOutput struct {
	Body []battery.Battery
}

type CreateInput struct {
	Body battery.Battery
}

type UpdateInput struct {
	Body battery.Battery
}

type DeleteInput struct {
	ID string `path:"id" doc:"Battery identifier"`
}

type MutationOutput struct {
	Body Response
}

type Response struct {
	ID     string `json:"id,omitempty" doc:"Identifier of the affected battery"`
	Status string `json:"status" example:"Created" doc:"Operation status"`
}
