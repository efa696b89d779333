package schedule

import (
	"fieldassets/internal/domain/schedule"
)

type ListInput struct{}

// YearInput selects the calendar year to query
type YearInput struct {
	Year int `path:"year" minimum:"1" doc:"Calendar year"`
}

type ListOutput struct {
	Body []schedule.Schedule
}

type CreateInput struct {
	Body schedule.Schedule
}

type UpdateInput struct {
	Body schedule.Schedule
}

type DeleteInput struct {
	ID string `path:"id" doc:"Schedule identifier"`
}

type MutationOutput struct {
	Body Response
}

type Response struct {
	ID     string `json:"id,omitempty" doc:"Identifier of the affected schedule"`
	Status string `json:"status" example:"Created" doc:"Operation status"`
}
