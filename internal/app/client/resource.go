package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"fieldassets/internal/app/client/listsync"
	"fieldassets/internal/domain/catalog"
	"fieldassets/internal/domain/schedule"
)

// resource is the typed client for one remote collection, mapping the
// listsync.Resource operations onto the backend routes:
//
//	GET    /{name}/
//	POST   /{name}/add/
//	PUT    /{name}/put/
//	DELETE /{name}/delete/{id}
type resource[T listsync.Record] struct {
	http *httpClient
	name string
}

func newResource[T listsync.Record](h *httpClient, name string) *resource[T] {
	return &resource[T]{http: h, name: name}
}

func (r *resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.http.getJSON(ctx, "/"+r.name+"/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *resource[T]) Create(ctx context.Context, item T) error {
	return r.http.send(ctx, http.MethodPost, "/"+r.name+"/add/", item)
}

func (r *resource[T]) Update(ctx context.Context, item T) error {
	return r.http.send(ctx, http.MethodPut, "/"+r.name+"/put/", item)
}

func (r *resource[T]) Delete(ctx context.Context, id string) error {
	return r.http.send(ctx, http.MethodDelete, "/"+r.name+"/delete/"+url.PathEscape(id), nil)
}

// scheduleResource adds the year-scoped listing the calendar view needs.
type scheduleResource struct {
	*resource[schedule.Schedule]
}

func newScheduleResource(h *httpClient) *scheduleResource {
	return &scheduleResource{resource: newResource[schedule.Schedule](h, "schedule")}
}

// Year implements calendar.Source.
func (r *scheduleResource) Year(ctx context.Context, year int) ([]schedule.Schedule, error) {
	var items []schedule.Schedule
	if err := r.http.getJSON(ctx, "/schedule/year/"+strconv.Itoa(year), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Lookup collections, consumed as filter-option sources.

func (h *httpClient) BrandNames(ctx context.Context) ([]string, error) {
	var brands []catalog.Brand
	if err := h.getJSON(ctx, "/brand/", &brands); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(brands))
	for _, b := range brands {
		names = append(names, b.Name)
	}
	return names, nil
}

func (h *httpClient) LocationNames(ctx context.Context) ([]string, error) {
	var locations []catalog.Location
	if err := h.getJSON(ctx, "/location/", &locations); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(locations))
	for _, l := range locations {
		names = append(names, l.Name)
	}
	return names, nil
}

func (h *httpClient) ProductNames(ctx context.Context) ([]string, error) {
	var products []catalog.Product
	if err := h.getJSON(ctx, "/product/", &products); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names, nil
}
