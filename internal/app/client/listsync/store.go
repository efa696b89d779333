// Package listsync keeps a displayed, paginated, filterable copy of a
// remote collection consistent with its backend. Every mutation is
// "fire request, then reload the full collection": the local copy is
// always derived, never the source of truth, so there is no optimistic
// patching to reconcile.
package listsync

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"
)

// DefaultPageSize matches the table default of the admin UI.
const DefaultPageSize = 10

var (
	// ErrRequiredField is returned when a create or update is attempted
	// with a required field absent. No network call is made in that case.
	ErrRequiredField = errors.New("required field missing")

	// ErrMissingID is returned when an update names no record id.
	ErrMissingID = errors.New("record id missing")
)

// Record is one row of a remote collection.
type Record interface {
	RecordID() string
	Field(key string) any
}

// Resource is the remote collection client. It carries no logic beyond
// request/response mapping.
type Resource[T Record] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) error
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, id string) error
}

// Op identifies which store operation an Event reports on.
type Op string

const (
	OpLoad   Op = "load"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpFilter Op = "filter"
	OpPage   Op = "page"
)

// Event is delivered to subscribers after every operation, successful or
// not. A nil Err means the operation settled and the view should
// re-render.
type Event struct {
	Op  Op
	Err error
}

// Lookup derives the selectable filter values for one column from a
// companion read-only collection, e.g. brand or location names.
type Lookup struct {
	Column string
	Load   func(ctx context.Context) ([]string, error)
}

// Store synchronizes one resource collection. Each resource type owns an
// independent instance; nothing is shared across stores.
//
// Concurrent mutations on the same store are not deduplicated: state is
// swapped atomically under the mutex and the last reload to settle wins.
type Store[T Record] struct {
	client   Resource[T]
	log      *slog.Logger
	required []string
	lookups  []Lookup

	mu       sync.Mutex
	items    []T
	options  map[string][]string
	filters  map[string][]any
	page     int
	pageSize int
	subs     []func(Event)
}

type Option[T Record] func(*Store[T])

// WithRequired sets the columns that must be present before a create or
// update is sent. Required-field rules vary per resource type.
func WithRequired[T Record](columns ...string) Option[T] {
	return func(s *Store[T]) {
		s.required = columns
	}
}

// WithLookup registers a filter-option source for a column.
func WithLookup[T Record](column string, load func(ctx context.Context) ([]string, error)) Option[T] {
	return func(s *Store[T]) {
		s.lookups = append(s.lookups, Lookup{Column: column, Load: load})
	}
}

func WithPageSize[T Record](size int) Option[T] {
	return func(s *Store[T]) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

func WithLogger[T Record](log *slog.Logger) Option[T] {
	return func(s *Store[T]) {
		s.log = log
	}
}

func New[T Record](client Resource[T], opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		client:   client,
		log:      slog.Default(),
		filters:  make(map[string][]any),
		options:  make(map[string][]string),
		page:     1,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "listsync_store")
	return s
}

// Subscribe registers a re-render callback. Callbacks run synchronously
// after the operation settles, outside the store lock.
func (s *Store[T]) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store[T]) emit(ev Event) {
	s.mu.Lock()
	subs := append(([]func(Event))(nil), s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}

// Load fetches the full collection and every lookup collection, then
// replaces the local copy atomically. On failure the prior items stay
// untouched; the store never partially overwrites them.
func (s *Store[T]) Load(ctx context.Context) error {
	err := s.reload(ctx)
	s.emit(Event{Op: OpLoad, Err: err})
	return err
}

func (s *Store[T]) reload(ctx context.Context) error {
	items, err := s.client.List(ctx)
	if err != nil {
		s.log.Error("failed to load collection", "error", err)
		return fmt.Errorf("load collection: %w", err)
	}

	options := make(map[string][]string, len(s.lookups))
	for _, lk := range s.lookups {
		values, err := lk.Load(ctx)
		if err != nil {
			s.log.Error("failed to load filter options", "column", lk.Column, "error", err)
			return fmt.Errorf("load %s filter options: %w", lk.Column, err)
		}
		options[lk.Column] = values
	}

	s.mu.Lock()
	s.items = items
	s.options = options
	s.mu.Unlock()

	s.log.Debug("collection loaded", "items", len(items))
	return nil
}

// Create validates required fields, sends the create request and reloads
// the authoritative collection. Validation failures block the action
// before any network call.
func (s *Store[T]) Create(ctx context.Context, item T) error {
	if err := s.checkRequired(item); err != nil {
		s.emit(Event{Op: OpCreate, Err: err})
		return err
	}

	if err := s.client.Create(ctx, item); err != nil {
		err = fmt.Errorf("create record: %w", err)
		s.emit(Event{Op: OpCreate, Err: err})
		return err
	}

	err := s.reload(ctx)
	s.emit(Event{Op: OpCreate, Err: err})
	return err
}

// Update sends a full-record replace, then reloads. Same contract as
// Create.
func (s *Store[T]) Update(ctx context.Context, item T) error {
	if item.RecordID() == "" {
		s.emit(Event{Op: OpUpdate, Err: ErrMissingID})
		return ErrMissingID
	}
	if err := s.checkRequired(item); err != nil {
		s.emit(Event{Op: OpUpdate, Err: err})
		return err
	}

	if err := s.client.Update(ctx, item); err != nil {
		err = fmt.Errorf("update record: %w", err)
		s.emit(Event{Op: OpUpdate, Err: err})
		return err
	}

	err := s.reload(ctx)
	s.emit(Event{Op: OpUpdate, Err: err})
	return err
}

// Delete removes the record, reloads and clamps the current page so it
// never points past the last non-empty page.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, id); err != nil {
		err = fmt.Errorf("delete record: %w", err)
		s.emit(Event{Op: OpDelete, Err: err})
		return err
	}

	err := s.reload(ctx)
	if err == nil {
		s.clampPage()
	}
	s.emit(Event{Op: OpDelete, Err: err})
	return err
}

func (s *Store[T]) clampPage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	last := (len(s.items) + s.pageSize - 1) / s.pageSize
	if last < 1 {
		last = 1
	}
	if s.page > last {
		s.page = last
	}
}

func (s *Store[T]) checkRequired(item T) error {
	for _, column := range s.required {
		if !present(item.Field(column)) {
			return fmt.Errorf("%w: %s", ErrRequiredField, column)
		}
	}
	return nil
}

func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	}
	if z, ok := v.(interface{ IsZero() bool }); ok {
		return !z.IsZero()
	}
	return true
}

// SetFilter replaces the allowed value set for a column. An empty value
// set clears the filter. Pure local state mutation, no network call.
func (s *Store[T]) SetFilter(column string, values ...any) {
	s.mu.Lock()
	if len(values) == 0 {
		delete(s.filters, column)
	} else {
		s.filters[column] = append([]any(nil), values...)
	}
	s.mu.Unlock()

	s.emit(Event{Op: OpFilter})
}

// SetPage moves the pagination window. A pageSize below 1 keeps the
// current one.
func (s *Store[T]) SetPage(page, pageSize int) {
	s.mu.Lock()
	if page < 1 {
		page = 1
	}
	s.page = page
	if pageSize > 0 {
		s.pageSize = pageSize
	}
	s.mu.Unlock()

	s.emit(Event{Op: OpPage})
}

// Page returns the current 1-based page and page size.
func (s *Store[T]) Page() (page, pageSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page, s.pageSize
}

// Items returns a copy of the full local collection in server order.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// FilterOptions returns the selectable values for a column, as derived
// from its lookup collection on the last load.
func (s *Store[T]) FilterOptions(column string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.options[column]...)
}

// VisibleWindow returns the page slice of the filtered collection. It
// recomputes on every call; items change after each load so caching
// would go stale.
func (s *Store[T]) VisibleWindow() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.filteredLocked()
	start := (s.page - 1) * s.pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + s.pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return append([]T(nil), rows[start:end]...)
}

// filteredLocked applies the active filters in server order: values
// within one column compose with OR, columns compose with AND, matching
// is exact equality.
func (s *Store[T]) filteredLocked() []T {
	if len(s.filters) == 0 {
		return s.items
	}

	rows := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if s.matchesLocked(item) {
			rows = append(rows, item)
		}
	}
	return rows
}

func (s *Store[T]) matchesLocked(item T) bool {
	for column, values := range s.filters {
		field := item.Field(column)
		matched := false
		for _, v := range values {
			if field == v {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
