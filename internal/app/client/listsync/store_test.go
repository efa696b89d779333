package listsync

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id     string
	fields map[string]any
}

func (r row) RecordID() string {
	return r.id
}

func (r row) Field(key string) any {
	return r.fields[key]
}

// fakeResource is a stateful in-memory backend: creates assign server
// ids, and List always returns the authoritative collection.
type fakeResource struct {
	rows      []row
	nextID    int
	listCalls int

	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeResource) List(_ context.Context) ([]row, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]row(nil), f.rows...), nil
}

func (f *fakeResource) Create(_ context.Context, item row) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	item.id = fmt.Sprintf("srv-%d", f.nextID)
	f.rows = append(f.rows, item)
	return nil
}

func (f *fakeResource) Update(_ context.Context, item row) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.rows {
		if f.rows[i].id == item.id {
			f.rows[i] = item
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeResource) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.rows {
		if f.rows[i].id == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func seedRows(n int) []row {
	rows := make([]row, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, row{
			id: fmt.Sprintf("r%d", i),
			fields: map[string]any{
				"name":  fmt.Sprintf("item %d", i),
				"brand": []string{"NeoBlast", "VoltCore"}[i%2],
				"state": i%3 != 0,
			},
		})
	}
	return rows
}

func ids(rows []row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.id)
	}
	return out
}

func TestStore_Load(t *testing.T) {
	backend := &fakeResource{rows: seedRows(3)}
	store := New[row](backend)

	require.NoError(t, store.Load(context.Background()))
	assert.Equal(t, []string{"r1", "r2", "r3"}, ids(store.Items()))

	// Idempotence: a second load with no intervening mutation yields
	// identical items, order included.
	first := store.Items()
	require.NoError(t, store.Load(context.Background()))
	assert.Equal(t, first, store.Items())
}

func TestStore_Load_FailureKeepsItems(t *testing.T) {
	backend := &fakeResource{rows: seedRows(3)}
	store := New[row](backend)
	require.NoError(t, store.Load(context.Background()))

	backend.listErr = errors.New("connection refused")
	err := store.Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, []string{"r1", "r2", "r3"}, ids(store.Items()))
}

func TestStore_Load_LookupFailureKeepsItems(t *testing.T) {
	backend := &fakeResource{rows: seedRows(2)}
	lookupErr := errors.New("lookup down")
	failing := false
	store := New[row](backend, WithLookup[row]("brand", func(context.Context) ([]string, error) {
		if failing {
			return nil, lookupErr
		}
		return []string{"NeoBlast", "VoltCore"}, nil
	}))

	require.NoError(t, store.Load(context.Background()))
	assert.Equal(t, []string{"NeoBlast", "VoltCore"}, store.FilterOptions("brand"))

	failing = true
	backend.rows = seedRows(5)
	err := store.Load(context.Background())
	assert.ErrorIs(t, err, lookupErr)
	assert.Len(t, store.Items(), 2, "failed load must not partially overwrite items")
}

func TestStore_Create_ReloadsCollection(t *testing.T) {
	backend := &fakeResource{rows: seedRows(2)}
	store := New[row](backend, WithRequired[row]("name"))
	require.NoError(t, store.Load(context.Background()))

	err := store.Create(context.Background(), row{fields: map[string]any{"name": "item 3"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"r1", "r2", "srv-1"}, ids(store.Items()))
}

func TestStore_Create_ValidationBlocksNetwork(t *testing.T) {
	backend := &fakeResource{rows: seedRows(2)}
	store := New[row](backend, WithRequired[row]("name", "brand"))
	require.NoError(t, store.Load(context.Background()))
	listCalls := backend.listCalls

	err := store.Create(context.Background(), row{fields: map[string]any{"name": "no brand"}})
	assert.ErrorIs(t, err, ErrRequiredField)
	assert.Contains(t, err.Error(), "brand")

	assert.Len(t, backend.rows, 2)
	assert.Equal(t, listCalls, backend.listCalls, "no reload on validation failure")
}

func TestStore_Create_BackendFailureLeavesState(t *testing.T) {
	backend := &fakeResource{rows: seedRows(2)}
	store := New[row](backend)
	require.NoError(t, store.Load(context.Background()))

	backend.createErr = errors.New("500")
	err := store.Create(context.Background(), row{fields: map[string]any{"name": "x"}})
	assert.Error(t, err)
	assert.Equal(t, []string{"r1", "r2"}, ids(store.Items()))
}

func TestStore_Update_RequiresID(t *testing.T) {
	backend := &fakeResource{rows: seedRows(1)}
	store := New[row](backend)
	require.NoError(t, store.Load(context.Background()))

	err := store.Update(context.Background(), row{fields: map[string]any{"name": "renamed"}})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestStore_Update_FullReplace(t *testing.T) {
	backend := &fakeResource{rows: seedRows(2)}
	store := New[row](backend)
	require.NoError(t, store.Load(context.Background()))

	err := store.Update(context.Background(), row{id: "r2", fields: map[string]any{"name": "renamed"}})
	require.NoError(t, err)

	items := store.Items()
	assert.Equal(t, "renamed", items[1].Field("name"))
	assert.Nil(t, items[1].Field("brand"), "update replaces the whole record")
}

func TestStore_Delete_RemovesAndClampsPage(t *testing.T) {
	// 12 items on pages of 10; page 2 shows items 11-12. Deleting item
	// 11 leaves 11 items, ceil(11/10)=2, so page 2 survives with a
	// single visible row.
	backend := &fakeResource{rows: seedRows(12)}
	store := New[row](backend)
	require.NoError(t, store.Load(context.Background()))
	store.SetPage(2, 10)

	require.NoError(t, store.Delete(context.Background(), "r11"))

	assert.NotContains(t, ids(store.Items()), "r11")
	page, _ := store.Page()
	assert.Equal(t, 2, page)
	assert.Equal(t, []string{"r12"}, ids(store.VisibleWindow()))
}

func TestStore_Delete_ClampsToLastNonEmptyPage(t *testing.T) {
	backend := &fakeResource{rows: seedRows(11)}
	store := New[row](backend)
	require.NoError(t, store.Load(context.Background()))
	store.SetPage(2, 10)

	require.NoError(t, store.Delete(context.Background(), "r11"))

	page, _ := store.Page()
	assert.Equal(t, 1, page)
	assert.Len(t, store.VisibleWindow(), 10)
}

func TestStore_Delete_PageFloorIsOne(t *testing.T) {
	backend := &fakeResource{rows: seedRows(1)}
	store := New[row](backend)
	require.NoError(t, store.Load(context.Background()))

	require.NoError(t, store.Delete(context.Background(), "r1"))

	page, _ := store.Page()
	assert.Equal(t, 1, page)
	assert.Empty(t, store.VisibleWindow())
}

func TestStore_Delete_BackendFailureLeavesState(t *testing.T) {
	backend := &fakeResource{rows: seedRows(12)}
	store := New[row](backend)
	require.NoError(t, store.Load(context.Background()))
	store.SetPage(2, 10)

	backend.deleteErr = errors.New("500")
	err := store.Delete(context.Background(), "r11")
	assert.Error(t, err)

	page, _ := store.Page()
	assert.Equal(t, 2, page)
	assert.Len(t, store.Items(), 12)
}

func TestStore_Filters(t *testing.T) {
	backend := &fakeResource{rows: seedRows(12)}
	store := New[row](backend)
	require.NoError(t, store.Load(context.Background()))

	// OR within one column.
	store.SetFilter("brand", "NeoBlast", "VoltCore")
	assert.Len(t, store.VisibleWindow(), 10)

	// Exact-match equality.
	store.SetFilter("brand", "NeoBlast")
	for _, r := range store.VisibleWindow() {
		assert.Equal(t, "NeoBlast", r.Field("brand"))
	}

	// AND across columns: the window is the intersection of both
	// matching sets.
	store.SetFilter("state", true)
	for _, r := range store.VisibleWindow() {
		assert.Equal(t, "NeoBlast", r.Field("brand"))
		assert.Equal(t, true, r.Field("state"))
	}

	// Clearing one column leaves the other in effect.
	store.SetFilter("brand")
	for _, r := range store.VisibleWindow() {
		assert.Equal(t, true, r.Field("state"))
	}
}

func TestStore_VisibleWindow_Pagination(t *testing.T) {
	backend := &fakeResource{rows: seedRows(12)}
	store := New[row](backend)
	require.NoError(t, store.Load(context.Background()))

	store.SetPage(1, 5)
	assert.Equal(t, []string{"r1", "r2", "r3", "r4", "r5"}, ids(store.VisibleWindow()))

	store.SetPage(3, 5)
	assert.Equal(t, []string{"r11", "r12"}, ids(store.VisibleWindow()))

	store.SetPage(4, 5)
	assert.Empty(t, store.VisibleWindow(), "page past the end renders empty")
}

func TestStore_Events(t *testing.T) {
	backend := &fakeResource{rows: seedRows(2)}
	store := New[row](backend, WithRequired[row]("name"))

	var events []Event
	store.Subscribe(func(ev Event) {
		events = append(events, ev)
	})

	require.NoError(t, store.Load(context.Background()))
	require.NoError(t, store.Create(context.Background(), row{fields: map[string]any{"name": "x"}}))
	_ = store.Create(context.Background(), row{fields: map[string]any{}})
	store.SetFilter("brand", "NeoBlast")

	require.Len(t, events, 4)
	assert.Equal(t, OpLoad, events[0].Op)
	assert.NoError(t, events[0].Err)
	assert.Equal(t, OpCreate, events[1].Op)
	assert.NoError(t, events[1].Err)
	assert.Equal(t, OpCreate, events[2].Op)
	assert.ErrorIs(t, events[2].Err, ErrRequiredField)
	assert.Equal(t, OpFilter, events[3].Op)
}
