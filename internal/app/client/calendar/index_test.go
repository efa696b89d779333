package calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"fieldassets/internal/domain/schedule"
	"fieldassets/internal/utils/dates"
)

type fakeSource struct {
	byYear map[int][]schedule.Schedule
	err    error
	calls  int
}

func (f *fakeSource) Year(_ context.Context, year int) ([]schedule.Schedule, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.byYear[year], nil
}

func sched(id, title, start, end string) schedule.Schedule {
	s := schedule.Schedule{ID: id, Title: title}
	if start != "" {
		s.Start = dates.MustParse(start)
	}
	if end != "" {
		s.End = dates.MustParse(end)
	}
	return s
}

func titles(records []schedule.Schedule) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Title)
	}
	return out
}

func TestIndex_RecordsOn_IntervalMembership(t *testing.T) {
	source := &fakeSource{byYear: map[int][]schedule.Schedule{
		2024: {sched("s1", "maintenance", "2024-06-01", "2024-06-03")},
	}}
	ix := New(source, 2024, slog.Default())
	require.NoError(t, ix.Reload(context.Background()))

	for _, day := range []string{"2024-06-01", "2024-06-02", "2024-06-03"} {
		assert.Equal(t, []string{"maintenance"}, titles(ix.RecordsOn(dates.MustParse(day))), day)
	}
	assert.Empty(t, ix.RecordsOn(dates.MustParse("2024-05-31")))
	assert.Empty(t, ix.RecordsOn(dates.MustParse("2024-06-04")))
}

func TestIndex_RecordsOn_SourceOrder(t *testing.T) {
	source := &fakeSource{byYear: map[int][]schedule.Schedule{
		2024: {
			sched("s1", "first", "2024-06-01", "2024-06-10"),
			sched("s2", "second", "2024-06-05", "2024-06-05"),
			sched("s3", "third", "2024-06-04", "2024-06-06"),
		},
	}}
	ix := New(source, 2024, slog.Default())
	require.NoError(t, ix.Reload(context.Background()))

	assert.Equal(t, []string{"first", "second", "third"}, titles(ix.RecordsOn(dates.MustParse("2024-06-05"))))
}

func TestIndex_RecordsOn_SkipsMalformedRecords(t *testing.T) {
	source := &fakeSource{byYear: map[int][]schedule.Schedule{
		2024: {
			sched("s1", "no start", "", "2024-06-03"),
			sched("s2", "no end", "2024-06-01", ""),
			sched("s3", "inverted", "2024-06-10", "2024-06-01"),
			sched("s4", "valid", "2024-06-02", "2024-06-02"),
		},
	}}
	ix := New(source, 2024, slog.Default())
	require.NoError(t, ix.Reload(context.Background()))

	assert.Equal(t, []string{"valid"}, titles(ix.RecordsOn(dates.MustParse("2024-06-02"))))
	assert.Empty(t, ix.RecordsOn(dates.MustParse("2024-06-05")))
}

func TestIndex_SetYear_RebuildsIndex(t *testing.T) {
	source := &fakeSource{byYear: map[int][]schedule.Schedule{
		2024: {sched("s1", "this year", "2024-06-01", "2024-06-03")},
		2025: {sched("s2", "next year", "2025-02-01", "2025-02-02")},
	}}
	ix := New(source, 2024, slog.Default())
	require.NoError(t, ix.Reload(context.Background()))

	require.NoError(t, ix.SetYear(context.Background(), 2025))
	assert.Equal(t, 2025, ix.Year())
	assert.Empty(t, ix.RecordsOn(dates.MustParse("2024-06-02")), "old year discarded, no partial-year merge")
	assert.Equal(t, []string{"next year"}, titles(ix.RecordsOn(dates.MustParse("2025-02-01"))))
}

func TestIndex_SetYear_FailureKeepsView(t *testing.T) {
	source := &fakeSource{byYear: map[int][]schedule.Schedule{
		2024: {sched("s1", "kept", "2024-06-01", "2024-06-03")},
	}}
	ix := New(source, 2024, slog.Default())
	require.NoError(t, ix.Reload(context.Background()))

	source.err = errors.New("connection refused")
	err := ix.SetYear(context.Background(), 2025)
	assert.Error(t, err)
	assert.Equal(t, 2024, ix.Year())
	assert.Equal(t, []string{"kept"}, titles(ix.RecordsOn(dates.MustParse("2024-06-02"))))
}

func TestIndex_RenameLocal(t *testing.T) {
	source := &fakeSource{byYear: map[int][]schedule.Schedule{
		2024: {sched("s1", "old title", "2024-06-01", "2024-06-03")},
	}}
	ix := New(source, 2024, slog.Default())
	require.NoError(t, ix.Reload(context.Background()))
	calls := source.calls

	assert.True(t, ix.RenameLocal("s1", "new title"))
	assert.False(t, ix.RenameLocal("missing", "whatever"))

	// Local rename only: no backend round-trip, and the day index still
	// resolves the record under its interval.
	assert.Equal(t, calls, source.calls)
	assert.Equal(t, []string{"new title"}, titles(ix.RecordsOn(dates.MustParse("2024-06-02"))))
}

func TestIndex_CreateThenLookup(t *testing.T) {
	// End-to-end shape of the calendar flow: a record created for
	// January shows up under its middle day after the year loads.
	source := &fakeSource{byYear: map[int][]schedule.Schedule{}}
	ix := New(source, 2023, slog.Default())

	source.byYear[2024] = []schedule.Schedule{
		sched("s1", "calibration", "2024-01-10", "2024-01-12"),
	}
	require.NoError(t, ix.SetYear(context.Background(), 2024))

	got := ix.RecordsOn(dates.MustParse("2024-01-11"))
	require.Len(t, got, 1)
	assert.Equal(t, "calibration", got[0].Title)
}
