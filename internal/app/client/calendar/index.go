// Package calendar maps interval-tagged schedule records onto discrete
// calendar days for a month-grid view.
package calendar

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"fieldassets/internal/domain/schedule"
	"fieldassets/internal/utils/dates"
)

// Source fetches the schedule records whose interval intersects a year.
type Source interface {
	Year(ctx context.Context, year int) ([]schedule.Schedule, error)
}

// Index is a day-addressable view over one year of schedules. The day
// index is derived state: it is rebuilt whenever the collection or the
// year changes and never persisted.
type Index struct {
	source Source
	log    *slog.Logger

	mu      sync.Mutex
	year    int
	records []schedule.Schedule
	byDay   map[dates.Day][]int
}

func New(source Source, year int, log *slog.Logger) *Index {
	return &Index{
		source: source,
		log:    log.With("component", "calendar_index"),
		year:   year,
		byDay:  make(map[dates.Day][]int),
	}
}

// SetYear switches the visible year and reloads its schedules. The
// current index is discarded only once the new collection has arrived;
// on failure the prior view stays intact.
func (ix *Index) SetYear(ctx context.Context, year int) error {
	records, err := ix.source.Year(ctx, year)
	if err != nil {
		ix.log.Error("failed to load year", "year", year, "error", err)
		return fmt.Errorf("load schedules for year %d: %w", year, err)
	}

	ix.mu.Lock()
	ix.year = year
	ix.records = records
	ix.rebuildLocked()
	ix.mu.Unlock()

	ix.log.Debug("calendar year loaded", "year", year, "records", len(records))
	return nil
}

// Reload refetches the current year, e.g. after the detail-edit flow
// saved changes through its own store.
func (ix *Index) Reload(ctx context.Context) error {
	ix.mu.Lock()
	year := ix.year
	ix.mu.Unlock()
	return ix.SetYear(ctx, year)
}

// rebuildLocked derives the per-day lookup. A record appears under every
// day of [start, end] inclusive; records with a missing date or an
// inverted interval contribute nothing.
func (ix *Index) rebuildLocked() {
	ix.byDay = make(map[dates.Day][]int)
	for i, rec := range ix.records {
		if rec.Start.IsZero() || rec.End.IsZero() || rec.Start.After(rec.End) {
			continue
		}
		for day := rec.Start; !day.After(rec.End); day = day.AddDays(1) {
			ix.byDay[day] = append(ix.byDay[day], i)
		}
	}
}

func (ix *Index) Year() int {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.year
}

// Records returns the loaded collection in source order.
func (ix *Index) Records() []schedule.Schedule {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return append([]schedule.Schedule(nil), ix.records...)
}

// RecordsOn returns the schedules active on the given day, in source
// order. Days outside any interval, including whole months outside the
// loaded year, yield an empty sequence; per-cell rendering relies on
// that.
func (ix *Index) RecordsOn(day dates.Day) []schedule.Schedule {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	indexes := ix.byDay[day]
	if len(indexes) == 0 {
		return nil
	}
	out := make([]schedule.Schedule, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, ix.records[i])
	}
	return out
}

// RenameLocal updates the title of the matching in-memory record only.
// No backend write happens here: the detail view performs its own save
// call and the index is refreshed lazily on next open.
func (ix *Index) RenameLocal(id, newTitle string) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	for i := range ix.records {
		if ix.records[i].ID == id {
			ix.records[i].Title = newTitle
			return true
		}
	}
	return false
}
