// Package diary derives filtered, sorted views of the entry collection for
// display and for the printable export document. Everything here is a pure
// function of the entry snapshot, the filter, and the clock.
package diary

import (
	"sort"

	"github.com/sadopc/moodcal/internal/dates"
	"github.com/sadopc/moodcal/internal/store"
)

// Filter selects which entries a projection includes.
type Filter string

const (
	FilterAll   Filter = "all"
	FilterWeek  Filter = "week"  // date >= today - 7 days
	FilterMonth Filter = "month" // date >= today - 1 calendar month
)

// Filters lists the selectable filters in display order.
var Filters = []Filter{FilterAll, FilterWeek, FilterMonth}

func (f Filter) Label() string {
	switch f {
	case FilterWeek:
		return "Past Week"
	case FilterMonth:
		return "Past Month"
	default:
		return "All Entries"
	}
}

// Project returns the entries matching the filter, sorted newest-first.
// Entries whose date does not parse are dropped from the projection.
func Project(entries map[string]store.MoodEntry, f Filter, clock dates.Clock) []store.MoodEntry {
	today := dates.Today(clock)

	var minDate string
	switch f {
	case FilterWeek:
		minDate = dates.Format(today.AddDate(0, 0, -7))
	case FilterMonth:
		// Calendar rollback, not a fixed 30-day window.
		minDate = dates.Format(today.AddDate(0, -1, 0))
	}

	out := make([]store.MoodEntry, 0, len(entries))
	for date, e := range entries {
		if _, err := dates.Parse(date); err != nil {
			continue
		}
		if minDate != "" && date < minDate {
			continue
		}
		out = append(out, e)
	}

	// ISO date keys sort lexicographically in chronological order.
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
