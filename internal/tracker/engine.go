// Package tracker manages the 7-day challenge lifecycle and keeps its
// completion flags consistent with the entry store. The flags are a
// derived cache: they may desync when an entry is deleted from elsewhere,
// so every progress read reconciles first.
package tracker

import (
	"fmt"
	"math"

	"github.com/sadopc/moodcal/internal/dates"
	"github.com/sadopc/moodcal/internal/store"
)

// DayStatus is the display state of one tracker day.
type DayStatus int

const (
	StatusPending DayStatus = iota
	StatusToday
	StatusMissed
	StatusCompleted
)

func (s DayStatus) String() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusMissed:
		return "Missed"
	case StatusToday:
		return "Today - Log your mood!"
	default:
		return "Pending"
	}
}

// Progress is a reconciled snapshot of the active tracker.
type Progress struct {
	Tracker        *store.WeeklyTracker // nil when no active tracker
	CompletedCount int
	Percentage     int
	Complete       bool
}

// Engine orchestrates tracker state over the store. Constructed once at
// startup; it holds no state of its own.
type Engine struct {
	store *store.Store
	clock dates.Clock
}

func New(s *store.Store, clock dates.Clock) *Engine {
	return &Engine{store: s, clock: clock}
}

// Tracker returns the persisted tracker without reconciling, nil if none.
func (e *Engine) Tracker() (*store.WeeklyTracker, error) {
	return e.store.Tracker()
}

// Start creates a fresh tracker of 7 consecutive days beginning today,
// replacing any prior one. Confirming the replacement of an active tracker
// is the caller's responsibility.
func (e *Engine) Start() (*store.WeeklyTracker, error) {
	start := dates.Today(e.clock)
	t := &store.WeeklyTracker{
		StartDate: dates.Format(start),
		Active:    true,
	}
	for i := 0; i < 7; i++ {
		t.Days[i] = store.TrackerDay{
			Date:      dates.Format(start.AddDate(0, 0, i)),
			DayNumber: i + 1,
		}
	}
	if err := e.store.SaveTracker(t); err != nil {
		return nil, fmt.Errorf("start tracker: %w", err)
	}
	return t, nil
}

// Reconcile sets every day's completed flag to entry-exists and persists
// only when something changed. Calling it twice in a row without an
// intervening entry mutation is a no-op.
func (e *Engine) Reconcile() (bool, error) {
	t, err := e.store.Tracker()
	if err != nil {
		return false, err
	}
	if t == nil || !t.Active {
		return false, nil
	}

	changed := false
	for i := range t.Days {
		entry, err := e.store.Entry(t.Days[i].Date)
		if err != nil {
			return false, err
		}
		want := entry != nil
		if t.Days[i].Completed != want {
			t.Days[i].Completed = want
			if err := e.store.SetTrackerDayCompleted(t.Days[i].DayNumber, want); err != nil {
				return false, err
			}
			changed = true
		}
	}
	return changed, nil
}

// OnEntrySaved reconciles the single tracker day for date after an entry
// was saved. It returns true exactly when the tracker transitions into the
// all-complete state, so the celebration fires once per completion event
// and never again on later saves or re-renders.
func (e *Engine) OnEntrySaved(date string) (bool, error) {
	t, err := e.store.Tracker()
	if err != nil {
		return false, err
	}
	if t == nil || !t.Active {
		return false, nil
	}

	idx := dayIndex(t, date)
	if idx < 0 {
		return false, nil
	}

	wasComplete := t.CompletedCount() == 7

	entry, err := e.store.Entry(date)
	if err != nil {
		return false, err
	}
	completed := entry != nil
	if t.Days[idx].Completed != completed {
		if err := e.store.SetTrackerDayCompleted(t.Days[idx].DayNumber, completed); err != nil {
			return false, err
		}
		t.Days[idx].Completed = completed
	}

	isComplete := t.CompletedCount() == 7
	return isComplete && !wasComplete, nil
}

// OnEntryDeleted marks the tracker day for date incomplete after its entry
// was removed.
func (e *Engine) OnEntryDeleted(date string) error {
	t, err := e.store.Tracker()
	if err != nil {
		return err
	}
	if t == nil || !t.Active {
		return nil
	}

	idx := dayIndex(t, date)
	if idx < 0 {
		return nil
	}
	if t.Days[idx].Completed {
		return e.store.SetTrackerDayCompleted(t.Days[idx].DayNumber, false)
	}
	return nil
}

// Progress reconciles and then reports the tracker's state. The returned
// snapshot never diverges from the entry store.
func (e *Engine) Progress() (Progress, error) {
	if _, err := e.Reconcile(); err != nil {
		return Progress{}, err
	}
	t, err := e.store.Tracker()
	if err != nil {
		return Progress{}, err
	}
	if t == nil || !t.Active {
		return Progress{}, nil
	}

	count := t.CompletedCount()
	return Progress{
		Tracker:        t,
		CompletedCount: count,
		Percentage:     int(math.Round(float64(count) / 7 * 100)),
		Complete:       count == 7,
	}, nil
}

// DayStatus derives the display state of one day. Order matters: a past
// day with an entry is Completed even though it is also before today.
func (e *Engine) DayStatus(day store.TrackerDay) DayStatus {
	if day.Completed {
		return StatusCompleted
	}
	d, err := dates.Parse(day.Date)
	if err != nil {
		return StatusPending
	}
	today := dates.Today(e.clock)
	if dates.SameDay(d, today) {
		return StatusToday
	}
	if d.Before(today) {
		return StatusMissed
	}
	return StatusPending
}

// DailyReminder reports whether the "log your mood today" nudge should be
// shown: at most once per calendar day, only while a tracker is active and
// today has no entry. Showing it is recorded immediately.
func (e *Engine) DailyReminder() (bool, error) {
	today := dates.Format(dates.Today(e.clock))

	last, err := e.store.LastReminderDate()
	if err != nil {
		return false, err
	}
	if last == today {
		return false, nil
	}
	if err := e.store.SetLastReminderDate(today); err != nil {
		return false, err
	}

	t, err := e.store.Tracker()
	if err != nil {
		return false, err
	}
	if t == nil || !t.Active {
		return false, nil
	}

	entry, err := e.store.Entry(today)
	if err != nil {
		return false, err
	}
	return entry == nil, nil
}

func dayIndex(t *store.WeeklyTracker, date string) int {
	for i := range t.Days {
		if t.Days[i].Date == date {
			return i
		}
	}
	return -1
}
