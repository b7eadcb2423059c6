package tracker

import (
	"testing"
	"time"

	"github.com/sadopc/moodcal/internal/dates"
	"github.com/sadopc/moodcal/internal/store"
)

func fixedClock(day string) dates.Clock {
	d, err := dates.Parse(day)
	if err != nil {
		panic(err)
	}
	return dates.Fixed(d.Add(12 * time.Hour))
}

func newTestEngine(t *testing.T, today string) (*Engine, *store.Store) {
	t.Helper()
	clock := fixedClock(today)
	s, err := store.NewMemory(clock)
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return New(s, clock), s
}

func saveEntry(t *testing.T, s *store.Store, date string) {
	t.Helper()
	if _, err := s.SaveEntry(date, store.MoodHappy, "story", ""); err != nil {
		t.Fatalf("save entry %s: %v", date, err)
	}
}

// ============================================================
// Starting a tracker
// ============================================================

func TestStartCreatesSevenConsecutiveDays(t *testing.T) {
	e, _ := newTestEngine(t, "2024-01-10")

	tr, err := e.Start()
	if err != nil {
		t.Fatal(err)
	}
	if tr.StartDate != "2024-01-10" || !tr.Active {
		t.Fatalf("unexpected tracker: %+v", tr)
	}

	want := []string{
		"2024-01-10", "2024-01-11", "2024-01-12", "2024-01-13",
		"2024-01-14", "2024-01-15", "2024-01-16",
	}
	for i, d := range tr.Days {
		if d.Date != want[i] {
			t.Errorf("day %d: got %s, want %s", i+1, d.Date, want[i])
		}
		if d.DayNumber != i+1 {
			t.Errorf("day %d has number %d", i, d.DayNumber)
		}
		if d.Completed {
			t.Errorf("day %d starts completed", i+1)
		}
	}
}

func TestStartSpansMonthBoundary(t *testing.T) {
	e, _ := newTestEngine(t, "2024-01-29")

	tr, err := e.Start()
	if err != nil {
		t.Fatal(err)
	}
	if tr.Days[6].Date != "2024-02-04" {
		t.Fatalf("expected last day 2024-02-04, got %s", tr.Days[6].Date)
	}
}

func TestStartReplacesExistingTracker(t *testing.T) {
	e, s := newTestEngine(t, "2024-01-10")

	if _, err := e.Start(); err != nil {
		t.Fatal(err)
	}
	saveEntry(t, s, "2024-01-10")
	if _, err := e.OnEntrySaved("2024-01-10"); err != nil {
		t.Fatal(err)
	}

	if _, err := e.Start(); err != nil {
		t.Fatal(err)
	}
	tr, _ := e.Tracker()
	if tr.CompletedCount() != 0 {
		t.Fatal("replacement tracker inherited completion flags")
	}
}

// ============================================================
// Reconciliation
// ============================================================

func TestReconcileMarksDaysWithEntries(t *testing.T) {
	e, s := newTestEngine(t, "2024-01-10")

	if _, err := e.Start(); err != nil {
		t.Fatal(err)
	}
	saveEntry(t, s, "2024-01-10")

	changed, err := e.Reconcile()
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("expected reconcile to report a change")
	}

	tr, _ := e.Tracker()
	if !tr.Days[0].Completed {
		t.Fatal("day 1 not marked complete")
	}
	if tr.CompletedCount() != 1 {
		t.Fatalf("expected 1 completed, got %d", tr.CompletedCount())
	}
}

func TestReconcileIdempotent(t *testing.T) {
	e, s := newTestEngine(t, "2024-01-10")

	if _, err := e.Start(); err != nil {
		t.Fatal(err)
	}
	saveEntry(t, s, "2024-01-10")

	if _, err := e.Reconcile(); err != nil {
		t.Fatal(err)
	}
	changed, err := e.Reconcile()
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Fatal("second reconcile reported a change")
	}
}

func TestReconcileClearsStaleFlags(t *testing.T) {
	e, s := newTestEngine(t, "2024-01-10")

	if _, err := e.Start(); err != nil {
		t.Fatal(err)
	}
	saveEntry(t, s, "2024-01-10")
	if _, err := e.Reconcile(); err != nil {
		t.Fatal(err)
	}

	// Entry removed without going through the engine.
	if err := s.DeleteEntry("2024-01-10"); err != nil {
		t.Fatal(err)
	}

	changed, err := e.Reconcile()
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("expected stale flag to be cleared")
	}
	tr, _ := e.Tracker()
	if tr.Days[0].Completed {
		t.Fatal("flag survived reconciliation")
	}
}

func TestReconcileWithoutTracker(t *testing.T) {
	e, _ := newTestEngine(t, "2024-01-10")

	changed, err := e.Reconcile()
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Fatal("no tracker, nothing to change")
	}
}

// ============================================================
// Save and delete hooks
// ============================================================

func TestOnEntrySavedOutsideTrackerWindow(t *testing.T) {
	e, s := newTestEngine(t, "2024-01-10")

	if _, err := e.Start(); err != nil {
		t.Fatal(err)
	}
	saveEntry(t, s, "2024-01-01")

	completed, err := e.OnEntrySaved("2024-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if completed {
		t.Fatal("entry outside the window must not complete the tracker")
	}
	tr, _ := e.Tracker()
	if tr.CompletedCount() != 0 {
		t.Fatal("unrelated entry marked a day complete")
	}
}

func TestOnEntryDeletedUnmarksDay(t *testing.T) {
	e, s := newTestEngine(t, "2024-01-10")

	if _, err := e.Start(); err != nil {
		t.Fatal(err)
	}
	saveEntry(t, s, "2024-01-10")
	if _, err := e.OnEntrySaved("2024-01-10"); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteEntry("2024-01-10"); err != nil {
		t.Fatal(err)
	}
	if err := e.OnEntryDeleted("2024-01-10"); err != nil {
		t.Fatal(err)
	}

	tr, _ := e.Tracker()
	if tr.Days[0].Completed {
		t.Fatal("day still complete after its entry was deleted")
	}
}

func TestCompletionFiresExactlyOnce(t *testing.T) {
	// Today is the last day of a tracker started a week ago.
	e, s := newTestEngine(t, "2024-01-16")

	startClock := fixedClock("2024-01-10")
	startEngine := New(s, startClock)
	if _, err := startEngine.Start(); err != nil {
		t.Fatal(err)
	}

	// Filling days 1-6 must not celebrate.
	tr, _ := e.Tracker()
	for _, d := range tr.Days[:6] {
		saveEntry(t, s, d.Date)
		completed, err := e.OnEntrySaved(d.Date)
		if err != nil {
			t.Fatal(err)
		}
		if completed {
			t.Fatalf("celebrated before the final day at %s", d.Date)
		}
	}

	// The seventh save is the completion event.
	saveEntry(t, s, "2024-01-16")
	completed, err := e.OnEntrySaved("2024-01-16")
	if err != nil {
		t.Fatal(err)
	}
	if !completed {
		t.Fatal("expected completion on the seventh day")
	}

	// Editing an entry afterwards must not celebrate again.
	saveEntry(t, s, "2024-01-16")
	completed, err = e.OnEntrySaved("2024-01-16")
	if err != nil {
		t.Fatal(err)
	}
	if completed {
		t.Fatal("celebration fired twice")
	}
}

// ============================================================
// Progress
// ============================================================

func TestProgressNoTracker(t *testing.T) {
	e, _ := newTestEngine(t, "2024-01-10")

	p, err := e.Progress()
	if err != nil {
		t.Fatal(err)
	}
	if p.Tracker != nil {
		t.Fatal("expected empty progress without a tracker")
	}
}

func TestProgressPercentageRounds(t *testing.T) {
	e, s := newTestEngine(t, "2024-01-10")

	if _, err := e.Start(); err != nil {
		t.Fatal(err)
	}
	saveEntry(t, s, "2024-01-10")

	p, err := e.Progress()
	if err != nil {
		t.Fatal(err)
	}
	if p.CompletedCount != 1 {
		t.Fatalf("expected 1 completed, got %d", p.CompletedCount)
	}
	// 1/7 rounds to 14, not 14.28-truncated-to-anything-else.
	if p.Percentage != 14 {
		t.Fatalf("expected 14%%, got %d%%", p.Percentage)
	}
	if p.Complete {
		t.Fatal("one day must not be complete")
	}
}

func TestProgressReconcilesFirst(t *testing.T) {
	e, s := newTestEngine(t, "2024-01-10")

	if _, err := e.Start(); err != nil {
		t.Fatal(err)
	}
	// Entry saved without notifying the engine.
	saveEntry(t, s, "2024-01-10")

	p, err := e.Progress()
	if err != nil {
		t.Fatal(err)
	}
	if p.CompletedCount != 1 {
		t.Fatalf("progress did not reconcile: %+v", p)
	}
}

// ============================================================
// Day status
// ============================================================

func TestDayStatusPriority(t *testing.T) {
	e, _ := newTestEngine(t, "2024-01-12")

	cases := []struct {
		name string
		day  store.TrackerDay
		want DayStatus
	}{
		{"completed past day", store.TrackerDay{Date: "2024-01-10", Completed: true}, StatusCompleted},
		{"completed today", store.TrackerDay{Date: "2024-01-12", Completed: true}, StatusCompleted},
		{"missed past day", store.TrackerDay{Date: "2024-01-11"}, StatusMissed},
		{"today without entry", store.TrackerDay{Date: "2024-01-12"}, StatusToday},
		{"future day", store.TrackerDay{Date: "2024-01-13"}, StatusPending},
	}
	for _, c := range cases {
		if got := e.DayStatus(c.day); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

// ============================================================
// Daily reminder
// ============================================================

func TestDailyReminderOncePerDay(t *testing.T) {
	e, _ := newTestEngine(t, "2024-01-10")

	if _, err := e.Start(); err != nil {
		t.Fatal(err)
	}

	due, err := e.DailyReminder()
	if err != nil {
		t.Fatal(err)
	}
	if !due {
		t.Fatal("expected reminder on first check of the day")
	}

	due, err = e.DailyReminder()
	if err != nil {
		t.Fatal(err)
	}
	if due {
		t.Fatal("reminder fired twice on the same day")
	}
}

func TestDailyReminderSkippedWhenTodayLogged(t *testing.T) {
	e, s := newTestEngine(t, "2024-01-10")

	if _, err := e.Start(); err != nil {
		t.Fatal(err)
	}
	saveEntry(t, s, "2024-01-10")

	due, err := e.DailyReminder()
	if err != nil {
		t.Fatal(err)
	}
	if due {
		t.Fatal("reminder shown although today is already logged")
	}
}

func TestDailyReminderRequiresActiveTracker(t *testing.T) {
	e, _ := newTestEngine(t, "2024-01-10")

	due, err := e.DailyReminder()
	if err != nil {
		t.Fatal(err)
	}
	if due {
		t.Fatal("reminder shown without a tracker")
	}
}
