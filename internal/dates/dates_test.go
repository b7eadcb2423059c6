package dates

import (
	"testing"
	"time"
)

// ============================================================
// Clock and day boundaries
// ============================================================

func TestTodayTruncatesToMidnight(t *testing.T) {
	clock := Fixed(time.Date(2024, time.January, 10, 15, 42, 7, 0, time.UTC))
	today := Today(clock)
	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Fatalf("expected midnight, got %v", today)
	}
	if today.Year() != 2024 || today.Month() != time.January || today.Day() != 10 {
		t.Fatalf("wrong date: %v", today)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	key := Format(d)
	if key != "2024-03-05" {
		t.Fatalf("expected 2024-03-05, got %s", key)
	}
	back, err := Parse(key)
	if err != nil {
		t.Fatal(err)
	}
	if !SameDay(d, back) {
		t.Fatalf("round trip changed the date: %v", back)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "not-a-date", "2024-13-01", "01/02/2024"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

// ============================================================
// Future-date rule
// ============================================================

func TestIsFutureStrict(t *testing.T) {
	// Late in the evening: today must still not count as future.
	clock := Fixed(time.Date(2024, time.January, 10, 23, 59, 0, 0, time.UTC))

	today := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	if IsFutureStrict(today, clock) {
		t.Fatal("today must not be future")
	}

	yesterday := today.AddDate(0, 0, -1)
	if IsFutureStrict(yesterday, clock) {
		t.Fatal("yesterday must not be future")
	}

	tomorrow := today.AddDate(0, 0, 1)
	if !IsFutureStrict(tomorrow, clock) {
		t.Fatal("tomorrow must be future")
	}
}

// ============================================================
// Month arithmetic
// ============================================================

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	// January 2024 starts on a Monday.
	if got := FirstWeekday(2024, time.January); got != time.Monday {
		t.Fatalf("expected Monday, got %v", got)
	}
	// September 2024 starts on a Sunday.
	if got := FirstWeekday(2024, time.September); got != time.Sunday {
		t.Fatalf("expected Sunday, got %v", got)
	}
}

func TestMinNavigableMonth(t *testing.T) {
	clock := Fixed(time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC))
	m := MinNavigableMonth(clock)
	if m.Year() != 2024 || m.Month() != time.October || m.Day() != 1 {
		t.Fatalf("expected 2024-10-01, got %v", m)
	}
}
