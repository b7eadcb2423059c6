package store

import (
	"database/sql"
	"fmt"
)

// Tracker returns the persisted weekly tracker, or nil if none has ever
// been started.
func (s *Store) Tracker() (*WeeklyTracker, error) {
	t := &WeeklyTracker{}
	var active int
	err := s.db.QueryRow(
		`SELECT start_date, active FROM weekly_tracker WHERE id = 1`,
	).Scan(&t.StartDate, &active)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tracker: %w", err)
	}
	t.Active = active == 1

	rows, err := s.db.Query(
		`SELECT day_number, date, completed FROM tracker_days ORDER BY day_number`,
	)
	if err != nil {
		return nil, fmt.Errorf("get tracker days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d TrackerDay
		var completed int
		if err := rows.Scan(&d.DayNumber, &d.Date, &completed); err != nil {
			return nil, err
		}
		d.Completed = completed == 1
		if d.DayNumber >= 1 && d.DayNumber <= 7 {
			t.Days[d.DayNumber-1] = d
		}
	}
	return t, rows.Err()
}

// SaveTracker replaces the persisted tracker wholesale in one transaction.
func (s *Store) SaveTracker(t *WeeklyTracker) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save tracker: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM weekly_tracker`); err != nil {
		return fmt.Errorf("save tracker: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM tracker_days`); err != nil {
		return fmt.Errorf("save tracker: %w", err)
	}

	active := 0
	if t.Active {
		active = 1
	}
	if _, err := tx.Exec(
		`INSERT INTO weekly_tracker (id, start_date, active) VALUES (1, ?, ?)`,
		t.StartDate, active,
	); err != nil {
		return fmt.Errorf("save tracker: %w", err)
	}

	for _, d := range t.Days {
		completed := 0
		if d.Completed {
			completed = 1
		}
		if _, err := tx.Exec(
			`INSERT INTO tracker_days (day_number, date, completed) VALUES (?, ?, ?)`,
			d.DayNumber, d.Date, completed,
		); err != nil {
			return fmt.Errorf("save tracker day %d: %w", d.DayNumber, err)
		}
	}

	return tx.Commit()
}

// SetTrackerDayCompleted updates a single day's completion flag.
func (s *Store) SetTrackerDayCompleted(dayNumber int, completed bool) error {
	v := 0
	if completed {
		v = 1
	}
	_, err := s.db.Exec(
		`UPDATE tracker_days SET completed = ? WHERE day_number = ?`, v, dayNumber,
	)
	if err != nil {
		return fmt.Errorf("set tracker day %d: %w", dayNumber, err)
	}
	return nil
}
