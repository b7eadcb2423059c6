package store

import (
	"database/sql"
	"fmt"
)

const lastReminderKey = "last_reminder_date"

// Setting returns the value for a key, or "" if unset.
func (s *Store) Setting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// LastReminderDate returns the date the daily "log your mood" reminder was
// last shown, "" if never.
func (s *Store) LastReminderDate() (string, error) {
	return s.Setting(lastReminderKey)
}

// SetLastReminderDate records that the reminder was shown on the given date.
func (s *Store) SetLastReminderDate(date string) error {
	return s.SetSetting(lastReminderKey, date)
}
