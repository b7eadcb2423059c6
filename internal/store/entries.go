package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sadopc/moodcal/internal/dates"
)

// SaveEntry upserts the entry for a date. Validation runs before any write:
// the date must parse and not lie in the future, the mood must be one of
// the ten categories, the story must be non-empty, and the image data URI
// must fit under the size cap. On update, created_at is preserved and
// updated_at refreshed.
func (s *Store) SaveEntry(date string, mood Mood, story, image string) (*MoodEntry, error) {
	day, err := dates.Parse(date)
	if err != nil {
		return nil, fmt.Errorf("parse entry date %q: %w", date, err)
	}
	if dates.IsFutureStrict(day, s.clock) {
		return nil, ErrFutureDate
	}
	if mood == "" || !mood.Valid() {
		return nil, ErrMissingMood
	}
	story = strings.TrimSpace(story)
	if story == "" {
		return nil, ErrEmptyStory
	}
	if len(image) > maxDataURILen {
		return nil, ErrImageTooLarge
	}

	now := s.clock.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(
		`INSERT INTO mood_entries (date, mood, story, image, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
		   mood = excluded.mood,
		   story = excluded.story,
		   image = excluded.image,
		   updated_at = excluded.updated_at`,
		date, string(mood), story, nullIfEmpty(image), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("save entry %s: %w", date, err)
	}
	return s.Entry(date)
}

// Entry returns the entry for a date, or nil if none exists.
func (s *Store) Entry(date string) (*MoodEntry, error) {
	e, err := scanEntry(s.db.QueryRow(
		`SELECT date, mood, story, image, created_at, updated_at
		 FROM mood_entries WHERE date = ?`, date,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %s: %w", date, err)
	}
	return e, nil
}

// AllEntries returns every entry keyed by date. Rows whose date column no
// longer parses are skipped rather than failing the whole read.
func (s *Store) AllEntries() (map[string]MoodEntry, error) {
	rows, err := s.db.Query(
		`SELECT date, mood, story, image, created_at, updated_at
		 FROM mood_entries ORDER BY date`,
	)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]MoodEntry)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		if _, err := dates.Parse(e.Date); err != nil {
			continue
		}
		entries[e.Date] = *e
	}
	return entries, rows.Err()
}

// DeleteEntry removes the entry for a date. Deleting an absent date is a
// no-op, not an error.
func (s *Store) DeleteEntry(date string) error {
	_, err := s.db.Exec(`DELETE FROM mood_entries WHERE date = ?`, date)
	if err != nil {
		return fmt.Errorf("delete entry %s: %w", date, err)
	}
	return nil
}

// ClearEntries removes every entry.
func (s *Store) ClearEntries() error {
	_, err := s.db.Exec(`DELETE FROM mood_entries`)
	if err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*MoodEntry, error) {
	e := &MoodEntry{}
	var mood, createdAt, updatedAt string
	var image sql.NullString
	if err := row.Scan(&e.Date, &mood, &e.Story, &image, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e.Mood = Mood(mood)
	if image.Valid {
		e.Image = image.String
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return e, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
