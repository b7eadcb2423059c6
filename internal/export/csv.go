package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/moodcal/internal/store"
)

func ToCSV(entries []store.MoodEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Date", "Mood", "Story", "Has Photo", "Created", "Updated"}); err != nil {
		return err
	}

	for _, e := range entries {
		hasPhoto := "no"
		if e.Image != "" {
			hasPhoto = "yes"
		}
		row := []string{
			e.Date,
			e.Mood.Label(),
			e.Story,
			hasPhoto,
			e.CreatedAt.Local().Format(time.RFC3339),
			e.UpdatedAt.Local().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
