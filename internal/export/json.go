package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/moodcal/internal/store"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Entries    []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	Date      string `json:"date"`
	Mood      string `json:"mood"`
	MoodLabel string `json:"mood_label"`
	Story     string `json:"story"`
	Image     string `json:"image,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func ToJSON(entries []store.MoodEntry, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(entries),
	}

	for _, e := range entries {
		out.Entries = append(out.Entries, jsonEntry{
			Date:      e.Date,
			Mood:      string(e.Mood),
			MoodLabel: e.Mood.Label(),
			Story:     e.Story,
			Image:     e.Image,
			CreatedAt: e.CreatedAt.Local().Format(time.RFC3339),
			UpdatedAt: e.UpdatedAt.Local().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
