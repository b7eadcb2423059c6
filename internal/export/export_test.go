package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/moodcal/internal/dates"
	"github.com/sadopc/moodcal/internal/diary"
	"github.com/sadopc/moodcal/internal/store"
)

func sampleEntries() []store.MoodEntry {
	ts := time.Date(2024, time.January, 9, 20, 0, 0, 0, time.UTC)
	return []store.MoodEntry{
		{
			Date:      "2024-01-09",
			Mood:      store.MoodHappy,
			Story:     "a good day, with a comma",
			CreatedAt: ts,
			UpdatedAt: ts,
		},
		{
			Date:      "2024-01-08",
			Mood:      store.MoodTired,
			Story:     "long one",
			Image:     "data:image/png;base64,aGVsbG8=",
			CreatedAt: ts,
			UpdatedAt: ts,
		},
	}
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ToCSV(sampleEntries(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Date,Mood,Story,Has Photo") {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	// The comma in the story must be quoted, not split.
	if !strings.Contains(lines[1], `"a good day, with a comma"`) {
		t.Fatalf("story not quoted: %s", lines[1])
	}
	if !strings.Contains(lines[1], ",no,") {
		t.Fatalf("photo flag missing: %s", lines[1])
	}
	if !strings.Contains(lines[2], ",yes,") {
		t.Fatalf("photo flag missing: %s", lines[2])
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ToJSON(sampleEntries(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		ExportedAt string `json:"exported_at"`
		Count      int    `json:"count"`
		Entries    []struct {
			Date      string `json:"date"`
			Mood      string `json:"mood"`
			MoodLabel string `json:"mood_label"`
			Image     string `json:"image"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Count != 2 || len(out.Entries) != 2 {
		t.Fatalf("count mismatch: %+v", out)
	}
	if out.Entries[0].Mood != "happy" || out.Entries[0].MoodLabel != "Happy" {
		t.Fatalf("first entry: %+v", out.Entries[0])
	}
	if out.Entries[1].Image == "" {
		t.Fatal("image lost in export")
	}
	if out.ExportedAt == "" {
		t.Fatal("exported_at missing")
	}
}

// ============================================================
// Printable HTML
// ============================================================

func TestToHTML(t *testing.T) {
	clock := dates.Fixed(time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC))
	entries := map[string]store.MoodEntry{}
	for _, e := range sampleEntries() {
		entries[e.Date] = e
	}
	doc := diary.BuildDocument(entries, "Jordan", clock)

	path := filepath.Join(t.TempDir(), "diary.html")
	if err := ToHTML(doc, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)

	if !strings.Contains(html, "MY MOOD DIARY") {
		t.Fatal("cover title missing")
	}
	if !strings.Contains(html, "By: Jordan") {
		t.Fatal("author missing")
	}
	if !strings.Contains(html, "January 2024 Calendar") {
		t.Fatal("month summary missing")
	}
	if !strings.Contains(html, "Page 1") || !strings.Contains(html, "Page 2") {
		t.Fatal("page badges missing")
	}
	// Data URIs must survive template escaping in the img src.
	if !strings.Contains(html, `src="data:image/png;base64,aGVsbG8="`) {
		t.Fatal("entry image data URI was stripped")
	}
	if !strings.Contains(html, "Tuesday, January 9, 2024") {
		t.Fatal("long-form entry date missing")
	}
}

func TestToHTMLEscapesStory(t *testing.T) {
	clock := dates.Fixed(time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC))
	ts := time.Date(2024, time.January, 9, 20, 0, 0, 0, time.UTC)
	entries := map[string]store.MoodEntry{
		"2024-01-09": {
			Date: "2024-01-09", Mood: store.MoodAngry,
			Story:     "<script>alert('x')</script>",
			CreatedAt: ts, UpdatedAt: ts,
		},
	}
	doc := diary.BuildDocument(entries, "", clock)

	path := filepath.Join(t.TempDir(), "diary.html")
	if err := ToHTML(doc, path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "<script>alert") {
		t.Fatal("story not escaped")
	}
}
