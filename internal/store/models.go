package store

import "time"

// Mood is one of the ten fixed mood categories.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodAngry    Mood = "angry"
	MoodFearful  Mood = "fearful"
	MoodContent  Mood = "content"
	MoodExcited  Mood = "excited"
	MoodAnxious  Mood = "anxious"
	MoodLoved    Mood = "loved"
	MoodTired    Mood = "tired"
	MoodStressed Mood = "stressed"
)

// Moods lists every category in display order.
var Moods = []Mood{
	MoodHappy, MoodSad, MoodAngry, MoodFearful, MoodContent,
	MoodExcited, MoodAnxious, MoodLoved, MoodTired, MoodStressed,
}

var moodEmojis = map[Mood]string{
	MoodHappy:    "😊",
	MoodSad:      "😢",
	MoodAngry:    "😠",
	MoodFearful:  "😰",
	MoodContent:  "😌",
	MoodExcited:  "🤩",
	MoodAnxious:  "😟",
	MoodLoved:    "🥰",
	MoodTired:    "😴",
	MoodStressed: "😫",
}

var moodLabels = map[Mood]string{
	MoodHappy:    "Happy",
	MoodSad:      "Sad",
	MoodAngry:    "Angry",
	MoodFearful:  "Fearful",
	MoodContent:  "Content",
	MoodExcited:  "Excited",
	MoodAnxious:  "Anxious",
	MoodLoved:    "Loved",
	MoodTired:    "Tired",
	MoodStressed: "Stressed",
}

// Emoji returns the glyph for the mood, falling back to 😊 for unknown
// values rather than failing.
func (m Mood) Emoji() string {
	if e, ok := moodEmojis[m]; ok {
		return e
	}
	return "😊"
}

// Label returns the display name for the mood, "Unknown" for unknown values.
func (m Mood) Label() string {
	if l, ok := moodLabels[m]; ok {
		return l
	}
	return "Unknown"
}

// Valid reports whether m is one of the ten categories.
func (m Mood) Valid() bool {
	_, ok := moodLabels[m]
	return ok
}

// MoodEntry is a single day's journal record, keyed by its date string.
type MoodEntry struct {
	Date      string // YYYY-MM-DD, unique
	Mood      Mood
	Story     string
	Image     string // data URI, empty when no photo
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeeklyTracker is the 7-day challenge. At most one exists; starting a new
// one replaces it wholesale.
type WeeklyTracker struct {
	StartDate string
	Active    bool
	Days      [7]TrackerDay
}

// TrackerDay is one day of the challenge. Completed is a cache of
// entry-exists and must be reconciled against the entry table before it
// is displayed or counted.
type TrackerDay struct {
	Date      string
	DayNumber int // 1-7, matches position
	Completed bool
}

// CompletedCount returns how many of the 7 days are marked complete.
func (t *WeeklyTracker) CompletedCount() int {
	n := 0
	for _, d := range t.Days {
		if d.Completed {
			n++
		}
	}
	return n
}
