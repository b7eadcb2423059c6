package diary

import (
	"fmt"
	"sort"
	"time"

	"github.com/sadopc/moodcal/internal/dates"
	"github.com/sadopc/moodcal/internal/store"
)

// Document is the printable diary: a cover, a calendar summary for the
// current month, and one page per entry oldest-first. Page numbers are
// cosmetic metadata attached here; physical page breaks belong to the
// rendering surface.
type Document struct {
	Cover Cover
	Month MonthSummary
	Pages []Page
}

type Cover struct {
	Title     string
	Author    string // "_______________" when the user left it blank
	Generated string // long-form date the export was built
}

// MonthSummary is the six-week (42 cell) grid for the current month.
type MonthSummary struct {
	Title string // e.g. "January 2024 Calendar"
	Cells []MonthCell
}

type MonthCell struct {
	Empty bool
	Day   int
	Emoji string // mood emoji when an entry exists for the cell's date
}

type Page struct {
	Number    int // 1-based, oldest entry first
	Date      string
	DateLong  string // e.g. "Wednesday, January 10, 2024"
	MoodEmoji string
	MoodLabel string
	Story     string
	Image     string // data URI, empty when no photo
}

// DisplayDate renders an entry key in the long form used across the diary.
func DisplayDate(date string) string {
	d, err := dates.Parse(date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}

// BuildDocument projects the full entry collection into the printable
// document. Entries are re-sorted oldest-first regardless of the diary's
// on-screen ordering.
func BuildDocument(entries map[string]store.MoodEntry, author string, clock dates.Clock) Document {
	all := Project(entries, FilterAll, clock)
	// Newest-first from Project; the document reads oldest-first.
	sort.Slice(all, func(i, j int) bool { return all[i].Date < all[j].Date })

	if author == "" {
		author = "_______________"
	}

	doc := Document{
		Cover: Cover{
			Title:     "MY MOOD DIARY",
			Author:    author,
			Generated: clock.Now().Format("Monday, January 2, 2006"),
		},
		Month: buildMonthSummary(entries, clock),
	}

	for i, e := range all {
		doc.Pages = append(doc.Pages, Page{
			Number:    i + 1,
			Date:      e.Date,
			DateLong:  DisplayDate(e.Date),
			MoodEmoji: e.Mood.Emoji(),
			MoodLabel: e.Mood.Label(),
			Story:     e.Story,
			Image:     e.Image,
		})
	}
	return doc
}

func buildMonthSummary(entries map[string]store.MoodEntry, clock dates.Clock) MonthSummary {
	today := dates.Today(clock)
	year, month := today.Year(), today.Month()

	start := int(dates.FirstWeekday(year, month))
	days := dates.DaysInMonth(year, month)

	// 42 cells give a stable six-week grid.
	cells := make([]MonthCell, 0, 42)
	for i := 0; i < 42; i++ {
		day := i - start + 1
		if day < 1 || day > days {
			cells = append(cells, MonthCell{Empty: true})
			continue
		}
		cell := MonthCell{Day: day}
		key := dates.Format(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		if e, ok := entries[key]; ok {
			cell.Emoji = e.Mood.Emoji()
		}
		cells = append(cells, cell)
	}

	return MonthSummary{
		Title: fmt.Sprintf("%s %d Calendar", month, year),
		Cells: cells,
	}
}
