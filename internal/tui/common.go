package tui

import (
	"github.com/sadopc/moodcal/internal/diary"
)

// viewState represents the currently active view.
type viewState int

const (
	viewCalendar viewState = iota
	viewTracker
	viewDiary
	viewStats
)

var viewNames = []string{"Calendar", "Tracker", "Diary", "Stats"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type entrySavedMsg struct {
	date             string
	trackerCompleted bool // the save finished the 7-day challenge
}

type entryDeletedMsg struct {
	date string
}

type trackerStartedMsg struct{}

type exportDoneMsg struct {
	path string
}

type reminderMsg struct{}

func errorStatus(err error) statusMsg {
	return statusMsg{text: err.Error(), isError: true}
}

// formatDisplayDate renders an entry key the way the diary shows dates.
func formatDisplayDate(date string) string {
	return diary.DisplayDate(date)
}
