package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/moodcal/internal/dates"
	"github.com/sadopc/moodcal/internal/store"
	"github.com/sadopc/moodcal/internal/tracker"
)

type trackerModel struct {
	store  *store.Store
	engine *tracker.Engine
	clock  dates.Clock
	width  int
	height int

	progress tracker.Progress
	cursor   int // selected day card

	form            entryForm
	confirmingStart bool
}

func newTrackerModel(s *store.Store, e *tracker.Engine, clock dates.Clock) trackerModel {
	return trackerModel{
		store:  s,
		engine: e,
		clock:  clock,
		form:   newEntryForm(s, e),
	}
}

func (t *trackerModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t trackerModel) formActive() bool { return t.form.active }

type trackerDataMsg struct {
	progress tracker.Progress
}

// refresh reconciles through Progress, so the displayed state never
// diverges from the entry store.
func (t trackerModel) refresh() tea.Cmd {
	return func() tea.Msg {
		p, err := t.engine.Progress()
		if err != nil {
			return errorStatus(err)
		}
		return trackerDataMsg{progress: p}
	}
}

func (t trackerModel) update(msg tea.Msg) (trackerModel, tea.Cmd) {
	if t.form.active {
		var cmd tea.Cmd
		t.form, cmd = t.form.update(msg)
		return t, cmd
	}

	switch msg := msg.(type) {
	case trackerDataMsg:
		t.progress = msg.progress
		return t, nil

	case tea.KeyMsg:
		if t.confirmingStart {
			switch {
			case key.Matches(msg, keys.Enter):
				t.confirmingStart = false
				return t, t.startTracker()
			case key.Matches(msg, keys.Back):
				t.confirmingStart = false
			}
			return t, nil
		}

		switch {
		case key.Matches(msg, keys.Start):
			if t.progress.Tracker != nil {
				// Replacing an active tracker needs explicit confirmation.
				t.confirmingStart = true
				return t, nil
			}
			return t, t.startTracker()

		case key.Matches(msg, keys.Left):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, keys.Right):
			if t.cursor < 6 {
				t.cursor++
			}
		case key.Matches(msg, keys.Enter):
			return t.openDay()
		}
	}
	return t, nil
}

func (t trackerModel) startTracker() tea.Cmd {
	return func() tea.Msg {
		if _, err := t.engine.Start(); err != nil {
			return errorStatus(err)
		}
		return trackerStartedMsg{}
	}
}

func (t trackerModel) openDay() (trackerModel, tea.Cmd) {
	if t.progress.Tracker == nil {
		return t, nil
	}
	day := t.progress.Tracker.Days[t.cursor]
	d, err := dates.Parse(day.Date)
	if err != nil {
		return t, func() tea.Msg { return errorStatus(err) }
	}
	if dates.IsFutureStrict(d, t.clock) {
		return t, func() tea.Msg {
			return statusMsg{text: "You can't save an entry for a future date.", isError: true}
		}
	}
	var cmd tea.Cmd
	t.form, cmd = t.form.open(day.Date)
	return t, cmd
}

func (t trackerModel) view() string {
	w := t.width - 4
	if t.form.active {
		return t.form.view(w)
	}

	if t.progress.Tracker == nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("No Active Tracker"),
			"",
			mutedStyle.Render("Start a new 7-day mood tracking challenge to monitor"),
			mutedStyle.Render("your emotional journey."),
			"",
			mutedStyle.Render("s: start tracker"),
		)
		return panelStyle.Width(w).Render(content)
	}

	tr := t.progress.Tracker
	start, _ := dates.Parse(tr.StartDate)
	end := start.AddDate(0, 0, 6)
	rangeLabel := mutedStyle.Render(fmt.Sprintf("%s – %s",
		start.Format("Jan 2"), end.Format("Jan 2, 2006")))

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Active 7-Day Tracker"), "  ", rangeLabel)

	bar := t.renderProgressBar(w - 8)
	count := fmt.Sprintf("%d of 7 days completed (%d%%)",
		t.progress.CompletedCount, t.progress.Percentage)

	var rows []string
	rows = append(rows, header, "", bar, highlightStyle.Render(count), "")
	rows = append(rows, t.renderDayCards()...)

	rows = append(rows, "")
	if t.confirmingStart {
		rows = append(rows, warningStyle.Render(
			"You already have an active tracker. Starting a new one will replace it.",
		))
		rows = append(rows, warningStyle.Render("enter: replace  esc: cancel"))
	} else {
		rows = append(rows, mutedStyle.Render("←/→: select day  enter: log mood  s: restart"))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (t trackerModel) renderProgressBar(w int) string {
	if w < 10 {
		w = 10
	}
	filled := w * t.progress.Percentage / 100
	bar := successStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", w-filled))
	return bar
}

func (t trackerModel) renderDayCards() []string {
	var rows []string
	for i, day := range t.progress.Tracker.Days {
		status := t.engine.DayStatus(day)

		var marker, text string
		style := normalItemStyle
		switch status {
		case tracker.StatusCompleted:
			marker = successStyle.Render("●")
			text = status.String()
			style = successStyle
		case tracker.StatusMissed:
			marker = errorStyle.Render("✗")
			text = status.String()
			style = errorStyle
		case tracker.StatusToday:
			marker = warningStyle.Render("◐")
			text = status.String()
			style = warningStyle
		default:
			marker = mutedStyle.Render("○")
			text = status.String()
			style = mutedStyle
		}

		emoji := ""
		if status == tracker.StatusCompleted {
			if entry, err := t.store.Entry(day.Date); err == nil && entry != nil {
				emoji = " " + entry.Mood.Emoji()
			}
		}

		cursor := "  "
		if i == t.cursor {
			cursor = selectedItemStyle.Render("> ")
		}

		d, _ := dates.Parse(day.Date)
		rows = append(rows, fmt.Sprintf("%s%s Day %d  %-12s %s%s",
			cursor, marker, day.DayNumber,
			d.Format("Mon, Jan 2"), style.Render(text), emoji))
	}
	return rows
}
