package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/moodcal/internal/dates"
	"github.com/sadopc/moodcal/internal/store"
	"github.com/sadopc/moodcal/internal/tracker"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	engine *tracker.Engine
	clock  dates.Clock
	width  int
	height int

	activeView viewState
	showHelp   bool

	calendar calendarModel
	trackerV trackerModel
	diary    diaryModel
	stats    statsModel

	help        help.Model
	status      string
	statusError bool
}

func NewApp(s *store.Store, e *tracker.Engine, clock dates.Clock) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:      s,
		engine:     e,
		clock:      clock,
		activeView: viewCalendar,
		calendar:   newCalendarModel(s, e, clock),
		trackerV:   newTrackerModel(s, e, clock),
		diary:      newDiaryModel(s, e, clock),
		stats:      newStatsModel(s, clock),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.calendar.refresh(),
		a.checkReminder(),
	)
}

// checkReminder fires at most once per day, and only while a tracker is
// active with no entry logged for today yet.
func (a App) checkReminder() tea.Cmd {
	return func() tea.Msg {
		due, err := a.engine.DailyReminder()
		if err != nil || !due {
			return nil
		}
		return reminderMsg{}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.calendar.setSize(a.width, contentHeight)
		a.trackerV.setSize(a.width, contentHeight)
		a.diary.setSize(a.width, contentHeight)
		a.stats.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// If a child view is capturing input (e.g. a form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewCalendar
			return a, a.calendar.refresh()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewTracker
			return a, a.trackerV.refresh()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewDiary
			return a, a.diary.refresh()
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewStats
			return a, a.stats.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 4
			return a, a.refreshCurrentView()
		}

	case statusMsg:
		a.status = msg.text
		a.statusError = msg.isError
		return a, nil

	case entrySavedMsg:
		if msg.trackerCompleted {
			a.status = "🎉 Congratulations! You completed your 7-day mood tracker!"
		} else {
			a.status = "Mood saved for " + formatDisplayDate(msg.date)
		}
		a.statusError = false
		return a, a.refreshCurrentView()

	case entryDeletedMsg:
		a.status = "Entry deleted"
		a.statusError = false
		return a, a.refreshCurrentView()

	case trackerStartedMsg:
		a.status = "New 7-day tracker started. Good luck!"
		a.statusError = false
		return a, a.refreshCurrentView()

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusError = false
		return a, nil

	case reminderMsg:
		a.status = "🔔 Don't forget to log today's mood!"
		a.statusError = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewCalendar:
		a.calendar, cmd = a.calendar.update(msg)
	case viewTracker:
		a.trackerV, cmd = a.trackerV.update(msg)
	case viewDiary:
		a.diary, cmd = a.diary.update(msg)
	case viewStats:
		a.stats, cmd = a.stats.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewCalendar:
		return a.calendar.formActive()
	case viewTracker:
		return a.trackerV.formActive()
	case viewDiary:
		return a.diary.formActive()
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewCalendar:
		return a.calendar.refresh()
	case viewTracker:
		return a.trackerV.refresh()
	case viewDiary:
		return a.diary.refresh()
	case viewStats:
		return a.stats.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewCalendar:
		content = a.calendar.view()
	case viewTracker:
		content = a.trackerV.view()
	case viewDiary:
		content = a.diary.view()
	case viewStats:
		content = a.stats.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("moodcal")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		if a.statusError {
			status = errorStyle.Render(" " + a.status)
		} else {
			status = mutedStyle.Render(" " + a.status)
		}
	}

	left := footerStyle.Render(helpView)
	right := status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}
